package permissions

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

// Repository exposes permission persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a permissions repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new permission and returns the persisted model.
func (r *Repository) Create(ctx context.Context, permission *models.Permission) (*models.Permission, error) {
	if err := r.db.WithContext(ctx).Create(permission).Error; err != nil {
		return nil, err
	}
	return permission, nil
}

// FindByID loads a permission by its numeric ID.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Permission, error) {
	var permission models.Permission
	if err := r.db.WithContext(ctx).First(&permission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

// List returns permissions ordered by id with offset pagination.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Permission, error) {
	params = params.Normalize()
	var permissions []models.Permission
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

// TransitionStatus flips the status only when the stored value still matches
// from. Returns false when no row matched.
func (r *Repository) TransitionStatus(ctx context.Context, id uint, from, to enums.ApprovalStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Permission{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
