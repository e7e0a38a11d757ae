package venues

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

// Repository exposes venue and booking persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a venues repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new venue and returns the persisted model.
func (r *Repository) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return nil, err
	}
	return venue, nil
}

// FindByID loads a venue by its numeric ID.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// List returns venues ordered by id with offset pagination.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Venue, error) {
	params = params.Normalize()
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// CreateBooking inserts a booking row.
func (r *Repository) CreateBooking(ctx context.Context, booking *models.VenueBooking) (*models.VenueBooking, error) {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}
