package events

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// Repository exposes event and registration persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an events repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new event and returns the persisted model.
func (r *Repository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// FindByID loads an event by its numeric ID.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns events matching the query, ordered by id.
func (r *Repository) List(ctx context.Context, query ListEventsQuery) ([]models.Event, error) {
	params := query.Pagination.Normalize()
	tx := r.db.WithContext(ctx).Model(&models.Event{})
	if query.ApprovedOnly {
		tx = tx.Where("status = ?", enums.EventStatusApproved)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var events []models.Event
	err := tx.Order("id ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// TransitionStatus flips the status only when the stored value still matches
// from. Returns false when no row matched.
func (r *Repository) TransitionStatus(ctx context.Context, id uint, from, to enums.EventStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CreateRegistration inserts a registration row. The composite unique index
// surfaces duplicate signups as a constraint violation.
func (r *Repository) CreateRegistration(ctx context.Context, registration *models.Registration) (*models.Registration, error) {
	if err := r.db.WithContext(ctx).Create(registration).Error; err != nil {
		return nil, err
	}
	return registration, nil
}

// DeleteRegistration removes the user's registration for the event and
// reports how many rows were removed.
func (r *Repository) DeleteRegistration(ctx context.Context, eventID, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.Registration{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
