package venues

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// VenueDTO is the transport shape for a venue.
type VenueDTO struct {
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	VenueType enums.VenueType      `json:"venue_type"`
	Capacity  int                  `json:"capacity"`
	Location  *string              `json:"location,omitempty"`
	Picture   *string              `json:"picture,omitempty"`
	IsActive  bool                 `json:"is_active"`
}

// CreateVenueRequest captures the payload for adding a venue.
type CreateVenueRequest struct {
	Name      string          `json:"name" validate:"required"`
	VenueType enums.VenueType `json:"venue_type" validate:"required"`
	Capacity  int             `json:"capacity" validate:"gte=0"`
	Location  *string         `json:"location,omitempty"`
	Picture   *string         `json:"picture,omitempty"`
}

// BookVenueRequest captures the payload for reserving a venue.
type BookVenueRequest struct {
	EventID      uint      `json:"event_id" validate:"required"`
	PermissionID uint      `json:"permission_id" validate:"required"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Purpose      *string   `json:"purpose,omitempty"`
}

// BookingDTO is the transport shape for a venue booking.
type BookingDTO struct {
	ID           uint                 `json:"id"`
	VenueID      uint                 `json:"venue_id"`
	EventID      uint                 `json:"event_id"`
	PermissionID uint                 `json:"permission_id"`
	BookerID     uint                 `json:"booker_id"`
	StartTime    time.Time            `json:"start_time"`
	EndTime      time.Time            `json:"end_time"`
	Purpose      *string              `json:"purpose,omitempty"`
	Status       enums.ApprovalStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

func FromModel(v *models.Venue) *VenueDTO {
	if v == nil {
		return nil
	}

	return &VenueDTO{
		ID:        v.ID,
		Name:      v.Name,
		VenueType: v.VenueType,
		Capacity:  v.Capacity,
		Location:  v.Location,
		Picture:   v.Picture,
		IsActive:  v.IsActive,
	}
}

func FromModels(items []models.Venue) []VenueDTO {
	dtos := make([]VenueDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}

func bookingFromModel(b *models.VenueBooking) *BookingDTO {
	if b == nil {
		return nil
	}

	return &BookingDTO{
		ID:           b.ID,
		VenueID:      b.VenueID,
		EventID:      b.EventID,
		PermissionID: b.PermissionID,
		BookerID:     b.BookerID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Purpose:      b.Purpose,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}
