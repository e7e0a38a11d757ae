package events

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

// EventDTO is the transport shape for an event.
type EventDTO struct {
	ID                 uint              `json:"id"`
	Title              string            `json:"title"`
	Description        *string           `json:"description,omitempty"`
	OrganizerID        uint              `json:"organizer_id"`
	StartDate          time.Time         `json:"start_date"`
	EndDate            time.Time         `json:"end_date"`
	Status             enums.EventStatus `json:"status"`
	ExpectedAttendance int               `json:"expected_attendance"`
	EventType          *string           `json:"event_type,omitempty"`
	Logo               *string           `json:"logo,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// CreateEventRequest captures the payload for drafting an event.
type CreateEventRequest struct {
	Title              string    `json:"title" validate:"required"`
	Description        *string   `json:"description,omitempty"`
	StartDate          time.Time `json:"start_date" validate:"required"`
	EndDate            time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	ExpectedAttendance int       `json:"expected_attendance" validate:"gte=0"`
	EventType          *string   `json:"event_type,omitempty"`
	Logo               *string   `json:"logo,omitempty"`
}

// ListEventsQuery carries the list filters parsed from the query string.
type ListEventsQuery struct {
	Search       string
	ApprovedOnly bool
	Pagination   pagination.Params
}

// RegistrationDTO is the transport shape for an event registration.
type RegistrationDTO struct {
	ID               uint      `json:"id"`
	EventID          uint      `json:"event_id"`
	UserID           uint      `json:"user_id"`
	RegistrationDate time.Time `json:"registration_date"`
}

func FromModel(e *models.Event) *EventDTO {
	if e == nil {
		return nil
	}

	return &EventDTO{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		OrganizerID:        e.OrganizerID,
		StartDate:          e.StartDate,
		EndDate:            e.EndDate,
		Status:             e.Status,
		ExpectedAttendance: e.ExpectedAttendance,
		EventType:          e.EventType,
		Logo:               e.Logo,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func FromModels(items []models.Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}

func registrationFromModel(r *models.Registration) *RegistrationDTO {
	if r == nil {
		return nil
	}

	return &RegistrationDTO{
		ID:               r.ID,
		EventID:          r.EventID,
		UserID:           r.UserID,
		RegistrationDate: r.RegistrationDate,
	}
}
