package events

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db"
	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	pkgerrors "github.com/campuslabs/campus-events-backend/pkg/errors"
)

// Service defines the behavior needed by the events controller.
type Service interface {
	Create(ctx context.Context, organizerID uint, role enums.Role, req CreateEventRequest) (*EventDTO, error)
	List(ctx context.Context, role enums.Role, query ListEventsQuery) ([]EventDTO, error)
	Get(ctx context.Context, id uint) (*EventDTO, error)
	Approve(ctx context.Context, id uint) (*EventDTO, error)
	Reject(ctx context.Context, id uint) (*EventDTO, error)
	Register(ctx context.Context, userID, eventID uint) (*RegistrationDTO, error)
	Unregister(ctx context.Context, userID, eventID uint) error
}

type eventRepository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, query ListEventsQuery) ([]models.Event, error)
	TransitionStatus(ctx context.Context, id uint, from, to enums.EventStatus) (bool, error)
	CreateRegistration(ctx context.Context, registration *models.Registration) (*models.Registration, error)
	DeleteRegistration(ctx context.Context, eventID, userID uint) (int64, error)
}

type service struct {
	events eventRepository
}

// ServiceParams bundles the dependencies required to build an events service.
type ServiceParams struct {
	EventRepo eventRepository
}

// NewService constructs an events service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.EventRepo == nil {
		return nil, fmt.Errorf("event repository is required")
	}
	return &service{events: params.EventRepo}, nil
}

func (s *service) Create(ctx context.Context, organizerID uint, role enums.Role, req CreateEventRequest) (*EventDTO, error) {
	if !role.Can(enums.CapabilityOrganizeEvents) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "students cannot organize events")
	}

	event, err := s.events.Create(ctx, &models.Event{
		Title:              req.Title,
		Description:        req.Description,
		OrganizerID:        organizerID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Status:             enums.EventStatusDraft,
		ExpectedAttendance: req.ExpectedAttendance,
		EventType:          req.EventType,
		Logo:               req.Logo,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create event")
	}
	return FromModel(event), nil
}

func (s *service) List(ctx context.Context, role enums.Role, query ListEventsQuery) ([]EventDTO, error) {
	// Only moderators see drafts and rejections.
	query.ApprovedOnly = !role.Can(enums.CapabilityModerateEvents)

	events, err := s.events.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list events")
	}
	return FromModels(events), nil
}

func (s *service) Get(ctx context.Context, id uint) (*EventDTO, error) {
	event, err := s.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(event), nil
}

func (s *service) Approve(ctx context.Context, id uint) (*EventDTO, error) {
	return s.moderate(ctx, id, enums.EventStatusApproved)
}

func (s *service) Reject(ctx context.Context, id uint) (*EventDTO, error) {
	return s.moderate(ctx, id, enums.EventStatusRejected)
}

func (s *service) moderate(ctx context.Context, id uint, next enums.EventStatus) (*EventDTO, error) {
	event, err := s.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("event is already %s", event.Status))
	}

	updated, err := s.events.TransitionStatus(ctx, id, enums.EventStatusDraft, next)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update event status")
	}
	if !updated {
		current, err := s.findEvent(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("event is already %s", current.Status))
	}

	event.Status = next
	return FromModel(event), nil
}

func (s *service) Register(ctx context.Context, userID, eventID uint) (*RegistrationDTO, error) {
	if _, err := s.findEvent(ctx, eventID); err != nil {
		return nil, err
	}

	registration, err := s.events.CreateRegistration(ctx, &models.Registration{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "idx_registrations_event_user") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "already registered for this event")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create registration")
	}
	return registrationFromModel(registration), nil
}

func (s *service) Unregister(ctx context.Context, userID, eventID uint) error {
	removed, err := s.events.DeleteRegistration(ctx, eventID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete registration")
	}
	if removed == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "registration not found")
	}
	return nil
}

func (s *service) findEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "event not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup event")
	}
	return event, nil
}
