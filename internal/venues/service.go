package venues

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/internal/permissions"
	"github.com/campuslabs/campus-events-backend/pkg/db"
	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	pkgerrors "github.com/campuslabs/campus-events-backend/pkg/errors"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

// Service defines the behavior needed by the venues controller.
type Service interface {
	Create(ctx context.Context, req CreateVenueRequest) (*VenueDTO, error)
	List(ctx context.Context, params pagination.Params) ([]VenueDTO, error)
	Get(ctx context.Context, id uint) (*VenueDTO, error)
	Book(ctx context.Context, bookerID, venueID uint, req BookVenueRequest) (*BookingDTO, error)
}

type service struct {
	db     *db.Client
	venues *Repository
}

// ServiceParams bundles the dependencies required to build a venues service.
type ServiceParams struct {
	DB *db.Client
}

// NewService constructs a venues service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{
		db:     params.DB,
		venues: NewRepository(params.DB.DB()),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateVenueRequest) (*VenueDTO, error) {
	if !req.VenueType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid venue type")
	}

	venue, err := s.venues.Create(ctx, &models.Venue{
		Name:      req.Name,
		VenueType: req.VenueType,
		Capacity:  req.Capacity,
		Location:  req.Location,
		Picture:   req.Picture,
		IsActive:  true,
	})
	if err != nil {
		// Persistence failures on venue creation surface as client errors.
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "could not create venue")
	}
	return FromModel(venue), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]VenueDTO, error) {
	venues, err := s.venues.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list venues")
	}
	return FromModels(venues), nil
}

func (s *service) Get(ctx context.Context, id uint) (*VenueDTO, error) {
	venue, err := s.venues.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "venue not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup venue")
	}
	return FromModel(venue), nil
}

func (s *service) Book(ctx context.Context, bookerID, venueID uint, req BookVenueRequest) (*BookingDTO, error) {
	if _, err := s.Get(ctx, venueID); err != nil {
		return nil, err
	}

	var booking *models.VenueBooking
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		permissionRepo := permissions.NewRepository(tx)
		bookingRepo := NewRepository(tx)

		permission, err := permissionRepo.FindByID(ctx, req.PermissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "permission not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup permission")
		}
		if permission.Status != enums.ApprovalStatusApproved {
			return pkgerrors.New(pkgerrors.CodeValidation, "permission not approved")
		}
		if permission.PermissionType != enums.PermissionTypeVenue {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid permission")
		}

		booking, err = bookingRepo.CreateBooking(ctx, &models.VenueBooking{
			VenueID:      venueID,
			EventID:      req.EventID,
			PermissionID: req.PermissionID,
			BookerID:     bookerID,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Purpose:      req.Purpose,
			Status:       enums.ApprovalStatusApproved,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create booking")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bookingFromModel(booking), nil
}
