package permissions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	pkgerrors "github.com/campuslabs/campus-events-backend/pkg/errors"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

// Service defines the behavior needed by the permissions controller.
type Service interface {
	Create(ctx context.Context, requestorID uint, req CreatePermissionRequest) (*PermissionDTO, error)
	List(ctx context.Context, params pagination.Params) ([]PermissionDTO, error)
	Get(ctx context.Context, id uint) (*PermissionDTO, error)
	Approve(ctx context.Context, actorID, id uint) (*PermissionDTO, error)
	Reject(ctx context.Context, actorID, id uint) (*PermissionDTO, error)
}

type permissionRepository interface {
	Create(ctx context.Context, permission *models.Permission) (*models.Permission, error)
	FindByID(ctx context.Context, id uint) (*models.Permission, error)
	List(ctx context.Context, params pagination.Params) ([]models.Permission, error)
	TransitionStatus(ctx context.Context, id uint, from, to enums.ApprovalStatus) (bool, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type service struct {
	permissions permissionRepository
	users       userFinder
}

// ServiceParams bundles the dependencies required to build a permissions service.
type ServiceParams struct {
	PermissionRepo permissionRepository
	UserRepo       userFinder
}

// NewService constructs a permissions service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.PermissionRepo == nil {
		return nil, fmt.Errorf("permission repository is required")
	}
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{
		permissions: params.PermissionRepo,
		users:       params.UserRepo,
	}, nil
}

func (s *service) Create(ctx context.Context, requestorID uint, req CreatePermissionRequest) (*PermissionDTO, error) {
	if !req.PermissionType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid permission type")
	}

	// The approver must exist; their role is not vetted here.
	if _, err := s.users.FindByID(ctx, req.ApproverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "approver not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup approver")
	}

	permission, err := s.permissions.Create(ctx, &models.Permission{
		EventID:        req.EventID,
		RequestorID:    requestorID,
		ApproverID:     req.ApproverID,
		PermissionType: req.PermissionType,
		Status:         enums.ApprovalStatusPending,
		Description:    req.Description,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create permission")
	}
	return FromModel(permission), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]PermissionDTO, error) {
	permissions, err := s.permissions.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list permissions")
	}
	return FromModels(permissions), nil
}

func (s *service) Get(ctx context.Context, id uint) (*PermissionDTO, error) {
	permission, err := s.findPermission(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(permission), nil
}

func (s *service) Approve(ctx context.Context, actorID, id uint) (*PermissionDTO, error) {
	return s.decide(ctx, actorID, id, enums.ApprovalStatusApproved)
}

func (s *service) Reject(ctx context.Context, actorID, id uint) (*PermissionDTO, error) {
	return s.decide(ctx, actorID, id, enums.ApprovalStatusRejected)
}

func (s *service) decide(ctx context.Context, actorID, id uint, next enums.ApprovalStatus) (*PermissionDTO, error) {
	permission, err := s.findPermission(ctx, id)
	if err != nil {
		return nil, err
	}
	if permission.ApproverID != actorID {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "not authorized to decide this permission")
	}
	if !permission.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("permission is already %s", permission.Status))
	}

	updated, err := s.permissions.TransitionStatus(ctx, id, enums.ApprovalStatusPending, next)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update permission status")
	}
	if !updated {
		// Lost the race: somebody decided it between the read and the update.
		current, err := s.findPermission(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("permission is already %s", current.Status))
	}

	permission.Status = next
	return FromModel(permission), nil
}

func (s *service) findPermission(ctx context.Context, id uint) (*models.Permission, error) {
	permission, err := s.permissions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "permission not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup permission")
	}
	return permission, nil
}
