package permissions

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	pkgerrors "github.com/campuslabs/campus-events-backend/pkg/errors"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

type stubPermissionRepo struct {
	data   map[uint]*models.Permission
	nextID uint
}

func newStubPermissionRepo() *stubPermissionRepo {
	return &stubPermissionRepo{data: map[uint]*models.Permission{}, nextID: 1}
}

func (s *stubPermissionRepo) Create(ctx context.Context, permission *models.Permission) (*models.Permission, error) {
	permission.ID = s.nextID
	s.nextID++
	s.data[permission.ID] = permission
	return permission, nil
}

func (s *stubPermissionRepo) FindByID(ctx context.Context, id uint) (*models.Permission, error) {
	if permission, ok := s.data[id]; ok {
		copied := *permission
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPermissionRepo) List(ctx context.Context, params pagination.Params) ([]models.Permission, error) {
	out := make([]models.Permission, 0, len(s.data))
	for _, permission := range s.data {
		out = append(out, *permission)
	}
	return out, nil
}

func (s *stubPermissionRepo) TransitionStatus(ctx context.Context, id uint, from, to enums.ApprovalStatus) (bool, error) {
	permission, ok := s.data[id]
	if !ok || permission.Status != from {
		return false, nil
	}
	permission.Status = to
	return true, nil
}

type stubUserFinder struct {
	data map[uint]*models.User
}

func (s *stubUserFinder) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if user, ok := s.data[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func buildPermissionService(t *testing.T, repo *stubPermissionRepo, users *stubUserFinder) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{PermissionRepo: repo, UserRepo: users})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestCreatePermissionPendingForExistingApprover(t *testing.T) {
	repo := newStubPermissionRepo()
	users := &stubUserFinder{data: map[uint]*models.User{
		5: {ID: 5, Role: enums.RoleStudent},
	}}
	svc := buildPermissionService(t, repo, users)

	dto, err := svc.Create(context.Background(), 9, CreatePermissionRequest{
		EventID:        3,
		ApproverID:     5,
		PermissionType: enums.PermissionTypeVenue,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Status != enums.ApprovalStatusPending {
		t.Fatalf("expected pending status, got %s", dto.Status)
	}
	if dto.RequestorID != 9 {
		t.Fatalf("expected requestor 9, got %d", dto.RequestorID)
	}
}

func TestCreatePermissionRejectsMissingApprover(t *testing.T) {
	repo := newStubPermissionRepo()
	users := &stubUserFinder{data: map[uint]*models.User{}}
	svc := buildPermissionService(t, repo, users)

	_, err := svc.Create(context.Background(), 9, CreatePermissionRequest{
		EventID:        3,
		ApproverID:     404,
		PermissionType: enums.PermissionTypeBudget,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreatePermissionRejectsUnknownType(t *testing.T) {
	repo := newStubPermissionRepo()
	users := &stubUserFinder{data: map[uint]*models.User{5: {ID: 5}}}
	svc := buildPermissionService(t, repo, users)

	_, err := svc.Create(context.Background(), 9, CreatePermissionRequest{
		EventID:        3,
		ApproverID:     5,
		PermissionType: enums.PermissionType("parking"),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApproveRequiresDesignatedApprover(t *testing.T) {
	repo := newStubPermissionRepo()
	repo.data[1] = &models.Permission{ID: 1, ApproverID: 5, Status: enums.ApprovalStatusPending}
	repo.nextID = 2
	users := &stubUserFinder{data: map[uint]*models.User{}}
	svc := buildPermissionService(t, repo, users)

	_, err := svc.Approve(context.Background(), 99, 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if repo.data[1].Status != enums.ApprovalStatusPending {
		t.Fatalf("expected status untouched, got %s", repo.data[1].Status)
	}
}

func TestApproveTransitionsPendingPermission(t *testing.T) {
	repo := newStubPermissionRepo()
	repo.data[1] = &models.Permission{ID: 1, ApproverID: 5, Status: enums.ApprovalStatusPending}
	repo.nextID = 2
	users := &stubUserFinder{data: map[uint]*models.User{}}
	svc := buildPermissionService(t, repo, users)

	dto, err := svc.Approve(context.Background(), 5, 1)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if dto.Status != enums.ApprovalStatusApproved {
		t.Fatalf("expected approved, got %s", dto.Status)
	}
}

func TestRejectAfterApproveIsStateConflict(t *testing.T) {
	repo := newStubPermissionRepo()
	repo.data[1] = &models.Permission{ID: 1, ApproverID: 5, Status: enums.ApprovalStatusApproved}
	repo.nextID = 2
	users := &stubUserFinder{data: map[uint]*models.User{}}
	svc := buildPermissionService(t, repo, users)

	_, err := svc.Reject(context.Background(), 5, 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestDecideMissingPermissionIsNotFound(t *testing.T) {
	repo := newStubPermissionRepo()
	users := &stubUserFinder{data: map[uint]*models.User{}}
	svc := buildPermissionService(t, repo, users)

	_, err := svc.Approve(context.Background(), 5, 42)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
