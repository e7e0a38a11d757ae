package venues

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db"
	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	pkgerrors "github.com/campuslabs/campus-events-backend/pkg/errors"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

func newTestService(t *testing.T) (Service, *db.Client) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Venue{}, &models.VenueBooking{}, &models.Permission{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}

	client := db.NewWithConn(conn)
	svc, err := NewService(ServiceParams{DB: client})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, client
}

func mustCreateVenue(t *testing.T, svc Service) *VenueDTO {
	t.Helper()
	venue, err := svc.Create(context.Background(), CreateVenueRequest{
		Name:      "Main Hall",
		VenueType: enums.VenueTypeHall,
		Capacity:  300,
	})
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}
	return venue
}

func mustCreatePermission(t *testing.T, client *db.Client, permissionType enums.PermissionType, status enums.ApprovalStatus) *models.Permission {
	t.Helper()
	permission := &models.Permission{
		EventID:        1,
		RequestorID:    2,
		ApproverID:     3,
		PermissionType: permissionType,
		Status:         status,
	}
	if err := client.DB().Create(permission).Error; err != nil {
		t.Fatalf("create permission: %v", err)
	}
	return permission
}

func bookingRequest(permissionID uint) BookVenueRequest {
	now := time.Now().UTC()
	return BookVenueRequest{
		EventID:      1,
		PermissionID: permissionID,
		StartTime:    now.Add(24 * time.Hour),
		EndTime:      now.Add(26 * time.Hour),
	}
}

func TestCreateAndGetVenue(t *testing.T) {
	svc, _ := newTestService(t)

	created := mustCreateVenue(t, svc)
	if !created.IsActive {
		t.Fatal("expected new venue to be active")
	}

	fetched, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get venue: %v", err)
	}
	if fetched.Name != "Main Hall" {
		t.Fatalf("expected Main Hall, got %q", fetched.Name)
	}
}

func TestCreateVenueRejectsUnknownType(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateVenueRequest{
		Name:      "Rooftop",
		VenueType: enums.VenueType("rooftop"),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetMissingVenueIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 42)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListVenues(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreateVenue(t, svc)

	venues, err := svc.List(context.Background(), pagination.Params{})
	if err != nil {
		t.Fatalf("list venues: %v", err)
	}
	if len(venues) != 1 {
		t.Fatalf("expected 1 venue, got %d", len(venues))
	}
}

func TestBookWithApprovedVenuePermission(t *testing.T) {
	svc, client := newTestService(t)
	venue := mustCreateVenue(t, svc)
	permission := mustCreatePermission(t, client, enums.PermissionTypeVenue, enums.ApprovalStatusApproved)

	booking, err := svc.Book(context.Background(), 9, venue.ID, bookingRequest(permission.ID))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if booking.Status != enums.ApprovalStatusApproved {
		t.Fatalf("expected approved booking, got %s", booking.Status)
	}
	if booking.BookerID != 9 {
		t.Fatalf("expected booker 9, got %d", booking.BookerID)
	}

	// An approved permission stays reusable for further bookings.
	if _, err := svc.Book(context.Background(), 9, venue.ID, bookingRequest(permission.ID)); err != nil {
		t.Fatalf("second booking: %v", err)
	}
}

func TestBookRejectsPendingPermission(t *testing.T) {
	svc, client := newTestService(t)
	venue := mustCreateVenue(t, svc)
	permission := mustCreatePermission(t, client, enums.PermissionTypeVenue, enums.ApprovalStatusPending)

	_, err := svc.Book(context.Background(), 9, venue.ID, bookingRequest(permission.ID))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "permission not approved" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestBookRejectsWrongPermissionType(t *testing.T) {
	svc, client := newTestService(t)
	venue := mustCreateVenue(t, svc)
	permission := mustCreatePermission(t, client, enums.PermissionTypeBudget, enums.ApprovalStatusApproved)

	_, err := svc.Book(context.Background(), 9, venue.ID, bookingRequest(permission.ID))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "invalid permission" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestBookMissingPermissionIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	venue := mustCreateVenue(t, svc)

	_, err := svc.Book(context.Background(), 9, venue.ID, bookingRequest(404))
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookMissingVenueIsNotFound(t *testing.T) {
	svc, client := newTestService(t)
	permission := mustCreatePermission(t, client, enums.PermissionTypeVenue, enums.ApprovalStatusApproved)

	_, err := svc.Book(context.Background(), 9, 42, bookingRequest(permission.ID))
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
