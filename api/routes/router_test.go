package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/internal/auth"
	"github.com/campuslabs/campus-events-backend/internal/events"
	"github.com/campuslabs/campus-events-backend/internal/inventory"
	"github.com/campuslabs/campus-events-backend/internal/permissions"
	"github.com/campuslabs/campus-events-backend/internal/users"
	"github.com/campuslabs/campus-events-backend/internal/venues"
	pkgAuth "github.com/campuslabs/campus-events-backend/pkg/auth"
	"github.com/campuslabs/campus-events-backend/pkg/config"
	"github.com/campuslabs/campus-events-backend/pkg/db"
	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	"github.com/campuslabs/campus-events-backend/pkg/security"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type testEnv struct {
	handler http.Handler
	client  *db.Client
	cfg     *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "campus-events",
			ExpirationMinutes: 30,
		},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8192,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Venue{},
		&models.Event{},
		&models.VenueBooking{},
		&models.Permission{},
		&models.InventoryItem{},
		&models.InventoryRequest{},
		&models.InventoryTransaction{},
		&models.Registration{},
	); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}

	cfg := testConfig()
	client := db.NewWithConn(conn)
	userRepo := users.NewRepository(conn)

	authSvc, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	eventsSvc, err := events.NewService(events.ServiceParams{EventRepo: events.NewRepository(conn)})
	if err != nil {
		t.Fatalf("events service: %v", err)
	}
	venuesSvc, err := venues.NewService(venues.ServiceParams{DB: client})
	if err != nil {
		t.Fatalf("venues service: %v", err)
	}
	inventorySvc, err := inventory.NewService(inventory.ServiceParams{DB: client})
	if err != nil {
		t.Fatalf("inventory service: %v", err)
	}
	permissionsSvc, err := permissions.NewService(permissions.ServiceParams{
		PermissionRepo: permissions.NewRepository(conn),
		UserRepo:       userRepo,
	})
	if err != nil {
		t.Fatalf("permissions service: %v", err)
	}

	handler := NewRouter(RouterParams{
		Config:      cfg,
		Logger:      nil,
		DB:          stubPinger{},
		Redis:       nil,
		UserRepo:    userRepo,
		Auth:        authSvc,
		Events:      eventsSvc,
		Venues:      venuesSvc,
		Inventory:   inventorySvc,
		Permissions: permissionsSvc,
	})

	return &testEnv{handler: handler, client: client, cfg: cfg}
}

func (e *testEnv) seedUser(t *testing.T, email string, role enums.Role) *models.User {
	t.Helper()
	hash, err := security.HashPassword("router-secret", e.cfg.Password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Router Tester",
		Role:         role,
		IsActive:     true,
	}
	if err := e.client.DB().Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(e.cfg.JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func (e *testEnv) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	e.handler.ServeHTTP(resp, req)
	return resp
}

func TestHealthLive(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/health/live", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/events", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRegisterLoginAndMe(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":     "ada@campus.edu",
		"password":  "router-secret",
		"full_name": "Ada Lovelace",
		"role":      "student",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	resp = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "ada@campus.edu",
		"password": "router-secret",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var loginEnvelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &loginEnvelope); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if loginEnvelope.Data.AccessToken == "" {
		t.Fatal("expected access token")
	}

	resp = env.do(t, http.MethodGet, "/api/v1/users/me", loginEnvelope.Data.AccessToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var meEnvelope struct {
		Data *users.UserDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &meEnvelope); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if meEnvelope.Data == nil || meEnvelope.Data.Email != "ada@campus.edu" {
		t.Fatalf("unexpected payload %s", resp.Body.String())
	}
}

func TestEventLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	org := env.seedUser(t, "org@campus.edu", enums.RoleOrganization)
	student := env.seedUser(t, "student@campus.edu", enums.RoleStudent)
	admin := env.seedUser(t, "admin@campus.edu", enums.RoleAdmin)

	now := time.Now().UTC()
	resp := env.do(t, http.MethodPost, "/api/v1/events", env.tokenFor(t, org), map[string]any{
		"title":      "Hack Night",
		"start_date": now.Add(24 * time.Hour).Format(time.RFC3339),
		"end_date":   now.Add(28 * time.Hour).Format(time.RFC3339),
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	var createEnvelope struct {
		Data *events.EventDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &createEnvelope); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	eventID := createEnvelope.Data.ID

	// Students cannot create events.
	resp = env.do(t, http.MethodPost, "/api/v1/events", env.tokenFor(t, student), map[string]any{
		"title":      "Student Party",
		"start_date": now.Add(24 * time.Hour).Format(time.RFC3339),
		"end_date":   now.Add(28 * time.Hour).Format(time.RFC3339),
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("student create: expected 401 got %d", resp.Code)
	}

	// Draft events are hidden from non-admins.
	resp = env.do(t, http.MethodGet, "/api/v1/events", env.tokenFor(t, student), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", resp.Code)
	}
	var listEnvelope struct {
		Data []events.EventDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &listEnvelope); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listEnvelope.Data) != 0 {
		t.Fatalf("expected no visible events, got %d", len(listEnvelope.Data))
	}

	// Organizers cannot moderate.
	target := fmt.Sprintf("/api/v1/events/%d/approve", eventID)
	resp = env.do(t, http.MethodPost, target, env.tokenFor(t, org), nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("org approve: expected 403 got %d", resp.Code)
	}

	resp = env.do(t, http.MethodPost, target, env.tokenFor(t, admin), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("approve: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	// A second moderation attempt hits the terminal state.
	resp = env.do(t, http.MethodPost, target, env.tokenFor(t, admin), nil)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("re-approve: expected 422 got %d", resp.Code)
	}

	// Registration is unique per user/event.
	registerTarget := fmt.Sprintf("/api/v1/events/%d/register", eventID)
	resp = env.do(t, http.MethodPost, registerTarget, env.tokenFor(t, student), nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	resp = env.do(t, http.MethodPost, registerTarget, env.tokenFor(t, student), nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409 got %d", resp.Code)
	}
	resp = env.do(t, http.MethodDelete, registerTarget, env.tokenFor(t, student), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("unregister: expected 200 got %d", resp.Code)
	}
	resp = env.do(t, http.MethodDelete, registerTarget, env.tokenFor(t, student), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("second unregister: expected 404 got %d", resp.Code)
	}
}

func TestPermissionDecisionOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	requestor := env.seedUser(t, "org@campus.edu", enums.RoleOrganization)
	approver := env.seedUser(t, "approver@campus.edu", enums.RoleAdmin)
	bystander := env.seedUser(t, "bystander@campus.edu", enums.RoleStudent)

	resp := env.do(t, http.MethodPost, "/api/v1/permissions", env.tokenFor(t, requestor), map[string]any{
		"event_id":        1,
		"approver_id":     approver.ID,
		"permission_type": "venue",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	var createEnvelope struct {
		Data *permissions.PermissionDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &createEnvelope); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	target := fmt.Sprintf("/api/v1/permissions/%d/approve", createEnvelope.Data.ID)

	// Only the designated approver may decide.
	resp = env.do(t, http.MethodPost, target, env.tokenFor(t, bystander), nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("bystander approve: expected 401 got %d", resp.Code)
	}

	resp = env.do(t, http.MethodPost, target, env.tokenFor(t, approver), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("approve: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	resp = env.do(t, http.MethodPost, target, env.tokenFor(t, approver), nil)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("re-approve: expected 422 got %d", resp.Code)
	}
}
