package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuslabs/campus-events-backend/api/controllers"
	"github.com/campuslabs/campus-events-backend/api/middleware"
	"github.com/campuslabs/campus-events-backend/internal/auth"
	"github.com/campuslabs/campus-events-backend/internal/events"
	"github.com/campuslabs/campus-events-backend/internal/inventory"
	"github.com/campuslabs/campus-events-backend/internal/permissions"
	"github.com/campuslabs/campus-events-backend/internal/users"
	"github.com/campuslabs/campus-events-backend/internal/venues"
	"github.com/campuslabs/campus-events-backend/pkg/config"
	"github.com/campuslabs/campus-events-backend/pkg/db"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	"github.com/campuslabs/campus-events-backend/pkg/logger"
	"github.com/campuslabs/campus-events-backend/pkg/metrics"
	"github.com/campuslabs/campus-events-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Metrics     *metrics.HTTPMetrics
	UserRepo    *users.Repository
	Auth        auth.Service
	Events      events.Service
	Venues      venues.Service
	Inventory   inventory.Service
	Permissions permissions.Service
}

// NewRouter assembles the chi route tree.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, p.Metrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, p.Redis))
	})

	if p.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", p.Metrics.Handler())
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
			Post("/login", controllers.AuthLogin(p.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).
			Post("/register", controllers.AuthRegister(p.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/users/me", controllers.UsersMe(p.UserRepo, logg))

		r.Route("/events", func(r chi.Router) {
			r.Post("/", controllers.EventsCreate(p.Events, logg))
			r.Get("/", controllers.EventsList(p.Events, logg))
			r.Get("/{id}", controllers.EventsGet(p.Events, logg))
			r.With(middleware.RequireCapability(enums.CapabilityModerateEvents, logg)).
				Post("/{id}/approve", controllers.EventsApprove(p.Events, logg))
			r.With(middleware.RequireCapability(enums.CapabilityModerateEvents, logg)).
				Post("/{id}/reject", controllers.EventsReject(p.Events, logg))
			r.Post("/{id}/register", controllers.EventsRegister(p.Events, logg))
			r.Delete("/{id}/register", controllers.EventsUnregister(p.Events, logg))
		})

		r.Route("/venues", func(r chi.Router) {
			r.With(middleware.RequireCapability(enums.CapabilityManageVenues, logg)).
				Post("/", controllers.VenuesCreate(p.Venues, logg))
			r.Get("/", controllers.VenuesList(p.Venues, logg))
			r.Get("/{id}", controllers.VenuesGet(p.Venues, logg))
			r.Post("/{id}/book", controllers.VenuesBook(p.Venues, logg))
		})

		r.Route("/items", func(r chi.Router) {
			r.With(middleware.RequireCapability(enums.CapabilityManageInventory, logg)).
				Post("/", controllers.ItemsCreate(p.Inventory, logg))
			r.Get("/", controllers.ItemsList(p.Inventory, logg))
			r.Get("/{id}", controllers.ItemsGet(p.Inventory, logg))
			r.With(middleware.RequireCapability(enums.CapabilityManageInventory, logg)).
				Post("/{id}/restock", controllers.ItemsRestock(p.Inventory, logg))
			r.Post("/{id}/request", controllers.ItemsRequest(p.Inventory, logg))
			r.Get("/{id}/requests", controllers.ItemsListRequests(p.Inventory, logg))
			r.Get("/{id}/transactions", controllers.ItemsListTransactions(p.Inventory, logg))
			r.Post("/{id}/{request_id}/approve", controllers.ItemsApproveRequest(p.Inventory, logg))
			r.Post("/{id}/{request_id}/reject", controllers.ItemsRejectRequest(p.Inventory, logg))
		})

		r.Route("/permissions", func(r chi.Router) {
			r.Post("/", controllers.PermissionsCreate(p.Permissions, logg))
			r.Get("/", controllers.PermissionsList(p.Permissions, logg))
			r.Get("/{id}", controllers.PermissionsGet(p.Permissions, logg))
			r.Post("/{id}/approve", controllers.PermissionsApprove(p.Permissions, logg))
			r.Post("/{id}/reject", controllers.PermissionsReject(p.Permissions, logg))
		})
	})

	return r
}
