package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/campuslabs/campus-events-backend/api/routes"
	"github.com/campuslabs/campus-events-backend/internal/auth"
	"github.com/campuslabs/campus-events-backend/internal/events"
	"github.com/campuslabs/campus-events-backend/internal/inventory"
	"github.com/campuslabs/campus-events-backend/internal/permissions"
	"github.com/campuslabs/campus-events-backend/internal/users"
	"github.com/campuslabs/campus-events-backend/internal/venues"
	"github.com/campuslabs/campus-events-backend/pkg/config"
	"github.com/campuslabs/campus-events-backend/pkg/db"
	"github.com/campuslabs/campus-events-backend/pkg/logger"
	"github.com/campuslabs/campus-events-backend/pkg/metrics"
	"github.com/campuslabs/campus-events-backend/pkg/migrate"
	"github.com/campuslabs/campus-events-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	userRepo := users.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	eventsService, err := events.NewService(events.ServiceParams{
		EventRepo: events.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create events service", err)
		os.Exit(1)
	}

	venuesService, err := venues.NewService(venues.ServiceParams{DB: dbClient})
	if err != nil {
		logg.Error(context.Background(), "failed to create venues service", err)
		os.Exit(1)
	}

	inventoryService, err := inventory.NewService(inventory.ServiceParams{DB: dbClient})
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	permissionsService, err := permissions.NewService(permissions.ServiceParams{
		PermissionRepo: permissions.NewRepository(dbClient.DB()),
		UserRepo:       userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create permissions service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Redis:       redisClient,
			Metrics:     metrics.NewHTTPMetrics(),
			UserRepo:    userRepo,
			Auth:        authService,
			Events:      eventsService,
			Venues:      venuesService,
			Inventory:   inventoryService,
			Permissions: permissionsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
