package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Yackxz2004/Estadia-Banquetes/api/routes"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/activities"
	authsvc "github.com/Yackxz2004/Estadia-Banquetes/internal/auth"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/calendar"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/clients"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/eventtypes"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/inventory"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/notifications"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/products"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/reports"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/users"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/warehouses"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/config"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/env"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/metrics"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/migrate"
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

	registry := prometheus.NewRegistry()
	inventoryMetrics := metrics.NewInventoryMetrics(registry)

	notificationsService, err := notifications.NewService(notifications.NewRepository(dbClient.DB()))
	if err != nil {
		fatal(logg, "failed to create notifications service", err)
	}

	inventoryService, err := inventory.NewService(dbClient, inventory.NewRepository(dbClient.DB()), notificationsService, inventoryMetrics)
	if err != nil {
		fatal(logg, "failed to create inventory service", err)
	}

	eventRepo, err := activities.NewRepository[models.Event](dbClient.DB())
	if err != nil {
		fatal(logg, "failed to create event repository", err)
	}
	eventService, err := activities.NewService(dbClient, eventRepo, notificationsService, inventoryMetrics)
	if err != nil {
		fatal(logg, "failed to create event service", err)
	}

	tastingRepo, err := activities.NewRepository[models.Tasting](dbClient.DB())
	if err != nil {
		fatal(logg, "failed to create tasting repository", err)
	}
	tastingService, err := activities.NewService(dbClient, tastingRepo, notificationsService, inventoryMetrics)
	if err != nil {
		fatal(logg, "failed to create tasting service", err)
	}

	warehouseService, err := warehouses.NewService(dbClient, warehouses.NewRepository(dbClient.DB()))
	if err != nil {
		fatal(logg, "failed to create warehouse service", err)
	}

	eventTypeService, err := eventtypes.NewService(dbClient, eventtypes.NewRepository(dbClient.DB()))
	if err != nil {
		fatal(logg, "failed to create event type service", err)
	}

	clientService, err := clients.NewService(clients.NewRepository(dbClient.DB()))
	if err != nil {
		fatal(logg, "failed to create client service", err)
	}

	productService, err := products.NewService(products.NewRepository(dbClient.DB()))
	if err != nil {
		fatal(logg, "failed to create product service", err)
	}

	calendarService, err := calendar.NewService(dbClient.DB())
	if err != nil {
		fatal(logg, "failed to create calendar service", err)
	}

	reportService, err := reports.NewService(inventory.NewRepository(dbClient.DB()))
	if err != nil {
		fatal(logg, "failed to create report service", err)
	}

	userRepo := users.NewRepository(dbClient.DB())
	authService, err := authsvc.NewService(userRepo, cfg.JWT, cfg.Password)
	if err != nil {
		fatal(logg, "failed to create auth service", err)
	}

	userService, err := users.NewService(userRepo, cfg.Password)
	if err != nil {
		fatal(logg, "failed to create user service", err)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, registry, routes.Services{
			Auth:          authService,
			Inventory:     inventoryService,
			Events:        eventService,
			Tastings:      tastingService,
			Notifications: notificationsService,
			Warehouses:    warehouseService,
			EventTypes:    eventTypeService,
			Clients:       clientService,
			Products:      productService,
			Calendar:      calendarService,
			Reports:       reportService,
			Users:         userService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func fatal(logg *logger.Logger, msg string, err error) {
	logg.Error(context.Background(), msg, err)
	os.Exit(1)
}
