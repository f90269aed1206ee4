package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/coastalops/launchtours/internal/config"
	"github.com/coastalops/launchtours/internal/handler"
	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/logger"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/coastalops/launchtours/internal/repository/postgres"
	"github.com/coastalops/launchtours/internal/service"
)

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	repo, err := repository.New(context.Background(), &cfg.Postgres, &appLogger)
	if err != nil {
		log.Fatalf("❌ Postgres connection failed: %v", err)
	}
	defer repo.Close()

	pool := repo.Pool()
	tx := postgres.NewTxManager(pool)

	launchRepo := postgres.NewLaunchRepository(pool)
	missionRepo := postgres.NewMissionRepository(pool)
	boatRepo := postgres.NewBoatRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)
	merchRepo := postgres.NewMerchandiseRepository(pool)
	discountRepo := postgres.NewDiscountRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)

	inv := listview.NewInvalidator()
	env := listview.Env{
		Invalidator: inv,
		Reporter:    zerologReporter(appLogger),
		Logger:      appLogger,
		CacheTTL:    time.Duration(cfg.ListView.CacheTTLSeconds) * time.Second,
	}

	svcs := handler.Services{
		Launches:    service.NewLaunchService(launchRepo, inv, appLogger),
		Missions:    service.NewMissionService(missionRepo, inv, appLogger),
		Boats:       service.NewBoatService(boatRepo, inv, appLogger),
		Trips:       service.NewTripService(tripRepo, launchRepo, boatRepo, tx, inv, appLogger),
		Merchandise: service.NewMerchandiseService(merchRepo, inv, appLogger),
		Discounts:   service.NewDiscountService(discountRepo, inv, appLogger),
		Bookings:    service.NewBookingService(bookingRepo, tripRepo, discountRepo, tx, inv, appLogger),
	}

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	handler.Register(r, postgres.NewPinger(pool), svcs, env)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info().Str("addr", addr).Msg("🚀 Service started")
	if err := r.Run(addr); err != nil {
		appLogger.Fatal().Err(err).Msg("server stopped")
	}
}

// zerologReporter routes remote-fetch failures into the app log. A real
// frontend would surface these as toasts; server-side they become warnings.
func zerologReporter(l zerolog.Logger) listview.Reporter {
	return listview.ReporterFunc(func(kind, message string) {
		l.Warn().Str("kind", kind).Msg(message)
	})
}
