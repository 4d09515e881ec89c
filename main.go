package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tourism-backend/cache"
	"tourism-backend/config"
	"tourism-backend/controllers"
	"tourism-backend/messaging"
	"tourism-backend/middleware"
	"tourism-backend/routes"
	"tourism-backend/services"
	"tourism-backend/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.InitLogger("production", "info")
		log.Fatal().Err(err).Msg("❌ configuration invalid")
	}
	config.InitLogger(cfg.Env, cfg.LogLevel)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("❌ database connect failed")
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("✅ database connection established and migrations applied")

	store := cache.NewTieredStore(cfg.MemcachedHost, 1000)
	locationCache := cache.NewLocationCache(store, cfg.CacheTTL)

	var events messaging.Publisher = messaging.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		amqpPublisher, err := messaging.NewAMQPPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️  RabbitMQ unavailable; domain events disabled")
		} else {
			events = amqpPublisher
		}
	}

	tokens := utils.NewTokenManager(cfg.AuthSecret, cfg.AuthTokenTTL)
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit)

	// Initialize services
	locationService := services.NewLocationService(db, locationCache)
	hotelService := services.NewHotelService(db, locationCache)
	restaurantService := services.NewRestaurantService(db, locationCache)
	reviewService := services.NewReviewService(db, locationCache, events)
	reservationService := services.NewReservationService(db, events)
	userService := services.NewUserService(db)
	authService := services.NewAuthService(db, tokens)

	// Build router
	router := routes.SetupRouter(routes.Handlers{
		Locations:    controllers.NewLocationController(locationService),
		Hotels:       controllers.NewHotelController(hotelService),
		Restaurants:  controllers.NewRestaurantController(restaurantService),
		Reviews:      controllers.NewReviewController(reviewService),
		Reservations: controllers.NewReservationController(reservationService),
		Users:        controllers.NewUserController(userService),
		Auth:         controllers.NewAuthController(authService),
	}, routes.Options{
		CORSOrigins:     cfg.CORSOrigins,
		TrustedProxies:  cfg.TrustedProxies,
		EnforceAdminAPI: cfg.EnforceAdminAPI,
		Tokens:          tokens,
		AuthLimiter:     authLimiter,
	})
	if !cfg.EnforceAdminAPI {
		log.Warn().Msg("⚠️  ENFORCE_ADMIN_API=false: admin routes are open")
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("🚀 server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("❌ ListenAndServe")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("⚠️  shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("❌ server forced to shutdown")
	}

	authLimiter.Stop()
	if err := events.Close(); err != nil {
		log.Warn().Err(err).Msg("closing event publisher")
	}
	store.Close()
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Warn().Err(err).Msg("closing database")
		}
	}

	log.Info().Msg("✅ server stopped gracefully")
}
