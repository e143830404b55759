package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kobowave-backend/internal/config"
	"kobowave-backend/internal/database"
	"kobowave-backend/internal/handlers"
	"kobowave-backend/internal/logger"
	customMiddleware "kobowave-backend/internal/middleware"
	"kobowave-backend/internal/models"
	"kobowave-backend/internal/notify"
	"kobowave-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting kobowave backend")

	if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	log.Info().Str("database", cfg.DBName).Msg("connected to MongoDB")

	reviewRepo := repository.NewReviewRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := reviewRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to create review indexes")
	}
	cancel()

	// Collection bootstrap runs in the background; a slow or failing
	// collection must not delay request handling.
	bootstrapper := repository.NewBootstrapper(database.DB, log)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		bootstrapper.EnsureCollections(ctx, cfg.BootstrapCollections)
	}()

	notifier := notify.NewLogNotifier(log)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, notifier, log)
	restaurantHandler := handlers.NewRestaurantHandler(models.DefaultRestaurants())

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(customMiddleware.RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"kobowave-backend"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/reviews", func(r chi.Router) {
			r.Use(customMiddleware.OptionalJWTAuth(cfg.JWTSecret))

			r.Get("/", reviewHandler.List)
			r.Get("/movie/{movieId}", reviewHandler.ListByMovie)
			r.Get("/restaurant/{restaurantId}", reviewHandler.ListByRestaurant)
			r.Get("/{id}", reviewHandler.GetByID)
			r.Post("/", reviewHandler.Create)
			r.Put("/{id}", reviewHandler.Update)
			r.Delete("/{id}", reviewHandler.Delete)
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", restaurantHandler.List)
			r.Get("/search", restaurantHandler.Search)
			r.Get("/{id}", restaurantHandler.GetByID)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
}
