package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/flyai/flyai/internal/booking"
	"github.com/flyai/flyai/internal/otp"
	"github.com/flyai/flyai/internal/registration"
	"github.com/flyai/flyai/internal/session"
	"github.com/flyai/flyai/internal/store"
	"github.com/flyai/flyai/internal/web"
	"github.com/flyai/flyai/pkg/config"
	"github.com/flyai/flyai/pkg/database"
	"github.com/flyai/flyai/pkg/events"
	"github.com/flyai/flyai/pkg/logger"
	mw "github.com/flyai/flyai/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// Document store
	var docs store.DocumentStore
	switch cfg.Store.Backend {
	case "postgres":
		pool, err := database.Connect(ctx, cfg.Store.URL)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		pg := store.NewPostgresStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Error("Failed to prepare database", "error", err)
			os.Exit(1)
		}
		docs = pg
	default:
		docs = store.NewFileStore(cfg.Store.FilePath)
	}

	// Event bus
	var bus events.Publisher = events.NewNoopBus()
	if cfg.NATS.URL != "" {
		natsBus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		bus = natsBus
	}
	defer bus.Close()

	// Workflows and presentation
	reg := registration.NewService(docs, otp.NewDevSender(), bus)
	bookings := booking.NewService(docs, bus)
	sessions := session.NewJWTManager(cfg.Session.Secret)
	h := web.New(reg, bookings, sessions)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("web"))
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: true,
	}))
	r.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down web server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Web server shutdown error", "error", err)
		}
	}()

	logger.Info("Web server listening", "port", cfg.Server.Port, "store", cfg.Store.Backend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Web server error", "error", err)
		os.Exit(1)
	}
}
