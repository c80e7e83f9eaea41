package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/flyai/flyai/internal/booking"
	"github.com/flyai/flyai/internal/cli"
	"github.com/flyai/flyai/internal/otp"
	"github.com/flyai/flyai/internal/registration"
	"github.com/flyai/flyai/internal/store"
	"github.com/flyai/flyai/pkg/config"
	"github.com/flyai/flyai/pkg/events"
	"github.com/flyai/flyai/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	docs := store.NewFileStore(cfg.Store.FilePath)
	bus := events.NewNoopBus()

	reg := registration.NewService(docs, otp.NewDevSender(), bus)
	bookings := booking.NewService(docs, bus)

	app := cli.New(reg, bookings, os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		logger.Error("CLI session failed", "error", err)
		os.Exit(1)
	}
}
