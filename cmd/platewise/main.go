package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashdelaney/platewise/internal/api"
	"github.com/ashdelaney/platewise/internal/config"
	"github.com/ashdelaney/platewise/internal/db"
	"github.com/ashdelaney/platewise/internal/services"
	"github.com/ashdelaney/platewise/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var entryStore services.EntryStore
	switch cfg.EntriesBackend {
	case "csv":
		entryStore = storage.NewCSVStore(cfg.CSVPath)
	case "sqlite", "":
	default:
		log.Fatalf("unknown ENTRIES_BACKEND %q (want sqlite or csv)", cfg.EntriesBackend)
	}

	handler := api.NewHandlerWithEntryStore(database, cfg.SecretKey, location, cfg.CookieSecure, entryStore)

	app := fiber.New(fiber.Config{
		AppName:               "Platewise",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Platewise listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DatabasePath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
