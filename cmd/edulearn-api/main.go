// main is the entry point of the EduLearn catalog API.
//
// STARTUP SEQUENCE:
//  1. Load configuration (defaults, optional YAML, .env, environment)
//  2. Initialise the logger
//  3. Open the storage backend and seed the catalog
//  4. Build the catalog service and register the HTTP routes
//  5. Serve until SIGINT/SIGTERM, then shut down gracefully
//
// RUNNING THE SERVER:
//
//	go run ./cmd/edulearn-api --config=config/local.yaml
//
// or with nothing configured at all (listens on :5000, in-memory data):
//
//	go run ./cmd/edulearn-api
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aanand-mishra/edulearn/internal/auth"
	"github.com/aanand-mishra/edulearn/internal/catalog"
	"github.com/aanand-mishra/edulearn/internal/config"
	"github.com/aanand-mishra/edulearn/internal/http/routes"
	"github.com/aanand-mishra/edulearn/internal/http/server"
	"github.com/aanand-mishra/edulearn/internal/logger"
	"github.com/aanand-mishra/edulearn/internal/storage"
	"github.com/aanand-mishra/edulearn/internal/storage/memory"
	"github.com/aanand-mishra/edulearn/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting edulearn-api",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	store, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	// ── 4. Service + Routes ───────────────────────────────────────────────
	tokens := auth.NewIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	svc := catalog.New(store, tokens, log)

	srv := &http.Server{
		Addr:    cfg.HTTPServer.Address(),
		Handler: routes.New(svc, log),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 5. Serve until signalled ──────────────────────────────────────────
	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	base := fmt.Sprintf("http://localhost%s", srv.Addr)
	log.Info("EduLearn Backend Server Started!")
	log.Info("listening", slog.String("local", base), slog.String("api_docs", base))
	log.Info("no database required, using mock data")

	if err := server.Run(ctx, srv, log, cfg.HTTPServer.ShutdownTimeout); err != nil {
		log.Error("server encountered an error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStorage returns the backend named by storage.driver. The concrete
// type stays behind the storage.Storage interface.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		s, err := sqlite.New(cfg)
		if err != nil {
			return nil, err
		}
		slog.Info("storage initialised", slog.String("driver", cfg.Storage.Driver), slog.String("path", cfg.Storage.Path))
		return s, nil
	default:
		return memory.New(), nil
	}
}
