// main is the entry point of the EduLearn front-end server.
//
// It serves the files under static.root (default ./public) on
// static.port (default 3000). Unknown paths get index.html so the
// single-page app can route on the client.
//
//	STATIC_ROOT=./frontend/build go run ./cmd/edulearn-web
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aanand-mishra/edulearn/internal/config"
	"github.com/aanand-mishra/edulearn/internal/http/middleware"
	"github.com/aanand-mishra/edulearn/internal/http/server"
	"github.com/aanand-mishra/edulearn/internal/logger"
	"github.com/aanand-mishra/edulearn/internal/web"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if _, err := os.Stat(cfg.Static.Root); err != nil {
		// Not fatal: every request will answer 500 until the directory appears.
		log.Warn("static root not readable", slog.String("root", cfg.Static.Root), slog.String("error", err.Error()))
	}

	srv := &http.Server{
		Addr: cfg.Static.Address(),
		Handler: middleware.Chain(web.New(cfg.Static.Root, cfg.Static.Index, log),
			middleware.Recover(log),
			middleware.RequestID,
			middleware.Logger(log),
		),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	log.Info("Frontend Server running",
		slog.String("url", fmt.Sprintf("http://localhost%s", srv.Addr)),
		slog.String("root", cfg.Static.Root))
	log.Info("press Ctrl+C to stop the server")

	if err := server.Run(ctx, srv, log, cfg.HTTPServer.ShutdownTimeout); err != nil {
		log.Error("server encountered an error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
