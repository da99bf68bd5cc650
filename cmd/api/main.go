package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sidebar_backend/internal/assistant"
	"sidebar_backend/internal/auth"
	"sidebar_backend/internal/contacts"
	"sidebar_backend/internal/estimates"
	"sidebar_backend/internal/finances"
	apphttp "sidebar_backend/internal/http"
	"sidebar_backend/internal/http/router"
	"sidebar_backend/internal/jobs"
	"sidebar_backend/internal/proxy"
	"sidebar_backend/internal/snapshot"
	"sidebar_backend/platform/config"
	"sidebar_backend/platform/jobtread"
	"sidebar_backend/platform/logger"
	"sidebar_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Shared validator instance for dependency injection
	val := validator.New()

	// JobTread GraphQL client; the only upstream this service talks to
	client := jobtread.NewClient(jobtread.Config{
		APIURL:  cfg.GetJobTreadAPIURL(),
		Timeout: cfg.GetJobTreadTimeout(),
	})
	log.Info("jobtread client initialized", "url", cfg.GetJobTreadAPIURL())

	// Snapshot loader shared by metrics and the assistant
	loader := snapshot.NewLoader(client, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	authModule := auth.NewModule(client, cfg, log, val)
	jobsModule := jobs.NewModule(client, loader, val)
	contactsModule := contacts.NewModule(client, val)
	financesModule := finances.NewModule(client, val)
	estimatesModule := estimates.NewModule(val)
	assistantModule := assistant.NewModule(loader, val)
	proxyModule := proxy.NewModule(client)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			authModule,
			jobsModule,
			contactsModule,
			financesModule,
			estimatesModule,
			assistantModule,
			proxyModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
