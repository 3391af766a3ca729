package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/caffeinepub/task-queue/internal/backend/http"
	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/internal/backend/store/drivers/badger"
	"github.com/caffeinepub/task-queue/internal/backend/store/drivers/memory"
	"github.com/caffeinepub/task-queue/internal/backend/store/drivers/sqlite"
	"github.com/caffeinepub/task-queue/pkg/cryptox"
	"github.com/caffeinepub/task-queue/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires storage, origin keys and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	root *store.Store
	keys OriginKeys

	origins *service.OriginService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "task-queue-backend",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initStorage(); err != nil {
		return nil, err
	}

	keys, err := InitOriginKeys(context.Background(), app.root, cfg.Issuer, app.logger)
	if err != nil {
		_ = app.root.Close()
		return nil, fmt.Errorf("failed to initialize origin keys: %w", err)
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("backend starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"storage", app.cfg.StorageDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down backend...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.root.Close(); err != nil {
		app.logger.Error("error closing storage", "error", err)
		return err
	}

	app.logger.Info("backend stopped")
	return nil
}

// initStorage opens the configured KV driver.
func (app *Application) initStorage() error {
	var kv store.KV

	switch app.cfg.StorageDriver {
	case DriverMemory:
		kv = memory.NewStore()
		app.logger.Warn("using in-memory storage, all data is lost on restart")

	case DriverBadger:
		db, err := badger.Open(badger.Options{Dir: app.cfg.BadgerDir, Logger: app.logger})
		if err != nil {
			return fmt.Errorf("failed to open badger database: %w", err)
		}
		kv = db

	default:
		db, err := sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile))
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.logger.Info("database migrations applied successfully")
		kv = db
	}

	app.root = store.New(kv, app.logger)
	return nil
}

func (app *Application) initServices() {
	app.origins = &service.OriginService{
		Root:      app.root,
		KeyPrefix: app.cfg.KeyPrefix,
		Signer:    app.keys.Signer,
		Issuer:    app.cfg.Issuer,
		TokenTTL:  app.cfg.OriginTokenTTL,
		Options: service.Options{
			RequireVerified: app.cfg.RequireVerified,
		},
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.root,
		app.logger,
	)

	router.Origins = app.origins
	router.DevMode = app.cfg.DevMode()
	router.TrustClientVerification = app.cfg.TrustClientVerification
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
