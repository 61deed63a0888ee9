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

	"github.com/aussiebroadwan/tasks/internal/tasks/filestore"
	httpapi "github.com/aussiebroadwan/tasks/internal/tasks/http"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the tasks API together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	files *filestore.Disk

	userService         *service.UserService
	credentialService   *service.CredentialService
	sessionService      *service.SessionService
	taskService         *service.TaskService
	imageService        *service.ImageService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "tasks-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	files, err := filestore.NewDisk(app.cfg.UploadRoot)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}
	app.files = files

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("tasks service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.release()
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
	app.logger.Info("shutting down tasks service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.release(); err != nil {
		return err
	}

	app.logger.Info("tasks service stopped")
	return nil
}

// release stops the background worker and closes the database. The server
// must already be stopped.
func (app *Application) release() error {
	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.credentialService = &service.CredentialService{Store: app.db}
	app.sessionService = &service.SessionService{
		Store:       app.db,
		Credentials: app.credentialService,
		AccessTTL:   app.cfg.AccessTokenTTL,
		RefreshTTL:  app.cfg.RefreshTokenTTL,
		LoginDelay:  app.cfg.LoginDelay,
	}
	app.imageService = &service.ImageService{
		Store:    app.db,
		Files:    app.files,
		MaxBytes: app.cfg.MaxUploadBytes,
	}
	app.taskService = &service.TaskService{
		Store:    app.db,
		Images:   app.imageService,
		Files:    app.files,
		PageSize: app.cfg.PageSize,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.files,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.files, app.logger)

	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.TaskService = app.taskService
	router.ImageService = app.imageService
	router.Gate = &service.AuthGate{Sessions: app.sessionService}
	router.MaxUploadBytes = app.cfg.MaxUploadBytes
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
