package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pausequest/pausequest-cli/internal/adapters/api"
	"github.com/pausequest/pausequest-cli/internal/adapters/notification"
	"github.com/pausequest/pausequest-cli/internal/adapters/storage"
	"github.com/pausequest/pausequest-cli/internal/config"
	"github.com/pausequest/pausequest-cli/internal/ports"
	"github.com/pausequest/pausequest-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	storage   ports.Storage
	ledger    *services.LedgerService
	scheduler *services.SchedulerService
	sessions  *services.SessionService
	settings  *services.SettingsService
	state     *services.StateService
	apiClient *api.Client
	notifier  *notification.Notifier
	config    *config.Config
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)

	// Determine database path
	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Initialize storage
	app.storage, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize services
	clock := ports.SystemClock{}
	app.ledger = services.NewLedgerService(app.storage, clock)
	app.scheduler = services.NewSchedulerService(app.storage, clock, app.config.ToPreferences())
	app.sessions = services.NewSessionService(app.ledger, app.scheduler)
	app.settings = services.NewSettingsService(app.storage)
	app.state = services.NewStateService(app.ledger, app.scheduler, app.sessions)

	// Initialize the remote logging client
	app.apiClient = api.NewClient(app.config.API.BaseURL, time.Duration(app.config.API.Timeout))

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
