// Package wire provides dependency injection for the launchpad application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"log"
	"sync"

	"github.com/example/launchpad/internal/adapters/jira"
	"github.com/example/launchpad/internal/adapters/kv"
	"github.com/example/launchpad/internal/adapters/mail"
	"github.com/example/launchpad/internal/adapters/sqlite"
	"github.com/example/launchpad/internal/app"
	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/db"
	"github.com/example/launchpad/internal/ports/primary"
)

var (
	cfg            *config.Config
	database       *sql.DB
	releaseService primary.ReleaseService
	once           sync.Once
)

// Config returns the singleton configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Database returns the singleton database handle. The schema is current by
// the time this returns.
func Database() *sql.DB {
	once.Do(initServices)
	return database
}

// ReleaseService returns the singleton ReleaseService instance.
func ReleaseService() primary.ReleaseService {
	once.Do(initServices)
	return releaseService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err = db.Open(cfg.DB.Path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// The migration guard runs before anything touches the store. It is
	// idempotent, so running it again via the migrate command is safe.
	versions := kv.NewFileStore(cfg.DB.VersionFile)
	if err := db.EnsureSchema(context.Background(), database, versions); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	releaseRepo := sqlite.NewReleaseRepository(database)
	lookup := jira.NewClient(cfg.JIRA)
	notifier := mail.NewNotifier(cfg.SMTP)

	releaseService = app.NewReleaseService(releaseRepo, lookup, notifier)
}
