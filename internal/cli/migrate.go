package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/launchpad/internal/adapters/kv"
	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/db"
)

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema to the current version",
		Long: `Run the schema migration guard and exit.

The guard is idempotent: running it against an up-to-date database changes
nothing. The schema version marker is kept in a separate file next to the
database so the guard can tell an untouched store from an old one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			database, err := db.Open(cfg.DB.Path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close()

			ctx := context.Background()
			versions := kv.NewFileStore(cfg.DB.VersionFile)

			before, err := versions.Get(ctx)
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}

			if err := db.EnsureSchema(ctx, database, versions); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			if before == db.CurrentVersion {
				fmt.Printf("Schema already at version %d, nothing to do\n", before)
				return nil
			}

			fmt.Printf("%s Schema migrated from version %d to %d\n",
				color.New(color.FgGreen).Sprint("✓"), before, db.CurrentVersion)
			return nil
		},
	}

	return cmd
}
