// Package cli contains the launchpad commands.
package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/launchpad/internal/transport/http/handler"
	"github.com/example/launchpad/internal/transport/http/router"
	"github.com/example/launchpad/internal/web"
	"github.com/example/launchpad/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the release decision dashboard",
		Long: `Start the HTTP server for the release decision dashboard.

The schema migration guard runs before the server accepts requests, so a
fresh or out-of-date database is brought to the current version first.

Examples:
  launchpad serve
  HTTP_ADDRESS=:9090 launchpad serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			slog.SetDefault(log)

			cfg := wire.Config()
			service := wire.ReleaseService()

			dashboard, err := web.NewDashboard(service, cfg.Access)
			if err != nil {
				return fmt.Errorf("failed to build dashboard: %w", err)
			}

			releaseHandler := handler.NewReleaseHandler(service, cfg.Access)
			r := router.NewRouter(releaseHandler, dashboard, cfg.Access)

			srv := &http.Server{
				Addr:         cfg.HTTPServer.Address,
				Handler:      r,
				ReadTimeout:  cfg.HTTPServer.Timeout,
				WriteTimeout: cfg.HTTPServer.Timeout,
				IdleTimeout:  cfg.HTTPServer.IdleTimeout,
			}

			log.Info("HTTP server starting", "addr", cfg.HTTPServer.Address, "env", cfg.Env)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("http server failed: %w", err)
			}
			return nil
		},
	}

	return cmd
}
