package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/launchpad/internal/adapters/kv"
	"github.com/example/launchpad/internal/config"
	"github.com/example/launchpad/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate launchpad environment",
		Long: `Environment health check for launchpad.

Validates:
- Configuration loads from the environment
- Database file opens and the schema version is current
- JIRA credentials (warns when lookup runs degraded)
- SMTP settings (warns when notifications are disabled)

Examples:
  launchpad doctor          # Run full health check
  launchpad doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []CheckResult

			cfg, err := config.Load()
			if err != nil {
				results = append(results, CheckResult{"config", "✗", err.Error()})
			} else {
				results = append(results, CheckResult{"config", "✓", ""})
				results = append(results, checkDatabase(cfg))
				results = append(results, checkJIRA(cfg.JIRA))
				results = append(results, checkSMTP(cfg.SMTP))
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				for _, r := range results {
					status := r.Status
					switch r.Status {
					case "✓":
						status = color.New(color.FgGreen).Sprint(r.Status)
					case "⚠":
						status = color.New(color.FgYellow).Sprint(r.Status)
					case "✗":
						status = color.New(color.FgRed).Sprint(r.Status)
					}
					fmt.Printf("%-10s %s", r.Name, status)
					if r.Details != "" {
						fmt.Printf("  %s", r.Details)
					}
					fmt.Println()
				}
				fmt.Println()
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "exit code only")
	return cmd
}

func checkDatabase(cfg *config.Config) CheckResult {
	database, err := db.Open(cfg.DB.Path)
	if err != nil {
		return CheckResult{"database", "✗", err.Error()}
	}
	defer database.Close()

	version, err := kv.NewFileStore(cfg.DB.VersionFile).Get(context.Background())
	if err != nil {
		return CheckResult{"database", "✗", err.Error()}
	}
	if version < db.CurrentVersion {
		return CheckResult{"database", "⚠", fmt.Sprintf("schema at version %d, want %d (run: launchpad migrate)", version, db.CurrentVersion)}
	}

	return CheckResult{"database", "✓", ""}
}

func checkJIRA(cfg config.JIRA) CheckResult {
	if cfg.BaseURL == "" || cfg.Username == "" || cfg.APIToken == "" {
		return CheckResult{"jira", "⚠", "credentials not configured, ticket lookup degraded to key-only"}
	}
	return CheckResult{"jira", "✓", ""}
}

func checkSMTP(cfg config.SMTP) CheckResult {
	if cfg.Host == "" || len(cfg.RecipientList()) == 0 {
		return CheckResult{"smtp", "⚠", "not configured, release notifications disabled"}
	}
	return CheckResult{"smtp", "✓", ""}
}
