package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/launchpad/internal/cli"
	"github.com/example/launchpad/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "launchpad",
		Short:   "Launchpad - release GO/NO-GO decision dashboard",
		Version: version.String(),
		Long: `Launchpad records GO/NO-GO release decisions, attaches excluded JIRA
tickets, and notifies stakeholders by email.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
