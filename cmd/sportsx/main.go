package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/cli/migrate"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/cli/server"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/cli/worker"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "sportsx",
		Short:   "SportsX ticketing backend",
		Long:    `SportsX runs the ticket and order lifecycle API, its background worker and database migrations.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
