package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/database"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/migration"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/cli/bootstrap"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/constants"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

const scriptsPath = "./internal/infrastructure/migration/scripts"

var (
	env     string
	dialect string
	name    string
	steps   int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVar(&dialect, "dialect", "mysql", "goose SQL dialect")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file under the scripts directory. It is embedded on the next build.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// initMigrator connects to the database; callers defer database.Close.
func initMigrator() (*migration.Migrator, logger.Interface, error) {
	cfg, log, err := bootstrap.Init(bootstrap.ResolveEnv(env))
	if err != nil {
		return nil, nil, err
	}
	if err := bootstrap.InitDatabase(cfg); err != nil {
		return nil, nil, err
	}
	return migration.NewMigrator(database.Get(), dialect, log), log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	migrator, log, err := initMigrator()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	log.Infow("running up migrations", "environment", env)
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	migrator, log, err := initMigrator()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)
	if err := migrator.Down(steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	migrator, _, err := initMigrator()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	version, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)

	return migrator.Status()
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := migration.Create(scriptsPath, name); err != nil {
		return err
	}
	fmt.Printf("Migration '%s' created in %s\n", name, scriptsPath)
	return nil
}
