package worker

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/database"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/constants"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/goroutine"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run background jobs",
		Long:  `Run the order reclaim job and the domain event consumers without serving HTTP.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env = bootstrap.ResolveEnv(env)

	cfg, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := bootstrap.InitDatabase(cfg); err != nil {
		return err
	}
	defer database.Close()

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("worker started",
		"environment", env,
		"reclaim_interval", cfg.Order.ReclaimInterval(),
		"reclaim_after", cfg.Order.ReclaimAfter(),
	)

	container.ReclaimScheduler().Start(ctx)

	routerErr := make(chan error, 1)
	goroutine.SafeGo(log, "message-router", func() {
		routerErr <- container.MessageRouter().Run(ctx)
	})

	select {
	case <-ctx.Done():
	case err := <-routerErr:
		if err != nil {
			log.Errorw("message router stopped", "error", err)
		}
		stop()
	}

	log.Infow("shutting down worker...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := container.Shutdown(shutdownCtx); err != nil {
		log.Errorw("worker shutdown failed", "error", err)
		return err
	}

	log.Infow("worker stopped")
	return nil
}
