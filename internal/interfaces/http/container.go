package http

import (
	"context"
	"errors"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/scheduler"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/handlers"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/interfaces/http/middleware"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/constants"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background services, and wires them together. Both the HTTP
// server and the worker are built from it.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware      *middleware.AuthMiddleware
	organizerMiddleware *middleware.OrganizerMiddleware
	loginRateLimiter    *middleware.RateLimiter

	// Background services
	reclaimScheduler *scheduler.ReclaimScheduler
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, outbound adapters
	redisClient, err := initRedis(cfg, log)
	if err != nil {
		return nil, err
	}
	c.redis = redisClient
	c.repos = newRepositories(db)

	svcs, err := newServices(cfg, redisClient, log)
	if err != nil {
		_ = redisClient.Close()
		return nil, err
	}
	c.svcs = svcs

	// Section 2: Use cases and background jobs
	c.ucs = newUseCases(cfg, c.repos, c.svcs, log)
	c.reclaimScheduler = scheduler.NewReclaimScheduler(c.ucs.reclaim, cfg.Order.ReclaimInterval(), log.Named("reclaim"))

	// Section 3: Middlewares and handlers
	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwtSvc, log)
	c.organizerMiddleware = middleware.NewOrganizerMiddleware(c.repos.customerRepo, log)
	c.loginRateLimiter = middleware.NewRateLimiter(redisClient, "login", constants.LoginRateLimitPerMinute, time.Minute, log)
	c.hdlrs = newHandlers(c.ucs, c.healthChecks(), log)

	c.setupRoutes()

	return c, nil
}

func (c *Container) healthChecks() map[string]handlers.Pinger {
	return map[string]handlers.Pinger{
		"database": handlers.PingFunc(func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
		"redis": handlers.PingFunc(func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}),
	}
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// MessageRouter returns the router consuming domain events.
func (c *Container) MessageRouter() *message.Router {
	return c.svcs.msgRouter
}

// ReclaimScheduler returns the job that abandons stale orders.
func (c *Container) ReclaimScheduler() *scheduler.ReclaimScheduler {
	return c.reclaimScheduler
}

// Shutdown stops background services and releases connections. Safe to call
// once after the HTTP server and the message router have stopped accepting
// work.
func (c *Container) Shutdown(ctx context.Context) error {
	c.log.Infow("shutting down container")

	c.reclaimScheduler.Stop()

	var errs []error
	if err := c.svcs.msgRouter.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := c.svcs.transport.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := c.redis.Close(); err != nil {
		errs = append(errs, err)
	}

	select {
	case <-ctx.Done():
		errs = append(errs, ctx.Err())
	default:
	}

	return errors.Join(errs...)
}
