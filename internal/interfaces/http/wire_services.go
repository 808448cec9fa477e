package http

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/auth"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/cache"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/identity"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/ledger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/publisher"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/pubsub"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// services holds the infrastructure adapters behind the use case ports.
type services struct {
	jwtSvc      *auth.JWTService
	codeSvc     *auth.TicketCodeService
	verifier    *identity.ProviderVerifier
	ledger      *ledger.Client
	pinning     *publisher.PinningClient
	transport   *pubsub.Transport
	eventBus    *pubsub.EventBus
	msgRouter   *message.Router
	redisClient *redis.Client
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// newServices builds every outbound adapter: session and ticket code signing,
// identity verification, the settlement ledger, artifact pinning and the
// domain event transport.
func newServices(cfg *config.Config, redisClient *redis.Client, log logger.Interface) (*services, error) {
	s := &services{
		jwtSvc:      auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes),
		codeSvc:     auth.NewTicketCodeService(cfg.Auth.CheckIn.Secret, cfg.Auth.CheckIn.TTL()),
		pinning:     publisher.NewPinningClient(cfg.Publisher, log.Named("publisher")),
		redisClient: redisClient,
	}

	verifier, err := identity.NewProviderVerifier(cfg.Identity, log.Named("identity"))
	if err != nil {
		return nil, fmt.Errorf("failed to create identity verifier: %w", err)
	}
	s.verifier = verifier

	signer, err := ledger.NewSigner(cfg.Ledger.SignerSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger signer: %w", err)
	}
	cacheTTL := time.Duration(cfg.Ledger.ConfirmCacheHours) * time.Hour
	ledgerClient, err := ledger.NewClient(
		cfg.Ledger,
		signer,
		cache.NewNonceStore(redisClient, cacheTTL),
		cache.NewConfirmCache(redisClient, cacheTTL),
		log.Named("ledger"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger client: %w", err)
	}
	s.ledger = ledgerClient

	wmLogger := pubsub.NewWatermillLogger(log.Named("pubsub"))
	transport, err := pubsub.NewTransport(cfg.PubSub, redisClient, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub transport: %w", err)
	}
	s.transport = transport

	bus, err := pubsub.NewEventBus(transport.Publisher, wmLogger)
	if err != nil {
		_ = transport.Close()
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}
	s.eventBus = bus

	router, err := pubsub.NewRouter(transport, pubsub.NewMetricsHandler(log.Named("consumer")).Handlers(), wmLogger)
	if err != nil {
		_ = transport.Close()
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}
	s.msgRouter = router

	return s, nil
}
