package pubsub

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/config"
)

const (
	DriverGoChannel = "gochannel"
	DriverRedis     = "redis"
)

// Transport carries domain event messages. With the gochannel driver
// delivery stays in process; with redis every handler reads its own consumer
// group of the event stream.
type Transport struct {
	Publisher message.Publisher
	driver    string
	group     string
	rdb       *redis.Client
	channel   *gochannel.GoChannel
	logger    watermill.LoggerAdapter
}

func NewTransport(cfg config.PubSubConfig, rdb *redis.Client, logger watermill.LoggerAdapter) (*Transport, error) {
	t := &Transport{
		driver: cfg.Driver,
		group:  cfg.ConsumerGroup,
		rdb:    rdb,
		logger: logger,
	}

	switch cfg.Driver {
	case DriverGoChannel, "":
		t.driver = DriverGoChannel
		t.channel = gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
		t.Publisher = t.channel
	case DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis pubsub driver requires a redis client")
		}
		pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{Client: rdb}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis stream publisher: %w", err)
		}
		t.Publisher = pub
	default:
		return nil, fmt.Errorf("unknown pubsub driver %q", cfg.Driver)
	}

	return t, nil
}

// Subscriber returns the subscriber a handler named handlerName reads from.
func (t *Transport) Subscriber(handlerName string) (message.Subscriber, error) {
	if t.driver == DriverGoChannel {
		return t.channel, nil
	}
	return redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        t.rdb,
		ConsumerGroup: t.group + "." + handlerName,
	}, t.logger)
}

func (t *Transport) Close() error {
	return t.Publisher.Close()
}
