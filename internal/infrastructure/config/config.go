package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Identity  sharedConfig.IdentityConfig  `mapstructure:"identity"`
	Ledger    sharedConfig.LedgerConfig    `mapstructure:"ledger"`
	Publisher sharedConfig.PublisherConfig `mapstructure:"publisher"`
	PubSub    sharedConfig.PubSubConfig    `mapstructure:"pubsub"`
	Order     sharedConfig.OrderConfig     `mapstructure:"order"`
	Metrics   sharedConfig.MetricsConfig   `mapstructure:"metrics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads ./configs/config.yaml, then lets SPORTSX_* environment variables
// override it. A .env file in the working directory is loaded first when present.
func Load(env string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("SPORTSX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) validate() error {
	if c.Auth.JWT.Secret == c.Auth.CheckIn.Secret {
		return fmt.Errorf("auth.checkin.secret must differ from auth.jwt.secret")
	}
	if c.Order.ReclaimAfter() <= c.Ledger.ArtifactValidity() {
		return fmt.Errorf("order.reclaim_after_minutes must exceed ledger.artifact_validity_minutes")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "sportsx_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60*24)
	v.SetDefault("auth.checkin.secret", "change-me-too-in-production")
	v.SetDefault("auth.checkin.exp_minutes", 5)

	v.SetDefault("identity.issuer", "")
	v.SetDefault("identity.audience", "")

	v.SetDefault("ledger.rpc_url", "http://localhost:8899")
	v.SetDefault("ledger.commitment", "finalized")
	v.SetDefault("ledger.artifact_validity_minutes", 10)
	v.SetDefault("ledger.request_timeout_seconds", 10)
	v.SetDefault("ledger.confirm_cache_hours", 24)

	v.SetDefault("publisher.endpoint", "http://localhost:5001/api/v0/add")
	v.SetDefault("publisher.gateway_url", "ipfs://")
	v.SetDefault("publisher.timeout_seconds", 30)

	v.SetDefault("pubsub.driver", "gochannel")
	v.SetDefault("pubsub.consumer_group", "sportsx")

	v.SetDefault("order.reclaim_after_minutes", 15)
	v.SetDefault("order.reclaim_interval_seconds", 60)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
