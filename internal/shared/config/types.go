package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

// CheckInConfig signs staff check-in codes. The secret must differ from the
// session secret so a session token can never pass as a ticket code.
type CheckInConfig struct {
	Secret     string `mapstructure:"secret"`
	ExpMinutes int    `mapstructure:"exp_minutes"`
}

func (c *CheckInConfig) TTL() time.Duration {
	return time.Duration(c.ExpMinutes) * time.Minute
}

type AuthConfig struct {
	JWT     JWTConfig     `mapstructure:"jwt"`
	CheckIn CheckInConfig `mapstructure:"checkin"`
}

// IdentityConfig describes how login credentials from the external identity
// provider are verified.
type IdentityConfig struct {
	Issuer           string   `mapstructure:"issuer"`
	Audience         string   `mapstructure:"audience"`
	VerificationKey  string   `mapstructure:"verification_key"`
	OrganizerWallets []string `mapstructure:"organizer_wallets"`
}

type LedgerConfig struct {
	RPCURL                  string `mapstructure:"rpc_url"`
	ProgramID               string `mapstructure:"program_id"`
	SignerSeed              string `mapstructure:"signer_seed"`
	Commitment              string `mapstructure:"commitment"`
	ArtifactValidityMinutes int    `mapstructure:"artifact_validity_minutes"`
	RequestTimeoutSeconds   int    `mapstructure:"request_timeout_seconds"`
	ConfirmCacheHours       int    `mapstructure:"confirm_cache_hours"`
}

func (l *LedgerConfig) ArtifactValidity() time.Duration {
	return time.Duration(l.ArtifactValidityMinutes) * time.Minute
}

func (l *LedgerConfig) RequestTimeout() time.Duration {
	return time.Duration(l.RequestTimeoutSeconds) * time.Second
}

type PublisherConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	APIKey         string `mapstructure:"api_key"`
	GatewayURL     string `mapstructure:"gateway_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type PubSubConfig struct {
	// Driver is "gochannel" for in-process delivery or "redis" for redis streams.
	Driver        string `mapstructure:"driver"`
	ConsumerGroup string `mapstructure:"consumer_group"`
}

type OrderConfig struct {
	ReclaimAfterMinutes    int `mapstructure:"reclaim_after_minutes"`
	ReclaimIntervalSeconds int `mapstructure:"reclaim_interval_seconds"`
}

func (o *OrderConfig) ReclaimAfter() time.Duration {
	return time.Duration(o.ReclaimAfterMinutes) * time.Minute
}

func (o *OrderConfig) ReclaimInterval() time.Duration {
	return time.Duration(o.ReclaimIntervalSeconds) * time.Second
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
