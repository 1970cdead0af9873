package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
//
// Driver selects the database/sql driver: "pgx" for PostgreSQL or "sqlite3"
// for an embedded database used in local development.
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"         validate:"required,oneof=pgx sqlite3"`
	URL          string `mapstructure:"url"            validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	// PrivateKey signs and verifies identity tokens.
	PrivateKey string `mapstructure:"private_key" validate:"required,min=32"`

	// BcryptCost is the work factor used when hashing passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// RateLimitConfig throttles login attempts per client address.
// A zero LoginPerMinute disables the limiter.
type RateLimitConfig struct {
	LoginPerMinute int `mapstructure:"login_per_minute" validate:"gte=0"`
	Burst          int `mapstructure:"burst"            validate:"gte=0"`

	// TrustedProxies lists the reverse proxies (IPs or CIDRs) whose
	// X-Forwarded-For header identifies the client. Empty means the socket
	// peer is always the client.
	TrustedProxies []string `mapstructure:"trusted_proxies" validate:"dive,cidr|ip"`
}
