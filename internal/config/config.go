package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Notify   NotifyConfig   `yaml:"notify"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"20"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// NotifyConfig holds the stakeholder resolver and notification transport
// settings.
type NotifyConfig struct {
	EnrollmentURL        string        `yaml:"enrollment_url"         env:"NOTIFY_ENROLLMENT_URL"         env-required:"true"`
	NotificationURL      string        `yaml:"notification_url"       env:"NOTIFY_NOTIFICATION_URL"       env-required:"true"`
	RequestTimeout       time.Duration `yaml:"request_timeout"        env:"NOTIFY_REQUEST_TIMEOUT"        env-default:"5s"`
	DeliveryTimeout      time.Duration `yaml:"delivery_timeout"       env:"NOTIFY_DELIVERY_TIMEOUT"       env-default:"5s"`
	Concurrency          int           `yaml:"concurrency"            env:"NOTIFY_CONCURRENCY"            env-default:"8"`
	RatePerSecond        float64       `yaml:"rate_per_second"        env:"NOTIFY_RATE_PER_SECOND"        env-default:"0"`
	RateBurst            int           `yaml:"rate_burst"             env:"NOTIFY_RATE_BURST"             env-default:"1"`
	AnnounceOwnerRemoval bool          `yaml:"announce_owner_removal" env:"NOTIFY_ANNOUNCE_OWNER_REMOVAL" env-default:"false"`
}
