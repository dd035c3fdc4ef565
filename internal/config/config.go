package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	SRS      SRSConfig      `yaml:"srs"`
	Sessions SessionsConfig `yaml:"sessions"`
	Stats    StatsConfig    `yaml:"stats"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token validation settings. Token issuance belongs
// to the identity service; this backend only verifies.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"linguahub"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds spaced-repetition scheduling parameters.
type SRSConfig struct {
	InitialEaseFactor    float64 `yaml:"initial_ease_factor"    env:"SRS_INITIAL_EASE"          env-default:"2.5"`
	MinEaseFactor        float64 `yaml:"min_ease_factor"        env:"SRS_MIN_EASE"              env-default:"1.3"`
	FirstInterval        int     `yaml:"first_interval"         env:"SRS_FIRST_INTERVAL"        env-default:"1"`
	SecondInterval       int     `yaml:"second_interval"        env:"SRS_SECOND_INTERVAL"       env-default:"6"`
	LapseInterval        int     `yaml:"lapse_interval"         env:"SRS_LAPSE_INTERVAL"        env-default:"1"`
	MasteredIntervalDays int     `yaml:"mastered_interval_days" env:"SRS_MASTERED_INTERVAL"     env-default:"21"`
	MasteredRepetitions  int     `yaml:"mastered_repetitions"   env:"SRS_MASTERED_REPETITIONS"  env-default:"4"`
	RetentionWindow      int     `yaml:"retention_window"       env:"SRS_RETENTION_WINDOW"      env-default:"100"`
	MaxQueueSize         int     `yaml:"max_queue_size"         env:"SRS_MAX_QUEUE_SIZE"        env-default:"50"`
	NewCardsPerSession   int     `yaml:"new_cards_per_session"  env:"SRS_NEW_CARDS_PER_SESSION" env-default:"20"`
}

// SessionsConfig holds review session lifecycle settings.
type SessionsConfig struct {
	// IdleWindow is how long an ACTIVE session may sit untouched before
	// the background sweeper abandons it.
	IdleWindow    time.Duration `yaml:"idle_window"    env:"SESSIONS_IDLE_WINDOW"    env-default:"2h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSIONS_SWEEP_INTERVAL" env-default:"10m"`
}

// StatsConfig holds statistics settings.
type StatsConfig struct {
	// Timezone used for day-bucketed statistics (streaks, history, forecast).
	Timezone string `yaml:"timezone" env:"STATS_TIMEZONE" env-default:"UTC"`
}
