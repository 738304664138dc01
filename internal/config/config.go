package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	SRS    SRSConfig    `yaml:"srs"`
	CORS   CORSConfig   `yaml:"cors"`
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

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings for the UI collaborator.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// SRSConfig holds the scheduling-engine parameters. Out-of-range values
// are clamped by the engine's resolver, never rejected; only a
// malformed weight list or an unknown version fails loading.
type SRSConfig struct {
	Version              int     `yaml:"version"                 env:"SRS_VERSION"            env-default:"5"`
	RequestedRetention   float64 `yaml:"requested_retention"     env:"SRS_RETENTION"          env-default:"0.9"`
	WeightsRaw           string  `yaml:"weights"                 env:"SRS_WEIGHTS"`
	LapseMinIntervalDays int     `yaml:"lapse_min_interval_days" env:"SRS_LAPSE_MIN_INTERVAL" env-default:"0"`
	MaxIntervalDays      int     `yaml:"max_interval_days"       env:"SRS_MAX_INTERVAL"       env-default:"36500"`
	FuzzSeed             int64   `yaml:"fuzz_seed"               env:"SRS_FUZZ_SEED"          env-default:"0"`

	// DisableFuzz turns interval fuzz off. Inverted so the zero value
	// means fuzz on: cleanenv re-applies env-default over a false bool
	// loaded from YAML, which would make "enable_fuzz: false" a no-op.
	DisableFuzz bool `yaml:"disable_fuzz" env:"SRS_DISABLE_FUZZ"`

	// Weights is parsed from WeightsRaw during validation. Empty means
	// the version's default weights.
	Weights []float64 `yaml:"-" env:"-"`
}
