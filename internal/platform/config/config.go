// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultClientCircuitMaxFailures is the default failures before circuit opens.
	DefaultClientCircuitMaxFailures = 5

	// DefaultClientCircuitHalfOpenLimit is the default successes to close circuit.
	DefaultClientCircuitHalfOpenLimit = 3

	// DefaultTransportMaxIdleConns is the default max idle connections.
	DefaultTransportMaxIdleConns = 100

	// DefaultTransportMaxIdleConnsPerHost is the default max idle connections per host.
	DefaultTransportMaxIdleConnsPerHost = 10

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultRemoteFetchLimit is how many remote records one sync consumes.
	DefaultRemoteFetchLimit = 5

	// DefaultRemoteUserID is sent as userId on every submit.
	DefaultRemoteUserID = 1

	// DefaultPushConcurrency bounds parallel submits when pushing local quotes.
	DefaultPushConcurrency = 4

	// DefaultNotifyHistory is how many notifications the feed keeps.
	DefaultNotifyHistory = 50

	// DefaultConfigDir is where Load looks for YAML files.
	DefaultConfigDir = "configs"

	// EnvPrefix prefixes every environment override. Nested keys are separated
	// by a double underscore: APP_REMOTE__FETCH_LIMIT sets remote.fetch_limit.
	EnvPrefix = "APP_"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Remote    RemoteConfig    `koanf:"remote"    validate:"required"`
	Storage   StorageConfig   `koanf:"storage"   validate:"required"`
	Session   SessionConfig   `koanf:"session"   validate:"required"`
	Sync      SyncConfig      `koanf:"sync"      validate:"required"`
	Notify    NotifyConfig    `koanf:"notify"    validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Insecure     bool    `koanf:"insecure"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// ClientConfig contains HTTP client settings for the remote quote source.
// The client makes exactly one attempt per call.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	UserAgent      string               `koanf:"user_agent"      validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// CircuitBreakerConfig contains circuit breaker settings for HTTP clients.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// RemoteConfig describes the remote quote collection.
type RemoteConfig struct {
	BaseURL         string `koanf:"base_url"         validate:"required,url"`
	Path            string `koanf:"path"             validate:"required,startswith=/"`
	Name            string `koanf:"name"             validate:"required"`
	FetchLimit      int    `koanf:"fetch_limit"      validate:"required,min=1,max=100"`
	UserID          int    `koanf:"user_id"          validate:"required,min=1"`
	SubmitOnAdd     bool   `koanf:"submit_on_add"`
	PushConcurrency int    `koanf:"push_concurrency" validate:"required,min=1,max=32"`
}

// StorageConfig selects and configures the persistence driver. Only the
// section of the selected driver is validated.
type StorageConfig struct {
	Driver string       `koanf:"driver" validate:"required,oneof=sqlite redis memory"`
	SQLite SQLiteConfig `koanf:"sqlite" validate:"-"`
	Redis  RedisConfig  `koanf:"redis"  validate:"-"`
}

// SQLiteConfig configures the sqlite driver.
type SQLiteConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// RedisConfig configures the redis driver.
type RedisConfig struct {
	Addr        string        `koanf:"addr"         validate:"required,hostname_port"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db"           validate:"min=0,max=15"`
	Prefix      string        `koanf:"prefix"       validate:"required"`
	DialTimeout time.Duration `koanf:"dial_timeout" validate:"required,min=100ms"`
}

// SessionConfig bounds session-scoped state such as the last viewed quote.
type SessionConfig struct {
	TTL time.Duration `koanf:"ttl" validate:"required,min=1s"`
}

// SyncConfig drives periodic reconciliation.
type SyncConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval" validate:"required,min=1s"`
	Timeout  time.Duration `koanf:"timeout"  validate:"required,min=100ms"`
}

// NotifyConfig configures the user notification feed.
type NotifyConfig struct {
	TTL     time.Duration `koanf:"ttl"     validate:"required,min=1s"`
	History int           `koanf:"history" validate:"required,min=1,max=1000"`
	Console bool          `koanf:"console"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotegen",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "15s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/quotegen.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.insecure":      true,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quotegen",
		"telemetry.sampling_rate": 1.0,

		"client.timeout":                           "5s",
		"client.user_agent":                        "quotegen/dev",
		"client.circuit_breaker.max_failures":      DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":           "30s",
		"client.circuit_breaker.half_open_limit":   DefaultClientCircuitHalfOpenLimit,
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       "90s",

		"remote.base_url":         "https://jsonplaceholder.typicode.com",
		"remote.path":             "/posts",
		"remote.name":             "quote-api",
		"remote.fetch_limit":      DefaultRemoteFetchLimit,
		"remote.user_id":          DefaultRemoteUserID,
		"remote.submit_on_add":    false,
		"remote.push_concurrency": DefaultPushConcurrency,

		"storage.driver":             DriverSQLite,
		"storage.sqlite.path":        "./data/quotes.db",
		"storage.redis.addr":         "localhost:6379",
		"storage.redis.password":     "",
		"storage.redis.db":           0,
		"storage.redis.prefix":       "quotegen",
		"storage.redis.dial_timeout": "2s",

		"session.ttl": "30m",

		"sync.enabled":  true,
		"sync.interval": "5m",
		"sync.timeout":  "5s",

		"notify.ttl":     "10m",
		"notify.history": DefaultNotifyHistory,
		"notify.console": false,
	}
}

// Load loads configuration from DefaultConfigDir. See LoadFrom.
func Load(profile string) (*Config, error) {
	return LoadFrom(DefaultConfigDir, profile)
}

// LoadFrom loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix, __ between levels)
//  2. Profile config file ({dir}/{profile}.yaml)
//  3. Base config file ({dir}/base.yaml)
//  4. Default values
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, filepath.Join(dir, "base.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		err := loadFileIfExists(k, filepath.Join(dir, profile+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_STORAGE__REDIS__ADDR to storage.redis.addr.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
