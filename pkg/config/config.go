package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/goliatone/go-config/cfgx"
)

// Config captures module-level configuration knobs. Feature packages
// (catalog services, storage, reconciler, rest) pull from these nested
// structs.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" json:"server"`
	Database   DatabaseConfig   `mapstructure:"database" json:"database"`
	Redis      RedisConfig      `mapstructure:"redis" json:"redis"`
	Cache      CacheConfig      `mapstructure:"cache" json:"cache"`
	Reconciler ReconcilerConfig `mapstructure:"reconciler" json:"reconciler"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `mapstructure:"addr" json:"addr"`
}

// DatabaseConfig selects the relational backend.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" json:"driver"`
	DSN    string `mapstructure:"dsn" json:"dsn"`
}

// RedisConfig points the cache layer at a Redis instance. When disabled the
// server falls back to the in-process cache.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled" json:"enabled"`
	Addr     string `mapstructure:"addr" json:"addr"`
	Password string `mapstructure:"password" json:"password"`
	DB       int    `mapstructure:"db" json:"db"`
}

// CacheConfig scopes entry lifetimes. TTL 0 keeps entries until invalidated.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl" json:"ttl"`
}

// ReconcilerConfig drives the spreadsheet synchronization loop.
type ReconcilerConfig struct {
	Enabled     bool          `mapstructure:"enabled" json:"enabled"`
	SourcePath  string        `mapstructure:"source_path" json:"source_path"`
	SheetName   string        `mapstructure:"sheet_name" json:"sheet_name"`
	Interval    time.Duration `mapstructure:"interval" json:"interval"`
	BackoffBase time.Duration `mapstructure:"backoff_base" json:"backoff_base"`
	BackoffMax  time.Duration `mapstructure:"backoff_max" json:"backoff_max"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{Addr: ":8000"},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "file::memory:?cache=shared",
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
		},
		Cache: CacheConfig{TTL: time.Minute},
		Reconciler: ReconcilerConfig{
			Enabled:     false,
			SheetName:   "Menu",
			Interval:    15 * time.Second,
			BackoffBase: 15 * time.Second,
			BackoffMax:  5 * time.Minute,
		},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must be >= 0")
	}
	if c.Reconciler.Enabled {
		if c.Reconciler.SourcePath == "" {
			return errors.New("reconciler.source_path is required when enabled")
		}
		if c.Reconciler.Interval <= 0 {
			return errors.New("reconciler.interval must be > 0")
		}
		if c.Reconciler.BackoffMax < c.Reconciler.BackoffBase {
			return errors.New("reconciler.backoff_max must be >= backoff_base")
		}
	}
	return nil
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// While cfgx.Build still returns zero values, we fallback to a lightweight
// decoder to keep smoke tests meaningful.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (duration hooks, preprocessors, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
	if c.Database.Driver == "" {
		c.Database.Driver = defaults.Database.Driver
	}
	if c.Database.DSN == "" {
		c.Database.DSN = defaults.Database.DSN
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = defaults.Redis.Addr
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = defaults.Cache.TTL
	}
	if c.Reconciler.SheetName == "" {
		c.Reconciler.SheetName = defaults.Reconciler.SheetName
	}
	if c.Reconciler.Interval == 0 {
		c.Reconciler.Interval = defaults.Reconciler.Interval
	}
	if c.Reconciler.BackoffBase == 0 {
		c.Reconciler.BackoffBase = defaults.Reconciler.BackoffBase
	}
	if c.Reconciler.BackoffMax == 0 {
		c.Reconciler.BackoffMax = defaults.Reconciler.BackoffMax
	}
	return c
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}
