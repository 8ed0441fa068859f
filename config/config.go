// Package config loads application settings.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults
//  2. a YAML file (CONFIG_PATH, or config.yaml / config.yml in the working directory)
//  3. YELPCAMP_* environment variables
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"yelpcamp/app/validation"
)

// ConfigPathEnvVar names the variable holding an explicit config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// EnvPrefix is stripped from environment variable names before mapping.
const EnvPrefix = "YELPCAMP_"

// DefaultConfigPaths are tried in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// Store drivers.
const (
	DriverBadger = "badger"
	DriverMongo  = "mongo"
)

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Store   StoreConfig   `koanf:"store"`
	Logging LoggingConfig `koanf:"logging"`
	Seed    SeedConfig    `koanf:"seed"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	// ViewsDir overrides the embedded templates when set.
	ViewsDir string `koanf:"views_dir"`
}

type StoreConfig struct {
	Driver            string        `koanf:"driver" validate:"oneof=badger mongo"`
	BadgerPath        string        `koanf:"badger_path"`
	MongoURI          string        `koanf:"mongo_uri"`
	MongoDatabase     string        `koanf:"mongo_database"`
	MongoTransactions bool          `koanf:"mongo_transactions"`
	ConnectTimeout    time.Duration `koanf:"connect_timeout" validate:"gt=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type SeedConfig struct {
	Count int `koanf:"count" validate:"gte=1"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":3000",
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver:         DriverBadger,
			BadgerPath:     "data/badger",
			MongoURI:       "mongodb://localhost:27017",
			MongoDatabase:  "yelp-camp",
			ConnectTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Seed: SeedConfig{
			Count: 50,
		},
	}
}

// envKeys maps environment variable names (without EnvPrefix) to koanf paths.
var envKeys = map[string]string{
	"SERVER_ADDR":              "server.addr",
	"SERVER_SHUTDOWN_TIMEOUT":  "server.shutdown_timeout",
	"SERVER_VIEWS_DIR":         "server.views_dir",
	"STORE_DRIVER":             "store.driver",
	"STORE_BADGER_PATH":        "store.badger_path",
	"STORE_MONGO_URI":          "store.mongo_uri",
	"STORE_MONGO_DATABASE":     "store.mongo_database",
	"STORE_MONGO_TRANSACTIONS": "store.mongo_transactions",
	"STORE_CONNECT_TIMEOUT":    "store.connect_timeout",
	"LOG_LEVEL":                "logging.level",
	"LOG_FORMAT":               "logging.format",
	"SEED_COUNT":               "seed.count",
}

// envTransformFunc returns "" for variables that are not ours so koanf skips them.
func envTransformFunc(key string) string {
	return envKeys[strings.TrimPrefix(key, EnvPrefix)]
}

// Load reads configuration from defaults, the optional file and the environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks field constraints and driver-specific requirements.
func (c *Config) Validate() error {
	if verr := validation.Combine(
		validation.ValidateStruct(c),
		c.Store.validateDriver(),
	); verr != nil {
		return verr
	}
	return nil
}

func (s *StoreConfig) validateDriver() *validation.RequestValidationError {
	verr := &validation.RequestValidationError{}
	switch s.Driver {
	case DriverBadger:
		if s.BadgerPath == "" {
			verr.Add("badger_path", "required", `"badger_path" is required for the badger driver`)
		}
	case DriverMongo:
		if s.MongoURI == "" {
			verr.Add("mongo_uri", "required", `"mongo_uri" is required for the mongo driver`)
		}
		if s.MongoDatabase == "" {
			verr.Add("mongo_database", "required", `"mongo_database" is required for the mongo driver`)
		}
	}
	return verr
}
