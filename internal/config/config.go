// Package config handles loading and parsing application configuration.
//
// Both binaries (edulearn-api and edulearn-web) share this Config. Values
// come from, in increasing priority:
//  1. struct defaults (env-default:"...")
//  2. an optional YAML file: CONFIG_PATH=/path/to/config.yaml or
//     --config=/path/to/config.yaml
//  3. a .env file in the working directory, if present
//  4. the process environment
//
// No file is required: with nothing set, the API listens on :5000 and the
// static server on :3000.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage drivers accepted in storage.driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden by the
// corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Auth       Auth       `yaml:"auth"`
	Static     Static     `yaml:"static"`
}

// HTTPServer holds the catalog API listener settings.
type HTTPServer struct {
	// Addr, when set, wins over Port (e.g. "localhost:8082").
	Addr            string        `yaml:"address"          env:"HTTP_SERVER_ADDR"`
	Port            int           `yaml:"port"             env:"PORT"             env-default:"5000"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Storage selects the storage.Storage backend.
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	// Path is the SQLite DSN; ignored by the memory driver.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:":memory:"`
}

// Auth configures the demo token issuer. Tokens are never verified by the
// API itself.
type Auth struct {
	TokenSecret string        `yaml:"token_secret" env:"AUTH_TOKEN_SECRET" env-default:"edulearn-demo-secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"AUTH_TOKEN_TTL"    env-default:"24h"`
}

// Static configures the front-end file server.
type Static struct {
	Root  string `yaml:"root"  env:"STATIC_ROOT"  env-default:"./public"`
	Index string `yaml:"index" env:"STATIC_INDEX" env-default:"index.html"`
	Port  int    `yaml:"port"  env:"STATIC_PORT"  env-default:"3000"`
}

// Address returns the API listen address.
func (h HTTPServer) Address() string {
	if h.Addr != "" {
		return h.Addr
	}
	return ":" + strconv.Itoa(h.Port)
}

// Address returns the static server listen address.
func (s Static) Address() string {
	return ":" + strconv.Itoa(s.Port)
}

// MustLoad reads, validates, and returns the application config, exiting
// the process when it cannot.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("cannot read .env: %s", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load builds a Config from the YAML file at path (skipped when path is
// empty) and the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.HTTPServer.Port <= 0 && c.HTTPServer.Addr == "" {
		return fmt.Errorf("invalid port %d", c.HTTPServer.Port)
	}
	if c.Static.Port <= 0 {
		return fmt.Errorf("invalid static port %d", c.Static.Port)
	}
	if c.Auth.TokenSecret == "" {
		return errors.New("auth token secret must not be empty")
	}
	return nil
}
