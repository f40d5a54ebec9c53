// Package config loads the xf command configuration from a YAML file, an
// optional .env file and XF_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-transducers/internal/logging"
	"github.com/hasbyte1/go-transducers/internal/stages"
	"github.com/hasbyte1/go-transducers/transducers"
)

// EnvPrefix is prepended to every environment override, e.g.
// XF_CHUNK_SIZE or XF_LOGGING_LEVEL.
const EnvPrefix = "XF"

// DefaultEnvFile is loaded when present and no env file is given.
const DefaultEnvFile = ".env"

// ErrInvalid is returned when the loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Config is the configuration of the xf command.
type Config struct {
	Logging   logging.Config  `yaml:"logging" mapstructure:"logging"`
	ChunkSize int             `yaml:"chunk_size" mapstructure:"chunk_size" validate:"gte=1"`
	Output    string          `yaml:"output" mapstructure:"output" validate:"oneof=json yaml"`
	Pipeline  []stages.Config `yaml:"pipeline" mapstructure:"pipeline"`
}

// LoaderConfig holds optional file overrides.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path. The file must exist.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path. The file must exist.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads the configuration. Precedence, highest first: XF_ environment
// variables (including those set by the .env file), the config file, the
// defaults.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if err := loadEnv(lc.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", lc.ConfigFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the whole configuration, stages included.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for i, s := range c.Pipeline {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: pipeline[%d]: %w", ErrInvalid, i, err)
		}
	}
	return nil
}

// Options returns the engine options described by c.
func (c *Config) Options() transducers.Options {
	return transducers.Options{ChunkSize: c.ChunkSize}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("chunk_size", transducers.DefaultChunkSize)
	v.SetDefault("output", "json")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", logging.FormatConsole)
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.timestamp", false)
}

func loadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(DefaultEnvFile); err == nil {
		if err := godotenv.Load(DefaultEnvFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", DefaultEnvFile, err)
		}
	}
	return nil
}
