// Package config loads calcpath CLI settings from a YAML file, CALCPATH_*
// environment variables and built-in defaults, in that order of
// precedence (flags are applied on top by the commands).
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/calcpath/internal/logger"
)

const (
	configName = ".calcpath"
	configType = "yaml"
	envPrefix  = "CALCPATH"
)

// Defaults.
var (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultWorkers           = runtime.NumCPU()
	DefaultStoreConsumesMove = false
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Search  SearchConfig  `mapstructure:"search"`
	Levels  LevelsConfig  `mapstructure:"levels"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig selects the log level and format ("text" or "json").
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SearchConfig holds tree build defaults.
type SearchConfig struct {
	Workers           int  `mapstructure:"workers"`
	StoreConsumesMove bool `mapstructure:"store_consumes_move"`
}

// LevelsConfig points at a directory of extra level files.
type LevelsConfig struct {
	Dir string `mapstructure:"dir"`
}

// MetricsConfig names a Prometheus textfile to write after each run.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// Load reads configuration. If path is empty, .calcpath.yaml is looked up
// in the working directory and then in $HOME; a missing file is not an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("search.workers", DefaultWorkers)
	v.SetDefault("search.store_consumes_move", DefaultStoreConsumesMove)
	v.SetDefault("levels.dir", "")
	v.SetDefault("metrics.textfile", "")
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers must be at least 1, got %d", ErrInvalidConfig, c.Search.Workers)
	}

	return nil
}
