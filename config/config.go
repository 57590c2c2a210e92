// Package config loads the setcover CLI configuration.
//
// Priority: environment (SETCOVER_*) > YAML file > Default(). The merged
// result is validated with go-playground/validator struct tags plus a few
// cross-field checks.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/setcover/bnb"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SETCOVER_"

// structValidate is safe for concurrent use and caches struct metadata.
var structValidate = validator.New(validator.WithRequiredStructEnabled())

// Config is the top-level configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Solver contains branch-and-bound budgets and switches.
	Solver SolverConfig `yaml:"solver"`

	// Logging contains slog handler settings.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus textfile export settings.
	Metrics MetricsConfig `yaml:"metrics"`

	// Batch contains multi-file solving settings.
	Batch BatchConfig `yaml:"batch"`
}

// SolverConfig maps onto bnb.Options.
type SolverConfig struct {
	TimeLimit      time.Duration `yaml:"time_limit" validate:"gte=0"`
	NodeLimit      int64         `yaml:"node_limit" validate:"gte=0"`
	SeedWithGreedy bool          `yaml:"seed_with_greedy"`
	RootLPBound    bool          `yaml:"root_lp_bound"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig controls the Prometheus textfile written after a batch.
type MetricsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	TextfilePath string `yaml:"textfile_path"`
}

// BatchConfig bounds the number of instances solved concurrently.
type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			TimeLimit: 10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:      false,
			TextfilePath: "setcover.prom",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

// Load returns Default() overlaid with the YAML file at path (skipped when
// path is empty or the file does not exist) and then with SETCOVER_* variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvPrefix + "TIME_LIMIT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIME_LIMIT: %w", EnvPrefix, err)
		}
		cfg.Solver.TimeLimit = d
	}
	if v := os.Getenv(EnvPrefix + "NODE_LIMIT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sNODE_LIMIT: %w", EnvPrefix, err)
		}
		cfg.Solver.NodeLimit = n
	}
	if v := os.Getenv(EnvPrefix + "SEED_WITH_GREEDY"); v != "" {
		cfg.Solver.SeedWithGreedy = v == "true" || v == "1"
	}
	if v := os.Getenv(EnvPrefix + "ROOT_LP_BOUND"); v != "" {
		cfg.Solver.RootLPBound = v == "true" || v == "1"
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPrefix + "METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv(EnvPrefix + "METRICS_FILE"); v != "" {
		cfg.Metrics.TextfilePath = v
	}
	if v := os.Getenv(EnvPrefix + "WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWORKERS: %w", EnvPrefix, err)
		}
		cfg.Batch.Workers = n
	}

	return nil
}

// Validate checks struct tags and cross-field rules.
func (c Config) Validate() error {
	if err := structValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q (value %v): %w", fe.Namespace(), fe.Tag(), fe.Value(), ErrInvalidConfig)
		}
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.TextfilePath == "" {
		return fmt.Errorf("metrics.textfile_path is required when metrics are enabled: %w", ErrInvalidConfig)
	}
	if c.Solver.RootLPBound && !c.Solver.SeedWithGreedy {
		return fmt.Errorf("solver.root_lp_bound needs solver.seed_with_greedy: %w", ErrInvalidConfig)
	}

	return nil
}

// SolverOptions converts the solver section into search options.
func (c Config) SolverOptions() bnb.Options {
	opts := bnb.DefaultOptions()
	opts.TimeLimit = c.Solver.TimeLimit
	opts.NodeLimit = c.Solver.NodeLimit
	opts.SeedWithGreedy = c.Solver.SeedWithGreedy
	opts.RootLPBound = c.Solver.RootLPBound

	return opts
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
