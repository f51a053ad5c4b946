// Package config loads chainorder.yaml and applies defaults and
// CHAINORDER_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/chainorder/chain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "chainorder.yaml"

const (
	defaultMethod       = "tabulation"
	defaultLogLevel     = "info"
	defaultWarnMatrices = 20
)

var (
	// ErrInvalidLogLevel indicates log.level is not debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)

// LogConfig selects the slog level and whether tint may colorize output.
type LogConfig struct {
	Level   string `yaml:"level"`
	NoColor bool   `yaml:"no_color"`
}

// BacktrackingConfig tunes the slowness warning for the naive strategy.
type BacktrackingConfig struct {
	// WarnMatrices logs a warning when Backtracking is asked to solve more
	// matrices than this. 0 means the default, negative disables the warning.
	WarnMatrices int `yaml:"warn_matrices"`
}

// Config is the decoded chainorder.yaml after defaults and overrides.
type Config struct {
	Method       string             `yaml:"method"`
	ShowOrder    bool               `yaml:"show_order"`
	Log          LogConfig          `yaml:"log"`
	Backtracking BacktrackingConfig `yaml:"backtracking"`

	method chain.Method
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	cfg.method = chain.MethodTabulation
	return &cfg
}

// Load reads path, applies defaults and environment overrides, then validates.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is provided by trusted config/flag.
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(b)
}

// LoadIfExists behaves like Load but falls back to Default (with environment
// overrides) when path does not exist.
func LoadIfExists(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return parse(nil)
}

func parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SolveMethod returns the validated default method.
func (c *Config) SolveMethod() chain.Method {
	return c.method
}

// WarnBacktracking reports whether solving n matrices with Backtracking
// deserves a warning.
func (c *Config) WarnBacktracking(n int) bool {
	limit := c.Backtracking.WarnMatrices
	return limit > 0 && n > limit
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Method) == "" {
		cfg.Method = defaultMethod
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Backtracking.WarnMatrices == 0 {
		cfg.Backtracking.WarnMatrices = defaultWarnMatrices
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("CHAINORDER_METHOD")); v != "" {
		cfg.Method = v
	}
	if v := strings.TrimSpace(os.Getenv("CHAINORDER_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	cfg.ShowOrder = envBool("CHAINORDER_SHOW_ORDER", cfg.ShowOrder)
	if os.Getenv("NO_COLOR") != "" {
		cfg.Log.NoColor = true
	}
	if n, ok := envInt("CHAINORDER_BACKTRACKING_WARN_MATRICES"); ok {
		cfg.Backtracking.WarnMatrices = n
	}
	if cfg.Backtracking.WarnMatrices == 0 {
		cfg.Backtracking.WarnMatrices = defaultWarnMatrices
	}
}

func validate(cfg *Config) error {
	m, err := chain.ParseMethod(cfg.Method)
	if err != nil {
		return fmt.Errorf("config method %q: %w", cfg.Method, err)
	}
	cfg.method = m

	switch strings.ToLower(strings.TrimSpace(cfg.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}
	return nil
}

func envInt(name string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(name string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
