// Package config loads Venture-OS settings from an optional YAML file and
// VENTURE_OS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ventureos/internal/llm"
	"github.com/alexanderramin/ventureos/internal/session"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. VENTURE_OS_LLM_ENABLED.
const EnvPrefix = "VENTURE_OS"

// Config is the resolved application configuration.
type Config struct {
	LLMEnabled    bool
	LLMEndpoint   string
	LLMModel      string
	LLMTimeoutMs  int
	LLMMaxRetries int
	LLMLogCalls   bool

	// LLMVentureTimeoutMs overrides LLMTimeoutMs for venture generation when positive.
	LLMVentureTimeoutMs int

	Simulation session.Timing
	Seed       uint64
	LoginDelay time.Duration

	DBPath   string
	LogLevel string
	LogFile  string

	// Source is the config file that was read, empty when none was found.
	Source string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	l := llm.DefaultConfig()
	return Config{
		LLMEnabled:    l.Enabled,
		LLMEndpoint:   l.Endpoint,
		LLMModel:      l.Model,
		LLMTimeoutMs:  l.TimeoutMs,
		LLMMaxRetries: l.MaxRetries,
		LLMLogCalls:   l.LogCalls,
		Simulation:    session.DefaultTiming,
		LoginDelay:    session.DefaultLoginDelay,
		DBPath:        ":memory:",
		LogLevel:      "info",
	}
}

// LLM converts the flat settings into an llm.LLMConfig.
func (c Config) LLM() llm.LLMConfig {
	cfg := llm.DefaultConfig()
	cfg.Enabled = c.LLMEnabled
	cfg.Endpoint = c.LLMEndpoint
	cfg.Model = c.LLMModel
	cfg.TimeoutMs = c.LLMTimeoutMs
	cfg.MaxRetries = c.LLMMaxRetries
	cfg.LogCalls = c.LLMLogCalls
	return cfg.WithTaskTimeout(llm.TaskVenture, c.LLMVentureTimeoutMs)
}

// NewViper builds a viper instance with defaults, env binding and the config
// search path. An explicit configFile must exist; otherwise ventureos.yaml is
// looked up in the working directory and ~/.config/ventureos.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ventureos")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ventureos"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load reads configuration from configFile (optional) and the environment.
func Load(configFile string) (Config, error) {
	v, err := NewViper(configFile)
	if err != nil {
		return Config{}, err
	}
	return FromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("llm.enabled", d.LLMEnabled)
	v.SetDefault("llm.endpoint", d.LLMEndpoint)
	v.SetDefault("llm.model", d.LLMModel)
	v.SetDefault("llm.timeout_ms", d.LLMTimeoutMs)
	v.SetDefault("llm.max_retries", d.LLMMaxRetries)
	v.SetDefault("llm.venture_timeout_ms", 0)
	v.SetDefault("llm.log_calls", d.LLMLogCalls)
	v.SetDefault("simulation.min_step_ms", d.Simulation.MinStep.Milliseconds())
	v.SetDefault("simulation.max_step_ms", d.Simulation.MaxStep.Milliseconds())
	v.SetDefault("simulation.tail_ms", d.Simulation.Tail.Milliseconds())
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("login.delay_ms", d.LoginDelay.Milliseconds())
	v.SetDefault("db.path", d.DBPath)
	v.SetDefault("log.level", d.LogLevel)
	v.SetDefault("log.file", "")
}

// FromViper resolves a Config. Unparseable numbers fall back to their defaults.
func FromViper(v *viper.Viper) Config {
	d := Default()
	cfg := Config{
		LLMEnabled:    boolValue(v, "llm.enabled", d.LLMEnabled),
		LLMEndpoint:   stringValue(v, "llm.endpoint", d.LLMEndpoint),
		LLMModel:      stringValue(v, "llm.model", d.LLMModel),
		LLMTimeoutMs:  intValue(v, "llm.timeout_ms", d.LLMTimeoutMs, 1),
		LLMMaxRetries: intValue(v, "llm.max_retries", d.LLMMaxRetries, 0),
		LLMLogCalls:   boolValue(v, "llm.log_calls", d.LLMLogCalls),

		LLMVentureTimeoutMs: intValue(v, "llm.venture_timeout_ms", 0, 0),

		Simulation: session.Timing{
			MinStep: msValue(v, "simulation.min_step_ms", d.Simulation.MinStep),
			MaxStep: msValue(v, "simulation.max_step_ms", d.Simulation.MaxStep),
			Tail:    msValue(v, "simulation.tail_ms", d.Simulation.Tail),
		}.Normalized(),
		LoginDelay: msValue(v, "login.delay_ms", d.LoginDelay),
		DBPath:     stringValue(v, "db.path", d.DBPath),
		LogLevel:   strings.ToLower(stringValue(v, "log.level", d.LogLevel)),
		LogFile:    strings.TrimSpace(v.GetString("log.file")),
		Source:     v.ConfigFileUsed(),
	}
	if seed, err := strconv.ParseUint(strings.TrimSpace(v.GetString("simulation.seed")), 10, 64); err == nil {
		cfg.Seed = seed
	}
	return cfg
}

func stringValue(v *viper.Viper, key, def string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return def
}

func boolValue(v *viper.Viper, key string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

func intValue(v *viper.Viper, key string, def, min int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil || n < min {
		return def
	}
	return n
}

func msValue(v *viper.Viper, key string, def time.Duration) time.Duration {
	n := intValue(v, key, -1, 0)
	if n < 0 {
		return def
	}
	return time.Duration(n) * time.Millisecond
}
