package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate makes sure no ventureos.yaml in the working directory or home leaks into a test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.LLM().Enabled)
	assert.Equal(t, 0, cfg.LLM().MaxRetries)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, 400*time.Millisecond, cfg.Simulation.MinStep)
	assert.Equal(t, 1200*time.Millisecond, cfg.Simulation.MaxStep)
	assert.Equal(t, time.Second, cfg.Simulation.Tail)
	assert.Equal(t, time.Second, cfg.LoginDelay)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("VENTURE_OS_LLM_ENABLED", "true")
	t.Setenv("VENTURE_OS_LLM_MODEL", "qwen2.5")
	t.Setenv("VENTURE_OS_LLM_TIMEOUT_MS", "5000")
	t.Setenv("VENTURE_OS_SIMULATION_SEED", "42")
	t.Setenv("VENTURE_OS_SIMULATION_TAIL_MS", "0")
	t.Setenv("VENTURE_OS_LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.LLMEnabled)
	assert.Equal(t, "qwen2.5", cfg.LLM().Model)
	assert.Equal(t, 5000, cfg.LLM().TaskTimeout("venture"))
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, time.Duration(0), cfg.Simulation.Tail)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_VentureTimeoutOverridesGlobal(t *testing.T) {
	isolate(t)
	t.Setenv("VENTURE_OS_LLM_TIMEOUT_MS", "5000")
	t.Setenv("VENTURE_OS_LLM_VENTURE_TIMEOUT_MS", "1500")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1500, cfg.LLM().TaskTimeout("venture"))
	assert.Equal(t, 5000, cfg.LLM().TimeoutMs)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	isolate(t)
	t.Setenv("VENTURE_OS_LLM_TIMEOUT_MS", "soon")
	t.Setenv("VENTURE_OS_LLM_MAX_RETRIES", "-3")
	t.Setenv("VENTURE_OS_SIMULATION_MIN_STEP_MS", "x")
	t.Setenv("VENTURE_OS_LLM_ENABLED", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30000, cfg.LLMTimeoutMs)
	assert.Equal(t, 0, cfg.LLMMaxRetries)
	assert.Equal(t, 400*time.Millisecond, cfg.Simulation.MinStep)
	assert.False(t, cfg.LLMEnabled)
}

func TestLoad_YAMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
llm:
  enabled: true
  endpoint: http://ollama:11434
simulation:
  min_step_ms: 10
  max_step_ms: 20
db:
  path: /tmp/ventures.db
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.True(t, cfg.LLMEnabled)
	assert.Equal(t, "http://ollama:11434", cfg.LLMEndpoint)
	assert.Equal(t, 10*time.Millisecond, cfg.Simulation.MinStep)
	assert.Equal(t, 20*time.Millisecond, cfg.Simulation.MaxStep)
	assert.Equal(t, "/tmp/ventures.db", cfg.DBPath)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("ventureos.yaml", []byte("llm:\n  model: from-file\n"), 0o600))
	t.Setenv("VENTURE_OS_LLM_MODEL", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLMModel)
	assert.NotEmpty(t, cfg.Source)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestOpenLogWriter(t *testing.T) {
	var fallback bytes.Buffer
	w, closeFn, err := OpenLogWriter("", &fallback)
	require.NoError(t, err)
	assert.Same(t, &fallback, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "ventureos.log")
	w, closeFn, err = OpenLogWriter(path, nil)
	require.NoError(t, err)
	NewLogger("info", w).Info("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
