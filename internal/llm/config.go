package llm

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	// TaskVenture turns a one-line idea into a full venture record.
	TaskVenture TaskType = "venture"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default and a generation is attempted exactly once.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  30000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskVenture: {Temperature: 0.7, MaxTokens: 4096},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// WithTaskTimeout returns a copy of c whose task timeout is set to ms.
// Non-positive values leave the config unchanged.
func (c LLMConfig) WithTaskTimeout(task TaskType, ms int) LLMConfig {
	if ms <= 0 {
		return c
	}
	tasks := make(map[TaskType]TaskConfig, len(c.Tasks))
	for k, v := range c.Tasks {
		tasks[k] = v
	}
	tc := tasks[task]
	tc.TimeoutMs = ms
	tasks[task] = tc
	c.Tasks = tasks
	return c
}
