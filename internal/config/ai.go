package config

import "time"

// GeminiModels defines which Gemini model serves each interview task
type GeminiModels struct {
	// Questions generates the six-question interview set
	Questions string `json:"questions"`

	// Evaluate scores a single answer (runs once per question, keep it fast)
	Evaluate string `json:"evaluate"`

	// Summary writes the final narrative summary
	Summary string `json:"summary"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey      string       `json:"-"` // Never serialize
	Models      GeminiModels `json:"models"`
	TimeoutMS   int          `json:"timeoutMs"`
	Temperature float32      `json:"temperature"`
}

// DefaultAIConfig returns the AI configuration from the environment
func DefaultAIConfig() *AIConfig {
	v := env()
	return &AIConfig{
		APIKey: v.GetString("GEMINI_API_KEY"),
		Models: GeminiModels{
			Questions: v.GetString("GEMINI_MODEL_QUESTIONS"),
			Evaluate:  v.GetString("GEMINI_MODEL_EVAL"),
			Summary:   v.GetString("GEMINI_MODEL_SUMMARY"),
		},
		TimeoutMS:   v.GetInt("AI_TIMEOUT_MS"),
		Temperature: float32(v.GetFloat64("AI_TEMPERATURE")),
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Timeout bounds a single model call. The model API itself has no deadline.
func (c *AIConfig) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
