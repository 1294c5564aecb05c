package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound API calls.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "matheqs/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ExplainerConfig holds settings for the LLM explainer service.
type ExplainerConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the completion model identifier (e.g. "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Temperature is the sampling temperature for completions (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// OutputFormat selects the saved-document format.
type OutputFormat string

const (
	OutputMarkdown OutputFormat = "markdown"
	OutputYAML     OutputFormat = "yaml"
)
