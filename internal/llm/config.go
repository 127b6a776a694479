package llm

// Config represents the configuration for the completion oracle
type Config struct {
	// Provider specifies which oracle provider to use (currently "openai",
	// which also covers any OpenAI-compatible endpoint via BaseURL)
	Provider string `json:"provider" yaml:"provider"`

	// APIKey is the API key for the provider
	APIKey string `json:"api_key" yaml:"api_key"`

	// BaseURL overrides the provider's default endpoint, for
	// OpenAI-compatible services
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model specifies which model to use (e.g., "gpt-4o")
	Model string `json:"model" yaml:"model"`

	// Temperature controls the randomness of the output (0.0 to 1.0).
	// Extraction wants determinism, so the default is low.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens limits the length of the generated response
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// NewDefaultConfig returns a default configuration
func NewDefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		Model:       "gpt-4o",
		Temperature: 0.2,
		MaxTokens:   4000,
	}
}
