package llm

import (
	"fmt"

	"api-doc-parser/internal/diag"
)

// NewOracle creates an oracle client for the configured provider
func NewOracle(config *Config) (Oracle, error) {
	if config.APIKey == "" {
		return nil, &diag.Diagnostic{
			Code:       diag.CodeMissingAPIKey,
			Message:    "no API key is configured for the completion service",
			Suggestion: "set OPENAI_API_KEY or add api_key to the config file",
		}
	}

	switch config.Provider {
	case "", "openai":
		return NewOpenAIClient(config), nil
	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s", config.Provider)
	}
}
