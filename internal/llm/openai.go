package llm

import (
	"context"
	"strings"

	"api-doc-parser/internal/diag"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements the Oracle interface using OpenAI's chat
// completion API, or any OpenAI-compatible endpoint via Config.BaseURL
type OpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI-backed oracle client
func NewOpenAIClient(config *Config) *OpenAIClient {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// Complete sends the prompt as a single user message and returns the
// completion text. Transport failures and malformed envelopes are
// returned as classified diagnostics.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.config.Model,
			Temperature: float32(c.config.Temperature),
			MaxTokens:   c.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", classifyTransportError(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", &diag.Diagnostic{
			Code:       diag.CodeMissingChoices,
			Message:    "the completion service returned no choices",
			Suggestion: "retry the extraction",
		}
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &diag.Diagnostic{
			Code:       diag.CodeMissingContent,
			Message:    "the completion service returned a choice with no message content",
			Suggestion: "retry the extraction",
		}
	}
	if strings.TrimSpace(content) == "" {
		return "", &diag.Diagnostic{
			Code:       diag.CodeEmptyCompletion,
			Message:    "the completion service returned only whitespace",
			Suggestion: "retry the extraction",
		}
	}

	return content, nil
}
