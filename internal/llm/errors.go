package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"api-doc-parser/internal/diag"

	openai "github.com/sashabaranov/go-openai"
)

// classifyTransportError maps a go-openai client error onto the closed
// diagnostic taxonomy: timeouts and network failures are temporary,
// 401/403 are configuration failures, 429 and 5xx are temporary service
// conditions.
func classifyTransportError(ctx context.Context, err error) *diag.Diagnostic {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &diag.Diagnostic{
			Code:       diag.CodeRequestTimeout,
			Message:    "the completion request did not finish within the deadline",
			Suggestion: "retry; the service may be slow right now",
		}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}

	return &diag.Diagnostic{
		Code:       diag.CodeNetworkUnreachable,
		Message:    fmt.Sprintf("could not reach the completion service: %v", err),
		Suggestion: "check network connectivity and retry",
	}
}

func classifyStatus(status int, err error) *diag.Diagnostic {
	switch {
	case status == http.StatusUnauthorized:
		return &diag.Diagnostic{
			Code:       diag.CodeAuthenticationFailed,
			Message:    "the completion service rejected the API key",
			Suggestion: "check that the API key is valid and not expired",
			Metadata:   diag.Metadata{StatusCode: status},
		}
	case status == http.StatusForbidden:
		return &diag.Diagnostic{
			Code:       diag.CodePermissionForbidden,
			Message:    "the API key is not permitted to use this model",
			Suggestion: "use a key with access to the configured model, or change the model",
			Metadata:   diag.Metadata{StatusCode: status},
		}
	case status == http.StatusTooManyRequests:
		return &diag.Diagnostic{
			Code:       diag.CodeRateLimited,
			Message:    "the completion service is rate limiting requests",
			Suggestion: "wait a moment and retry",
			Metadata:   diag.Metadata{StatusCode: status},
		}
	case status >= 500:
		return &diag.Diagnostic{
			Code:       diag.CodeServiceUnavailable,
			Message:    fmt.Sprintf("the completion service failed with status %d", status),
			Suggestion: "retry; the service is having trouble",
			Metadata:   diag.Metadata{StatusCode: status},
		}
	default:
		return &diag.Diagnostic{
			Code:     diag.CodeServiceUnavailable,
			Message:  fmt.Sprintf("completion request failed: %v", err),
			Metadata: diag.Metadata{StatusCode: status},
		}
	}
}
