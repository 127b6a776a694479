package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-doc-parser/internal/diag"
)

// newStubOracle points an OpenAIClient at a local server that always
// responds with the given completion body
func newStubOracle(t *testing.T, body string) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	config := NewDefaultConfig()
	config.APIKey = "test-key"
	config.BaseURL = server.URL + "/v1"
	return NewOpenAIClient(config)
}

func TestCompleteEnvelopeClassification(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode diag.Code
	}{
		{
			name:     "no choices",
			body:     `{"choices": []}`,
			wantCode: diag.CodeMissingChoices,
		},
		{
			name:     "choice without content",
			body:     `{"choices": [{"message": {"role": "assistant", "content": ""}}]}`,
			wantCode: diag.CodeMissingContent,
		},
		{
			name:     "whitespace-only content",
			body:     `{"choices": [{"message": {"role": "assistant", "content": "  \n\t  "}}]}`,
			wantCode: diag.CodeEmptyCompletion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := newStubOracle(t, tt.body)
			_, err := oracle.Complete(context.Background(), "describe the API")
			require.Error(t, err)
			d := diag.As(err)
			require.NotNil(t, d)
			assert.Equal(t, tt.wantCode, d.Code)
			assert.True(t, d.IsTemporary(), "a malformed envelope is worth retrying")
		})
	}
}

func TestCompleteReturnsContent(t *testing.T) {
	oracle := newStubOracle(t, `{"choices": [{"message": {"role": "assistant", "content": "{\"endpoints\": []}"}}]}`)
	content, err := oracle.Complete(context.Background(), "describe the API")
	require.NoError(t, err)
	assert.Equal(t, `{"endpoints": []}`, content)
}
