package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-doc-parser/internal/diag"
)

func TestBuild(t *testing.T) {
	doc := "GET /users returns all users."
	rendered, err := Build(doc)
	require.NoError(t, err)

	assert.Contains(t, rendered, doc, "document must be embedded verbatim")
	assert.Contains(t, rendered, `"endpoints"`)
	assert.Contains(t, rendered, "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS")
	assert.Contains(t, rendered, "JSON only")
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build("some documentation")
	require.NoError(t, err)
	b, err := Build("some documentation")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildTooLarge(t *testing.T) {
	_, err := Build(strings.Repeat("x", MaxPromptSize))
	require.Error(t, err)
	d := diag.As(err)
	require.NotNil(t, d)
	assert.Equal(t, diag.CodePromptTooLarge, d.Code)
	assert.Equal(t, int64(MaxPromptSize), d.Metadata.LimitBytes)
}

func TestBuildUnderLimit(t *testing.T) {
	_, err := Build(strings.Repeat("x", 50*1024))
	assert.NoError(t, err)
}
