package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readwiseio/readwise-cli/internal/mcp"
)

func TestStaticTokenSource_ReturnsConfiguredToken(t *testing.T) {
	src := StaticTokenSource{Token: "abc123"}
	token, authType, err := src.LoadToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, mcp.AuthToken, authType)
}

func TestStaticTokenSource_EmptyTokenErrors(t *testing.T) {
	src := StaticTokenSource{}
	_, _, err := src.LoadToken(context.Background())
	assert.Error(t, err)
}
