package toolerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransport_RendersCausePlainly(t *testing.T) {
	err := Transport(errors.New("connection refused"))
	assert.Equal(t, CategoryTransport, err.Category)
	assert.Equal(t, "request failed: connection refused", err.Render())
}

func TestAuth_RendersWithPrefix(t *testing.T) {
	err := Auth(errors.New("token expired"))
	assert.Equal(t, "authentication failed: could not load credentials: token expired", err.Render())
}

func TestCache_RendersWithPrefix(t *testing.T) {
	err := Cache(errors.New("disk full"))
	assert.Equal(t, "cache unavailable: catalog cache error: disk full", err.Render())
}

func TestToolReported_RendersMessageVerbatim(t *testing.T) {
	err := ToolReported("document not found")
	assert.Equal(t, CategoryToolReported, err.Category)
	assert.Equal(t, "document not found", err.Render())
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Transport(cause)
	assert.ErrorIs(t, err, cause)
}
