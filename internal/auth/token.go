// Package auth provides the §6 LoadToken collaborator. The OAuth
// browser/PKCE flow and on-disk credential persistence are out of scope
// per §1 — this package only supplies the narrow interface the core's
// four-interface boundary requires, backed by a pre-issued token.
package auth

import (
	"context"
	"fmt"

	"github.com/readwiseio/readwise-cli/internal/mcp"
)

// StaticTokenSource satisfies mcp.TokenSource from a single pre-issued
// personal access token (the "token" branch of §6's AuthType union).
// A full OAuth/PKCE implementation would satisfy the same interface and
// slot in without the core noticing, per §1's collaborator boundary.
type StaticTokenSource struct {
	Token string
}

func (s StaticTokenSource) LoadToken(ctx context.Context) (string, mcp.AuthType, error) {
	if s.Token == "" {
		return "", "", fmt.Errorf("auth: no token configured; set READWISE_TOKEN or sign in")
	}
	return s.Token, mcp.AuthToken, nil
}
