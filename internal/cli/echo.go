package cli

import (
	"fmt"
	"strings"

	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/schema"
)

// EchoInvocation builds the non-interactive command line equivalent to
// the form just submitted (§4.9 supplemented feature): "binary tool call
// <name> --flag=value ...", skipping unset drafts. Shown on the Results
// view footer after a successful Execute so a session can be promoted
// to a reusable script line.
func EchoInvocation(binary, toolName string, fields []schema.Field, values formcore.FormValues) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s tool call %s", binary, toolName)
	for _, f := range fields {
		draft := values[f.Name]
		if formcore.IsUnset(f, draft) {
			continue
		}
		fmt.Fprintf(&b, " --%s=%s", f.Name, quoteIfNeeded(draft))
	}
	return b.String()
}

func quoteIfNeeded(v string) string {
	if strings.ContainsAny(v, " \t\"'") {
		return "\"" + strings.ReplaceAll(v, "\"", "\\\"") + "\""
	}
	return v
}
