// Package argsconv implements the §4.9 schema-to-args serializer: the
// single choke point where string drafts are parsed into the typed
// JSON payload a tool call actually sends.
package argsconv

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/readwiseio/readwise-cli/internal/schema"
)

// Build serializes values into a tool-call argument map, skipping
// unset drafts and invalid numbers per §4.9.
func Build(fields []schema.Field, values map[string]string) map[string]interface{} {
	args := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		draft, ok := values[f.Name]
		if !ok || strings.TrimSpace(draft) == "" {
			continue
		}
		v, ok := convert(f.Prop, draft)
		if !ok {
			continue
		}
		args[f.Name] = v
	}
	return args
}

func convert(prop schema.Property, draft string) (interface{}, bool) {
	switch prop.Kind {
	case schema.KindNumber:
		n, err := strconv.ParseFloat(draft, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case schema.KindBool:
		return draft == "true", true
	case schema.KindArrayText, schema.KindArrayEnum:
		return splitList(draft), true
	case schema.KindArrayObj:
		var arr []map[string]interface{}
		if err := json.Unmarshal([]byte(draft), &arr); err != nil {
			return nil, false
		}
		return arr, true
	case schema.KindDate:
		return draft, true
	default:
		return draft, true
	}
}

// splitList implements §4.9's arrayText/arrayEnum rule: try JSON-decode
// first, and only fall back to comma-splitting when the draft isn't a
// JSON array.
func splitList(draft string) []string {
	var arr []string
	if err := json.Unmarshal([]byte(draft), &arr); err == nil {
		return arr
	}

	parts := strings.Split(draft, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
