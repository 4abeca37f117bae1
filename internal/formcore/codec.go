package formcore

import (
	"encoding/json"
	"strings"
)

// DecodeTags recovers the tag list an arrayText/arrayEnum draft encodes
// (§3: "comma-separated items after trim, or empty").
func DecodeTags(draft string) []string {
	draft = strings.TrimSpace(draft)
	if draft == "" {
		return nil
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

// EncodeTags serializes a tag list back into its comma-separated draft
// form.
func EncodeTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// DecodeObjects recovers the item list an arrayObj draft encodes.
func DecodeObjects(draft string) []map[string]interface{} {
	if draft == "" {
		return nil
	}
	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(draft), &items); err != nil {
		return nil
	}
	return items
}

// EncodeObjects serializes an item list back into its draft form.
func EncodeObjects(items []map[string]interface{}) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}
