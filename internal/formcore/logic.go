package formcore

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/schema"
)

// IsUnset reports whether a field's draft counts as empty for the
// required-field invariant (§3): trims to empty, or — for arrayObj —
// parses to an empty JSON array.
func IsUnset(f schema.Field, draft string) bool {
	if strings.TrimSpace(draft) == "" {
		return true
	}
	if f.Prop.Kind == schema.KindArrayObj {
		var arr []interface{}
		if err := json.Unmarshal([]byte(draft), &arr); err == nil {
			return len(arr) == 0
		}
	}
	return false
}

// RequiredUnfilledIndices lists, in field order, the indices of
// required fields whose draft is unset.
func RequiredUnfilledIndices(fields []schema.Field, values FormValues) []int {
	var out []int
	for i, f := range fields {
		if f.Required && IsUnset(f, values[f.Name]) {
			out = append(out, i)
		}
	}
	return out
}

// RequiredProgress returns (filled, total) required-field counts for the
// "X of N required" header (§4.6).
func RequiredProgress(fields []schema.Field, values FormValues) (filled, total int) {
	for _, f := range fields {
		if !f.Required {
			continue
		}
		total++
		if !IsUnset(f, values[f.Name]) {
			filled++
		}
	}
	return filled, total
}

// toolGroup classifies a tool name into the §4.6 prefix groups.
func toolGroup(name string) string {
	switch {
	case strings.HasPrefix(name, "reader_"):
		return "Reader"
	case strings.HasPrefix(name, "readwise_"):
		return "Readwise"
	default:
		return "Other"
	}
}

// FilterCommands returns the indices into tools that match query
// (substring, case-insensitive, against name or description), sorted by
// §4.6 group in GroupOrder so that within each group the original
// catalog order is preserved.
func FilterCommands(tools []mcp.ToolDef, query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []int
	for i, t := range tools {
		if q == "" || strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, i)
		}
	}
	rank := func(idx int) int {
		g := toolGroup(tools[idx].Name)
		for r, name := range GroupOrder {
			if name == g {
				return r
			}
		}
		return len(GroupOrder)
	}
	sort.SliceStable(out, func(a, b int) bool { return rank(out[a]) < rank(out[b]) })
	return out
}

// GroupOrder lists the §4.6 group names in display order.
var GroupOrder = []string{"Reader", "Readwise", "Other"}

// GroupTools buckets filtered tool indices by §4.6 prefix group,
// preserving catalog order within each bucket.
func GroupTools(tools []mcp.ToolDef, filtered []int) map[string][]int {
	groups := make(map[string][]int, 3)
	for _, idx := range filtered {
		g := toolGroup(tools[idx].Name)
		groups[g] = append(groups[g], idx)
	}
	return groups
}

// FilterFormFields returns indices into fields matching query, with a
// -1 sentinel appended for the Execute/Add/Save row (§3).
func FilterFormFields(fields []schema.Field, query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []int
	for i, f := range fields {
		if q == "" || strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, i)
		}
	}
	out = append(out, -1)
	return out
}

// SplitRequiredOptional partitions field indices (as they appear in
// filtered) into required-first and optional-second buckets, each
// preserving field order, matching §4.6's palette layout.
func SplitRequiredOptional(fields []schema.Field, filtered []int) (required, optional []int) {
	for _, idx := range filtered {
		if idx < 0 {
			continue
		}
		if fields[idx].Required {
			required = append(required, idx)
		} else {
			optional = append(optional, idx)
		}
	}
	return required, optional
}
