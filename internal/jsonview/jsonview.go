// Package jsonview implements the §4.4 JSON pretty-printer used to
// render tool results: aligned, styled text rather than a generic
// encoder dump.
package jsonview

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Render turns any decoded JSON value into a line sequence (§4.4).
func Render(v interface{}) []string {
	switch val := v.(type) {
	case map[string]interface{}:
		return renderObject(val, sortedKeys(val))
	case []interface{}:
		return renderArray(val)
	default:
		return []string{scalarString(val)}
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return false
	default:
		return true
	}
}

func scalarString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return dimStyle.Render("null")
	case bool:
		return yellowStyle.Render(fmt.Sprintf("%v", val))
	case float64:
		return cyanStyle.Render(formatNumber(val))
	case string:
		if val == "" {
			return dimStyle.Render("–")
		}
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// renderObject: "key<pad>  value" for scalar children; "key:" followed
// by the child indented two columns for complex children (§4.4). Empty
// objects print nothing.
func renderObject(obj map[string]interface{}, keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	maxLen := 0
	for _, k := range keys {
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}

	var lines []string
	for _, k := range keys {
		v := obj[k]
		if isScalar(v) {
			lines = append(lines, fmt.Sprintf("%-*s  %s", maxLen, k, scalarString(v)))
			continue
		}
		childLines := Render(v)
		if len(childLines) == 0 {
			continue
		}
		lines = append(lines, k+":")
		for _, cl := range childLines {
			lines = append(lines, "  "+cl)
		}
	}
	return lines
}

// renderArray: scalars get one "─ "-prefixed line each; objects render
// as blocks whose first key carries the marker and whose later keys
// align under it, blank-line separated (§4.4). Empty arrays print
// nothing.
func renderArray(arr []interface{}) []string {
	if len(arr) == 0 {
		return nil
	}

	allScalar := true
	for _, v := range arr {
		if !isScalar(v) {
			allScalar = false
			break
		}
	}

	var lines []string
	if allScalar {
		for _, v := range arr {
			lines = append(lines, dimStyle.Render("─ ")+scalarString(v))
		}
		return lines
	}

	for i, v := range arr {
		obj, ok := v.(map[string]interface{})
		if !ok {
			lines = append(lines, dimStyle.Render("─ ")+scalarString(v))
			continue
		}
		if i > 0 {
			lines = append(lines, "")
		}
		objLines := renderObject(obj, sortedKeys(obj))
		if len(objLines) == 0 {
			continue
		}
		lines = append(lines, dimStyle.Render("─ ")+objLines[0])
		for _, l := range objLines[1:] {
			lines = append(lines, "  "+l)
		}
	}
	return lines
}

// IsEmptyListResult reports whether v should trigger the dedicated
// "No results found" screen (§4.4): an empty array, or an object whose
// values are all empty arrays/zero/null/empty-strings with at least one
// array among them.
func IsEmptyListResult(v interface{}) bool {
	switch val := v.(type) {
	case []interface{}:
		return len(val) == 0
	case map[string]interface{}:
		sawArray := false
		for _, fv := range val {
			switch fvv := fv.(type) {
			case []interface{}:
				sawArray = true
				if len(fvv) != 0 {
					return false
				}
			case float64:
				if fvv != 0 {
					return false
				}
			case string:
				if fvv != "" {
					return false
				}
			case nil:
				// fine
			default:
				return false
			}
		}
		return sawArray
	default:
		return false
	}
}
