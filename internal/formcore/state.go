// Package formcore holds the §3 data model — AppState and its nested
// substates — shared by the view renderers (C6) and input handlers
// (C7). AppState is a single immutable record replaced wholesale on
// every transition (§3, §9): handlers receive a value, clone the parts
// they intend to change via Clone, and return a new value. A rejected
// event must leave the returned state equal by value to the input.
package formcore

import (
	"strconv"

	"github.com/readwiseio/readwise-cli/internal/dateparts"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/schema"
	"github.com/readwiseio/readwise-cli/internal/toolerr"
)

// View names the four top-level screens (§3).
type View int

const (
	ViewCommands View = iota
	ViewForm
	ViewLoading
	ViewResults
)

// FormValues maps property name to its string draft (§3).
type FormValues map[string]string

// Clone returns a deep copy so callers can mutate it without aliasing
// the original.
func (v FormValues) Clone() FormValues {
	out := make(FormValues, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Defaults seeds a FormValues map with one entry per field (§3
// invariant: "FormValues never contains a key absent from its FormField
// list; adding a new field initializes its draft to the schema default
// or \"\""). String, boolean and numeric defaults are used; a default of
// any other JSON type seeds "".
func Defaults(fields []schema.Field) FormValues {
	values := make(FormValues, len(fields))
	for _, f := range fields {
		if f.Prop.Default != nil {
			values[f.Name] = defaultString(f.Prop)
		} else {
			values[f.Name] = ""
		}
	}
	return values
}

func defaultString(prop schema.Property) string {
	switch d := prop.Default.(type) {
	case string:
		return d
	case bool:
		if d {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64)
	default:
		return ""
	}
}

// FormStackEntry freezes a parent form while the user descends into an
// arrayObj sub-form (§3). EditIndex is -1 when appending, else the
// index of the item being replaced.
type FormStackEntry struct {
	ParentFields []schema.Field
	ParentValues FormValues
	FieldName    string
	EditIndex    int
}

// emptyListSentinel distinguishes "the tool returned an empty
// collection" from "the tool returned nothing at all" (§3, §4.6).
type emptyListSentinel struct{}

// EmptyListSentinel is the Results.Result value meaning "no results".
var EmptyListSentinel = emptyListSentinel{}

// successSentinel marks a call that returned neither content nor
// structured content: the §4.6 "Success" screen.
type successSentinel struct{}

// SuccessSentinel is the Results.Result value meaning "done, nothing to show".
var SuccessSentinel = successSentinel{}

// AppState is the single record the core loop replaces each iteration
// (§2, §3).
type AppState struct {
	View  View
	Tools []mcp.ToolDef

	// ConnectionInfo is a dim diagnostics line shown on the Commands view
	// footer area (§4.6 supplemented feature, adapted from the teacher's
	// GetConnectionDisplayMessage), e.g. the catalog endpoint in use.
	ConnectionInfo string

	// Command palette.
	CmdFiltered    []int
	CmdCursor      int
	CmdScrollTop   int
	CmdQuery       string
	CmdQueryCursor int
	QuitConfirm    bool

	// Form.
	SelectedTool     *mcp.ToolDef
	Fields           []schema.Field
	Values           FormValues
	FormStack        []FormStackEntry
	FormQuery        string
	FormQueryCursor  int
	FormFiltered     []int // indices into Fields; -1 sentinel appended for Execute/Add/Save
	FormListCursor   int
	FormScrollTop    int
	FormShowRequired bool
	FormShowOptional bool

	// Field editor (meaningful only when Editing).
	Editing        bool
	EditFieldIdx   int
	InputBuf       string
	InputCursorPos int
	EnumCursor     int
	EnumSelected   map[int]bool
	DateParts      dateparts.Parts
	DatePartCursor int

	// Results.
	Result       interface{}
	ResultErr    *toolerr.Error
	ResultScroll int
	ResultScrollX int

	// StatusMessage is a transient one-line note shown under Results,
	// currently only used by the clipboard-copy supplemented feature
	// ("copied" / "copy failed: ..."). Cleared by the Results scroll and
	// back keys; q, Ctrl+C and unbound keys leave it in place.
	StatusMessage string

	// Loading.
	SpinnerFrame  int
	SpinnerMsgIdx int
}

// Clone deep-copies every field reachable through a map or slice that a
// handler might mutate, so returning a modified copy never aliases the
// state it was derived from.
func (s AppState) Clone() AppState {
	out := s
	out.CmdFiltered = append([]int(nil), s.CmdFiltered...)
	out.Fields = append([]schema.Field(nil), s.Fields...)
	out.Values = s.Values.Clone()
	out.FormStack = append([]FormStackEntry(nil), s.FormStack...)
	out.FormFiltered = append([]int(nil), s.FormFiltered...)
	if s.EnumSelected != nil {
		out.EnumSelected = make(map[int]bool, len(s.EnumSelected))
		for k, v := range s.EnumSelected {
			out.EnumSelected[k] = v
		}
	}
	out.DateParts = dateparts.Parts{Values: append([]int(nil), s.DateParts.Values...), Format: s.DateParts.Format}
	return out
}
