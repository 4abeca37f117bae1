// Package schema implements the §4.3 resolver: collapsing nullable
// unions, inlining $ref via $defs, and classifying each property into
// one of the eight editor kinds (§9's suggested tagged FieldKind
// variant, used here in place of the source's string-typed dispatch).
package schema

import "github.com/readwiseio/readwise-cli/internal/mcp"

// Kind is the resolved editor kind for a field (§3, §9).
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindBool
	KindEnum
	KindDate
	KindArrayText
	KindArrayEnum
	KindArrayObj
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "yes/no"
	case KindEnum:
		return "select"
	case KindDate:
		return "date"
	case KindArrayText:
		return "list"
	case KindArrayEnum:
		return "multi"
	case KindArrayObj:
		return "form"
	default:
		return "text"
	}
}

// DateFormat values (§4.5).
const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
)

// Property is a fully resolved SchemaProperty (§3).
type Property struct {
	Kind        Kind
	Description string
	Examples    []interface{}
	Default     interface{}
	Choices     []string // Enum, ArrayEnum
	DateFormat  string   // Date: "date" or "date-time"
	Sub         []Field  // ArrayObj: the item schema's resolved fields
}

// Field is a (name, resolved property, required) triple (§3).
type Field struct {
	Name     string
	Required bool
	Prop     Property
}

// ResolveTool resolves every top-level property of a tool's input
// schema into an ordered field list, preserving catalog order (§3).
func ResolveTool(tool mcp.ToolDef) []Field {
	return resolveProperties(tool.InputSchema.Properties, tool.InputSchema.RequiredSet(), tool.InputSchema.Defs)
}

func resolveProperties(props mcp.OrderedProperties, required map[string]bool, defs map[string]*mcp.SchemaNode) []Field {
	fields := make([]Field, 0, len(props.Names))
	for _, name := range props.Names {
		node := props.Get(name)
		fields = append(fields, Field{
			Name:     name,
			Required: required[name],
			Prop:     resolveNode(node, defs),
		})
	}
	return fields
}

// dereference applies §4.3 steps 1-2: $ref lookup (preserving the outer
// description) and anyOf-of-nullable collapse. A $ref that can't be
// found is a schema-resolution ambiguity (§7) — it is not a hard
// failure; the node is treated as if the $ref were simply absent, which
// resolveNode then classifies from the node's remaining fields.
func dereference(node *mcp.SchemaNode, defs map[string]*mcp.SchemaNode) *mcp.SchemaNode {
	if node == nil {
		return &mcp.SchemaNode{}
	}

	resolved := node
	if node.Ref != "" {
		if target, ok := defs[refName(node.Ref)]; ok && target != nil {
			merged := *target
			if node.Description != "" {
				merged.Description = node.Description
			}
			resolved = &merged
		} else {
			// Ambiguous $ref (§7): fall through with everything except
			// the unresolved ref, which resolveNode simply never sees.
			cleared := *node
			cleared.Ref = ""
			resolved = &cleared
		}
	}

	if len(resolved.AnyOf) == 2 {
		var nonNull *mcp.SchemaNode
		sawNull := false
		for _, member := range resolved.AnyOf {
			if member.Type == "null" {
				sawNull = true
				continue
			}
			nonNull = member
		}
		if sawNull && nonNull != nil {
			merged := *nonNull
			if resolved.Description != "" {
				merged.Description = resolved.Description
			}
			resolved = &merged
		}
	}

	return resolved
}

// refName extracts the final path segment of a local $ref, e.g.
// "#/$defs/Highlight" -> "Highlight".
func refName(ref string) string {
	last := ref
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '/' {
			last = ref[i+1:]
			break
		}
	}
	return last
}

func resolveNode(raw *mcp.SchemaNode, defs map[string]*mcp.SchemaNode) Property {
	node := dereference(raw, defs)

	prop := Property{
		Description: node.Description,
		Examples:    node.Examples,
		Default:     node.Default,
	}

	var item *mcp.SchemaNode
	if node.Type == "array" && node.Items != nil {
		item = dereference(node.Items, defs)
	}

	switch {
	case node.Type == "array" && item != nil && len(item.Properties.Names) > 0:
		prop.Kind = KindArrayObj
		prop.Sub = resolveProperties(item.Properties, setOf(item.Required), defs)
	case node.Type == "string" && (node.Format == FormatDate || node.Format == FormatDateTime):
		prop.Kind = KindDate
		prop.DateFormat = node.Format
	case node.Type == "array" && item != nil && len(item.Enum) > 0:
		prop.Kind = KindArrayEnum
		prop.Choices = item.Enum
	case node.Type == "array":
		prop.Kind = KindArrayText
	case node.Type == "boolean":
		prop.Kind = KindBool
	case len(node.Enum) > 0:
		prop.Kind = KindEnum
		prop.Choices = node.Enum
	case node.Type == "integer" || node.Type == "number":
		prop.Kind = KindNumber
	default:
		prop.Kind = KindText
	}

	return prop
}

func setOf(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}
