package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readwiseio/readwise-cli/internal/mcp"
)

func toolWithProps(props mcp.OrderedProperties, required []string, defs map[string]*mcp.SchemaNode) mcp.ToolDef {
	return mcp.ToolDef{
		InputSchema: mcp.SchemaObject{Properties: props, Required: required, Defs: defs},
	}
}

func TestResolveTool_PreservesDeclarationOrder(t *testing.T) {
	props := mcp.OrderedProperties{
		Names: []string{"url", "tags"},
		ByName: map[string]*mcp.SchemaNode{
			"url":  {Type: "string"},
			"tags": {Type: "array"},
		},
	}
	fields := ResolveTool(toolWithProps(props, []string{"url"}, nil))

	require.Len(t, fields, 2)
	assert.Equal(t, "url", fields[0].Name)
	assert.True(t, fields[0].Required)
	assert.Equal(t, KindText, fields[0].Prop.Kind)
	assert.Equal(t, "tags", fields[1].Name)
	assert.False(t, fields[1].Required)
	assert.Equal(t, KindArrayText, fields[1].Prop.Kind)
}

func TestResolveNode_AnyOfNullableCollapsesToInnerType(t *testing.T) {
	props := mcp.OrderedProperties{
		Names: []string{"limit"},
		ByName: map[string]*mcp.SchemaNode{
			"limit": {
				Description: "max results",
				AnyOf: []*mcp.SchemaNode{
					{Type: "integer"},
					{Type: "null"},
				},
			},
		},
	}
	fields := ResolveTool(toolWithProps(props, nil, nil))
	require.Len(t, fields, 1)
	assert.Equal(t, KindNumber, fields[0].Prop.Kind)
}

func TestResolveNode_RefIsInlinedFromDefs(t *testing.T) {
	defs := map[string]*mcp.SchemaNode{
		"Category": {Type: "string", Enum: []string{"article", "email"}},
	}
	props := mcp.OrderedProperties{
		Names:  []string{"category"},
		ByName: map[string]*mcp.SchemaNode{"category": {Ref: "#/$defs/Category"}},
	}
	fields := ResolveTool(toolWithProps(props, nil, defs))
	require.Len(t, fields, 1)
	assert.Equal(t, KindEnum, fields[0].Prop.Kind)
	assert.Equal(t, []string{"article", "email"}, fields[0].Prop.Choices)
}

func TestResolveNode_UnresolvableRefFallsThroughToText(t *testing.T) {
	props := mcp.OrderedProperties{
		Names:  []string{"mystery"},
		ByName: map[string]*mcp.SchemaNode{"mystery": {Ref: "#/$defs/Missing"}},
	}
	fields := ResolveTool(toolWithProps(props, nil, nil))
	require.Len(t, fields, 1)
	assert.Equal(t, KindText, fields[0].Prop.Kind)
}

func TestResolveNode_ArrayOfObjectsIsArrayObj(t *testing.T) {
	props := mcp.OrderedProperties{
		Names: []string{"highlights"},
		ByName: map[string]*mcp.SchemaNode{
			"highlights": {
				Type: "array",
				Items: &mcp.SchemaNode{
					Properties: mcp.OrderedProperties{
						Names:  []string{"text"},
						ByName: map[string]*mcp.SchemaNode{"text": {Type: "string"}},
					},
					Required: []string{"text"},
				},
			},
		},
	}
	fields := ResolveTool(toolWithProps(props, nil, nil))
	require.Len(t, fields, 1)

	want := Field{
		Name: "highlights",
		Prop: Property{
			Kind: KindArrayObj,
			Sub: []Field{
				{Name: "text", Required: true, Prop: Property{Kind: KindText}},
			},
		},
	}
	if diff := cmp.Diff(want, fields[0]); diff != "" {
		t.Errorf("resolved field mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNode_DateFormatBecomesKindDate(t *testing.T) {
	props := mcp.OrderedProperties{
		Names:  []string{"published"},
		ByName: map[string]*mcp.SchemaNode{"published": {Type: "string", Format: FormatDateTime}},
	}
	fields := ResolveTool(toolWithProps(props, nil, nil))
	require.Len(t, fields, 1)
	assert.Equal(t, KindDate, fields[0].Prop.Kind)
	assert.Equal(t, FormatDateTime, fields[0].Prop.DateFormat)
}
