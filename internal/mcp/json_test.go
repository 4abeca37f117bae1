package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedProperties_UnmarshalPreservesDeclarationOrder(t *testing.T) {
	raw := []byte(`{"zeta":{"type":"string"},"alpha":{"type":"number"},"mid":{"type":"boolean"}}`)
	var props OrderedProperties
	require.NoError(t, json.Unmarshal(raw, &props))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, props.Names)
	require.Contains(t, props.ByName, "alpha")
	assert.Equal(t, "number", props.ByName["alpha"].Type)
}

func TestOrderedProperties_MarshalRoundTripsOrder(t *testing.T) {
	raw := []byte(`{"zeta":{"type":"string"},"alpha":{"type":"number"}}`)
	var props OrderedProperties
	require.NoError(t, json.Unmarshal(raw, &props))

	out, err := json.Marshal(props)
	require.NoError(t, err)

	var roundTripped OrderedProperties
	require.NoError(t, json.Unmarshal(out, &roundTripped))
	assert.Equal(t, []string{"zeta", "alpha"}, roundTripped.Names)
}

func TestOrderedProperties_NullIsEmpty(t *testing.T) {
	var props OrderedProperties
	require.NoError(t, json.Unmarshal([]byte("null"), &props))
	assert.Nil(t, props.Names)
}

func TestSchemaNode_NestedPropertiesPreserveOrder(t *testing.T) {
	raw := []byte(`{"type":"object","properties":{"b":{"type":"string"},"a":{"type":"string"}}}`)
	var node SchemaNode
	require.NoError(t, json.Unmarshal(raw, &node))
	assert.Equal(t, []string{"b", "a"}, node.Properties.Names)
}
