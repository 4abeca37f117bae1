package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedKeys walks a JSON object with a streaming decoder to recover the
// key order encoding/json's map decoding would otherwise discard — the
// catalog's property order is user-visible (§3) and must round-trip.
func orderedKeys(data []byte) ([]string, map[string]json.RawMessage, error) {
	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return nil, raw, nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("mcp: expected object, got %v", tok)
	}

	var order []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("mcp: expected string key, got %v", keyTok)
		}
		order = append(order, key)

		var discard json.RawMessage
		if err := dec.Decode(&discard); err != nil {
			return nil, nil, err
		}
	}
	return order, raw, nil
}

// UnmarshalJSON preserves property declaration order from the catalog.
func (p *OrderedProperties) UnmarshalJSON(data []byte) error {
	order, raw, err := orderedKeys(data)
	if err != nil {
		return err
	}
	p.Names = order
	p.ByName = make(map[string]*SchemaNode, len(order))
	for _, name := range order {
		var node SchemaNode
		if err := json.Unmarshal(raw[name], &node); err != nil {
			return fmt.Errorf("mcp: property %q: %w", name, err)
		}
		p.ByName[name] = &node
	}
	return nil
}

// MarshalJSON emits properties in their preserved order.
func (p OrderedProperties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(p.ByName[name])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// schemaNodeAlias avoids infinite recursion into SchemaNode.UnmarshalJSON
// for the fields that don't need order-preservation.
type schemaNodeAlias struct {
	Ref         string          `json:"$ref,omitempty"`
	Type        string          `json:"type,omitempty"`
	Format      string          `json:"format,omitempty"`
	Enum        []string        `json:"enum,omitempty"`
	Description string          `json:"description,omitempty"`
	Examples    []interface{}   `json:"examples,omitempty"`
	Default     interface{}     `json:"default,omitempty"`
	Items       *SchemaNode     `json:"items,omitempty"`
	Properties  json.RawMessage `json:"properties,omitempty"`
	Required    []string        `json:"required,omitempty"`
	AnyOf       []*SchemaNode   `json:"anyOf,omitempty"`
}

func (n *SchemaNode) UnmarshalJSON(data []byte) error {
	var alias schemaNodeAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	n.Ref = alias.Ref
	n.Type = alias.Type
	n.Format = alias.Format
	n.Enum = alias.Enum
	n.Description = alias.Description
	n.Examples = alias.Examples
	n.Default = alias.Default
	n.Items = alias.Items
	n.Required = alias.Required
	n.AnyOf = alias.AnyOf
	if len(alias.Properties) > 0 {
		if err := json.Unmarshal(alias.Properties, &n.Properties); err != nil {
			return err
		}
	}
	return nil
}
