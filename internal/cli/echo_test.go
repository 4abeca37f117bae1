package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/schema"
)

func TestEchoInvocation_SkipsUnsetFields(t *testing.T) {
	fields := []schema.Field{
		{Name: "url", Prop: schema.Property{Kind: schema.KindText}},
		{Name: "tags", Prop: schema.Property{Kind: schema.KindArrayText}},
	}
	values := formcore.FormValues{"url": "https://example.com/a", "tags": ""}

	got := EchoInvocation("readwise", "reader_create_document", fields, values)
	assert.Equal(t, "readwise tool call reader_create_document --url=https://example.com/a", got)
}

func TestEchoInvocation_QuotesValuesWithSpaces(t *testing.T) {
	fields := []schema.Field{{Name: "note", Prop: schema.Property{Kind: schema.KindText}}}
	values := formcore.FormValues{"note": "read this later"}

	got := EchoInvocation("readwise", "reader_update_document", fields, values)
	assert.Equal(t, `readwise tool call reader_update_document --note="read this later"`, got)
}
