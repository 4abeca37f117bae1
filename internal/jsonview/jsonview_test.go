package jsonview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_ObjectAlignsScalarKeys(t *testing.T) {
	lines := Render(map[string]interface{}{"id": float64(1), "title": "hi"})
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "id")
	assert.Contains(t, lines[1], "title")
}

func TestRender_NestedObjectIndentsChild(t *testing.T) {
	lines := Render(map[string]interface{}{
		"document": map[string]interface{}{"title": "hi"},
	})
	assert.Equal(t, "document:", lines[0])
	assert.Contains(t, lines[1], "  ")
	assert.Contains(t, lines[1], "title")
}

func TestRender_ScalarArrayOneLineEach(t *testing.T) {
	lines := Render([]interface{}{"a", "b", "c"})
	assert.Len(t, lines, 3)
}

func TestRender_EmptyArrayIsNoLines(t *testing.T) {
	assert.Empty(t, Render([]interface{}{}))
}

func TestIsEmptyListResult_EmptyArray(t *testing.T) {
	assert.True(t, IsEmptyListResult([]interface{}{}))
	assert.False(t, IsEmptyListResult([]interface{}{"x"}))
}

func TestIsEmptyListResult_ObjectWithEmptyArrayField(t *testing.T) {
	assert.True(t, IsEmptyListResult(map[string]interface{}{"results": []interface{}{}, "count": float64(0)}))
	assert.False(t, IsEmptyListResult(map[string]interface{}{"results": []interface{}{"x"}}))
}

func TestIsEmptyListResult_ScalarIsFalse(t *testing.T) {
	assert.False(t, IsEmptyListResult("hello"))
	assert.False(t, IsEmptyListResult(nil))
}
