package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInListQuestion(t *testing.T) {
	b := New(PlaceholderQuestion)
	assert.Equal(t, "(?, ?, ?)", b.InList([]string{"a", "b", "c"}))
	assert.Equal(t, []any{"a", "b", "c"}, b.Args())
}

func TestInListDollarContinuesNumbering(t *testing.T) {
	b := New(PlaceholderDollar)
	assert.Equal(t, "$1", b.Placeholder(42))
	assert.Equal(t, "($2, $3)", b.InList([]string{"x", "y"}))
	assert.Equal(t, 3, b.Len())
}

func TestChunk(t *testing.T) {
	vals := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, Chunk(vals, 2))
	assert.Equal(t, [][]string{vals}, Chunk(vals, 5))
	assert.Nil(t, Chunk(nil, 3))
	assert.Len(t, Chunk(vals, 0), 5)
}
