package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"beach", "Beach", "sun set"}, NormalizeTags(" beach, ,Beach,beach ,sun set,"))
	assert.Empty(t, NormalizeTags(""))
	assert.Empty(t, NormalizeTags(" , ,, "))
}

func TestEncodeTags(t *testing.T) {
	assert.Equal(t, `["a","b c"]`, EncodeTags([]string{"a", "b c"}))
	assert.Equal(t, `[]`, EncodeTags(nil))
}

func TestDecodeTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, DecodeTags(`[" a ", "", "b", 3, null]`))
	assert.Empty(t, DecodeTags(`{"tags":["a"]}`))
	assert.Empty(t, DecodeTags(`not json`))
	assert.Empty(t, DecodeTags(``))
}

func TestTagsRoundTrip(t *testing.T) {
	in := []string{"été", "x,y", `quote"d`}
	assert.Equal(t, in, DecodeTags(EncodeTags(in)))
}

func TestPrepareSetTags(t *testing.T) {
	_, err := PrepareSetTags("", "", []string{"a"})
	require.Error(t, err)

	prep, err := PrepareSetTags("/p/a.jpg", "abc", []string{" a", "a", "b "})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, prep.Tags)
	assert.Equal(t, `["a","b"]`, prep.TagsJSON)
	assert.Equal(t, "abc", prep.Hash)
}
