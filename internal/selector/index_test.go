package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Index
	}{
		{"", AllIndexes()},
		{"3", Single(3)},
		{" 0 ", Single(0)},
		{"1-4", Range(1, 4)},
		{"2 - 2", Range(2, 2)},
		{"10-12", Range(10, 12)},
	}

	for _, tt := range tests {
		got, err := ParseIndex(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestParseIndexErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseIndex("4-2")
	assert.ErrorIs(t, err, ErrInvertedRange)

	for _, raw := range []string{"x", "1-", "-3", "1-2-3", "1.5"} {
		_, err := ParseIndex(raw)
		assert.ErrorIs(t, err, ErrInvalidIndex, raw)
	}
}

func TestIndexMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, AllIndexes().Match(42))
	assert.True(t, AllIndexes().IsAll())

	assert.True(t, Single(2).Match(2))
	assert.False(t, Single(2).Match(3))
	assert.False(t, Single(2).IsAll())

	assert.True(t, Range(1, 3).Match(1))
	assert.True(t, Range(1, 3).Match(3))
	assert.False(t, Range(1, 3).Match(4))

	assert.Equal(t, "all", AllIndexes().String())
	assert.Equal(t, "2", Single(2).String())
	assert.Equal(t, "1-3", Range(1, 3).String())
}

func TestParseLang(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NoFilter(), ParseLang("", false))
	assert.Equal(t, NoFilter(), ParseLang("go", false))
	assert.True(t, ParseLang("", true).Listing())
	assert.True(t, ParseLang("  ", true).Listing())

	lang := ParseLang("Go", true)
	assert.False(t, lang.Listing())
	assert.Equal(t, "go", lang.Name())
	assert.True(t, lang.Match("GO"))
	assert.False(t, lang.Match("golang"))
	assert.False(t, lang.Match(""))

	assert.True(t, NoFilter().Match(""))
	assert.True(t, ListLanguages().Match("any"))
}
