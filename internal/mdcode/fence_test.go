package mdcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		maxIndent int
		marker    FenceMarker
		info      string
		ok        bool
	}{
		{"backticks with lang", "```go", DefaultMaxIndent, FenceMarker{'`', 3}, "go", true},
		{"tildes with info", "~~~~ python title=x", DefaultMaxIndent, FenceMarker{'~', 4}, "python title=x", true},
		{"no info", "```", DefaultMaxIndent, FenceMarker{'`', 3}, "", true},
		{"info is trimmed", "```   rust  ", DefaultMaxIndent, FenceMarker{'`', 3}, "rust", true},
		{"three spaces", "   ```sh", DefaultMaxIndent, FenceMarker{'`', 3}, "sh", true},
		{"four spaces", "    ```sh", DefaultMaxIndent, FenceMarker{}, "", false},
		{"any indent", "        ```sh", -1, FenceMarker{'`', 3}, "sh", true},
		{"tab indent", "\t```go", DefaultMaxIndent, FenceMarker{}, "", false},
		{"space then tab", " \t```go", DefaultMaxIndent, FenceMarker{}, "", false},
		{"tab with any indent", "\t```go", -1, FenceMarker{'`', 3}, "go", true},
		{"tab fits indent", "\t```go", 4, FenceMarker{'`', 3}, "go", true},
		{"no indent allowed", " ```", 0, FenceMarker{}, "", false},
		{"too short", "``go", DefaultMaxIndent, FenceMarker{}, "", false},
		{"mixed chars", "`~~", DefaultMaxIndent, FenceMarker{}, "", false},
		{"backtick in info", "``` a`b", DefaultMaxIndent, FenceMarker{}, "", false},
		{"backtick in tilde info", "~~~ a`b", DefaultMaxIndent, FenceMarker{'~', 3}, "a`b", true},
		{"prose", "some text", DefaultMaxIndent, FenceMarker{}, "", false},
		{"empty", "", DefaultMaxIndent, FenceMarker{}, "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			marker, info, ok := ParseFence(tt.line, tt.maxIndent)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.marker, marker)
			assert.Equal(t, tt.info, info)
		})
	}
}

func TestFenceMarkerCloses(t *testing.T) {
	t.Parallel()

	backticks := FenceMarker{Char: '`', Len: 3}
	long := FenceMarker{Char: '`', Len: 5}
	tildes := FenceMarker{Char: '~', Len: 3}

	assert.True(t, backticks.Closes("```", DefaultMaxIndent))
	assert.True(t, backticks.Closes("````", DefaultMaxIndent))
	assert.True(t, backticks.Closes("```   ", DefaultMaxIndent))
	assert.True(t, backticks.Closes("  ```", DefaultMaxIndent))
	assert.False(t, backticks.Closes("``", DefaultMaxIndent))
	assert.False(t, backticks.Closes("``` go", DefaultMaxIndent))
	assert.False(t, backticks.Closes("~~~", DefaultMaxIndent))
	assert.False(t, backticks.Closes("    ```", DefaultMaxIndent))
	assert.False(t, backticks.Closes("\t```", DefaultMaxIndent))
	assert.True(t, backticks.Closes("    ```", -1))

	assert.False(t, long.Closes("````", DefaultMaxIndent))
	assert.True(t, long.Closes("``````", DefaultMaxIndent))

	assert.True(t, tildes.Closes("~~~~~", DefaultMaxIndent))
	assert.False(t, tildes.Closes("```", DefaultMaxIndent))
}

func TestFenceMarkerString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "````", FenceMarker{Char: '`', Len: 4}.String())
	assert.Equal(t, "~~~", FenceMarker{Char: '~', Len: 3}.String())
}
