package mdcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{"two spans", "a `one` b `two`", []Span{{"one", 2}, {"two", 10}}},
		{"escaped backtick", "a `` b ` c `` d", []Span{{" b ` c ", 2}}},
		{"longer run is content", "```x`` y```", []Span{{"x`` y", 0}}},
		{"unmatched opener", "a `b", nil},
		{"unmatched double then single", "``x` y`", []Span{{" y", 3}}},
		{"empty span skipped", "a `` b", nil},
		{"no backticks", "plain prose", nil},
		{"whole line", "`fmt.Println()`", []Span{{"fmt.Println()", 0}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, InlineSpans(tt.line))
		})
	}
}
