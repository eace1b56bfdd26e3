package mdcode

import (
	"strings"
)

const (
	minFenceLen = 3

	// DefaultMaxIndent is the number of leading blanks still accepted before a
	// fence marker.
	DefaultMaxIndent = 3
)

// FenceMarker is the run of backticks or tildes that opened a fenced block.
type FenceMarker struct {
	Char byte
	Len  int
}

// String returns the marker run, e.g. "````".
func (m FenceMarker) String() string {
	return strings.Repeat(string(m.Char), m.Len)
}

// Closes reports whether line closes a fence opened with m: the same
// character repeated at least m.Len times and nothing but blanks after it.
func (m FenceMarker) Closes(line string, maxIndent int) bool {
	rest, ok := stripIndent(line, maxIndent)
	if !ok {
		return false
	}

	n := countRun(rest, m.Char)
	if n < m.Len || n < minFenceLen {
		return false
	}

	return len(strings.TrimSpace(rest[n:])) == 0
}

// ParseFence checks whether line opens a fenced code block. It returns the
// marker and the trimmed info string following it.
func ParseFence(line string, maxIndent int) (FenceMarker, string, bool) {
	rest, ok := stripIndent(line, maxIndent)
	if !ok || len(rest) == 0 {
		return FenceMarker{}, "", false
	}

	char := rest[0]
	if char != '`' && char != '~' {
		return FenceMarker{}, "", false
	}

	n := countRun(rest, char)
	if n < minFenceLen {
		return FenceMarker{}, "", false
	}

	info := strings.TrimSpace(rest[n:])

	// A backtick run followed by more backticks on the same line is an
	// inline code span, not a fence.
	if char == '`' && strings.IndexByte(info, '`') >= 0 {
		return FenceMarker{}, "", false
	}

	return FenceMarker{Char: char, Len: n}, info, true
}

// stripIndent removes leading blanks. With a non-negative maxIndent, lines
// indented by more than maxIndent columns are rejected. A tab advances to the
// next multiple of tabWidth.
func stripIndent(line string, maxIndent int) (string, bool) {
	col, i := 0, 0

	for ; i < len(line) && (line[i] == ' ' || line[i] == '\t'); i++ {
		if line[i] == '\t' {
			col += tabWidth - col%tabWidth
		} else {
			col++
		}
	}

	if maxIndent >= 0 && col > maxIndent {
		return "", false
	}

	return line[i:], true
}

const tabWidth = 4

func countRun(s string, char byte) int {
	n := 0
	for n < len(s) && s[n] == char {
		n++
	}

	return n
}
