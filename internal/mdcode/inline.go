package mdcode

// Span is an inline code span found on a single line.
type Span struct {
	// Code is the text between the delimiting backtick runs.
	Code string
	// Column is the byte offset of the opening run within the line.
	Column int
}

// InlineSpans returns the inline code spans of a prose line, left to right.
//
// A run of N backticks is closed by the next run of exactly N backticks;
// runs of any other length are part of the span content. An opening run
// without a closer on the same line is plain text and scanning continues
// after it. Empty spans are skipped.
func InlineSpans(line string) []Span {
	var spans []Span

	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++

			continue
		}

		n := countRun(line[i:], '`')

		end, closeAt, ok := matchRun(line, i+n, n)
		if !ok {
			i += n

			continue
		}

		if code := line[i+n : closeAt]; len(code) > 0 {
			spans = append(spans, Span{Code: code, Column: i})
		}

		i = end
	}

	return spans
}

// matchRun looks for a run of exactly n backticks starting at or after from.
// It returns the offset just past the run and the offset where it starts.
func matchRun(line string, from, n int) (int, int, bool) {
	for j := from; j < len(line); {
		if line[j] != '`' {
			j++

			continue
		}

		m := countRun(line[j:], '`')
		if m == n {
			return j + m, j, true
		}

		j += m
	}

	return 0, 0, false
}
