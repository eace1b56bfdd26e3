package mdcode

import "strings"

// StdinID is the source identifier used for content read from standard input.
const StdinID = "stdin"

// Source is one input document: a file or the standard input stream.
type Source struct {
	ID   string
	Text string
}

// Line is a physical line of a source with its 1-based line number.
type Line struct {
	Source string
	Number int
	Text   string
}

// Scan splits every source into lines, keeping the order of sources as given.
// Numbering restarts at 1 for each source. A trailing newline does not
// produce an extra empty line and a carriage return before it is dropped.
func Scan(sources ...Source) []Line {
	var lines []Line

	for _, src := range sources {
		lines = append(lines, scanSource(src)...)
	}

	return lines
}

func scanSource(src Source) []Line {
	if len(src.Text) == 0 {
		return nil
	}

	text := strings.TrimSuffix(src.Text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))

	for i, part := range parts {
		lines[i] = Line{
			Source: src.ID,
			Number: i + 1,
			Text:   strings.TrimSuffix(part, "\r"),
		}
	}

	return lines
}
