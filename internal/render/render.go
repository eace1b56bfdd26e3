// Package render prints selected code blocks as raw code, a list or JSON.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mdcode-cli/mdcode/internal/mdcode"
)

// Mode selects the output format.
type Mode int

const (
	Raw Mode = iota
	List
	JSON
)

// DefaultSeparator is printed between blocks in raw mode.
const DefaultSeparator = "\n"

// Options are the presentation options of a run.
type Options struct {
	Mode Mode
	// Fenced re-wraps fenced blocks in their original markers.
	Fenced bool
	// LineNumbers prefixes rendered lines with their source line number.
	LineNumbers bool
	Separator   string
}

var errUnknownMode = errors.New("unknown output mode")

// Render writes blocks to w in the requested mode.
func Render(w io.Writer, blocks mdcode.Blocks, opts Options) error {
	switch opts.Mode {
	case Raw:
		return renderRaw(w, blocks, opts)
	case List:
		return renderList(w, blocks)
	case JSON:
		return renderJSON(w, blocks)
	default:
		return fmt.Errorf("%w: %d", errUnknownMode, opts.Mode)
	}
}

// Languages prints one language per line.
func Languages(w io.Writer, langs []string) error {
	for _, lang := range langs {
		if _, err := fmt.Fprintln(w, lang); err != nil {
			return err
		}
	}

	return nil
}

func renderRaw(w io.Writer, blocks mdcode.Blocks, opts Options) error {
	if len(blocks) == 0 {
		return nil
	}

	rendered := make([]string, len(blocks))
	for i, block := range blocks {
		rendered[i] = Block(block, opts.Fenced, opts.LineNumbers)
	}

	out := strings.Join(rendered, opts.Separator)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	_, err := io.WriteString(w, out)

	return err
}

// Block renders a single block. Inline blocks are never wrapped in fences.
func Block(block *mdcode.Block, fenced, lineNumbers bool) string {
	content := block.Code
	if lineNumbers {
		content = numberLines(content, block.StartLine)
	}

	if !fenced || block.Fence == nil {
		return content
	}

	marker := block.Fence.String()
	if len(content) == 0 {
		return marker + block.Lang + "\n" + marker
	}

	return marker + block.Lang + "\n" + content + "\n" + marker
}

func numberLines(content string, start int) string {
	if len(content) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%6d: %s", start+i, line)
	}

	return strings.Join(lines, "\n")
}

// lineCount returns the number of content lines of a block.
func lineCount(code string) int {
	if len(code) == 0 {
		return 0
	}

	return strings.Count(code, "\n") + 1
}
