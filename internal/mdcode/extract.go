package mdcode

import "strings"

// Options control the extraction pass.
type Options struct {
	// Inline enables extraction of inline code spans from prose lines.
	Inline bool
	// MaxIndent is the leading blank tolerance for fence lines. A negative
	// value accepts any indentation.
	MaxIndent int
}

// DefaultOptions returns fenced-only extraction with the usual Markdown
// indentation tolerance.
func DefaultOptions() Options {
	return Options{MaxIndent: DefaultMaxIndent}
}

// Walker is a callback invoked for each extracted block, in document order,
// with its index already assigned.
type Walker func(block *Block) error

// Result is the outcome of a full extraction pass.
type Result struct {
	Blocks Blocks
	// Languages lists the distinct fenced block languages in the order they
	// first appear.
	Languages []string
}

// Extract runs the extractor over lines and collects every block.
func Extract(lines []Line, opts Options) *Result {
	res := &Result{}
	seen := make(map[string]bool)

	// The collecting walker never fails.
	_ = Walk(lines, opts, func(block *Block) error {
		res.Blocks = append(res.Blocks, block)

		if block.Kind == Fenced && len(block.Lang) != 0 && !seen[block.Lang] {
			seen[block.Lang] = true
			res.Languages = append(res.Languages, block.Lang)
		}

		return nil
	})

	return res
}

// Walk scans lines once and calls walker for every block as soon as it is
// complete. A fence left open at the end of a source is closed there.
// Walk stops at the first walker error and returns it.
func Walk(lines []Line, opts Options, walker Walker) error {
	ext := &extractor{opts: opts, walker: walker}

	for _, line := range lines {
		if err := ext.feed(line); err != nil {
			return err
		}
	}

	return ext.flush()
}

// openFence is the in-fence state; the extractor is in prose when it is nil.
type openFence struct {
	marker FenceMarker
	lang   string
	meta   Meta
	source string
	opener int
	last   int
	lines  []string
}

func (f *openFence) block(endLine int) *Block {
	marker := f.marker
	block := &Block{
		Kind:      Fenced,
		Lang:      f.lang,
		Meta:      f.meta,
		Code:      strings.Join(f.lines, "\n"),
		StartLine: f.opener + 1,
		EndLine:   endLine,
		Source:    f.source,
		Fence:     &marker,
	}

	if len(f.lines) == 0 {
		block.StartLine, block.EndLine = f.opener, f.opener
	}

	return block
}

type extractor struct {
	opts   Options
	walker Walker
	index  int
	fence  *openFence
}

func (e *extractor) feed(line Line) error {
	if e.fence != nil && e.fence.source != line.Source {
		if err := e.flush(); err != nil {
			return err
		}
	}

	if e.fence != nil {
		return e.feedFence(line)
	}

	if marker, info, ok := ParseFence(line.Text, e.opts.MaxIndent); ok {
		lang, meta := parseInfo(info)
		e.fence = &openFence{
			marker: marker,
			lang:   lang,
			meta:   meta,
			source: line.Source,
			opener: line.Number,
			last:   line.Number,
		}

		return nil
	}

	if !e.opts.Inline {
		return nil
	}

	for _, span := range InlineSpans(line.Text) {
		err := e.emit(&Block{
			Kind:      Inline,
			Code:      span.Code,
			StartLine: line.Number,
			EndLine:   line.Number,
			Source:    line.Source,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *extractor) feedFence(line Line) error {
	if e.fence.marker.Closes(line.Text, e.opts.MaxIndent) {
		block := e.fence.block(line.Number - 1)
		e.fence = nil

		return e.emit(block)
	}

	e.fence.lines = append(e.fence.lines, line.Text)
	e.fence.last = line.Number

	return nil
}

// flush closes a fence still open at the end of its source.
func (e *extractor) flush() error {
	if e.fence == nil {
		return nil
	}

	block := e.fence.block(e.fence.last)
	e.fence = nil

	return e.emit(block)
}

func (e *extractor) emit(block *Block) error {
	block.Index = e.index
	e.index++

	return e.walker(block)
}
