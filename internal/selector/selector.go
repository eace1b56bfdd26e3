// Package selector narrows an extraction result by language, source and
// block index.
package selector

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/mdcode-cli/mdcode/internal/mdcode"
)

// Request describes which blocks to keep.
type Request struct {
	Lang  Lang
	Index Index
	// Source is a glob over source identifiers; empty matches every source.
	Source string
}

// Selection is the outcome of applying a Request.
type Selection struct {
	Blocks mdcode.Blocks
	// Languages is set only for a language listing request.
	Languages []string
	Listing   bool
}

// Empty reports whether nothing matched.
func (s *Selection) Empty() bool {
	if s.Listing {
		return len(s.Languages) == 0
	}

	return len(s.Blocks) == 0
}

// Select applies the language filter, then the source glob, then the index
// selection, which always refers to the original block indexes. Misses yield
// an empty selection; only an invalid source glob is an error.
func Select(res *mdcode.Result, req Request) (*Selection, error) {
	matchSource, err := sourceMatcher(req.Source)
	if err != nil {
		return nil, err
	}

	sel := &Selection{Listing: req.Lang.Listing()}

	for _, block := range res.Blocks {
		if req.Lang.Match(block.Lang) && matchSource(block.Source) && req.Index.Match(block.Index) {
			sel.Blocks = append(sel.Blocks, block)
		}
	}

	if sel.Listing {
		sel.Languages = languages(res, sel.Blocks, req)
		sel.Blocks = nil
	}

	return sel, nil
}

// languages lists the distinct fenced languages of blocks in first-occurrence
// order. Without other restrictions this is the precomputed result list.
func languages(res *mdcode.Result, blocks mdcode.Blocks, req Request) []string {
	if req.Index.IsAll() && len(req.Source) == 0 {
		return append([]string(nil), res.Languages...)
	}

	var langs []string

	seen := make(map[string]bool)

	for _, block := range blocks {
		if block.Kind != mdcode.Fenced || len(block.Lang) == 0 || seen[block.Lang] {
			continue
		}

		seen[block.Lang] = true
		langs = append(langs, block.Lang)
	}

	return langs
}

func sourceMatcher(pattern string) (func(string) bool, error) {
	if len(pattern) == 0 {
		return func(string) bool { return true }, nil
	}

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
	}

	return g.Match, nil
}
