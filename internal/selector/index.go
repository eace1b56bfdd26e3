package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type indexMode int

const (
	indexAll indexMode = iota
	indexSingle
	indexRange
)

// Index selects blocks by their original index. The zero value selects all.
type Index struct {
	mode       indexMode
	start, end int
}

// AllIndexes selects every block.
func AllIndexes() Index { return Index{} }

// Single selects the block with index n.
func Single(n int) Index { return Index{mode: indexSingle, start: n, end: n} }

// Range selects blocks with start <= index <= end.
func Range(start, end int) Index { return Index{mode: indexRange, start: start, end: end} }

// Match reports whether a block index is selected.
func (i Index) Match(index int) bool {
	if i.mode == indexAll {
		return true
	}

	return index >= i.start && index <= i.end
}

// IsAll reports whether no index restriction applies.
func (i Index) IsAll() bool { return i.mode == indexAll }

func (i Index) String() string {
	switch i.mode {
	case indexSingle:
		return strconv.Itoa(i.start)
	case indexRange:
		return fmt.Sprintf("%d-%d", i.start, i.end)
	default:
		return "all"
	}
}

var (
	ErrInvalidIndex  = errors.New("invalid block index")
	ErrInvertedRange = errors.New("range start must be <= end")
)

// ParseIndex parses "N" or "A-B". An empty string selects all blocks.
func ParseIndex(raw string) (Index, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) == 0 {
		return AllIndexes(), nil
	}

	first, second, isRange := strings.Cut(raw, "-")
	if !isRange {
		n, err := parseBound(first)
		if err != nil {
			return Index{}, err
		}

		return Single(n), nil
	}

	start, err := parseBound(first)
	if err != nil {
		return Index{}, err
	}

	end, err := parseBound(second)
	if err != nil {
		return Index{}, err
	}

	if start > end {
		return Index{}, fmt.Errorf("%w: %q", ErrInvertedRange, raw)
	}

	return Range(start, end), nil
}

func parseBound(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}

	return n, nil
}
