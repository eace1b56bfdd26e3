package mdcode

import "fmt"

// Kind tells fenced blocks apart from inline code spans.
type Kind int

const (
	Fenced Kind = iota
	Inline
)

func (k Kind) String() string {
	switch k {
	case Fenced:
		return "fenced"
	case Inline:
		return "inline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Fenced, Inline:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownKind, int(k))
	}
}

// Block is a code block extracted from a Markdown source.
type Block struct {
	// Index is the position of the block across all sources, starting at 0.
	Index int
	Kind  Kind
	// Lang is the first token of the info string, empty when absent.
	Lang string
	Meta Meta
	// Code holds the content lines joined by newlines, without a trailing one.
	Code      string
	StartLine int
	EndLine   int
	Source    string
	// Fence is nil for inline blocks.
	Fence *FenceMarker
}

type Blocks []*Block

var errUnknownKind = fmt.Errorf("unknown block kind")
