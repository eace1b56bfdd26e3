// Package input collects the Markdown sources of a run: standard input first,
// then files in the order they were given.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/mdcode-cli/mdcode/internal/mdcode"
	"golang.org/x/term"
)

// FileReader reads a whole named file. *memoryfs.FS satisfies it.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// OS reads files from the operating system.
type OS struct{}

func (OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Request lists what to read.
type Request struct {
	Paths []string
	// Stdin is read when no paths are given or when it is not a terminal.
	Stdin io.Reader
	// Reader defaults to OS.
	Reader FileReader
}

// ErrInvalidEncoding is reported for sources that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 content")

// SourceError is returned when a source cannot be read or decoded.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Collect reads every requested source. The first failure aborts the run so
// no partial output is produced.
func Collect(req Request) ([]mdcode.Source, error) {
	var sources []mdcode.Source

	if req.Stdin != nil && (len(req.Paths) == 0 || !IsTerminal(req.Stdin)) {
		data, err := io.ReadAll(req.Stdin)
		if err != nil {
			return nil, &SourceError{Source: mdcode.StdinID, Err: err}
		}

		if len(data) != 0 || len(req.Paths) == 0 {
			src, err := decode(mdcode.StdinID, data)
			if err != nil {
				return nil, err
			}

			sources = append(sources, src)
		}
	}

	reader := req.Reader
	if reader == nil {
		reader = OS{}
	}

	for _, path := range req.Paths {
		data, err := reader.ReadFile(path)
		if err != nil {
			return nil, &SourceError{Source: path, Err: err}
		}

		src, err := decode(path, data)
		if err != nil {
			return nil, err
		}

		sources = append(sources, src)
	}

	return sources, nil
}

func decode(id string, data []byte) (mdcode.Source, error) {
	if !utf8.Valid(data) {
		return mdcode.Source{}, &SourceError{Source: id, Err: ErrInvalidEncoding}
	}

	return mdcode.Source{ID: id, Text: string(data)}, nil
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
