package cmd

import (
	"fmt"
	"io"

	"github.com/mdcode-cli/mdcode/internal/input"
	"github.com/mdcode-cli/mdcode/internal/mdcode"
	"github.com/mdcode-cli/mdcode/internal/render"
	"github.com/mdcode-cli/mdcode/internal/selector"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type statusFunc func(format string, args ...interface{})

type options struct {
	number    string
	lang      string
	source    string
	inline    bool
	maxIndent int
	quiet     bool

	separator   string
	fenced      bool
	json        bool
	list        bool
	lineNumbers bool

	dir  string
	keep bool

	reader input.FileReader
	status statusFunc
}

func (opts *options) createStatus(out io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(out, format, args...)
	}
}

func (opts *options) extractOptions() mdcode.Options {
	return mdcode.Options{Inline: opts.inline, MaxIndent: opts.maxIndent}
}

func (opts *options) request(flags *pflag.FlagSet) (selector.Request, error) {
	index, err := selector.ParseIndex(opts.number)
	if err != nil {
		return selector.Request{}, err
	}

	return selector.Request{
		Lang:   selector.ParseLang(opts.lang, flags.Changed("lang")),
		Index:  index,
		Source: opts.source,
	}, nil
}

func (opts *options) renderOptions() render.Options {
	mode := render.Raw

	switch {
	case opts.json:
		mode = render.JSON
	case opts.list:
		mode = render.List
	}

	return render.Options{
		Mode:        mode,
		Fenced:      opts.fenced,
		LineNumbers: opts.lineNumbers,
		Separator:   opts.separator,
	}
}

func selectionFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&opts.number, "number", "n", "", "target code block by index or range (e.g. 0, 1-3)")
	flags.StringVar(&opts.lang, "lang", "", "filter by language; omit the value to list languages found")
	flags.StringVar(&opts.source, "source", "", "only blocks from sources matching the glob pattern")
	flags.BoolVar(&opts.inline, "inline", false, "include inline code spans")
	flags.IntVar(&opts.maxIndent, "max-indent", mdcode.DefaultMaxIndent, "leading spaces allowed before a fence (-1 for any)")
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
}

func dirFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "directory for the block files")
}
