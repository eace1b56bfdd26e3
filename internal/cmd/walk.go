package cmd

import (
	"github.com/mdcode-cli/mdcode/internal/input"
	"github.com/mdcode-cli/mdcode/internal/mdcode"
	"github.com/mdcode-cli/mdcode/internal/selector"
	"github.com/spf13/cobra"
)

// extract reads the sources of a run and returns the selected blocks.
func extract(cmd *cobra.Command, files []string, opts *options) (*selector.Selection, error) {
	req, err := opts.request(cmd.Flags())
	if err != nil {
		return nil, err
	}

	sources, err := input.Collect(input.Request{
		Paths:  files,
		Stdin:  cmd.InOrStdin(),
		Reader: opts.reader,
	})
	if err != nil {
		return nil, err
	}

	result := mdcode.Extract(mdcode.Scan(sources...), opts.extractOptions())

	return selector.Select(result, req)
}
