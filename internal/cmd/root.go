// Package cmd implements the mdcode command line.
package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mdcode-cli/mdcode/internal/render"
	"github.com/spf13/cobra"
)

const rootHelp = `Extract fenced and inline code blocks from Markdown.

Input files are read in the order given. Standard input is read when no files
are given or when it is not a terminal, and is always processed first.

Blocks are numbered from 0 across all inputs. Use --number to pick a block or
an inclusive range, --lang to filter by language (case-insensitive) and a bare
--lang to list the languages present.`

// Execute runs the command line with args and exits with status 1 on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	root := rootCmd(&options{})

	root.SetArgs(normalizeArgs(args))
	root.SetIn(os.Stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:          "mdcode [flags] [file...]",
		Short:        "Extract fenced and inline code blocks from Markdown",
		Long:         rootHelp,
		Args:         cobra.ArbitraryArgs,
		Version:      version,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			if opts.json && opts.list {
				return errConflictingModes
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootRun(cmd, args, opts)
		},

		DisableAutoGenTag: true,
	}

	selectionFlags(cmd, opts)
	quietFlag(cmd, opts)

	cmd.Flags().StringVar(&opts.separator, "sep", render.DefaultSeparator, "separator between blocks when printing multiple")
	cmd.Flags().BoolVar(&opts.fenced, "fenced", false, "preserve fences around output blocks")
	cmd.Flags().BoolVar(&opts.json, "json", false, "emit JSON instead of raw code")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list blocks with metadata")
	cmd.Flags().BoolVar(&opts.lineNumbers, "line-numbers", false, "include source line numbers in output")

	cmd.AddCommand(execCmd(opts))

	return cmd
}

func rootRun(cmd *cobra.Command, args []string, opts *options) error {
	sel, err := extract(cmd, args, opts)
	if err != nil {
		return err
	}

	if sel.Empty() {
		opts.status("no matching code blocks\n")
	}

	out := cmd.OutOrStdout()

	if sel.Listing {
		return render.Languages(out, sel.Languages)
	}

	if sel.Empty() && !opts.json {
		return nil
	}

	return render.Render(out, sel.Blocks, opts.renderOptions())
}

// normalizeArgs turns a bare --lang, one not followed by a value, into an
// explicitly empty --lang= so it selects the language listing.
func normalizeArgs(args []string) []string {
	res := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			return append(res, args[i:]...)
		}

		if arg == "--lang" && (i+1 == len(args) || isFlag(args[i+1])) {
			arg = "--lang="
		}

		res = append(res, arg)
	}

	return res
}

func isFlag(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-")
}

const version = "0.1.0"

var errConflictingModes = errors.New("--json and --list are mutually exclusive")
