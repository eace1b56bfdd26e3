package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mdcode-cli/mdcode/internal/mdcode"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const execHelp = `Write each selected code block to a file and run a shell command on it.

The command follows '--' and is run by a built-in POSIX shell with the block
directory as working directory. Placeholders expand to single shell words:

  {}        path of the block file (all paths with --batch)
  {lang}    block language
  {index}   block index
  {source}  source the block was read from
  {dir}     block directory

Block files are named after a file=NAME attribute of the info string when
present, otherwise block_INDEX.LANG.`

const (
	dirMode  = 0o755
	fileMode = 0o644
)

type blockInfo struct {
	index     int
	lang      string
	file      string
	source    string
	tempPath  string
	startLine int
	endLine   int
}

type execIO struct {
	stdin          io.Reader
	stdout, stderr io.Writer
}

func execCmd(opts *options) *cobra.Command {
	var batch bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "exec [flags] [file...] -- command",
		Aliases: []string{"e"},
		Short:   "Execute shell commands on individual code blocks",
		Long:    execHelp,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, files := script(cmd, args)
			if len(scr) == 0 {
				return errMissingCommand
			}

			sel, err := extract(cmd, files, opts)
			if err != nil {
				return err
			}

			if sel.Listing {
				return errExecListing
			}

			if !cmd.Flag("dir").Changed {
				dir, err := os.MkdirTemp(".", "mdcode-exec-")
				if err != nil {
					return err
				}

				opts.dir = dir

				if !opts.keep {
					defer os.RemoveAll(dir)
				}
			}

			absDir, err := filepath.Abs(opts.dir)
			if err != nil {
				return err
			}

			stdio := execIO{stdin: cmd.InOrStdin(), stdout: cmd.OutOrStdout(), stderr: cmd.ErrOrStderr()}

			if batch {
				return execBatch(sel.Blocks, absDir, opts, scr, stdio)
			}

			return execPerBlock(sel.Blocks, absDir, opts, scr, stdio)
		},

		DisableAutoGenTag: true,
	}

	dirFlag(cmd, opts)

	cmd.Flags().BoolVar(&batch, "batch", false, "run command once for all blocks instead of once per block")
	cmd.Flags().BoolVarP(&opts.keep, "keep", "k", false, "don't remove temporary directory")

	return cmd
}

// script splits args at '--' into the shell command and the input files.
func script(cmd *cobra.Command, args []string) (string, []string) {
	at := cmd.ArgsLenAtDash()
	if at < 0 {
		return "", args
	}

	return strings.Join(args[at:], " "), args[:at]
}

func execPerBlock(blocks mdcode.Blocks, dir string, opts *options, scr string, stdio execIO) error {
	var failures int

	for _, block := range blocks {
		info := writeBlockToTemp(block, dir, opts.status)
		if info == nil {
			continue
		}

		expanded, err := expandCommand(scr, info, dir)
		if err != nil {
			return err
		}

		opts.status("--- block %d (%s%s) : L%d-%d : %s ---\n", info.index, langLabel(info.lang), fileLabel(info.file), info.startLine, info.endLine, filepath.Base(info.source))

		exitCode, err := runCommand(expanded, dir, stdio)
		if err != nil {
			return err
		}

		if exitCode != 0 {
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d block(s) failed", failures)
	}

	return nil
}

func execBatch(blocks mdcode.Blocks, dir string, opts *options, scr string, stdio execIO) error {
	var entries []*blockInfo

	for _, block := range blocks {
		if info := writeBlockToTemp(block, dir, opts.status); info != nil {
			entries = append(entries, info)
		}
	}

	if len(entries) == 0 {
		return nil
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		quoted, err := quoteWord(e.tempPath)
		if err != nil {
			return fmt.Errorf("block %d: %w", e.index, err)
		}

		paths[i] = quoted
	}

	quotedDir, err := quoteWord(dir)
	if err != nil {
		return err
	}

	expanded := strings.NewReplacer("{}", strings.Join(paths, " "), "{dir}", quotedDir).Replace(scr)

	opts.status("--- batch (%d blocks) ---\n", len(entries))

	exitCode, err := runCommand(expanded, dir, stdio)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		return fmt.Errorf("command exited with %d", exitCode)
	}

	return nil
}

func writeBlockToTemp(block *mdcode.Block, dir string, status statusFunc) *blockInfo {
	info := &blockInfo{
		index:     block.Index,
		lang:      block.Lang,
		file:      block.Meta.Get(metaFile),
		source:    block.Source,
		startLine: block.StartLine,
		endLine:   block.EndLine,
	}

	info.tempPath = filepath.Join(dir, tempFilename(block))

	if !inDir(dir, info.tempPath) {
		status("warning: block %d file %s is outside %s, skipped\n", block.Index, info.tempPath, dir)

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(info.tempPath), dirMode); err != nil {
		status("warning: failed to create directory for block %d: %v\n", block.Index, err)

		return nil
	}

	code := block.Code
	if len(code) != 0 {
		code += "\n"
	}

	if err := os.WriteFile(info.tempPath, []byte(code), fileMode); err != nil {
		status("warning: failed to write block %d: %v\n", block.Index, err)

		return nil
	}

	return info
}

const metaFile = "file"

func tempFilename(block *mdcode.Block) string {
	if file := block.Meta.Get(metaFile); len(file) != 0 {
		return fmt.Sprintf("%d_%s", block.Index, filepath.Base(filepath.FromSlash(file)))
	}

	return fmt.Sprintf("block_%d%s", block.Index, langExtension(block.Lang))
}

// langExtension keeps only the letters, digits and "_+-" of lang.
func langExtension(lang string) string {
	ext := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '+', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		default:
			return -1
		}
	}, lang)

	if len(ext) == 0 {
		return ".txt"
	}

	return "." + ext
}

func inDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || filepath.IsAbs(rel) {
		return false
	}

	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// expandCommand substitutes the placeholders of scr with shell-quoted words.
func expandCommand(scr string, info *blockInfo, dir string) (string, error) {
	pairs := []string{
		"{}", info.tempPath,
		"{lang}", info.lang,
		"{index}", strconv.Itoa(info.index),
		"{source}", info.source,
		"{dir}", dir,
	}

	for i := 1; i < len(pairs); i += 2 {
		quoted, err := quoteWord(pairs[i])
		if err != nil {
			return "", fmt.Errorf("block %d: %w", info.index, err)
		}

		pairs[i] = quoted
	}

	return strings.NewReplacer(pairs...).Replace(scr), nil
}

func quoteWord(s string) (string, error) {
	return syntax.Quote(s, syntax.LangBash)
}

func runCommand(command, dir string, stdio execIO) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.Dir(dir), interp.StdIO(stdio.stdin, stdio.stdout, stdio.stderr))
	if err != nil {
		return -1, err
	}

	err = runner.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}

func langLabel(lang string) string {
	if len(lang) != 0 {
		return lang
	}

	return plainLabel
}

func fileLabel(file string) string {
	if len(file) != 0 {
		return ", file=" + file
	}

	return ""
}

const plainLabel = "plain"

var (
	errMissingCommand = errors.New("command is required after '--'")
	errExecListing    = errors.New("exec needs code blocks, not a language listing")
)
