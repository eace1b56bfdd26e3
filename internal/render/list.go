package render

import (
	"fmt"
	"io"

	"github.com/mdcode-cli/mdcode/internal/mdcode"
	"github.com/rodaine/table"
)

const plainLang = "plain"

func renderList(w io.Writer, blocks mdcode.Blocks) error {
	if len(blocks) == 0 {
		return nil
	}

	tbl := table.New("INDEX", "KIND", "LANG", "LINES", "LOCATION").WithWriter(w)

	for _, block := range blocks {
		lang := block.Lang
		if len(lang) == 0 {
			lang = plainLang
		}

		tbl.AddRow(block.Index, block.Kind, lang, lineCount(block.Code), location(block))
	}

	tbl.Print()

	return nil
}

// location formats the source and line span of a block.
func location(block *mdcode.Block) string {
	if block.StartLine == block.EndLine {
		return fmt.Sprintf("%s:%d", block.Source, block.StartLine)
	}

	return fmt.Sprintf("%s:%d-%d", block.Source, block.StartLine, block.EndLine)
}
