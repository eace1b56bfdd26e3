package render

import (
	"encoding/json"
	"io"

	"github.com/mdcode-cli/mdcode/internal/mdcode"
)

type jsonBlock struct {
	Index     int         `json:"index"`
	Kind      mdcode.Kind `json:"kind"`
	Language  *string     `json:"language"`
	Content   string      `json:"content"`
	StartLine int         `json:"start_line"`
	EndLine   int         `json:"end_line"`
	SourceID  string      `json:"source_id"`
}

func renderJSON(w io.Writer, blocks mdcode.Blocks) error {
	payload := make([]jsonBlock, 0, len(blocks))

	for _, block := range blocks {
		entry := jsonBlock{
			Index:     block.Index,
			Kind:      block.Kind,
			Content:   block.Code,
			StartLine: block.StartLine,
			EndLine:   block.EndLine,
			SourceID:  block.Source,
		}

		if len(block.Lang) != 0 {
			lang := block.Lang
			entry.Language = &lang
		}

		payload = append(payload, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(payload)
}
