package mdcode

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/shlex"
)

// Meta holds key-value attributes given after the language in an info string.
type Meta map[string]interface{}

// Get returns the attribute name as a string, or "" when it is not set.
func (m Meta) Get(name string) string {
	switch value := m[name].(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// parseInfo splits an info string into the language token and its attributes.
// Attributes that cannot be parsed are dropped; the language is kept.
func parseInfo(info string) (string, Meta) {
	info = strings.TrimSpace(info)
	if len(info) == 0 {
		return "", nil
	}

	lang, rest := info, ""
	if idx := strings.IndexFunc(info, unicode.IsSpace); idx >= 0 {
		lang, rest = info[:idx], info[idx:]
	}

	meta, err := parseMeta(strings.TrimSpace(rest))
	if err != nil {
		return lang, Meta{}
	}

	return lang, meta
}

// parseMeta reads attributes either as a JSON object or as shell-style
// key=value words, optionally wrapped in braces.
func parseMeta(input string) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if isJSONObject(input) {
		var meta Meta

		if err := json.Unmarshal([]byte(input), &meta); err != nil {
			return nil, err
		}

		return meta, nil
	}

	if strings.HasPrefix(input, "{") && strings.HasSuffix(input, "}") {
		input = input[1 : len(input)-1]
	}

	words, err := shlex.Split(input)
	if err != nil {
		return nil, err
	}

	meta := make(Meta, len(words))

	for _, word := range words {
		if key, value, found := strings.Cut(word, "="); found && len(key) > 0 {
			meta[key] = value
		}
	}

	return meta, nil
}

// isJSONObject reports whether s opens like a JSON object: a brace followed
// by a quoted key or the closing brace.
func isJSONObject(s string) bool {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "{")
	if !ok {
		return false
	}

	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)

	return strings.HasPrefix(rest, `"`) || strings.HasPrefix(rest, "}")
}
