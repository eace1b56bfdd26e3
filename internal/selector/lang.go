package selector

import "strings"

type langMode int

const (
	langNoFilter langMode = iota
	langFilter
	langList
)

// Lang is the language part of a selection request: no filter, a filter on
// one language, or a query listing the languages present.
type Lang struct {
	mode langMode
	name string
}

// NoFilter keeps blocks of every language.
func NoFilter() Lang { return Lang{} }

// FilterBy keeps blocks whose language equals name, ignoring case.
func FilterBy(name string) Lang { return Lang{mode: langFilter, name: strings.ToLower(name)} }

// ListLanguages asks for the distinct languages instead of block content.
func ListLanguages() Lang { return Lang{mode: langList} }

// ParseLang maps a command line value to a Lang. An omitted flag means no
// filter, an empty value asks for the language listing.
func ParseLang(value string, given bool) Lang {
	switch {
	case !given:
		return NoFilter()
	case len(strings.TrimSpace(value)) == 0:
		return ListLanguages()
	default:
		return FilterBy(strings.TrimSpace(value))
	}
}

// Listing reports whether l is the language listing query.
func (l Lang) Listing() bool { return l.mode == langList }

// Name returns the filtered language, empty unless l filters.
func (l Lang) Name() string { return l.name }

// Match reports whether a block language passes the filter.
func (l Lang) Match(lang string) bool {
	if l.mode != langFilter {
		return true
	}

	return len(lang) != 0 && strings.EqualFold(lang, l.name)
}
