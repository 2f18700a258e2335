package domain

import (
	"slices"
	"strings"
)

// Language is a language an app supports, e.g. "English".
type Language string

// languageSet is an unordered set of languages.
type languageSet map[Language]struct{}

func (s languageSet) sorted() []Language {
	out := make([]Language, 0, len(s))
	for l := range s {
		out = append(out, l)
	}

	slices.Sort(out)

	return out
}

func (s languageSet) join(sep string) string {
	names := make([]string, 0, len(s))
	for _, l := range s.sorted() {
		names = append(names, string(l))
	}

	return strings.Join(names, sep)
}
