package domain

import "strings"

// Kind tags an app variant. It is what the persisted document records.
type Kind string

// App variants.
const (
	KindEducation    Kind = "education"
	KindGame         Kind = "game"
	KindProductivity Kind = "productivity"
)

// Kinds returns every known variant.
func Kinds() []Kind {
	return []Kind{KindEducation, KindGame, KindProductivity}
}

// Label returns the capitalised name used in report messages.
func (k Kind) Label() string {
	switch k {
	case KindEducation:
		return "Education"
	case KindGame:
		return "Game"
	case KindProductivity:
		return "Productivity"
	default:
		return string(k)
	}
}

// ParseKind resolves a variant tag, ignoring case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindEducation, KindGame, KindProductivity:
		return k, nil
	default:
		return "", NewValidationErrorWithValue("kind", "unknown app kind "+s, s)
	}
}
