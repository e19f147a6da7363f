package retok

import "strings"

// Mode selects how a tokenizer's pattern is interpreted.
type Mode int

// Supported tokenization modes.
const (
	// ModeToken treats pattern matches as the tokens; text between
	// matches is discarded.
	ModeToken Mode = iota
	// ModeGap treats pattern matches as separators; the tokens are the
	// fragments between them.
	ModeGap
)

// String returns the canonical lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeToken:
		return "token"
	case ModeGap:
		return "gap"
	default:
		return "unknown"
	}
}

// MatchOptions controls the matching semantics of a tokenizer's pattern.
// Each option maps to an observable property of the compiled matcher; see
// compile.go for how they are applied.
type MatchOptions struct {
	// UnicodeClasses widens the Perl character classes (\w, \d, \s and
	// their negations) to their Unicode equivalents. Go's regexp engine
	// keeps these classes ASCII-only by default.
	UnicodeClasses bool
	// MultilineAnchors makes ^ and $ match at line boundaries in
	// addition to the beginning and end of the text.
	MultilineAnchors bool
	// DotAll makes . match any character, including newline.
	DotAll bool
}

// DefaultMatchOptions returns the default option set: all options enabled.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{UnicodeClasses: true, MultilineAnchors: true, DotAll: true}
}

// String renders the enabled options as a comma-separated list, or "none".
func (o MatchOptions) String() string {
	var parts []string
	if o.UnicodeClasses {
		parts = append(parts, "unicode_classes")
	}
	if o.MultilineAnchors {
		parts = append(parts, "multiline_anchors")
	}
	if o.DotAll {
		parts = append(parts, "dot_all")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}
