package retok

import (
	"regexp"
	"strings"
)

// compilePattern applies the match options to pattern and compiles it with
// the standard regexp engine. Compilation is deterministic and side-effect
// free: the same (pattern, options) pair always produces a matcher with
// identical behavior, so redundant compilation is harmless.
//
// MultilineAnchors and DotAll map onto the engine's (?m) and (?s) flags.
// UnicodeClasses has no engine flag; the engine's \w, \d and \s are
// ASCII-only, so the option is implemented by rewriting those classes to
// Unicode property classes before compiling (see widenPerlClasses).
//
// Match disambiguation is the engine's own: leftmost match wins, and among
// matches at the same position alternation prefers the earlier branch and
// quantifiers are greedy.
func compilePattern(pattern string, opts MatchOptions) (*regexp.Regexp, error) {
	src := pattern
	if opts.UnicodeClasses {
		src = widenPerlClasses(src)
	}
	if flags := inlineFlags(opts); flags != "" {
		src = flags + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

func inlineFlags(opts MatchOptions) string {
	switch {
	case opts.MultilineAnchors && opts.DotAll:
		return "(?ms)"
	case opts.MultilineAnchors:
		return "(?m)"
	case opts.DotAll:
		return "(?s)"
	}
	return ""
}

// widenPerlClasses rewrites the ASCII Perl classes in pattern to their
// Unicode equivalents: \w becomes letters, numbers and underscore, \d the
// decimal digits, \s the whitespace controls plus the separator category.
// The rewrite is escape-aware and understands bracket expressions, including
// embedded POSIX classes like [:alpha:]. \W and \S inside a bracket
// expression are left alone: a complement cannot be spliced into a class.
func widenPerlClasses(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 16)
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			next := pattern[i+1]
			if rep, ok := widenClass(next, inClass); ok {
				b.WriteString(rep)
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			i++
		case c == '[' && !inClass:
			inClass = true
			b.WriteByte(c)
		case c == '[' && inClass && i+1 < len(pattern) && pattern[i+1] == ':':
			// POSIX class; copy through its closing ":]" untouched.
			if end := strings.Index(pattern[i:], ":]"); end >= 0 {
				b.WriteString(pattern[i : i+end+2])
				i += end + 1
				break
			}
			b.WriteByte(c)
		case c == ']' && inClass:
			inClass = false
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func widenClass(class byte, inClass bool) (string, bool) {
	if inClass {
		switch class {
		case 'w':
			return `\p{L}\p{N}_`, true
		case 'd':
			return `\p{Nd}`, true
		case 'D':
			return `\P{Nd}`, true
		case 's':
			return `\t\n\v\f\r\p{Z}`, true
		}
		return "", false
	}
	switch class {
	case 'w':
		return `[\p{L}\p{N}_]`, true
	case 'W':
		return `[^\p{L}\p{N}_]`, true
	case 'd':
		return `\p{Nd}`, true
	case 'D':
		return `\P{Nd}`, true
	case 's':
		return `[\t\n\v\f\r\p{Z}]`, true
	case 'S':
		return `[^\t\n\v\f\r\p{Z}]`, true
	}
	return "", false
}
