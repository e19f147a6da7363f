package retok

import (
	"fmt"
	"regexp"
)

// Tokenizer splits text using a single compiled pattern. A Tokenizer is
// immutable after construction and safe for concurrent use by multiple
// goroutines without synchronization.
type Tokenizer struct {
	pattern      string
	mode         Mode
	discardEmpty bool
	opts         MatchOptions
	re           *regexp.Regexp
}

// Option configures a Tokenizer at construction time.
type Option func(*Tokenizer)

// Gaps puts the tokenizer in gap mode: the pattern matches separators and
// the tokens are the fragments between them.
func Gaps() Option { return func(t *Tokenizer) { t.mode = ModeGap } }

// KeepEmpty keeps zero-length fragments in gap mode output. It has no
// effect in token mode.
func KeepEmpty() Option { return func(t *Tokenizer) { t.discardEmpty = false } }

// WithMatchOptions replaces the default match options (all enabled).
func WithMatchOptions(opts MatchOptions) Option {
	return func(t *Tokenizer) { t.opts = opts }
}

// New compiles pattern and returns a tokenizer for it. Defaults: token mode,
// empty gap fragments discarded, all match options enabled. The pattern is
// compiled eagerly, so an invalid pattern surfaces here as a *PatternError
// rather than on first use.
func New(pattern string, options ...Option) (*Tokenizer, error) {
	t := &Tokenizer{
		pattern:      pattern,
		mode:         ModeToken,
		discardEmpty: true,
		opts:         DefaultMatchOptions(),
	}
	for _, opt := range options {
		opt(t)
	}
	re, err := compilePattern(pattern, t.opts)
	if err != nil {
		return nil, err
	}
	t.re = re
	return t, nil
}

// MustNew is like New but panics on an invalid pattern. It simplifies
// package-level tokenizers built from fixed patterns.
func MustNew(pattern string, options ...Option) *Tokenizer {
	t, err := New(pattern, options...)
	if err != nil {
		panic(err)
	}
	return t
}

// Tokenize splits text into an ordered slice of tokens.
//
// In token mode the result holds every non-overlapping match of the
// pattern, leftmost first; text not covered by a match is discarded. In gap
// mode it holds the fragments between separator matches, including the
// fragments before the first and after the last separator; zero-length
// fragments are dropped unless KeepEmpty was set.
//
// Tokenize never fails: any text, including the empty string, is valid
// input, and a text with no matches yields an empty result in token mode.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.mode == ModeToken {
		return t.re.FindAllString(text, -1)
	}
	// Gap fragments are derived from the same span walk that SpanTokenize
	// performs, which keeps the two in lockstep.
	var out []string
	for s := range t.SpanTokenize(text) {
		out = append(out, s.Slice(text))
	}
	return out
}

// TokenizeAll applies Tokenize to each text in order.
func (t *Tokenizer) TokenizeAll(texts []string) [][]string {
	out := make([][]string, len(texts))
	for i, text := range texts {
		out[i] = t.Tokenize(text)
	}
	return out
}

// Pattern returns the pattern the tokenizer was built from.
func (t *Tokenizer) Pattern() string { return t.pattern }

// Mode reports whether the pattern matches tokens or gaps.
func (t *Tokenizer) Mode() Mode { return t.mode }

// DiscardEmpty reports whether zero-length gap fragments are dropped.
func (t *Tokenizer) DiscardEmpty() bool { return t.discardEmpty }

// Options returns the match options the pattern was compiled with.
func (t *Tokenizer) Options() MatchOptions { return t.opts }

// String returns a debug representation of the full configuration.
func (t *Tokenizer) String() string {
	return fmt.Sprintf("Tokenizer(pattern=%q, mode=%s, discard_empty=%t, match_options=%s)",
		t.pattern, t.mode, t.discardEmpty, t.opts)
}
