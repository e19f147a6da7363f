package retok

import "iter"

// Span is a half-open [Start, End) byte-offset range into a tokenized text.
// Slicing the text at a span reproduces the corresponding token.
type Span struct {
	Start int
	End   int
}

// Slice returns the substring of text the span covers.
func (s Span) Slice(text string) string { return text[s.Start:s.End] }

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// SpanTokenize returns the token boundaries of text as a lazy sequence of
// spans. The sequence is finite and restartable: every range over it starts
// from the beginning. For any text, slicing text at the yielded spans
// reproduces Tokenize(text) element for element.
//
// The scan cursor lives inside the returned iterator, so a shared Tokenizer
// may serve concurrent SpanTokenize calls on different texts.
func (t *Tokenizer) SpanTokenize(text string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		// The engine guarantees progress on zero-width matches: an empty
		// match abutting the previous match is dropped and the scan
		// advances by one rune before searching again.
		matches := t.re.FindAllStringIndex(text, -1)
		if t.mode == ModeToken {
			for _, m := range matches {
				if !yield(Span{m[0], m[1]}) {
					return
				}
			}
			return
		}
		last := 0
		for _, m := range matches {
			if !(t.discardEmpty && last == m[0]) {
				if !yield(Span{last, m[0]}) {
					return
				}
			}
			last = m[1]
		}
		if t.discardEmpty && last == len(text) {
			return
		}
		yield(Span{last, len(text)})
	}
}

// SpanTokenizeAll materializes SpanTokenize for each text in order.
func (t *Tokenizer) SpanTokenizeAll(texts []string) [][]Span {
	out := make([][]Span, len(texts))
	for i, text := range texts {
		for s := range t.SpanTokenize(text) {
			out[i] = append(out[i], s)
		}
	}
	return out
}
