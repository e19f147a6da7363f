package retok

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat(sampleText+"\n\n", 50)

func BenchmarkWordPunctTokenize(b *testing.B) {
	b.ReportAllocs()
	tok := WordPunct()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if toks := tok.Tokenize(benchText); len(toks) == 0 {
			b.Fatal("no tokens")
		}
	}
}

func BenchmarkWhitespaceTokenize(b *testing.B) {
	b.ReportAllocs()
	tok := Whitespace()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if toks := tok.Tokenize(benchText); len(toks) == 0 {
			b.Fatal("no tokens")
		}
	}
}

func BenchmarkSpanTokenize(b *testing.B) {
	b.ReportAllocs()
	tok := WordPunct()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range tok.SpanTokenize(benchText) {
			n++
		}
		if n == 0 {
			b.Fatal("no spans")
		}
	}
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := New(wordPunctPattern); err != nil {
			b.Fatal(err)
		}
	}
}
