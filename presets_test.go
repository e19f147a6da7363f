package retok

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleText = "Good muffins cost $3.88\nin New York.  Please buy me\ntwo of them.\n\nThanks."

func TestWhitespacePreset(t *testing.T) {
	got := WhitespaceTokenize(sampleText)
	want := []string{
		"Good", "muffins", "cost", "$3.88", "in", "New", "York.",
		"Please", "buy", "me", "two", "of", "them.", "Thanks.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("whitespace tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestWordPunctPreset(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{
			text: "Good $3.88",
			want: []string{"Good", "$", "3", ".", "88"},
		},
		{
			text: sampleText,
			want: []string{
				"Good", "muffins", "cost", "$", "3", ".", "88", "in", "New", "York",
				".", "Please", "buy", "me", "two", "of", "them", ".", "Thanks", ".",
			},
		},
	}
	for _, tc := range tests {
		got := WordPunctTokenize(tc.text)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("WordPunctTokenize(%q) mismatch (-want +got):\n%s", tc.text, diff)
		}
	}
}

func TestBlankLinePreset(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{
			text: "line one\n\nline two",
			want: []string{"line one", "line two"},
		},
		{
			text: sampleText,
			want: []string{
				"Good muffins cost $3.88\nin New York.  Please buy me\ntwo of them.",
				"Thanks.",
			},
		},
		{
			// Horizontal whitespace on the blank line still separates.
			text: "a\n \t\nb",
			want: []string{"a", "b"},
		},
	}
	for _, tc := range tests {
		got := BlankLineTokenize(tc.text)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("BlankLineTokenize(%q) mismatch (-want +got):\n%s", tc.text, diff)
		}
	}
}

// Joining whitespace tokens with a single space and re-tokenizing must give
// the same tokens back.
func TestWhitespaceIdempotence(t *testing.T) {
	texts := []string{sampleText, " a  b ", "", "one", "\t\nmixed   spacing\n"}
	for _, text := range texts {
		first := WhitespaceTokenize(text)
		again := WhitespaceTokenize(strings.Join(first, " "))
		if diff := cmp.Diff(first, again); diff != "" {
			t.Errorf("idempotence broken for %q (-first +again):\n%s", text, diff)
		}
	}
}

// Factories hand out fresh instances, while the facade shares one; both must
// behave identically.
func TestPresetFactories(t *testing.T) {
	a, b := WordPunct(), WordPunct()
	if a == b {
		t.Error("WordPunct() should return a fresh instance per call")
	}
	if diff := cmp.Diff(a.Tokenize(sampleText), b.Tokenize(sampleText)); diff != "" {
		t.Errorf("fresh instances disagree:\n%s", diff)
	}
	if diff := cmp.Diff(a.Tokenize(sampleText), WordPunctTokenize(sampleText)); diff != "" {
		t.Errorf("facade disagrees with factory:\n%s", diff)
	}
}

func TestPresetConfigurations(t *testing.T) {
	tests := []struct {
		tok     *Tokenizer
		pattern string
		mode    Mode
	}{
		{Whitespace(), `\s+`, ModeGap},
		{BlankLines(), `\s*\n\s*\n\s*`, ModeGap},
		{WordPunct(), `\w+|[^\w\s]+`, ModeToken},
	}
	for _, tc := range tests {
		if tc.tok.Pattern() != tc.pattern {
			t.Errorf("pattern = %q, want %q", tc.tok.Pattern(), tc.pattern)
		}
		if tc.tok.Mode() != tc.mode {
			t.Errorf("%q: mode = %s, want %s", tc.pattern, tc.tok.Mode(), tc.mode)
		}
		if !tc.tok.DiscardEmpty() {
			t.Errorf("%q: presets discard empty tokens", tc.pattern)
		}
		if tc.tok.Options() != DefaultMatchOptions() {
			t.Errorf("%q: presets use default match options", tc.pattern)
		}
	}
}
