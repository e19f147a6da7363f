package retok

// Patterns behind the preset tokenizers.
const (
	whitespacePattern = `\s+`
	blankLinePattern  = `\s*\n\s*\n\s*`
	wordPunctPattern  = `\w+|[^\w\s]+`
)

// Whitespace returns a tokenizer that splits on runs of whitespace. Leading
// and trailing whitespace produce no empty tokens.
func Whitespace() *Tokenizer { return MustNew(whitespacePattern, Gaps()) }

// BlankLines returns a tokenizer that splits on one or more blank lines,
// swallowing the horizontal whitespace around them.
func BlankLines() *Tokenizer { return MustNew(blankLinePattern, Gaps()) }

// WordPunct returns a tokenizer that emits runs of word characters and runs
// of characters that are neither word nor whitespace as separate tokens.
func WordPunct() *Tokenizer { return MustNew(wordPunctPattern) }

// Shared preset instances backing the package-level functions. Tokenizers
// are immutable, so sharing them across callers and goroutines is safe.
var (
	whitespace = Whitespace()
	blankLines = BlankLines()
	wordPunct  = WordPunct()
)

// Tokenize builds a tokenizer for pattern and runs it on text in one call.
func Tokenize(text, pattern string, options ...Option) ([]string, error) {
	t, err := New(pattern, options...)
	if err != nil {
		return nil, err
	}
	return t.Tokenize(text), nil
}

// WhitespaceTokenize splits text on whitespace runs.
func WhitespaceTokenize(text string) []string { return whitespace.Tokenize(text) }

// BlankLineTokenize splits text on blank lines.
func BlankLineTokenize(text string) []string { return blankLines.Tokenize(text) }

// WordPunctTokenize splits text into word and punctuation tokens.
func WordPunctTokenize(text string) []string { return wordPunct.Tokenize(text) }
