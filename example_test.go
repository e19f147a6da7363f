package retok_test

import (
	"fmt"

	"github.com/nlpkit/retok"
)

func ExampleNew() {
	tok, err := retok.New(`\s+`, retok.Gaps())
	if err != nil {
		panic(err)
	}
	fmt.Println(tok.Tokenize(" a  b "))
	// Output: [a b]
}

func ExampleWordPunctTokenize() {
	fmt.Println(retok.WordPunctTokenize("Good $3.88"))
	// Output: [Good $ 3 . 88]
}

func ExampleTokenizer_SpanTokenize() {
	tok := retok.Whitespace()
	text := "two words"
	for s := range tok.SpanTokenize(text) {
		fmt.Printf("%d:%d %s\n", s.Start, s.End, s.Slice(text))
	}
	// Output:
	// 0:3 two
	// 4:9 words
}
