// Package retok splits text into tokens using a single regular expression.
//
// A pattern either matches the tokens themselves (token mode) or the
// separators between them (gap mode). Both modes are available as
// materialized token slices via Tokenize and as lazy offset sequences via
// SpanTokenize. Common splitters (whitespace, blank lines, word/punctuation)
// ship as ready-made presets.
package retok
