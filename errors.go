package retok

import "fmt"

// PatternError reports that a tokenizer pattern did not compile. It carries
// the pattern as the caller supplied it, before any option-driven rewriting.
// A configuration that produced a PatternError is unusable; the error is not
// retried on later calls.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("retok: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
