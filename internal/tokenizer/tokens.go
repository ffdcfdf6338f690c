// Package tokenizer provides request-line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for the request line.
// A request line is a run of words separated by runs of whitespace.
const (
	TokenWord  = "Word"  // method, request-target, version, or any stray word
	TokenSpace = "Space" // one or more whitespace characters
)
