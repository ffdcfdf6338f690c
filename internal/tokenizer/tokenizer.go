package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for HTTP request lines.
// The matchers are tried in order:
// 1. Space (a run of whitespace, see IsSpace)
// 2. Word (a run of anything else)
//
// Together they cover every rune, so tokenizing a line never stalls.
// Whitespace is significant (it separates words), so the default
// whitespace skipper is not used.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		SpaceMatcher(),
		WordMatcher(),
	)
}

// NewTokenizerWithStream creates a request-line tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// Words splits a request line into its whitespace-separated words.
// Leading and trailing whitespace produce no empty words.
func Words(line string) []string {
	tok := NewTokenizer()
	tok.Initialize(line)

	tokens, eos := tok.Tokenize()
	if !eos {
		return nil
	}

	words := make([]string, 0, 3)
	for _, t := range tokens {
		if t.Kind() == TokenWord {
			words = append(words, t.ValueString())
		}
	}
	return words
}

// IsSpace reports whether r separates words in a request line.
// The set is the Latin-1 whitespace set: HT, LF, VT, FF, CR, the
// information separators 0x1C-0x1F, SP, NEL (0x85) and NBSP (0xA0).
func IsSpace(r rune) bool {
	switch {
	case r >= '\t' && r <= '\r':
		return true
	case r >= 0x1c && r <= 0x20:
		return true
	case r == 0x85 || r == 0xa0:
		return true
	}
	return false
}

// SpaceMatcher matches a run of whitespace characters.
func SpaceMatcher() tokenizer.Matcher {
	return runMatcher(TokenSpace, true)
}

// WordMatcher matches a run of non-whitespace characters.
func WordMatcher() tokenizer.Matcher {
	return runMatcher(TokenWord, false)
}

func runMatcher(kind string, space bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if IsSpace(r) != space {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(kind, value)
	}
}
