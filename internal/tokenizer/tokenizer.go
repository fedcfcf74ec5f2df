package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/strict-http/internal/grammar"
)

// NewTokenizer creates a tokenizer for request-header wire format.
// The format is line-oriented, so the matchers work at the line level:
// 1. CRLF and the strict-reject bare-LF/bare-CR variants
// 2. SP / OWS runs
// 3. Colon (field separator)
// 4. HTTP version literal
// 5. Token runs (tchar), then generic text
//
// The default whitespace skipper is not used: spaces and line endings are
// semantically significant here.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		// Line endings first; they are structural.
		EOLMatcher(),

		// Whitespace: a single SP is its own kind (request-line separator),
		// longer runs are OWS.
		WhitespaceMatcher(),

		// Field separator.
		tokenizer.StringMatcherFunc(TokenColon, ":"),

		// HTTP version (before generic token/text).
		VersionMatcher(),

		// tchar runs: methods, field names, media-type tokens.
		TokenMatcher(),

		// Everything else until a structural octet.
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a wire-format tokenizer over a
// pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// EOLMatcher matches line endings, distinguishing strict CRLF from the bare
// LF and orphan CR shapes the strict parser rejects.
func EOLMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}

		if r == '\r' {
			stream.NextChar()
			r2, ok := stream.PeekChar()
			if ok && r2 == '\n' {
				stream.NextChar()
				return tokenizer.NewToken(TokenCRLF, []rune{'\r', '\n'})
			}
			return tokenizer.NewToken(TokenBareCR, []rune{'\r'})
		}
		if r == '\n' {
			stream.NextChar()
			return tokenizer.NewToken(TokenBareLF, []rune{'\n'})
		}
		return nil
	}
}

// WhitespaceMatcher matches a run of SP/HTAB. A run of exactly one space is
// emitted as SP (the request-line separator); anything longer, or anything
// containing a tab, is OWS.
func WhitespaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || (r != ' ' && r != '\t') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		if len(value) == 1 && value[0] == ' ' {
			return tokenizer.NewToken(TokenSP, value)
		}
		return tokenizer.NewToken(TokenOWS, value)
	}
}

// VersionMatcher matches "HTTP/" followed by digits and dots.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		prefix := []rune("HTTP/")
		var value []rune

		for _, expected := range prefix {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if (r >= '0' && r <= '9') || r == '.' {
				stream.NextChar()
				value = append(value, r)
			} else {
				break
			}
		}

		return tokenizer.NewToken(TokenVersion, value)
	}
}

// TokenMatcher matches a run of tchar octets.
func TokenMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || r > 0x7F || !grammar.IsTchar(byte(r)) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenToken, value)
	}
}

// TextMatcher matches any run of characters up to a structural octet (SP,
// HTAB, CR, LF, colon, or end of stream). Targets and field values land
// here.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == ':' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}
