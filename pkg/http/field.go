package http

import (
	"bytes"

	"github.com/shapestone/strict-http/internal/grammar"
)

// ParseHeaderField parses one header field line, "token ':' OWS
// field-content OWS", anchored. The input must not include the trailing
// CRLF.
//
// Two shapes that lenient parsers repair are hard rejects here:
//
//   - whitespace between the field name and the colon (RFC 9112 §5.1
//     requires servers to reject this, not warn)
//   - obsolete line folding, detected as a leading SP/HTAB on the line;
//     folded values are rejected rather than unfolded
//
// OWS around the value is stripped; interior whitespace is preserved
// verbatim. The value is treated as an opaque octet sequence; bytes
// 0x80-0xFF pass through unmodified so legacy non-UTF-8 values survive.
func ParseHeaderField(line []byte) (Header, error) {
	if len(line) == 0 {
		return Header{}, &HeaderFieldError{Kind: HeaderFieldMalformed, Detail: "empty line"}
	}
	if grammar.IsOWS(line[0]) {
		return Header{}, &HeaderFieldError{Kind: HeaderFieldMalformed, Detail: "obsolete line folding not supported"}
	}

	colon := bytes.IndexByte(line, ':')
	if colon < 0 {
		return Header{}, &HeaderFieldError{Kind: HeaderFieldMalformed, Detail: "missing colon"}
	}
	if colon == 0 {
		return Header{}, &HeaderFieldError{Kind: HeaderFieldMalformed, Detail: "empty field name"}
	}

	name := line[:colon]
	if grammar.IsOWS(name[len(name)-1]) {
		return Header{}, &HeaderFieldError{Kind: HeaderFieldMalformed, Detail: "whitespace before colon"}
	}
	if !grammar.IsToken(name) {
		return Header{}, &HeaderFieldError{Kind: InvalidHeaderName, Detail: string(name)}
	}

	value := grammar.TrimOWS(line[colon+1:])
	if !grammar.IsFieldContent(value) {
		return Header{}, &HeaderFieldError{Kind: HeaderFieldMalformed, Detail: "value is not field-content"}
	}

	// Container construction rules, checked independently of the line
	// grammar above so the two layers can disagree loudly instead of
	// silently.
	if !ValidName(string(name)) {
		return Header{}, &HeaderFieldError{Kind: InvalidHeaderName, Detail: string(name)}
	}
	if !ValidValue(string(value)) {
		return Header{}, &HeaderFieldError{Kind: InvalidHeaderValue, Detail: string(name)}
	}

	return Header{Key: internHeaderName(name), Value: string(value)}, nil
}
