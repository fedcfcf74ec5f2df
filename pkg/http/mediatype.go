package http

import (
	"github.com/shapestone/strict-http/internal/grammar"
)

// MediaType is a parsed media-type value such as a Content-Type.
//
// Parameter names are keyed by their raw token bytes as given (no case
// folding is applied at this layer) and a repeated name overwrites the
// previous value (last-wins). Parameter values are raw octet sequences:
// a quoted-string value may legally carry opaque bytes in 0x80-0xFF.
type MediaType struct {
	Type       string
	Subtype    string
	Parameters map[string][]byte
}

// ParseMediaType parses an already-extracted header value against
//
//	type "/" subtype *( OWS ";" OWS parameter )
//	parameter = token "=" ( token / quoted-string )
//
// anchored at the start and consumed to the end: any trailing bytes that do
// not form one more parameter are a reject, not ignored. Quoted-string
// values are unescaped by dropping every backslash octet and copying all
// other octets through verbatim.
func ParseMediaType(value []byte) (*MediaType, error) {
	tl := grammar.TokenLen(value)
	if tl == 0 {
		return nil, &MediaTypeError{Detail: "missing type", Position: 0}
	}
	if tl >= len(value) || value[tl] != '/' {
		return nil, &MediaTypeError{Detail: "missing '/' after type", Position: tl}
	}
	pos := tl + 1

	sl := grammar.TokenLen(value[pos:])
	if sl == 0 {
		return nil, &MediaTypeError{Detail: "missing subtype", Position: pos}
	}

	m := &MediaType{
		Type:       string(value[:tl]),
		Subtype:    string(value[pos : pos+sl]),
		Parameters: map[string][]byte{},
	}
	pos += sl

	for pos < len(value) {
		for pos < len(value) && grammar.IsOWS(value[pos]) {
			pos++
		}
		if pos >= len(value) || value[pos] != ';' {
			return nil, &MediaTypeError{Detail: "expected ';' before parameter", Position: pos}
		}
		pos++
		for pos < len(value) && grammar.IsOWS(value[pos]) {
			pos++
		}

		nl := grammar.TokenLen(value[pos:])
		if nl == 0 {
			return nil, &MediaTypeError{Detail: "missing parameter name", Position: pos}
		}
		name := string(value[pos : pos+nl])
		pos += nl

		if pos >= len(value) || value[pos] != '=' {
			return nil, &MediaTypeError{Detail: "missing '=' after parameter name", Position: pos}
		}
		pos++

		var val []byte
		if pos < len(value) && value[pos] == '"' {
			ql := grammar.QuotedStringLen(value[pos:])
			if ql < 0 {
				return nil, &MediaTypeError{Detail: "unterminated quoted-string", Position: pos}
			}
			val = grammar.Unquote(value[pos : pos+ql])
			pos += ql
		} else {
			vl := grammar.TokenLen(value[pos:])
			if vl == 0 {
				return nil, &MediaTypeError{Detail: "missing parameter value", Position: pos}
			}
			val = append([]byte(nil), value[pos:pos+vl]...)
			pos += vl
		}

		// Last-wins on repeated names, matching plain map insertion.
		m.Parameters[name] = val
	}

	return m, nil
}
