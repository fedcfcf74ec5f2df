// Package grammar implements the RFC 9112 character-class primitives shared
// by every parser in this module: token, OWS, field-content, and
// quoted-string. It scans bytes directly against precomputed classification
// tables; there is no parsing logic here, only pure pattern matching.
//
// The tables are built once at package initialization and never mutated, so
// all functions are safe for concurrent use.
package grammar

// octetClass is a bitmask describing which grammar productions an octet may
// appear in.
type octetClass byte

const (
	// classTchar: token characters per RFC 9112 §5.6.2:
	// "!#$%&'*+-.^_`|~" plus DIGIT and ALPHA.
	classTchar octetClass = 1 << iota

	// classOWS: optional whitespace, SP or HTAB.
	classOWS

	// classFieldVis: field-vchar, visible ASCII (0x21-0x7E) or obs-text
	// (0x80-0xFF). obs-text octets are carried opaquely, never interpreted
	// as UTF-8.
	classFieldVis
)

var classes [256]octetClass

func init() {
	for _, b := range []byte("!#$%&'*+-.^_`|~") {
		classes[b] |= classTchar
	}
	for b := byte('0'); b <= '9'; b++ {
		classes[b] |= classTchar
	}
	for b := byte('A'); b <= 'Z'; b++ {
		classes[b] |= classTchar
	}
	for b := byte('a'); b <= 'z'; b++ {
		classes[b] |= classTchar
	}

	classes[' '] |= classOWS
	classes['\t'] |= classOWS

	for c := 0x21; c <= 0x7E; c++ {
		classes[c] |= classFieldVis
	}
	for c := 0x80; c <= 0xFF; c++ {
		classes[c] |= classFieldVis
	}
}

// IsTchar reports whether b may appear in a token.
func IsTchar(b byte) bool { return classes[b]&classTchar != 0 }

// IsOWS reports whether b is optional whitespace (SP or HTAB).
func IsOWS(b byte) bool { return classes[b]&classOWS != 0 }

// IsFieldVis reports whether b is a field-vchar: visible ASCII or an opaque
// high octet.
func IsFieldVis(b byte) bool { return classes[b]&classFieldVis != 0 }

// IsToken reports whether s is a non-empty run of token characters.
func IsToken(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	for _, b := range s {
		if classes[b]&classTchar == 0 {
			return false
		}
	}
	return true
}

// TokenLen returns the length of the token prefix of s, which may be zero.
func TokenLen(s []byte) int {
	i := 0
	for i < len(s) && classes[s[i]]&classTchar != 0 {
		i++
	}
	return i
}

// TrimOWS trims SP and HTAB from both ends of s.
func TrimOWS(s []byte) []byte {
	for len(s) > 0 && IsOWS(s[0]) {
		s = s[1:]
	}
	for len(s) > 0 && IsOWS(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// IsFieldContent reports whether s matches field-content: a non-empty value
// beginning and ending with a field-vchar, with interior octets drawn from
// field-vchar, SP, and HTAB. Interior whitespace is legal only between two
// visible-or-opaque octets, which the first/last checks enforce.
func IsFieldContent(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	if !IsFieldVis(s[0]) || !IsFieldVis(s[len(s)-1]) {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if classes[s[i]]&(classFieldVis|classOWS) == 0 {
			return false
		}
	}
	return true
}

// QuotedStringLen returns the length of the quoted-string prefix of s,
// including both delimiting quotes, or -1 if s does not begin with a
// complete quoted-string. A backslash escapes the octet that follows it, so
// an escaped quote does not terminate the string.
func QuotedStringLen(s []byte) int {
	if len(s) == 0 || s[0] != '"' {
		return -1
	}
	i := 1
	for i < len(s) {
		switch s[i] {
		case '"':
			return i + 1
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return -1
}

// Unquote decodes the content of a quoted-string. s must include the
// delimiting quotes (as returned by QuotedStringLen). The unescaping rule is
// deliberately simple: every backslash octet is dropped and every other
// octet, including the one immediately following a backslash, is copied
// through verbatim.
func Unquote(s []byte) []byte {
	body := s[1 : len(s)-1]
	out := make([]byte, 0, len(body))
	for _, b := range body {
		if b != '\\' {
			out = append(out, b)
		}
	}
	return out
}
