// Package http provides strict grammar-level parsing of HTTP/1.x request
// headers per RFC 9112: the request start-line, header field lines, and the
// media-type parameter sub-grammar used inside values such as Content-Type.
//
// The parser is fail-closed. Anything that does not conform to the wire
// grammar is rejected with a structured error rather than repaired: bare LF
// line endings, whitespace between a field name and its colon, obsolete line
// folding, and unrecognized protocol versions all abort the parse. Ambiguous
// parses are a request-smuggling hazard, so there is no best-effort mode.
//
// # Thread Safety
//
// All functions are safe for concurrent use by multiple goroutines. Each
// call owns its own state; a Decoder is the only stateful type and must not
// be shared without external serialization.
//
// # Parsing APIs
//
//   - ParseHeader/NewDecoder - assemble a full request header from a stream
//   - ParseRequestLine/ParseHeaderField - single-line parsers
//   - ParseMediaType - media-type values (e.g. Content-Type)
//   - Parse/ParseReader - AST-based parsing via shape-core
package http

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// RequestHeader is one fully parsed request header block: the request line
// plus the ordered field map. It is constructed atomically by the header
// block assembler and is not mutated by this package after being returned.
type RequestHeader struct {
	Method  Method  // validated method token
	Target  Target  // validated request-target
	Version Version // recognized protocol version
	Fields  Headers // ordered, repeatable header fields
}

// Header is a single header field as it appeared on the wire. Value may
// carry opaque octets in the 0x80-0xFF range; they are passed through
// unmodified, never interpreted as UTF-8.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered, repeatable list of header fields. Field names are
// case-insensitive per RFC 9112 but the original spelling is preserved.
//
// Duplicate names are kept in order of appearance (list-append merge
// policy): Get returns the first occurrence and Values returns all of them.
// This preserves fields such as Set-Cookie and Cache-Control that legally
// repeat; callers that want last-wins semantics can apply it over Values.
type Headers []Header

// Get returns the first field value for the given name (case-insensitive),
// or "" if the name is absent.
func (h Headers) Get(key string) string {
	for _, f := range h {
		if strings.EqualFold(f.Key, key) {
			return f.Value
		}
	}
	return ""
}

// Values returns all field values for the given name (case-insensitive) in
// order of appearance.
func (h Headers) Values(key string) []string {
	var vals []string
	for _, f := range h {
		if strings.EqualFold(f.Key, key) {
			vals = append(vals, f.Value)
		}
	}
	return vals
}

// Has reports whether a field with the given name is present.
func (h Headers) Has(key string) bool {
	for _, f := range h {
		if strings.EqualFold(f.Key, key) {
			return true
		}
	}
	return false
}

// Add appends a field without replacing existing ones. This is the insert
// operation the header block assembler uses for every parsed line.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Set replaces the first field with the given name (case-insensitive),
// removes any later duplicates, or appends if the name is absent.
func (h *Headers) Set(key, value string) {
	for i, f := range *h {
		if strings.EqualFold(f.Key, key) {
			(*h)[i].Value = value
			j := i + 1
			for j < len(*h) {
				if strings.EqualFold((*h)[j].Key, key) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Del removes all fields with the given name (case-insensitive).
func (h *Headers) Del(key string) {
	j := 0
	for _, f := range *h {
		if !strings.EqualFold(f.Key, key) {
			(*h)[j] = f
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a deep copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ValidName reports whether s satisfies the container's construction rule
// for field names (the RFC 9112 token grammar).
func ValidName(s string) bool {
	return httpguts.ValidHeaderFieldName(s)
}

// ValidValue reports whether s satisfies the container's construction rule
// for field values: no CTL octets other than HTAB. High octets pass.
func ValidValue(s string) bool {
	return httpguts.ValidHeaderFieldValue(s)
}
