package http

import (
	"fmt"
	"sync"

	"github.com/shapestone/strict-http/internal/grammar"
)

// bufPool pools []byte slices for the marshal fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshaler is the interface implemented by types that can marshal
// themselves into request-header wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// MarshalHeader returns the wire-format encoding of h: the request line,
// each field line in order, and the terminating blank line.
//
// The fields are re-validated before serialization so a header mutated
// after parsing cannot smuggle CR/LF into the output.
func MarshalHeader(h *RequestHeader) ([]byte, error) {
	if h == nil {
		return nil, fmt.Errorf("http: MarshalHeader(nil)")
	}

	if !grammar.IsToken([]byte(h.Method)) {
		return nil, &RequestLineError{Kind: InvalidMethod, Detail: string(h.Method)}
	}
	if h.Target.Raw == "" {
		return nil, &RequestLineError{Kind: InvalidTarget, Detail: "empty request-target"}
	}
	if _, ok := ParseVersion(h.Version.String()); !ok {
		return nil, &RequestLineError{Kind: UnrecognizedVersion, Detail: h.Version.String()}
	}
	for _, f := range h.Fields {
		if !ValidName(f.Key) {
			return nil, &HeaderFieldError{Kind: InvalidHeaderName, Detail: f.Key}
		}
		if !ValidValue(f.Value) {
			return nil, &HeaderFieldError{Kind: InvalidHeaderValue, Detail: f.Key}
		}
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	buf = appendRequestLine(buf, h.Method, h.Target.Raw, h.Version)
	for _, f := range h.Fields {
		buf = appendHeaderField(buf, f.Key, f.Value)
	}
	buf = appendCRLF(buf)

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}

// MarshalHTTP implements Marshaler.
func (h *RequestHeader) MarshalHTTP() ([]byte, error) {
	return MarshalHeader(h)
}
