package http

import (
	"errors"
	"fmt"
)

// Each grammar layer reports its own tagged error type so callers can tell
// which layer rejected the input and map it to protocol-correct behavior
// (e.g. Format → 400, UnrecognizedVersion → 505). Sub-errors are wrapped,
// never flattened; errors.As reaches the innermost cause through Unwrap.

// LineErrorKind tags line-framing failures.
type LineErrorKind int

const (
	// LineUnexpectedEOF: the stream ended before any line content.
	LineUnexpectedEOF LineErrorKind = iota + 1
	// LineBareLF: the line did not terminate in exactly CRLF.
	LineBareLF
	// LineTooLong: the line reached the length cap without terminating.
	LineTooLong
	// LineIO: the underlying stream read failed.
	LineIO
)

// LineError reports a failure to frame one CRLF-terminated line.
type LineError struct {
	Kind  LineErrorKind
	Cause error // set for LineIO
}

func (e *LineError) Error() string {
	switch e.Kind {
	case LineUnexpectedEOF:
		return "http: unexpected end of input"
	case LineBareLF:
		return "http: line not terminated by CRLF"
	case LineTooLong:
		return fmt.Sprintf("http: line exceeds %d bytes", MaxLineBytes)
	case LineIO:
		return fmt.Sprintf("http: read: %v", e.Cause)
	}
	return "http: line error"
}

func (e *LineError) Unwrap() error { return e.Cause }

// RequestLineErrorKind tags request-line failures.
type RequestLineErrorKind int

const (
	// RequestLineMalformed: the line is not "token SP token SP version"
	// with single-space separators.
	RequestLineMalformed RequestLineErrorKind = iota + 1
	// InvalidMethod: the method does not match the token grammar.
	InvalidMethod
	// InvalidTarget: the request-target is not a well-formed URI reference.
	InvalidTarget
	// UnrecognizedVersion: the version is not a recognized literal.
	UnrecognizedVersion
)

// RequestLineError reports a rejected request line.
type RequestLineError struct {
	Kind   RequestLineErrorKind
	Detail string
	Cause  error
}

func (e *RequestLineError) Error() string {
	switch e.Kind {
	case InvalidMethod:
		return fmt.Sprintf("http: invalid method: %s", e.Detail)
	case InvalidTarget:
		return fmt.Sprintf("http: invalid request-target: %s", e.Detail)
	case UnrecognizedVersion:
		return fmt.Sprintf("http: unrecognized version: %s", e.Detail)
	}
	return fmt.Sprintf("http: malformed request line: %s", e.Detail)
}

func (e *RequestLineError) Unwrap() error { return e.Cause }

// HeaderFieldErrorKind tags header-field failures.
type HeaderFieldErrorKind int

const (
	// HeaderFieldMalformed: the line is not "token ':' OWS field-content
	// OWS". Includes whitespace before the colon and obsolete line folding,
	// both rejected outright as smuggling vectors.
	HeaderFieldMalformed HeaderFieldErrorKind = iota + 1
	// InvalidHeaderName: the name fails the container's name rule.
	InvalidHeaderName
	// InvalidHeaderValue: the value fails the container's value rule.
	InvalidHeaderValue
)

// HeaderFieldError reports a rejected header field line.
type HeaderFieldError struct {
	Kind   HeaderFieldErrorKind
	Detail string
}

func (e *HeaderFieldError) Error() string {
	switch e.Kind {
	case InvalidHeaderName:
		return fmt.Sprintf("http: invalid header name: %s", e.Detail)
	case InvalidHeaderValue:
		return fmt.Sprintf("http: invalid header value: %s", e.Detail)
	}
	return fmt.Sprintf("http: malformed header field: %s", e.Detail)
}

// MediaTypeError reports a rejected media-type value.
type MediaTypeError struct {
	Detail   string
	Position int // byte offset of the rejected input
}

func (e *MediaTypeError) Error() string {
	return fmt.Sprintf("http: invalid media type at offset %d: %s", e.Position, e.Detail)
}

// RequestHeaderError wraps whichever sub-parser error aborted a full header
// block parse. The innermost cause is preserved for errors.As.
type RequestHeaderError struct {
	Cause error
}

func (e *RequestHeaderError) Error() string {
	return fmt.Sprintf("http: invalid request header: %v", e.Cause)
}

func (e *RequestHeaderError) Unwrap() error { return e.Cause }

// ErrTooManyFields is returned (wrapped in RequestHeaderError) when a header
// block exceeds the Decoder's MaxFields cap.
var ErrTooManyFields = errors.New("http: too many header fields")

// ErrTrailingData is returned (wrapped in RequestHeaderError) when
// UnmarshalHeader finds bytes after the header block's blank line.
var ErrTrailingData = errors.New("http: data after header block")

// IsFormat reports whether err is a grammar or framing rejection, as opposed
// to an I/O failure or a sub-token validation failure. Oversized lines count
// as format failures: the cap is part of the framing contract.
func IsFormat(err error) bool {
	var le *LineError
	if errors.As(err, &le) {
		return le.Kind != LineIO
	}
	var rle *RequestLineError
	if errors.As(err, &rle) {
		return rle.Kind == RequestLineMalformed
	}
	var hfe *HeaderFieldError
	if errors.As(err, &hfe) {
		return hfe.Kind == HeaderFieldMalformed
	}
	var mte *MediaTypeError
	if errors.As(err, &mte) {
		return true
	}
	return errors.Is(err, ErrTooManyFields) || errors.Is(err, ErrTrailingData)
}

// IsIO reports whether err originated in the underlying stream rather than
// in the input's grammar.
func IsIO(err error) bool {
	var le *LineError
	return errors.As(err, &le) && le.Kind == LineIO
}
