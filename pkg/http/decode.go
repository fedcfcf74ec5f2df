package http

import (
	"bufio"
	"io"
)

// MaxLineBytes caps one CRLF-terminated line, including its terminator. The
// cap is enforced before any grammar matching so adversarial input cannot
// grow the line buffer without bound.
const MaxLineBytes = 16384

// Decoder assembles request header blocks from an input stream.
//
// A Decoder is not safe for concurrent use; create one per stream. Parsing
// is synchronous: a read blocks until the stream yields data, an error, or
// EOF. Callers wanting timeouts or cancellation impose them on the stream
// below this layer (e.g. net.Conn deadlines).
type Decoder struct {
	r *bufio.Reader

	// MaxFields caps the number of header fields in one block; zero means
	// unlimited. The per-line cap is always enforced, but without a field
	// cap the cumulative header size is unbounded.
	MaxFields int
}

// NewDecoder returns a decoder reading from r. The stream is buffered at
// the line cap; bytes past the header block's terminating blank line remain
// unread in that buffer.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReaderSize(r, MaxLineBytes)}
}

// ParseHeader reads one complete request header block from r: the request
// line, then field lines up to and including the terminating blank line.
//
// Any failure (framing, grammar, sub-token validation, or I/O) aborts the
// whole parse and discards partial state; the returned error wraps the
// innermost cause. There is no best-effort mode.
func ParseHeader(r io.Reader) (*RequestHeader, error) {
	return NewDecoder(r).DecodeRequestHeader()
}

// Buffered returns the number of bytes read from the stream but not yet
// consumed by the header block parse. On a persistent connection these are
// the first bytes of the message body or of the next request.
func (d *Decoder) Buffered() int { return d.r.Buffered() }

// decodeState is the assembler's position within one header block.
type decodeState int

const (
	awaitingRequestLine decodeState = iota
	awaitingFields
	decodeDone
)

// DecodeRequestHeader runs the header block state machine once:
// awaitingRequestLine → awaitingFields → done. Each call parses one block;
// on success the stream is positioned just past the blank line, so a
// persistent connection can call it again for the next request.
//
// Recognized-but-unsupported versions (HTTP/0.9, HTTP/2.0) decode
// successfully; rejecting them is the caller's policy, checked via
// Version.Supported.
func (d *Decoder) DecodeRequestHeader() (*RequestHeader, error) {
	var h RequestHeader

	for state := awaitingRequestLine; state != decodeDone; {
		line, err := d.readLine()
		if err != nil {
			return nil, &RequestHeaderError{Cause: err}
		}

		switch state {
		case awaitingRequestLine:
			rl, err := ParseRequestLine(line)
			if err != nil {
				return nil, &RequestHeaderError{Cause: err}
			}
			h.Method = rl.Method
			h.Target = rl.Target
			h.Version = rl.Version
			state = awaitingFields

		case awaitingFields:
			if len(line) == 0 {
				state = decodeDone
				break
			}
			if d.MaxFields > 0 && len(h.Fields) >= d.MaxFields {
				return nil, &RequestHeaderError{Cause: ErrTooManyFields}
			}
			f, err := ParseHeaderField(line)
			if err != nil {
				return nil, &RequestHeaderError{Cause: err}
			}
			// Duplicate names append; merge policy lives in Headers.
			h.Fields.Add(f.Key, f.Value)
		}
	}

	return &h, nil
}

// readLine reads octets up to and including the next LF, or until the line
// cap is hit, whichever comes first. It succeeds only if the terminating
// pair is exactly CRLF, and returns the line without it. The returned slice
// aliases the read buffer and is valid only until the next read.
func (d *Decoder) readLine() ([]byte, error) {
	line, err := d.r.ReadSlice('\n')
	switch {
	case err == nil:
	case err == bufio.ErrBufferFull:
		return nil, &LineError{Kind: LineTooLong}
	case err == io.EOF:
		if len(line) == 0 {
			return nil, &LineError{Kind: LineUnexpectedEOF}
		}
		return nil, &LineError{Kind: LineBareLF}
	default:
		return nil, &LineError{Kind: LineIO, Cause: err}
	}

	if len(line) < 2 || line[len(line)-2] != '\r' {
		return nil, &LineError{Kind: LineBareLF}
	}
	return line[:len(line)-2], nil
}
