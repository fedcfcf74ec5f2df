package http

import (
	"fmt"
	"io"
)

// Encoder writes wire-format output to a stream. It covers the thin
// response side of this layer: the status line a transport needs in order
// to answer a rejected parse (e.g. a 400), plus request-header re-encoding.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// EncodeHeader writes the wire-format encoding of h.
func (enc *Encoder) EncodeHeader(h *RequestHeader) error {
	data, err := MarshalHeader(h)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}

// EncodeStatusLine writes "VERSION STATUS REASON\r\n". The reason phrase
// must not contain CR or LF.
func (enc *Encoder) EncodeStatusLine(version Version, statusCode int, reason string) error {
	if statusCode < 100 || statusCode > 999 {
		return fmt.Errorf("http: status code out of range: %d", statusCode)
	}
	for i := 0; i < len(reason); i++ {
		if reason[i] == '\r' || reason[i] == '\n' {
			return fmt.Errorf("http: CR/LF in reason phrase")
		}
	}
	buf := appendStatusLine(nil, version, statusCode, reason)
	_, err := enc.w.Write(buf)
	return err
}
