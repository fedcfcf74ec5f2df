package http

import "bytes"

// UnmarshalHeader parses data as one complete request header block,
// including the terminating blank line. Trailing bytes after the blank line
// are a reject: this entry point is for exactly one header block, not a
// stream (use a Decoder for that).
func UnmarshalHeader(data []byte) (*RequestHeader, error) {
	r := bytes.NewReader(data)
	dec := NewDecoder(r)
	h, err := dec.DecodeRequestHeader()
	if err != nil {
		return nil, err
	}
	if dec.Buffered() != 0 || r.Len() != 0 {
		return nil, &RequestHeaderError{Cause: ErrTrailingData}
	}
	return h, nil
}
