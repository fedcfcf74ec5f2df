package http

import (
	"bytes"
	"io"
)

// Validate checks that input is a syntactically valid request header block
// per RFC 9112. It parses the request line and every field line; it does
// not evaluate semantic relationships between fields.
// Returns nil if valid, or the layer error identifying the problem.
func Validate(input string) error {
	_, err := UnmarshalHeader([]byte(input))
	return err
}

// ValidateReader reads all data from r and validates it as a request header
// block. See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	_, err = UnmarshalHeader(data)
	return err
}

func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
