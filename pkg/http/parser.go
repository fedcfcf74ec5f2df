package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/strict-http/internal/parser"
)

// Parse parses one request header block into an AST.
//
// The input is a complete header block including the terminating blank
// line, validated by the same strict grammar as ParseHeader. Returns an
// ast.ObjectNode shaped as:
//
//	{ "type": "request-header", "method": "GET", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "fields": [{"key": "Host", "value": "example.com"}, ...] }
func Parse(input string) (ast.SchemaNode, error) {
	h, err := UnmarshalHeader([]byte(input))
	if err != nil {
		return nil, err
	}
	return parser.HeaderToNode(headerToInternal(h)), nil
}

// ParseReader reads all data from r and parses it as a request header block
// into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

func headerToInternal(h *RequestHeader) *parser.Header {
	fields := make([]parser.Field, len(h.Fields))
	for i, f := range h.Fields {
		fields[i] = parser.Field{Key: f.Key, Value: f.Value}
	}
	return &parser.Header{
		Method:  string(h.Method),
		Target:  h.Target.Raw,
		Version: h.Version.String(),
		Fields:  fields,
	}
}
