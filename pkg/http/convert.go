package http

import (
	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/strict-http/internal/parser"
)

// NodeToRequestHeader converts an AST ObjectNode (as produced by Parse) back
// to a RequestHeader. The method, target, and version literals are run back
// through their validators, so a hand-built or edited node cannot produce a
// header the wire parser would have rejected.
func NodeToRequestHeader(node ast.SchemaNode) (*RequestHeader, error) {
	ph, err := parser.NodeToHeader(node)
	if err != nil {
		return nil, err
	}

	h := &RequestHeader{}

	if !ValidName(ph.Method) {
		return nil, &RequestLineError{Kind: InvalidMethod, Detail: ph.Method}
	}
	h.Method = internMethod([]byte(ph.Method))

	target, err := ParseTarget(ph.Target)
	if err != nil {
		return nil, &RequestLineError{Kind: InvalidTarget, Detail: ph.Target, Cause: err}
	}
	h.Target = target

	version, ok := ParseVersion(ph.Version)
	if !ok {
		return nil, &RequestLineError{Kind: UnrecognizedVersion, Detail: ph.Version}
	}
	h.Version = version

	for _, f := range ph.Fields {
		if !ValidName(f.Key) {
			return nil, &HeaderFieldError{Kind: InvalidHeaderName, Detail: f.Key}
		}
		if !ValidValue(f.Value) {
			return nil, &HeaderFieldError{Kind: InvalidHeaderValue, Detail: f.Key}
		}
		h.Fields.Add(f.Key, f.Value)
	}

	return h, nil
}
