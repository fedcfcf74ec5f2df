// Package parser maps parsed request headers to shape-core AST nodes and
// back, so header tooling can operate on the same node types as the other
// shape format parsers.
//
// A header block is mapped to an ObjectNode:
//
//	{ "type": "request-header", "method": "POST", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "fields": [{"key": "Host", "value": "example.com"}, ...] }
package parser

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// Header is the neutral header-block representation exchanged with the AST
// layer. Validation of the individual tokens belongs to pkg/http; this
// package only shuttles structure.
type Header struct {
	Method  string
	Target  string
	Version string
	Fields  []Field
}

// Field is one name/value pair.
type Field struct {
	Key   string
	Value string
}

// HeaderToNode converts a header block to an AST ObjectNode.
func HeaderToNode(h *Header) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request-header", zeroPos),
		"method":  ast.NewLiteralNode(h.Method, zeroPos),
		"target":  ast.NewLiteralNode(h.Target, zeroPos),
		"version": ast.NewLiteralNode(h.Version, zeroPos),
		"fields":  fieldsToNode(h.Fields),
	}
	return ast.NewObjectNode(props, zeroPos)
}

func fieldsToNode(fields []Field) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(fields))
	for i, f := range fields {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(f.Key, zeroPos),
			"value": ast.NewLiteralNode(f.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToHeader converts an AST ObjectNode (as produced by HeaderToNode) back
// to the neutral header representation.
func NodeToHeader(node ast.SchemaNode) (*Header, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	h := &Header{}

	if s, ok := literalString(props["method"]); ok {
		h.Method = s
	}
	if s, ok := literalString(props["target"]); ok {
		h.Target = s
	}
	if s, ok := literalString(props["version"]); ok {
		h.Version = s
	}
	if v, ok := props["fields"]; ok {
		fields, err := nodeToFields(v)
		if err != nil {
			return nil, err
		}
		h.Fields = fields
	}

	return h, nil
}

func nodeToFields(node ast.SchemaNode) ([]Field, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for fields, got %T", node)
	}

	elements := arr.Elements()
	fields := make([]Field, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		var f Field
		if s, ok := literalString(props["key"]); ok {
			f.Key = s
		}
		if s, ok := literalString(props["value"]); ok {
			f.Value = s
		}
		fields = append(fields, f)
	}

	return fields, nil
}

func literalString(node ast.SchemaNode) (string, bool) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return "", false
	}
	s, ok := lit.Value().(string)
	return s, ok
}
