// Package syntax parses source text into tree-sitter syntax trees and holds
// the error reported when a tree does not have the expected shape.
package syntax

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// Parse builds the syntax tree of src. Malformed input still yields a tree;
// the broken parts show up as ERROR or missing nodes.
func Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())
	return parser.ParseCtx(ctx, nil, src)
}

// At returns the start position of n.
func At(n *sitter.Node) Pos {
	p := n.StartPoint()
	return Pos{
		Line:   int(p.Row) + 1,
		Col:    int(p.Column) + 1,
		Offset: int(n.StartByte()),
	}
}

// IsTrivia reports whether n is a comment.
func IsTrivia(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment":
		return true
	}
	return false
}

// IsAttribute reports whether n is an outer or inner attribute.
func IsAttribute(n *sitter.Node) bool {
	switch n.Type() {
	case "attribute_item", "inner_attribute_item":
		return true
	}
	return false
}

// Items returns the named children of n, skipping comments.
func Items(n *sitter.Node) []*sitter.Node {
	var items []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if !IsTrivia(child) {
			items = append(items, child)
		}
	}
	return items
}

// FirstError returns the first ERROR or missing node under n, in source
// order, or nil when n parsed cleanly.
func FirstError(n *sitter.Node) *sitter.Node {
	if n == nil || !n.HasError() && !n.IsMissing() {
		return nil
	}
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := FirstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return n
}

// Invalid describes the broken node found by FirstError.
func Invalid(n *sitter.Node) *Error {
	if n.IsMissing() {
		return Errorf(At(n), "expected %q", n.Type())
	}
	return Errorf(At(n), "unexpected syntax")
}
