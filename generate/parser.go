package generate

import (
	"context"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mathieupost/pulstruct/syntax"
)

// Parse reads one implementation block from the start of src. Attributes
// and comments may precede it; anything after it is left for the caller.
func Parse(ctx context.Context, src []byte) (*Block, error) {
	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return nil, errors.Wrap(err, "parsing implementation block")
	}
	defer tree.Close()
	root := tree.RootNode()

	item := leading(root)
	if item == nil {
		return nil, syntax.Errorf(syntax.At(root), `expected "impl"`)
	}
	if !startsWithImpl(item) {
		return nil, syntax.Errorf(syntax.At(item), `expected "impl"`)
	}
	if bad := syntax.FirstError(root); bad != nil {
		return nil, syntax.Invalid(bad)
	}

	block := &Block{
		Target: item.ChildByFieldName("type").Content(src),
		End:    int(item.EndByte()),
	}
	body := item.ChildByFieldName("body")
	if body == nil {
		return nil, syntax.Errorf(syntax.At(item), `expected "{"`)
	}
	for _, n := range syntax.Items(body) {
		if syntax.IsAttribute(n) {
			continue
		}
		block.Members = append(block.Members, member(n, src))
	}
	return block, nil
}

// leading returns the first item of root that is not an attribute.
func leading(root *sitter.Node) *sitter.Node {
	for _, n := range syntax.Items(root) {
		if !syntax.IsAttribute(n) {
			return n
		}
	}
	return nil
}

// startsWithImpl also accepts an ERROR node opening with `impl`, so a broken
// block reports what is broken instead of `expected "impl"`.
func startsWithImpl(n *sitter.Node) bool {
	if n.Type() == "impl_item" {
		return true
	}
	if n.Type() != "ERROR" {
		return false
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if syntax.IsTrivia(child) || syntax.IsAttribute(child) {
			continue
		}
		switch child.Type() {
		case "unsafe", "default":
			continue
		case "impl", "impl_item":
			return true
		}
		return false
	}
	return false
}

func member(n *sitter.Node, src []byte) Member {
	switch n.Type() {
	case "function_item", "function_signature_item":
		return &Function{
			Name:   n.ChildByFieldName("name").Content(src),
			Params: params(n.ChildByFieldName("parameters"), src),
		}
	}
	return &Other{}
}

func params(list *sitter.Node, src []byte) []Param {
	var out []Param
	for _, n := range syntax.Items(list) {
		if syntax.IsAttribute(n) {
			continue
		}
		first := len(out) == 0
		switch n.Type() {
		case "self_parameter":
			if first {
				out = append(out, Param{Kind: Receiver})
				continue
			}
			out = append(out, Param{Kind: Typed, Type: n.Content(src)})
		case "parameter":
			kind := Typed
			if pattern := n.ChildByFieldName("pattern"); first && pattern != nil && pattern.Type() == "self" {
				kind = Receiver
			}
			out = append(out, Param{Kind: kind, Type: n.ChildByFieldName("type").Content(src)})
		default:
			// Anonymous parameters are bare types.
			out = append(out, Param{Kind: Typed, Type: n.Content(src)})
		}
	}
	return out
}
