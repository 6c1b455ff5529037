// Package source expands `#[pulstruct_api(Label)]` attributes in a source
// file, the way the attribute macro does during compilation.
package source

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mathieupost/pulstruct"
	"github.com/mathieupost/pulstruct/log"
	"github.com/mathieupost/pulstruct/syntax"
)

const attributeName = "pulstruct_api"

type Result struct {
	Output string
	// Labels lists the attribute labels in source order.
	Labels []string
	// Diagnostics holds the errors rendered as compile_error! in Output.
	Diagnostics []error
}

// ExpandFile reads path and expands every annotated item in it.
func ExpandFile(ctx context.Context, path string) (*Result, error) {
	ctx, span := otel.Tracer("").Start(ctx, "source.ExpandFile")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	bytes, err := os.ReadFile(path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, errors.Wrap(err, "reading source file")
	}

	res, err := Expand(ctx, string(bytes))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	span.SetAttributes(
		attribute.StringSlice("labels", res.Labels),
		attribute.Int("diagnostics", len(res.Diagnostics)),
	)
	for _, d := range res.Diagnostics {
		span.RecordError(d)
		log.Warn().Str("path", path).Err(d).Msg("expansion failed")
	}
	log.Debug().Str("path", path).Strs("labels", res.Labels).Msg("expanded")
	return res, nil
}

// Expand rewrites src, replacing each annotated item with its expansion.
// Text outside annotated items is copied unchanged.
func Expand(ctx context.Context, src string) (*Result, error) {
	content := []byte(src)
	tree, err := syntax.Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	e := &expander{src: content, res: &Result{}}
	e.walk(ctx, tree.RootNode())
	e.out.Write(content[e.last:])
	e.res.Output = e.out.String()
	return e.res, nil
}

type expander struct {
	src  []byte
	out  strings.Builder
	last uint32
	res  *Result
}

func (e *expander) walk(ctx context.Context, n *sitter.Node) {
	items := syntax.Items(n)
	for i := 0; i < len(items); i++ {
		label, ok := marker(items[i], e.src)
		if !ok {
			e.walk(ctx, items[i])
			continue
		}

		// The item is everything up to the first sibling that is not an
		// attribute; attributes in between stay with it.
		last := i + 1
		for last < len(items) && syntax.IsAttribute(items[last]) {
			last++
		}
		if last == len(items) {
			last--
		}
		start, from, end := items[i].StartByte(), items[i].EndByte(), items[i].EndByte()
		if last > i {
			from, end = items[i+1].StartByte(), items[last].EndByte()
		}

		e.res.Labels = append(e.res.Labels, label)
		e.splice(start, end, e.expand(ctx, label, string(e.src[from:end])))
		i = last
	}
}

func (e *expander) expand(ctx context.Context, label, item string) string {
	ctx, span := otel.Tracer("").Start(ctx, "pulstruct.Transform")
	defer span.End()
	span.SetAttributes(attribute.String("label", label))

	out, err := pulstruct.Transform(ctx, label, item)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		e.res.Diagnostics = append(e.res.Diagnostics, err)
		return pulstruct.Diagnostic(err)
	}
	return out
}

func (e *expander) splice(start, end uint32, text string) {
	e.out.Write(e.src[e.last:start])
	e.out.WriteString(text)
	e.last = end
}

// marker reports whether n is `#[pulstruct_api(...)]` or
// `#[pulstruct::pulstruct_api(...)]` and returns the arguments.
func marker(n *sitter.Node, src []byte) (string, bool) {
	if n.Type() != "attribute_item" || n.NamedChildCount() == 0 {
		return "", false
	}
	attr := n.NamedChild(0)
	if attr.Type() != "attribute" || attr.NamedChildCount() == 0 {
		return "", false
	}
	switch attr.NamedChild(0).Content(src) {
	case attributeName, "pulstruct::" + attributeName:
	default:
		return "", false
	}
	args := attr.ChildByFieldName("arguments")
	if args == nil {
		return "", false
	}
	text := args.Content(src)
	if len(text) < 2 || text[0] != '(' {
		return "", false
	}
	return strings.TrimSpace(text[1 : len(text)-1]), true
}
