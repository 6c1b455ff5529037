// Package pulstruct derives a signature enum from an implementation block:
// one variant per method taking a receiver, carrying the types of its
// remaining parameters.
package pulstruct

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mathieupost/pulstruct/generate"
	"github.com/mathieupost/pulstruct/syntax"
)

// Api expands a raw implementation block. On failure the result is a single
// `compile_error!` carrying the diagnostic message instead of any code.
func Api(label, input string) string {
	out, err := Transform(context.Background(), label, input)
	if err != nil {
		return Diagnostic(err)
	}
	return out
}

// Transform is Api for Go callers: it returns the error instead of
// rendering it. Shape errors are *syntax.Error.
func Transform(ctx context.Context, label, input string) (string, error) {
	src := []byte(input)
	block, err := generate.Parse(ctx, src)
	if err != nil {
		return "", err
	}
	sum := generate.Synthesize(label, generate.Project(block.Members))
	return generate.NewWriter(src, block, sum).Write()
}

// Diagnostic renders err as the `compile_error!` that replaces the output of
// a failed expansion.
func Diagnostic(err error) string {
	var serr *syntax.Error
	if !errors.As(err, &serr) {
		serr = &syntax.Error{Msg: err.Error()}
	}
	return serr.CompileError()
}
