package generate

import (
	"strings"
	"text/template"

	"github.com/huandu/go-clone"
	"github.com/pkg/errors"
)

// SignaturePrefix starts the name of every generated signature enum. The
// label is appended after an underscore, verbatim.
const SignaturePrefix = "__pulstruct_signature"

// SignatureName returns the enum name generated for label.
func SignatureName(label string) string {
	return SignaturePrefix + "_" + label
}

// Synthesize builds the signature enum for label. The enum gets its own
// copy of variants.
func Synthesize(label string, variants []Variant) *SumType {
	return &SumType{
		Name:     SignatureName(label),
		Variants: clone.Clone(variants).([]Variant),
	}
}

// Every variant gets a tuple, even an empty one, and a trailing comma.
var signatureTemplate = template.Must(template.New("signature").
	Funcs(template.FuncMap{
		"join": strings.Join,
	}).
	Parse(`enum {{ .Name }} {
{{- range .Variants }}
    {{ .Name }}({{ join .Fields ", " }}),
{{- end }}
{{- if .Variants }}
{{ end -}}
}`))

// Writer assembles the output of one expansion: the source up to the end of
// the block exactly as it was read, the signature enum, then whatever
// followed the block.
type Writer struct {
	src   []byte
	block *Block
	sum   *SumType
}

func NewWriter(src []byte, block *Block, sum *SumType) *Writer {
	return &Writer{
		src:   src,
		block: block,
		sum:   sum,
	}
}

func (w *Writer) Write() (string, error) {
	var b strings.Builder
	b.Write(w.src[:w.block.End])
	b.WriteString("\n")
	if err := signatureTemplate.Execute(&b, w.sum); err != nil {
		return "", errors.Wrap(err, "executing signature template")
	}
	b.Write(w.src[w.block.End:])
	return b.String(), nil
}
