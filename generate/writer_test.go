package generate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	variants := []Variant{{Name: "a", Fields: []string{"u8"}}}
	sum := Synthesize("Test Api", variants)
	require.Equal(t, "__pulstruct_signature_Test Api", sum.Name)

	variants[0].Fields[0] = "changed"
	require.Equal(t, "u8", sum.Variants[0].Fields[0])
}

func TestWrite(t *testing.T) {
	table := []struct {
		name     string
		variants []Variant
		want     string
	}{
		{
			name:     "Empty",
			variants: []Variant{},
			want:     "impl A {}\nenum __pulstruct_signature_L {}",
		},
		{
			name: "Variants",
			variants: []Variant{
				{Name: "a", Fields: []string{"String", "Vec<u8>"}},
				{Name: "b", Fields: []string{}},
			},
			want: "impl A {}\nenum __pulstruct_signature_L {\n    a(String, Vec<u8>),\n    b(),\n}",
		},
	}
	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte("impl A {}")
			block := &Block{Target: "A", End: len(src)}
			out, err := NewWriter(src, block, Synthesize("L", tt.variants)).Write()
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestWriteKeepsTrailing(t *testing.T) {
	src := []byte("impl A {}\n// after\n")
	block := &Block{Target: "A", End: len("impl A {}")}
	out, err := NewWriter(src, block, Synthesize("L", []Variant{})).Write()
	require.NoError(t, err)
	require.Equal(t, "impl A {}\nenum __pulstruct_signature_L {}\n// after\n", out)
}
