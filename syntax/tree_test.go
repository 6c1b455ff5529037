package syntax

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	src := []byte("\n  struct Test;")
	tree, err := Parse(context.Background(), src)
	require.NoError(t, err)
	defer tree.Close()

	items := Items(tree.RootNode())
	require.Len(t, items, 1)
	require.Equal(t, Pos{Line: 2, Col: 3, Offset: 3}, At(items[0]))
	require.Nil(t, FirstError(tree.RootNode()))
}

func TestItemsSkipsComments(t *testing.T) {
	src := []byte("// one\n/* two */\n#[a]\nstruct S;")
	tree, err := Parse(context.Background(), src)
	require.NoError(t, err)
	defer tree.Close()

	items := Items(tree.RootNode())
	require.Len(t, items, 2)
	require.True(t, IsAttribute(items[0]))
	require.Equal(t, "struct_item", items[1].Type())
}

func TestFirstError(t *testing.T) {
	for _, src := range []string{
		"impl A { fn f(&self) {}",
		"impl A { fn f(&self) { '\\",
		"'\\",
	} {
		tree, err := Parse(context.Background(), []byte(src))
		require.NoError(t, err)

		bad := FirstError(tree.RootNode())
		require.NotNil(t, bad, src)
		require.NotEmpty(t, Invalid(bad).Msg)
		tree.Close()
	}
}
