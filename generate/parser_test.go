package generate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathieupost/pulstruct/syntax"
)

func parse(t *testing.T, src string) *Block {
	t.Helper()
	block, err := Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return block
}

func TestParseBlock(t *testing.T) {
	src := `#[allow(dead_code)]
impl<T: Clone> Store<T> where T: Send {
    const SIZE: usize = 4;
    // a comment
    pub(crate) const fn size() -> usize { Self::SIZE }
    #[inline]
    pub fn get(&self, key: &str) -> Option<T> { None }
    unsafe extern "C" fn raw(&mut self, ptr: *const u8);
    type Item = T;
    fn consume(self: Box<Self>, n: u8) {}
}
struct After;`

	block := parse(t, src)
	require.Equal(t, "Store<T>", block.Target)
	require.Equal(t, "\nstruct After;", src[block.End:])

	require.Len(t, block.Members, 6)
	require.IsType(t, &Other{}, block.Members[0])
	require.IsType(t, &Function{}, block.Members[1])
	require.IsType(t, &Function{}, block.Members[2])
	require.IsType(t, &Function{}, block.Members[3])
	require.IsType(t, &Other{}, block.Members[4])
	require.IsType(t, &Function{}, block.Members[5])

	size := block.Members[1].(*Function)
	require.Equal(t, "size", size.Name)
	require.Empty(t, size.Params)

	get := block.Members[2].(*Function)
	require.Equal(t, []Param{{Kind: Receiver}, {Kind: Typed, Type: "&str"}}, get.Params)

	raw := block.Members[3].(*Function)
	require.Equal(t, []Param{{Kind: Receiver}, {Kind: Typed, Type: "*const u8"}}, raw.Params)

	consume := block.Members[5].(*Function)
	require.Equal(t, []Param{{Kind: Receiver, Type: "Box<Self>"}, {Kind: Typed, Type: "u8"}}, consume.Params)
}

func TestParseTarget(t *testing.T) {
	table := []struct {
		input  string
		target string
	}{
		{`impl Test {}`, "Test"},
		{`impl<'a> Test<'a> {}`, "Test<'a>"},
		{`impl Display for Test {}`, "Test"},
		{`impl<T> From<Vec<T>> for Wrapper<T> where T: Clone {}`, "Wrapper<T>"},
		{`unsafe impl Send for Test {}`, "Test"},
	}
	for _, tt := range table {
		t.Run(tt.input, func(t *testing.T) {
			block := parse(t, tt.input)
			require.Equal(t, tt.target, block.Target)
			require.Empty(t, block.Members)
		})
	}
}

func TestParseReceivers(t *testing.T) {
	table := []struct {
		param    string
		receiver bool
	}{
		{"self", true},
		{"mut self", true},
		{"&self", true},
		{"&mut self", true},
		{"&'a self", true},
		{"&'a mut self", true},
		{"self: Rc<Self>", true},
		{"a: u8", false},
		{"this: &Self", false},
	}
	for _, tt := range table {
		t.Run(tt.param, func(t *testing.T) {
			block := parse(t, "impl A { fn f("+tt.param+") {} }")
			f := block.Members[0].(*Function)
			require.Len(t, f.Params, 1)
			require.Equal(t, tt.receiver, f.Params[0].Kind == Receiver)
		})
	}
}

func TestParseReceiverOnlyFirst(t *testing.T) {
	block := parse(t, `impl A { fn f(a: u8, self: Box<Self>) {} }`)
	f := block.Members[0].(*Function)
	require.Equal(t, []Param{{Kind: Typed, Type: "u8"}, {Kind: Typed, Type: "Box<Self>"}}, f.Params)
}

func TestParseErrors(t *testing.T) {
	table := []struct {
		name  string
		input string
		msg   string
	}{
		{"Struct", `struct Test { a: u8 }`, `expected "impl"`},
		{"Function", `fn main() {}`, `expected "impl"`},
		{"Trait", `trait T { fn f(&self); }`, `expected "impl"`},
		{"Empty", ``, `expected "impl"`},
		{"OnlyAttributes", `#[derive(Debug)]`, `expected "impl"`},
	}
	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), []byte(tt.input))
			var serr *syntax.Error
			require.ErrorAs(t, err, &serr)
			require.Equal(t, tt.msg, serr.Msg)
		})
	}
}

func TestParseBrokenBlock(t *testing.T) {
	inputs := []string{
		`impl Test { fn a(&self) { }`,
		`impl Test { fn a(&self) -> u8 { 0 }`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(context.Background(), []byte(input))
			var serr *syntax.Error
			require.ErrorAs(t, err, &serr)
			require.NotEqual(t, `expected "impl"`, serr.Msg)
		})
	}
}
