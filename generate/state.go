package generate

// Block is a parsed implementation block. End is the byte offset just past
// the block in the parsed source; everything before it is echoed verbatim.
type Block struct {
	Target  string
	Members []Member
	End     int
}

// Member is either a *Function or an *Other.
type Member interface {
	member()
}

type Function struct {
	Name   string
	Params []Param
}

// Other is any member that is not a function: constants, associated types,
// macro invocations.
type Other struct{}

func (*Function) member() {}
func (*Other) member()    {}

type ParamKind uint8

const (
	Typed ParamKind = iota
	Receiver
)

// Param is one entry of a parameter list. Type is empty for a receiver
// written without an explicit type (`&self`, `mut self`).
type Param struct {
	Kind ParamKind
	Type string
}

// Variant describes one method of the signature enum: its name and the types
// of every parameter after the receiver.
type Variant struct {
	Name   string
	Fields []string
}

type SumType struct {
	Name     string
	Variants []Variant
}
