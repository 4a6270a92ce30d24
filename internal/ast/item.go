package ast

// File is every top-level item of one source file, in order.
type File []Item

type Item interface {
	Node
	isItem()
}

func (*Const) isItem() {}

func (*Function) isItem() {}

func (*Struct) isItem() {}

func (*Enum) isItem() {}

// Const declares a typed constant.
// Example: "const HELLO: Str = \"Hello\""
type Const struct {
	Ident string
	Type  Type
	Value Expr
}

// Function declares a named function; ReturnType may be nil.
// Example: "fn add(a, b: Int): Int -> a + b"
type Function struct {
	Name       string
	Params     []Binding
	ReturnType Type
	Body       Expr
}

// Struct declares a record type.
// Example: "struct Pair<T> { a: T, b: T }"
type Struct struct {
	Name          string
	GenericParams []string
	Fields        []Field
}

// Enum declares a sum type.
// Example: "enum Shape { Empty, Circle(Float), Rect { w: Float, h: Float } }"
type Enum struct {
	Name          string
	GenericParams []string
	Variants      []Variant
}

type Variant interface {
	Node
	VariantName() string
}

// UnitVariant carries no data.
// Example: "Empty"
type UnitVariant struct {
	Name string
}

// TupleVariant carries positional data.
// Example: "Circle(Float)"
type TupleVariant struct {
	Name  string
	Types []Type
}

// StructVariant carries named fields.
// Example: "Rect { w: Float, h: Float }"
type StructVariant struct {
	Name   string
	Fields []Field
}

func (v *UnitVariant) VariantName() string   { return v.Name }
func (v *TupleVariant) VariantName() string  { return v.Name }
func (v *StructVariant) VariantName() string { return v.Name }

// Field is a named, typed member of a struct or struct variant.
// Example: "bar: Bar<Baz>"
type Field struct {
	Name string
	Type Type
}

// Binding is a name introduced by let, a parameter list or a lambda.
// TypeAnnotation is nil when no annotation was written.
// Example: "mut y: Int"
type Binding struct {
	Mutable        bool
	Name           string
	TypeAnnotation Type
}
