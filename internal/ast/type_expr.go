package ast

// Type is a type expression as written in source.
type Type interface {
	Node
	isType()
}

func (*NamedType) isType() {}

func (*ArrayType) isType() {}

func (*TupleType) isType() {}

func (*FnType) isType() {}

// NamedType is a type name with optional generic arguments.
// Example: "Int", "Bar<Baz<T>, U>"
type NamedType struct {
	Name     string
	Generics []Type
}

// Named is a shorthand for a NamedType.
func Named(name string, generics ...Type) *NamedType {
	return &NamedType{Name: name, Generics: generics}
}

// ArrayType is a homogeneous sequence.
// Example: "[Int]"
type ArrayType struct {
	Elem Type
}

// TupleType is a fixed-size heterogeneous product.
// Example: "(Int, Str)"
type TupleType struct {
	Elems []Type
}

// FnType is the type of a function value.
// Example: "fn(Int, Int): Int"
type FnType struct {
	Params []Type
	Result Type
}
