package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	ILLEGAL NodeType = iota

	// Items
	CONST
	FUNCTION
	STRUCT
	ENUM

	// Item parts
	UNIT_VARIANT
	TUPLE_VARIANT
	STRUCT_VARIANT
	FIELD
	BINDING

	// Types
	NAMED_TYPE
	ARRAY_TYPE
	TUPLE_TYPE
	FN_TYPE

	// Expressions
	LITERAL_EXPR
	IDENT_EXPR
	CALL_EXPR
	BINARY_EXPR
	UNARY_EXPR
	IF_EXPR
	LET_EXPR
	LAMBDA_EXPR
	BLOCK_EXPR
)
