package ast

type Node interface {
	NodeType() NodeType
	String() string
}

func (*Const) NodeType() NodeType    { return CONST }
func (*Function) NodeType() NodeType { return FUNCTION }
func (*Struct) NodeType() NodeType   { return STRUCT }
func (*Enum) NodeType() NodeType     { return ENUM }

func (*UnitVariant) NodeType() NodeType   { return UNIT_VARIANT }
func (*TupleVariant) NodeType() NodeType  { return TUPLE_VARIANT }
func (*StructVariant) NodeType() NodeType { return STRUCT_VARIANT }
func (Field) NodeType() NodeType          { return FIELD }
func (Binding) NodeType() NodeType        { return BINDING }

func (*NamedType) NodeType() NodeType { return NAMED_TYPE }
func (*ArrayType) NodeType() NodeType { return ARRAY_TYPE }
func (*TupleType) NodeType() NodeType { return TUPLE_TYPE }
func (*FnType) NodeType() NodeType    { return FN_TYPE }

func (*LiteralExpr) NodeType() NodeType { return LITERAL_EXPR }
func (*IdentExpr) NodeType() NodeType   { return IDENT_EXPR }
func (*CallExpr) NodeType() NodeType    { return CALL_EXPR }
func (*BinaryExpr) NodeType() NodeType  { return BINARY_EXPR }
func (*UnaryExpr) NodeType() NodeType   { return UNARY_EXPR }
func (*IfExpr) NodeType() NodeType      { return IF_EXPR }
func (*LetExpr) NodeType() NodeType     { return LET_EXPR }
func (*LambdaExpr) NodeType() NodeType  { return LAMBDA_EXPR }
func (*BlockExpr) NodeType() NodeType   { return BLOCK_EXPR }
