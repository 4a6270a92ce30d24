package ast

type Expr interface {
	Node
	isExpr()
}

func (*LiteralExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*IfExpr) isExpr() {}

func (*LetExpr) isExpr() {}

func (*LambdaExpr) isExpr() {}

func (*BlockExpr) isExpr() {}

// LiteralExpr wraps a literal value.
// Example: "42", "\"hi\"", "[1, 2]", "(a, b)"
type LiteralExpr struct {
	Value Lit
}

// Literal wraps l into an expression.
func Literal(l Lit) *LiteralExpr {
	return &LiteralExpr{Value: l}
}

// IdentExpr is a bare name.
// Example: "x", "sin"
type IdentExpr struct {
	Name string
}

// CallExpr applies any expression to an argument list.
// Example: "foo(1, 2)", "make()(x)"
type CallExpr struct {
	Fun  Expr
	Args []Expr
}

// BinaryExpr represents an infix operation.
// Example: "a + b", "x = 3"
type BinaryExpr struct {
	Op  BinaryOp
	Lhs Expr
	Rhs Expr
}

// UnaryExpr represents a prefix operation.
// Example: "-x", "!done"
type UnaryExpr struct {
	Op   UnaryOp
	Expr Expr
}

// IfExpr is a conditional; Else is nil when the branch is absent.
// Example: "if (x < 3) a else b"
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// LetExpr introduces a binding.
// Example: "let mut y: Int = 7"
type LetExpr struct {
	Binding Binding
	Value   Expr
}

// LambdaExpr is an anonymous function; ReturnType may be nil.
// Example: "|a, b: Int| -> a + b"
type LambdaExpr struct {
	Params     []Binding
	ReturnType Type
	Body       Expr
}

// BlockExpr is a sequence of expressions. Trailing is false when the last
// expression was closed by a semicolon, making the block unit-valued.
// Example: "{ let x = 1; x }"
type BlockExpr struct {
	Exprs    []Expr
	Trailing bool
}

// Lit is a literal value carried by a LiteralExpr.
type Lit interface {
	String() string
	isLit()
}

type (
	IntLit   int64
	FloatLit float64
	StrLit   string
	CharLit  rune
	BoolLit  bool
	ArrayLit []Expr
	TupleLit []Expr
	MapLit   []MapEntry
)

type MapEntry struct {
	Key   Expr
	Value Expr
}

func (IntLit) isLit()   {}
func (FloatLit) isLit() {}
func (StrLit) isLit()   {}
func (CharLit) isLit()  {}
func (BoolLit) isLit()  {}
func (ArrayLit) isLit() {}
func (TupleLit) isLit() {}
func (MapLit) isLit()   {}
