package ast

// BinaryOp is an infix operator.
type BinaryOp int

const (
	ILLEGAL_OP BinaryOp = iota
	Assign
	Or
	And
	Eqq
	Neq
	Gt
	Lt
	Leq
	Geq
	BOr
	Xor
	BAnd
	Add
	Sub
	Mul
	Div
	Exp
)

var binaryOpSymbols = [...]string{
	ILLEGAL_OP: "?",
	Assign:     "=",
	Or:         "||",
	And:        "&&",
	Eqq:        "==",
	Neq:        "!=",
	Gt:         ">",
	Lt:         "<",
	Leq:        "<=",
	Geq:        ">=",
	BOr:        "|",
	Xor:        "^",
	BAnd:       "&",
	Add:        "+",
	Sub:        "-",
	Mul:        "*",
	Div:        "/",
	Exp:        "**",
}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpSymbols) {
		return "?"
	}
	return binaryOpSymbols[op]
}

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	ILLEGAL_UNARY UnaryOp = iota
	Neg
	Not
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	default:
		return "?"
	}
}
