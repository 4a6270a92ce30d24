package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const indent = "    "

// Format renders a whole file, one item per paragraph.
func Format(file File) string {
	var b strings.Builder
	for i, item := range file {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(item.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Const) String() string {
	return fmt.Sprintf("const %s: %s = %s", c.Ident, c.Type.String(), c.Value.String())
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteString("fn ")
	b.WriteString(f.Name)
	b.WriteString("(")
	b.WriteString(joinBindings(f.Params))
	b.WriteString(")")
	if f.ReturnType != nil {
		b.WriteString(": ")
		b.WriteString(f.ReturnType.String())
	}
	b.WriteString(" -> ")
	b.WriteString(f.Body.String())
	return b.String()
}

func (s *Struct) String() string {
	var b strings.Builder
	b.WriteString("struct ")
	b.WriteString(s.Name)
	writeGenericParams(&b, s.GenericParams)
	b.WriteString(" ")
	writeFields(&b, s.Fields)
	return b.String()
}

func (e *Enum) String() string {
	var b strings.Builder
	b.WriteString("enum ")
	b.WriteString(e.Name)
	writeGenericParams(&b, e.GenericParams)
	if len(e.Variants) == 0 {
		b.WriteString(" {}")
		return b.String()
	}
	b.WriteString(" {\n")
	for _, v := range e.Variants {
		b.WriteString(indent + strings.ReplaceAll(v.String(), "\n", "\n"+indent) + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

func (v *UnitVariant) String() string {
	return v.Name
}

func (v *TupleVariant) String() string {
	return v.Name + "(" + joinTypes(v.Types) + ")"
}

func (v *StructVariant) String() string {
	var b strings.Builder
	b.WriteString(v.Name)
	b.WriteString(" ")
	writeFields(&b, v.Fields)
	return b.String()
}

func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name, f.Type.String())
}

func (bd Binding) String() string {
	var b strings.Builder
	if bd.Mutable {
		b.WriteString("mut ")
	}
	b.WriteString(bd.Name)
	if bd.TypeAnnotation != nil {
		b.WriteString(": ")
		b.WriteString(bd.TypeAnnotation.String())
	}
	return b.String()
}

func writeGenericParams(b *strings.Builder, params []string) {
	if len(params) == 0 {
		return
	}
	b.WriteString("<")
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(">")
}

func writeFields(b *strings.Builder, fields []Field) {
	if len(fields) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for _, f := range fields {
		b.WriteString(indent + f.String() + ",\n")
	}
	b.WriteString("}")
}

func joinBindings(bindings []Binding) string {
	parts := make([]string, len(bindings))
	for i, bd := range bindings {
		parts[i] = bd.String()
	}
	return strings.Join(parts, ", ")
}

// Types

func (t *NamedType) String() string {
	if len(t.Generics) == 0 {
		return t.Name
	}
	return t.Name + "<" + joinTypes(t.Generics) + ">"
}

func (t *ArrayType) String() string {
	return "[" + t.Elem.String() + "]"
}

func (t *TupleType) String() string {
	return "(" + joinTypes(t.Elems) + ")"
}

func (t *FnType) String() string {
	return "fn(" + joinTypes(t.Params) + "): " + t.Result.String()
}

func joinTypes(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// Expressions

func (e *LiteralExpr) String() string {
	return e.Value.String()
}

func (e *IdentExpr) String() string {
	return e.Name
}

func (e *CallExpr) String() string {
	callee := e.Fun.String()
	switch e.Fun.(type) {
	case *IdentExpr, *CallExpr:
	default:
		callee = "(" + callee + ")"
	}
	return callee + "(" + joinExprs(e.Args) + ")"
}

// Binary and unary expressions are fully parenthesized so the output
// re-parses to the same tree regardless of precedence.
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", operand(e.Lhs), e.Op, operand(e.Rhs))
}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("%s(%s)", e.Op, e.Expr.String())
}

func (e *IfExpr) String() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(e.Cond.String())
	b.WriteString(") ")
	b.WriteString(operand(e.Then))
	if e.Else != nil {
		b.WriteString(" else ")
		b.WriteString(e.Else.String())
	}
	return b.String()
}

func (e *LetExpr) String() string {
	return "let " + e.Binding.String() + " = " + e.Value.String()
}

func (e *LambdaExpr) String() string {
	var b strings.Builder
	if len(e.Params) == 0 {
		b.WriteString("||")
	} else {
		b.WriteString("|")
		b.WriteString(joinBindings(e.Params))
		b.WriteString("|")
	}
	if e.ReturnType != nil {
		b.WriteString(": ")
		b.WriteString(e.ReturnType.String())
	}
	b.WriteString(" -> ")
	b.WriteString(e.Body.String())
	return b.String()
}

func (e *BlockExpr) String() string {
	if len(e.Exprs) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, expr := range e.Exprs {
		b.WriteString(indent)
		b.WriteString(strings.ReplaceAll(expr.String(), "\n", "\n"+indent))
		if i < len(e.Exprs)-1 || !e.Trailing {
			b.WriteString(";")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// operand wraps expressions that would otherwise swallow the tokens that
// follow them (an else branch, a binary operator).
func operand(e Expr) string {
	switch e.(type) {
	case *IfExpr, *LetExpr, *LambdaExpr:
		return "(" + e.String() + ")"
	}
	return e.String()
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// Literals

func (l IntLit) String() string {
	return strconv.FormatInt(int64(l), 10)
}

func (l FloatLit) String() string {
	f := float64(l)
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsRune(s, '.') {
		return s
	}
	// a float literal always carries a dot
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

func (l StrLit) String() string {
	return `"` + escape(string(l), '"') + `"`
}

func (l CharLit) String() string {
	return "'" + escape(string(rune(l)), '\'') + "'"
}

func (l BoolLit) String() string {
	if l {
		return "true"
	}
	return "false"
}

func (l ArrayLit) String() string {
	return "[" + joinExprs(l) + "]"
}

func (l TupleLit) String() string {
	if len(l) == 1 {
		return "(" + l[0].String() + ",)"
	}
	return "(" + joinExprs(l) + ")"
}

func (l MapLit) String() string {
	parts := make([]string, len(l))
	for i, entry := range l {
		parts[i] = entry.Key.String() + ": " + entry.Value.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func escape(s string, quote rune) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\\':
			b.WriteString(`\\`)
		case quote:
			b.WriteRune('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
