// Package grammar describes the declaration outline of a tern file as a
// participle grammar.
//
// The outline records items, their names, generics, parameters, fields and
// variants together with source positions. Function bodies and constant
// values are skipped as balanced token groups; the full syntax tree comes
// from internal/parser.
package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"
)

type File struct {
	Pos   plexer.Position
	Items []*Item `@@*`
}

type Item struct {
	Pos    plexer.Position
	EndPos plexer.Position

	Const    *Const    `  @@`
	Function *Function `| @@`
	Struct   *Struct   `| @@`
	Enum     *Enum     `| @@`
}

type Name struct {
	Pos   plexer.Position
	Value string `@Ident`
}

type Const struct {
	Name  Name     `"const" @@ ":"`
	Type  *Type    `@@ "="`
	Value []*Chunk `@@+`
}

type Function struct {
	Name   Name     `"fn" @@`
	Params []*Param `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Return *Type    `( ":" @@ )?`
	Body   []*Chunk `"->" @@+`
}

type Param struct {
	Pos     plexer.Position
	Mutable bool  `@"mut"?`
	Name    Name  `@@`
	Type    *Type `( ":" @@ )?`
}

type Struct struct {
	Name     Name     `"struct" @@`
	Generics []*Name  `( "<" ( @@ ( "," @@ )* ","? )? ">" )?`
	Fields   []*Field `"{" ( @@ ( "," @@ )* ","? )? "}"`
}

type Enum struct {
	Name     Name       `"enum" @@`
	Generics []*Name    `( "<" ( @@ ( "," @@ )* ","? )? ">" )?`
	Variants []*Variant `"{" ( @@ ( "," @@ )* ","? )? "}"`
}

type Field struct {
	Pos  plexer.Position
	Name Name  `@@ ":"`
	Type *Type `@@`
}

type Variant struct {
	Pos    plexer.Position
	Name   Name          `@@`
	Tuple  *TupleFields  `( @@`
	Record *RecordFields `| @@ )?`
}

type TupleFields struct {
	Open  string  `@"("`
	Types []*Type `( @@ ( "," @@ )* ","? )? ")"`
}

type RecordFields struct {
	Open   string   `@"{"`
	Fields []*Field `( @@ ( "," @@ )* ","? )? "}"`
}

type Type struct {
	Pos plexer.Position

	Name     string     `  @Ident`
	Generics []*Type    `  ( "<" ( @@ ( "," @@ )* ","? )? ">" )?`
	Array    *Type      `| "[" @@ "]"`
	Tuple    *TupleType `| @@`
	Fn       *FnType    `| @@`
}

type TupleType struct {
	Open  string  `@"("`
	Elems []*Type `( @@ ( "," @@ )* ","? )? ")"`
}

type FnType struct {
	Keyword string  `@"fn"`
	Params  []*Type `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Result  *Type   `":" @@`
}

// Chunk is one token or one bracketed group of an expression the outline
// does not look into. A top-level item keyword ends the run of chunks.
type Chunk struct {
	Group *Group  `  @@`
	Fn    *FnType `| @@`
	Token string  `| @!( "(" | ")" | "{" | "}" | "[" | "]" | "fn" | "const" | "struct" | "enum" )`
}

type Group struct {
	Open  string   `@( "(" | "{" | "[" )`
	Inner []*Inner `@@*`
	Close string   `@( ")" | "}" | "]" )`
}

type Inner struct {
	Group *Group `  @@`
	Token string `| @!( "(" | ")" | "{" | "}" | "[" | "]" )`
}

var outline = participle.MustBuild[File](
	participle.Lexer(Definition),
	participle.UseLookahead(3),
)

// ParseOutline parses the declaration outline of source.
func ParseOutline(filename, source string) (*File, error) {
	return outline.ParseString(filename, source)
}

// End is the position just past the name.
func (n Name) End() plexer.Position {
	end := n.Pos
	end.Offset += len(n.Value)
	end.Column += len([]rune(n.Value))
	return end
}

func (t *Type) String() string {
	switch {
	case t == nil:
		return ""
	case t.Array != nil:
		return "[" + t.Array.String() + "]"
	case t.Tuple != nil:
		return "(" + joinTypes(t.Tuple.Elems) + ")"
	case t.Fn != nil:
		return t.Fn.String()
	case len(t.Generics) > 0:
		return t.Name + "<" + joinTypes(t.Generics) + ">"
	}
	return t.Name
}

func (t *FnType) String() string {
	return "fn(" + joinTypes(t.Params) + "): " + t.Result.String()
}

func (p *Param) String() string {
	var b strings.Builder
	if p.Mutable {
		b.WriteString("mut ")
	}
	b.WriteString(p.Name.Value)
	if p.Type != nil {
		b.WriteString(": ")
		b.WriteString(p.Type.String())
	}
	return b.String()
}

func joinTypes(types []*Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
