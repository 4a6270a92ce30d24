package grammar_test

import (
	"testing"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tern/grammar"
	"tern/internal/ast"
	"tern/internal/lexer"
	"tern/internal/parser"
)

const shapes = `// shapes
const ORIGIN: (Float, Float) = (0.0, 0.0)

struct Pair<T> {
    first: T,
    second: T,
}

enum Shape {
    Empty,
    Circle(Float),
    Rect { w: Float, h: Float },
}

fn area(s: Shape, mut scale: Float): Float -> {
    let f = |x: Float| -> x * scale;
    f(1.0)
}

fn apply(f: fn(Int): Int, x: Int) -> f(x)
`

func TestOutline(t *testing.T) {
	file, err := grammar.ParseOutline("shapes.tn", shapes)
	require.NoError(t, err)
	require.Len(t, file.Items, 5)

	assert.Equal(t, "ORIGIN", file.Items[0].Const.Name.Value)
	assert.Equal(t, "(Float, Float)", file.Items[0].Const.Type.String())

	pair := file.Items[1].Struct
	require.NotNil(t, pair)
	assert.Equal(t, "Pair", pair.Name.Value)
	require.Len(t, pair.Generics, 1)
	assert.Equal(t, "T", pair.Generics[0].Value)
	require.Len(t, pair.Fields, 2)
	assert.Equal(t, "second", pair.Fields[1].Name.Value)

	shape := file.Items[2].Enum
	require.NotNil(t, shape)
	require.Len(t, shape.Variants, 3)
	assert.Nil(t, shape.Variants[0].Tuple)
	assert.Nil(t, shape.Variants[0].Record)
	require.NotNil(t, shape.Variants[1].Tuple)
	assert.Equal(t, "Float", shape.Variants[1].Tuple.Types[0].String())
	require.NotNil(t, shape.Variants[2].Record)
	assert.Len(t, shape.Variants[2].Record.Fields, 2)

	area := file.Items[3].Function
	require.NotNil(t, area)
	require.Len(t, area.Params, 2)
	assert.True(t, area.Params[1].Mutable)
	assert.Equal(t, "Float", area.Return.String())

	apply := file.Items[4].Function
	require.NotNil(t, apply)
	assert.Equal(t, "fn(Int): Int", apply.Params[0].Type.String())
	assert.Nil(t, apply.Return)
}

func TestOutlineMatchesParser(t *testing.T) {
	file, err := grammar.ParseOutline("shapes.tn", shapes)
	require.NoError(t, err)
	items, err := parser.ParseFile(shapes)
	require.NoError(t, err)
	require.Len(t, file.Items, len(items))

	for i, item := range items {
		outline := file.Items[i]
		switch item := item.(type) {
		case *ast.Const:
			require.NotNil(t, outline.Const)
			assert.Equal(t, item.Ident, outline.Const.Name.Value)
			assert.Equal(t, item.Type.String(), outline.Const.Type.String())
		case *ast.Function:
			require.NotNil(t, outline.Function)
			assert.Equal(t, item.Name, outline.Function.Name.Value)
			require.Len(t, outline.Function.Params, len(item.Params))
			for j, p := range item.Params {
				assert.Equal(t, p.String(), outline.Function.Params[j].String())
			}
		case *ast.Struct:
			require.NotNil(t, outline.Struct)
			assert.Equal(t, item.Name, outline.Struct.Name.Value)
			require.Len(t, outline.Struct.Fields, len(item.Fields))
			for j, f := range item.Fields {
				assert.Equal(t, f.Name, outline.Struct.Fields[j].Name.Value)
				assert.Equal(t, f.Type.String(), outline.Struct.Fields[j].Type.String())
			}
		case *ast.Enum:
			require.NotNil(t, outline.Enum)
			assert.Equal(t, item.Name, outline.Enum.Name.Value)
			require.Len(t, outline.Enum.Variants, len(item.Variants))
			for j, v := range item.Variants {
				assert.Equal(t, v.VariantName(), outline.Enum.Variants[j].Name.Value)
			}
		default:
			t.Fatalf("unexpected item %T", item)
		}
	}
}

func TestOutlineErrors(t *testing.T) {
	for _, source := range []string{
		"fn (a) -> a",
		"struct S { a: Int",
		"const X = 1",
		"let x = 1",
	} {
		_, err := grammar.ParseOutline("bad.tn", source)
		assert.Error(t, err, source)
	}
}

func TestSymbols(t *testing.T) {
	file, err := grammar.ParseOutline("shapes.tn", shapes)
	require.NoError(t, err)
	symbols := file.Symbols(shapes)
	require.Len(t, symbols, 5)

	assert.Equal(t, "ORIGIN", symbols[0].Name)
	assert.Equal(t, grammar.ConstSymbol, symbols[0].Kind)
	assert.Equal(t, "(Float, Float)", symbols[0].Detail)

	pair := symbols[1]
	assert.Equal(t, grammar.StructSymbol, pair.Kind)
	assert.Equal(t, "<T>", pair.Detail)
	assert.Equal(t, lexer.Position{Line: 4, Column: 1, Offset: pair.Range.Start.Offset}, pair.Range.Start)
	assert.Equal(t, 7, pair.Range.End.Line)
	assert.Equal(t, 2, pair.Range.End.Column)
	assert.Equal(t, 8, pair.Selection.Start.Column)
	assert.Equal(t, 12, pair.Selection.End.Column)
	require.Len(t, pair.Children, 3)
	assert.Equal(t, grammar.TypeParamSymbol, pair.Children[0].Kind)
	first := pair.Children[1]
	assert.Equal(t, "first", first.Name)
	assert.Equal(t, grammar.FieldSymbol, first.Kind)
	assert.Equal(t, "T", first.Detail)
	assert.Equal(t, 5, first.Range.Start.Line)
	assert.Equal(t, 5, first.Range.Start.Column)
	assert.Equal(t, 13, first.Range.End.Column)

	shape := symbols[2]
	assert.Equal(t, grammar.EnumSymbol, shape.Kind)
	require.Len(t, shape.Children, 3)
	assert.Equal(t, "", shape.Children[0].Detail)
	assert.Equal(t, "(Float)", shape.Children[1].Detail)
	assert.Len(t, shape.Children[2].Children, 2)
	assert.Equal(t, grammar.VariantSymbol, shape.Children[2].Kind)

	assert.Equal(t, "fn(s: Shape, mut scale: Float): Float", symbols[3].Detail)
	assert.Equal(t, 18, symbols[3].Range.End.Line)
	assert.Equal(t, "fn(f: fn(Int): Int, x: Int)", symbols[4].Detail)
	assert.Equal(t, "function", symbols[4].Kind.String())
}

func TestLexerAdapter(t *testing.T) {
	lex, err := grammar.Definition.LexString("a.tn", "fn f(x) -> x\n  + 1.5 $")
	require.NoError(t, err)

	var tokens []plexer.Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.EOF() {
			break
		}
	}

	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	assert.Equal(t, []string{"fn", "f", "(", "x", ")", "->", "x", "+", "1.5", "$", ""}, values)

	assert.Equal(t, grammar.Keyword, tokens[0].Type)
	assert.Equal(t, grammar.Ident, tokens[1].Type)
	assert.Equal(t, grammar.Punct, tokens[2].Type)
	assert.Equal(t, grammar.Float, tokens[8].Type)
	assert.Equal(t, grammar.Error, tokens[9].Type)

	plus := tokens[7]
	assert.Equal(t, plexer.Position{Filename: "a.tn", Offset: 15, Line: 2, Column: 3}, plus.Pos)
	assert.Equal(t, 2, tokens[10].Pos.Line)
	assert.Equal(t, 10, tokens[10].Pos.Column)
}
