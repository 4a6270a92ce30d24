package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(input string) []Token {
	return New(input).Tokenize()
}

func TestSingleCharTokens(t *testing.T) {
	assert.Equal(t, []Token{
		Simple(PLUS), Simple(MINUS), Simple(LEFT_PAREN), Simple(DOT),
		Simple(RIGHT_PAREN), Simple(COLON), Simple(EOF),
	}, tokenize("+-(.):"))
}

func TestSingleCharTokensWithWhitespace(t *testing.T) {
	assert.Equal(t, []Token{
		Simple(PLUS), Simple(MINUS), Simple(LEFT_PAREN), Simple(DOT),
		Simple(RIGHT_PAREN), Simple(COLON), Simple(EOF),
	}, tokenize("   + -  (.): "))
}

func TestUnknownInput(t *testing.T) {
	assert.Equal(t, []Token{
		Simple(LEFT_BRACE), Error(1, 8), Simple(PLUS), Simple(EOF),
	}, tokenize("{$$$$$$$+"))
}

func TestUnknownInputStopsAtWhitespace(t *testing.T) {
	assert.Equal(t, []Token{
		Error(0, 2), Ident("x"), Simple(EOF),
	}, tokenize("$$ x"))
}

func TestUnknownMultiByteInput(t *testing.T) {
	assert.Equal(t, []Token{
		Ident("a"), Error(1, 4), Ident("b"), Simple(EOF),
	}, tokenize("a€b"))
}

func TestUnterminatedString(t *testing.T) {
	assert.Equal(t, []Token{
		Error(0, 1), Ident("abc"), Simple(EOF),
	}, tokenize(`"abc`))
}

func TestMaybeMultipleCharTokens(t *testing.T) {
	assert.Equal(t, []Token{
		Simple(AND), Simple(EQUAL), Simple(LESS_EQUAL), Simple(UNDERSCORE),
		Simple(BANG_EQUAL), Simple(OR), Simple(EOF),
	}, tokenize("&&=<=_!=||"))

	assert.Equal(t, []Token{
		Simple(ARROW), Simple(STAR_STAR), Simple(STAR), Simple(EQUAL_EQUAL),
		Simple(GREATER_EQUAL), Simple(GREATER), Simple(EOF),
	}, tokenize("-> ** * == >= >"))
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []Token{
		Simple(IF), Simple(LET), Simple(EQUAL), Simple(MATCH), Simple(ELSE),
		Simple(FN), Simple(MUT), Simple(CONST), Simple(STRUCT), Simple(ENUM),
		Simple(TRUE), Simple(FALSE), Simple(EOF),
	}, tokenize("if let = match else fn mut const struct enum true false"))
}

func TestKeywordIdentifierTieBreak(t *testing.T) {
	tests := []struct {
		input string
		want  Token
	}{
		{"if", Simple(IF)},
		{"iffy", Ident("iffy")},
		{"let", Simple(LET)},
		{"letter", Ident("letter")},
		{"true", Simple(TRUE)},
		{"true_", Ident("true_")},
		{"_", Simple(UNDERSCORE)},
		{"_x", Ident("_x")},
		{"fn2", Ident("fn2")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, []Token{tt.want, Simple(EOF)}, tokenize(tt.input))
		})
	}
}

func TestComment(t *testing.T) {
	assert.Equal(t, []Token{Simple(IF), Simple(LET), Simple(EOF)}, tokenize("//hello, world!\nif let"))
	assert.Equal(t, []Token{Ident("x"), Simple(EOF)}, tokenize("x // no newline after this"))
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, []Token{
		IntLit(1),
		FloatLit(0.5),
		FloatLit(0.211),
		FloatLit(-1.0),
		Simple(TRUE),
		StringLit("test"),
		CharLit('\n'),
		Simple(EOF),
	}, tokenize(`1 .5 0.211 -1. true "test"'\n'`))
}

func TestSignedNumbers(t *testing.T) {
	assert.Equal(t, []Token{IntLit(-1), Simple(EOF)}, tokenize("-1"))
	assert.Equal(t, []Token{Simple(MINUS), IntLit(1), Simple(EOF)}, tokenize("- 1"))
	assert.Equal(t, []Token{FloatLit(27.3e-2), Simple(EOF)}, tokenize("27.3e-2"))
	assert.Equal(t, []Token{FloatLit(2.5e3), Simple(EOF)}, tokenize("+2.5E3"))
}

func TestStringEscapes(t *testing.T) {
	assert.Equal(t, []Token{StringLit("String content \"\\ test"), Simple(EOF)},
		tokenize(`"String content \"\\ test"`))
	assert.Equal(t, []Token{StringLit("a\nb"), Simple(EOF)}, tokenize(`"a\nb"`))
	assert.Equal(t, []Token{StringLit(`\n`), Simple(EOF)}, tokenize(`"\\n"`))
	assert.Equal(t, []Token{CharLit('\''), CharLit('\\'), CharLit('é'), Simple(EOF)},
		tokenize(`'\'' '\\' 'é'`))
}

func TestIntegerOverflowDoesNotPanic(t *testing.T) {
	tokens := tokenize("99999999999999999999")
	require.NotEmpty(t, tokens)
	assert.Equal(t, ERROR, tokens[0].Type)
	assert.Equal(t, Simple(EOF), tokens[len(tokens)-1])
}

func TestFunction(t *testing.T) {
	input := `
        // this is a comment!
        fn test(var: Type, var2_: bool) {
            let x = '\n' + "String content \"\\ test" + 7 / 27.3e-2^4;
            let chars = x.chars();
        }
    `
	assert.Equal(t, []Token{
		Simple(FN), Ident("test"), Simple(LEFT_PAREN),
		Ident("var"), Simple(COLON), Ident("Type"), Simple(COMMA),
		Ident("var2_"), Simple(COLON), Ident("bool"), Simple(RIGHT_PAREN),
		Simple(LEFT_BRACE),
		Simple(LET), Ident("x"), Simple(EQUAL), CharLit('\n'), Simple(PLUS),
		StringLit("String content \"\\ test"), Simple(PLUS), IntLit(7), Simple(SLASH),
		FloatLit(27.3e-2), Simple(CARET), IntLit(4), Simple(SEMICOLON),
		Simple(LET), Ident("chars"), Simple(EQUAL), Ident("x"), Simple(DOT),
		Ident("chars"), Simple(LEFT_PAREN), Simple(RIGHT_PAREN), Simple(SEMICOLON),
		Simple(RIGHT_BRACE),
		Simple(EOF),
	}, tokenize(input))
}

func TestTokenizeIsDeterministic(t *testing.T) {
	inputs := []string{"", "   ", "{$$$$$$$+", "fn f(x) -> x ** 2", "// only a comment", "€€€"}

	for _, input := range inputs {
		first := tokenize(input)
		second := tokenize(input)
		assert.Equal(t, first, second, "input %q", input)

		eofs := 0
		for _, tok := range first {
			if tok.Is(EOF) {
				eofs++
			}
		}
		assert.Equal(t, 1, eofs, "input %q", input)
		assert.Equal(t, Simple(EOF), first[len(first)-1], "input %q", input)
	}
}

func TestExhaustedLexer(t *testing.T) {
	l := New("x")

	tok, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, Ident("x"), tok)

	tok, ok = l.Next()
	require.True(t, ok)
	assert.Equal(t, Simple(EOF), tok)

	_, ok = l.Next()
	assert.False(t, ok)
	_, ok = l.Next()
	assert.False(t, ok)
}

func TestSpans(t *testing.T) {
	var spans []Span
	for _, span := range New("let  x\n= 'a'").All() {
		spans = append(spans, span)
	}

	assert.Equal(t, []Span{
		{Start: 0, End: 3},
		{Start: 5, End: 6},
		{Start: 7, End: 8},
		{Start: 9, End: 12},
		{Start: 12, End: 12},
	}, spans)
}

func TestAllStopsEarly(t *testing.T) {
	l := New("a b c")
	for tok := range l.All() {
		assert.Equal(t, Ident("a"), tok)
		break
	}

	tok, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, Ident("b"), tok)
}

func TestKindVersusValue(t *testing.T) {
	foo := Ident("foo")
	bar := Ident("bar")

	assert.True(t, foo.Is(IDENTIFIER))
	assert.True(t, bar.Is(IDENTIFIER))
	assert.NotEqual(t, foo, bar)
	assert.Equal(t, foo, Ident("foo"))
	assert.False(t, IntLit(1).Is(FLOAT_LIT))
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "foo", Ident("foo").String())
	assert.Equal(t, "->", Simple(ARROW).String())
	assert.Equal(t, "struct", Simple(STRUCT).String())
	assert.Equal(t, `"hi"`, StringLit("hi").String())
	assert.Equal(t, "<eof>", Simple(EOF).String())
	assert.Equal(t, "STAR_STAR", STAR_STAR.String())
	assert.Equal(t, "`)`", Describe(RIGHT_PAREN))
	assert.Equal(t, "identifier", Describe(IDENTIFIER))
}

func TestLocate(t *testing.T) {
	source := "ab\ncé\nx"

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, Locate(source, 0))
	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 3}, Locate(source, 3))
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 6}, Locate(source, 6))
	assert.Equal(t, Position{Line: 3, Column: 2, Offset: 8}, Locate(source, 100))
}
