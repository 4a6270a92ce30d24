package lexer

import (
	"fmt"
	"strconv"
)

// regenerate tokentype_string.go with `go generate ./internal/lexer`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	ERROR TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INT_LIT
	FLOAT_LIT
	STRING_LIT
	CHAR_LIT

	// Keywords
	LET
	MUT
	FN
	IF
	ELSE
	MATCH
	CONST
	STRUCT
	ENUM
	TRUE
	FALSE

	// Operators
	EQUAL
	AMPERSAND
	PIPE
	BANG
	CARET
	LESS
	GREATER
	PLUS
	MINUS
	STAR
	SLASH
	BACKSLASH
	EQUAL_EQUAL
	BANG_EQUAL
	AND
	OR
	LESS_EQUAL
	GREATER_EQUAL
	ARROW
	STAR_STAR

	// Separators
	DOT
	COMMA
	COLON
	SEMICOLON
	UNDERSCORE

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
)

// Token is a single lexical unit. Only the payload field matching Type is set,
// so two tokens compare equal with == exactly when kind and payload agree.
type Token struct {
	Type  TokenType
	Text  string  // IDENTIFIER name, decoded STRING_LIT
	Int   int64   // INT_LIT
	Float float64 // FLOAT_LIT
	Char  rune    // CHAR_LIT
	Start int     // ERROR span start
	End   int     // ERROR span end (exclusive)
}

// Span is the half-open byte range [Start, End) a token was read from.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

func Simple(tt TokenType) Token  { return Token{Type: tt} }
func Ident(name string) Token    { return Token{Type: IDENTIFIER, Text: name} }
func IntLit(v int64) Token       { return Token{Type: INT_LIT, Int: v} }
func FloatLit(v float64) Token   { return Token{Type: FLOAT_LIT, Float: v} }
func StringLit(v string) Token   { return Token{Type: STRING_LIT, Text: v} }
func CharLit(v rune) Token       { return Token{Type: CHAR_LIT, Char: v} }
func Error(start, end int) Token { return Token{Type: ERROR, Start: start, End: end} }

// Is reports whether t is of kind tt, ignoring its payload.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}

// String renders the token the way it appears in source, which is what
// diagnostics quote back to the user.
func (t Token) String() string {
	switch t.Type {
	case IDENTIFIER:
		return t.Text
	case INT_LIT:
		return strconv.FormatInt(t.Int, 10)
	case FLOAT_LIT:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	case STRING_LIT:
		return strconv.Quote(t.Text)
	case CHAR_LIT:
		return strconv.QuoteRune(t.Char)
	case ERROR:
		return fmt.Sprintf("<error %d..%d>", t.Start, t.End)
	case EOF:
		return "<eof>"
	}
	if sym, ok := symbols[t.Type]; ok {
		return sym
	}
	return t.Type.String()
}

// Describe names a token kind for "expected X" messages.
func Describe(tt TokenType) string {
	switch tt {
	case IDENTIFIER:
		return "identifier"
	case INT_LIT:
		return "integer literal"
	case FLOAT_LIT:
		return "float literal"
	case STRING_LIT:
		return "string literal"
	case CHAR_LIT:
		return "char literal"
	case EOF:
		return "end of input"
	case ERROR:
		return "invalid input"
	}
	if sym, ok := symbols[tt]; ok {
		return "`" + sym + "`"
	}
	return tt.String()
}

var symbols = map[TokenType]string{
	LET: "let", MUT: "mut", FN: "fn", IF: "if", ELSE: "else", MATCH: "match",
	CONST: "const", STRUCT: "struct", ENUM: "enum", TRUE: "true", FALSE: "false",

	EQUAL: "=", AMPERSAND: "&", PIPE: "|", BANG: "!", CARET: "^", LESS: "<",
	GREATER: ">", PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", BACKSLASH: "\\",
	EQUAL_EQUAL: "==", BANG_EQUAL: "!=", AND: "&&", OR: "||", LESS_EQUAL: "<=",
	GREATER_EQUAL: ">=", ARROW: "->", STAR_STAR: "**",

	DOT: ".", COMMA: ",", COLON: ":", SEMICOLON: ";", UNDERSCORE: "_",

	LEFT_PAREN: "(", RIGHT_PAREN: ")", LEFT_BRACE: "{", RIGHT_BRACE: "}",
	LEFT_BRACKET: "[", RIGHT_BRACKET: "]",
}
