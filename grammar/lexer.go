package grammar

import (
	"io"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"tern/internal/lexer"
)

// Token categories exposed to participle grammars. Keywords and punctuation
// are matched by their literal text, so they only need a category.
const (
	Ident plexer.TokenType = iota + 1
	Int
	Float
	String
	Char
	Keyword
	Punct
	Error
)

var symbols = map[string]plexer.TokenType{
	"EOF":     plexer.EOF,
	"Ident":   Ident,
	"Int":     Int,
	"Float":   Float,
	"String":  String,
	"Char":    Char,
	"Keyword": Keyword,
	"Punct":   Punct,
	"Error":   Error,
}

// Definition is a participle lexer definition backed by the tern lexer, so
// participle grammars see exactly the tokens the parser sees.
var Definition plexer.Definition = definition{}

type definition struct{}

func (definition) Symbols() map[string]plexer.TokenType {
	return symbols
}

func (d definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(source))
}

func (definition) LexString(filename string, source string) (plexer.Lexer, error) {
	return &adapter{
		filename: filename,
		source:   source,
		lex:      lexer.New(source),
		line:     1,
		column:   1,
	}, nil
}

type adapter struct {
	filename string
	source   string
	lex      *lexer.Lexer

	// position of offset, advanced incrementally
	offset, line, column int
}

func (a *adapter) Next() (plexer.Token, error) {
	tok, span, ok := a.lex.NextSpanned()
	if !ok || tok.Is(lexer.EOF) {
		return plexer.EOFToken(a.position(len(a.source))), nil
	}
	return plexer.Token{
		Type:  category(tok.Type),
		Value: a.source[span.Start:span.End],
		Pos:   a.position(span.Start),
	}, nil
}

// position converts a byte offset at or after the previous one.
func (a *adapter) position(offset int) plexer.Position {
	for a.offset < offset {
		r, size := utf8.DecodeRuneInString(a.source[a.offset:])
		a.offset += size
		if r == '\n' {
			a.line++
			a.column = 1
		} else {
			a.column++
		}
	}
	return plexer.Position{Filename: a.filename, Offset: offset, Line: a.line, Column: a.column}
}

func category(tt lexer.TokenType) plexer.TokenType {
	switch tt {
	case lexer.IDENTIFIER:
		return Ident
	case lexer.INT_LIT:
		return Int
	case lexer.FLOAT_LIT:
		return Float
	case lexer.STRING_LIT:
		return String
	case lexer.CHAR_LIT:
		return Char
	case lexer.ERROR:
		return Error
	case lexer.LET, lexer.MUT, lexer.FN, lexer.IF, lexer.ELSE, lexer.MATCH,
		lexer.CONST, lexer.STRUCT, lexer.ENUM, lexer.TRUE, lexer.FALSE:
		return Keyword
	default:
		return Punct
	}
}
