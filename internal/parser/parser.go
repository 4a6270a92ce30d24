// Package parser builds a tern AST from source text.
//
// Expressions are parsed by precedence climbing over a binding-power table
// (parser_pratt.go); items, bindings and types are plain recursive descent.
// The parser keeps one token of lookahead, never backtracks and stops at the
// first syntax error.
package parser

import (
	"tern/internal/ast"
	"tern/internal/lexer"
)

type Parser struct {
	source string
	lex    *lexer.Lexer
	tok    lexer.Token
	span   lexer.Span
}

func New(source string) *Parser {
	p := &Parser{source: source, lex: lexer.New(source)}
	p.advance()
	return p
}

// ParseFile parses every item in source.
func ParseFile(source string) ([]ast.Item, error) {
	return New(source).File()
}

// ParseExpression parses source as exactly one expression.
func ParseExpression(source string) (ast.Expr, error) {
	p := New(source)
	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseType parses source as exactly one type expression.
func ParseType(source string) (ast.Type, error) {
	p := New(source)
	typ, err := p.Type()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return typ, nil
}

func (p *Parser) finish() error {
	if p.at(lexer.EOF) {
		return nil
	}
	return p.unexpected(lexer.Describe(lexer.EOF))
}
