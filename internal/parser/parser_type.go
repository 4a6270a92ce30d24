package parser

import (
	"tern/internal/ast"
	"tern/internal/lexer"
)

// Type parses a type expression: `Name<T, ...>`, `[T]`, `(T, ...)` or
// `fn(T, ...): R`.
func (p *Parser) Type() (ast.Type, error) {
	switch p.peek().Type {
	case lexer.IDENTIFIER:
		return p.parseNamedType()
	case lexer.LEFT_BRACKET:
		p.advance()
		elem, err := p.Type()
		if err != nil {
			return nil, err
		}
		if err := p.consume(lexer.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayType{Elem: elem}, nil
	case lexer.LEFT_PAREN:
		elems, err := delimitedList(p, lexer.LEFT_PAREN, lexer.RIGHT_PAREN, (*Parser).Type)
		if err != nil {
			return nil, err
		}
		return &ast.TupleType{Elems: elems}, nil
	case lexer.FN:
		return p.parseFnType()
	}
	return nil, p.unexpected("start of type name")
}

func (p *Parser) parseNamedType() (ast.Type, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	typ := &ast.NamedType{Name: name}
	if p.at(lexer.LESS) {
		if typ.Generics, err = delimitedList(p, lexer.LESS, lexer.GREATER, (*Parser).Type); err != nil {
			return nil, err
		}
	}
	return typ, nil
}

func (p *Parser) parseFnType() (ast.Type, error) {
	p.advance()

	params, err := delimitedList(p, lexer.LEFT_PAREN, lexer.RIGHT_PAREN, (*Parser).Type)
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.COLON); err != nil {
		return nil, err
	}
	result, err := p.Type()
	if err != nil {
		return nil, err
	}
	return &ast.FnType{Params: params, Result: result}, nil
}
