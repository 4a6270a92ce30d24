package parser

import (
	"tern/internal/ast"
	"tern/internal/lexer"
)

// File parses items until the end of input.
func (p *Parser) File() ([]ast.Item, error) {
	var items []ast.Item
	for !p.at(lexer.EOF) {
		item, err := p.Item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Item parses one top-level declaration, chosen by its leading keyword.
func (p *Parser) Item() (ast.Item, error) {
	switch p.peek().Type {
	case lexer.CONST:
		return p.parseConst()
	case lexer.FN:
		return p.parseFunction()
	case lexer.STRUCT:
		return p.parseStruct()
	case lexer.ENUM:
		return p.parseEnum()
	}
	return nil, p.unexpected("start of item")
}

// const NAME: Type = expr
func (p *Parser) parseConst() (ast.Item, error) {
	p.advance()

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.COLON); err != nil {
		return nil, err
	}
	typ, err := p.Type()
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.EQUAL); err != nil {
		return nil, err
	}
	value, err := p.Expression()
	if err != nil {
		return nil, err
	}
	return &ast.Const{Ident: name, Type: typ, Value: value}, nil
}

// fn NAME(bindings) [: Type] -> expr
func (p *Parser) parseFunction() (ast.Item, error) {
	p.advance()

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	params, err := delimitedList(p, lexer.LEFT_PAREN, lexer.RIGHT_PAREN, (*Parser).Binding)
	if err != nil {
		return nil, err
	}

	fn := &ast.Function{Name: name, Params: params}
	if p.at(lexer.COLON) {
		p.advance()
		if fn.ReturnType, err = p.Type(); err != nil {
			return nil, err
		}
	}

	if err := p.consume(lexer.ARROW); err != nil {
		return nil, err
	}
	if fn.Body, err = p.Expression(); err != nil {
		return nil, err
	}
	return fn, nil
}

// struct NAME [<T, ...>] { field: Type, ... }
func (p *Parser) parseStruct() (ast.Item, error) {
	p.advance()

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}
	fields, err := delimitedList(p, lexer.LEFT_BRACE, lexer.RIGHT_BRACE, (*Parser).parseField)
	if err != nil {
		return nil, err
	}
	return &ast.Struct{Name: name, GenericParams: generics, Fields: fields}, nil
}

// enum NAME [<T, ...>] { Variant, ... }
func (p *Parser) parseEnum() (ast.Item, error) {
	p.advance()

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}
	variants, err := delimitedList(p, lexer.LEFT_BRACE, lexer.RIGHT_BRACE, (*Parser).parseVariant)
	if err != nil {
		return nil, err
	}
	return &ast.Enum{Name: name, GenericParams: generics, Variants: variants}, nil
}

func (p *Parser) parseGenericParams() ([]string, error) {
	if !p.at(lexer.LESS) {
		return nil, nil
	}
	return delimitedList(p, lexer.LESS, lexer.GREATER, (*Parser).ident)
}

// parseVariant picks the variant shape from the token after its name.
func (p *Parser) parseVariant() (ast.Variant, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	switch p.peek().Type {
	case lexer.COMMA:
		return &ast.UnitVariant{Name: name}, nil
	case lexer.LEFT_PAREN:
		types, err := delimitedList(p, lexer.LEFT_PAREN, lexer.RIGHT_PAREN, (*Parser).Type)
		if err != nil {
			return nil, err
		}
		return &ast.TupleVariant{Name: name, Types: types}, nil
	case lexer.LEFT_BRACE:
		fields, err := delimitedList(p, lexer.LEFT_BRACE, lexer.RIGHT_BRACE, (*Parser).parseField)
		if err != nil {
			return nil, err
		}
		return &ast.StructVariant{Name: name, Fields: fields}, nil
	}
	return nil, p.expected("one of `,` `(` `{`")
}

func (p *Parser) parseField() (ast.Field, error) {
	name, err := p.ident()
	if err != nil {
		return ast.Field{}, err
	}
	if err := p.consume(lexer.COLON); err != nil {
		return ast.Field{}, err
	}
	typ, err := p.Type()
	if err != nil {
		return ast.Field{}, err
	}
	return ast.Field{Name: name, Type: typ}, nil
}

// Binding parses `[mut] NAME [: Type]`.
func (p *Parser) Binding() (ast.Binding, error) {
	var b ast.Binding
	if p.at(lexer.MUT) {
		p.advance()
		b.Mutable = true
	}

	name, err := p.ident()
	if err != nil {
		return ast.Binding{}, err
	}
	b.Name = name

	if p.at(lexer.COLON) {
		p.advance()
		if b.TypeAnnotation, err = p.Type(); err != nil {
			return ast.Binding{}, err
		}
	}
	return b, nil
}
