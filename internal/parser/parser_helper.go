package parser

import "tern/internal/lexer"

// advance moves the lookahead forward. Once the lexer is exhausted the
// lookahead stays on EOF.
func (p *Parser) advance() {
	tok, span, ok := p.lex.NextSpanned()
	if !ok {
		return
	}
	p.tok, p.span = tok, span
}

func (p *Parser) peek() lexer.Token {
	return p.tok
}

func (p *Parser) at(tt lexer.TokenType) bool {
	return p.tok.Is(tt)
}

// next returns the lookahead and advances past it.
func (p *Parser) next() lexer.Token {
	tok := p.tok
	p.advance()
	return tok
}

func (p *Parser) consume(tt lexer.TokenType) error {
	if !p.at(tt) {
		return p.expected(lexer.Describe(tt))
	}
	p.advance()
	return nil
}

func (p *Parser) ident() (string, error) {
	if !p.at(lexer.IDENTIFIER) {
		return "", p.expected(lexer.Describe(lexer.IDENTIFIER))
	}
	return p.next().Text, nil
}

// delimitedList parses `start item (, item)* (,)? end`.
func delimitedList[T any](p *Parser, start, end lexer.TokenType, item func(*Parser) (T, error)) ([]T, error) {
	if err := p.consume(start); err != nil {
		return nil, err
	}

	var items []T
	for !p.at(end) {
		it, err := item(p)
		if err != nil {
			return nil, err
		}
		items = append(items, it)

		if !p.at(lexer.COMMA) {
			break
		}
		p.advance()
	}

	if err := p.consume(end); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *Parser) expected(what string) error {
	return p.errorAt(MismatchedToken, what)
}

func (p *Parser) unexpected(what string) error {
	return p.errorAt(UnexpectedToken, what)
}

// errorAt reports the lookahead. Error tokens and a premature end of input
// take precedence over kind.
func (p *Parser) errorAt(kind ErrorKind, expected string) error {
	found := "`" + p.source[p.span.Start:p.span.End] + "`"
	switch {
	case p.at(lexer.ERROR):
		kind = LexicalError
	case p.at(lexer.EOF):
		kind = MissingToken
		found = lexer.Describe(lexer.EOF)
	}
	return &ParseError{Kind: kind, Expected: expected, Found: found, Span: p.span}
}
