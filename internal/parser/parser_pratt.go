package parser

import (
	"tern/internal/ast"
	"tern/internal/lexer"
)

// prefixBP is the right binding power of unary `-` and `!`. It is above
// every binary operator, so `-a * b` is `(-a) * b`.
const prefixBP = 51

type bindingPower struct {
	op          ast.BinaryOp
	left, right int
}

// Left-associative operators bind tighter on the right; `**` is the
// reverse, which makes it right associative.
var binaryOps = map[lexer.TokenType]bindingPower{
	lexer.EQUAL:         {ast.Assign, 1, 2},
	lexer.OR:            {ast.Or, 3, 4},
	lexer.AND:           {ast.And, 5, 6},
	lexer.EQUAL_EQUAL:   {ast.Eqq, 7, 8},
	lexer.BANG_EQUAL:    {ast.Neq, 7, 8},
	lexer.GREATER:       {ast.Gt, 9, 10},
	lexer.LESS:          {ast.Lt, 9, 10},
	lexer.LESS_EQUAL:    {ast.Leq, 9, 10},
	lexer.GREATER_EQUAL: {ast.Geq, 9, 10},
	lexer.PIPE:          {ast.BOr, 11, 12},
	lexer.CARET:         {ast.Xor, 13, 14},
	lexer.AMPERSAND:     {ast.BAnd, 15, 16},
	lexer.PLUS:          {ast.Add, 17, 18},
	lexer.MINUS:         {ast.Sub, 17, 18},
	lexer.STAR:          {ast.Mul, 19, 20},
	lexer.SLASH:         {ast.Div, 19, 20},
	lexer.STAR_STAR:     {ast.Exp, 22, 21},
}

// Tokens that end an expression without being part of it.
var terminators = map[lexer.TokenType]bool{
	lexer.RIGHT_PAREN:   true,
	lexer.RIGHT_BRACE:   true,
	lexer.RIGHT_BRACKET: true,
	lexer.COMMA:         true,
	lexer.SEMICOLON:     true,
	lexer.ELSE:          true,
	lexer.FN:            true,
	lexer.CONST:         true,
	lexer.STRUCT:        true,
	lexer.ENUM:          true,
	lexer.EOF:           true,
}

// Expression parses one complete expression.
func (p *Parser) Expression() (ast.Expr, error) {
	return p.parsePrattExpr(0)
}

func (p *Parser) parsePrattExpr(minBP int) (ast.Expr, error) {
	lhs, err := p.parsePrefixExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		if tok.Is(lexer.LEFT_PAREN) {
			args, err := delimitedList(p, lexer.LEFT_PAREN, lexer.RIGHT_PAREN, (*Parser).Expression)
			if err != nil {
				return nil, err
			}
			lhs = &ast.CallExpr{Fun: lhs, Args: args}
			continue
		}

		if terminators[tok.Type] {
			break
		}

		bp, ok := binaryOps[tok.Type]
		if !ok {
			return nil, p.unexpected("")
		}
		if bp.left < minBP {
			break
		}
		p.advance()

		rhs, err := p.parsePrattExpr(bp.right)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Op: bp.op, Lhs: lhs, Rhs: rhs}
	}

	return lhs, nil
}

func (p *Parser) parsePrefixExpr() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case lexer.INT_LIT:
		p.advance()
		return ast.Literal(ast.IntLit(tok.Int)), nil
	case lexer.FLOAT_LIT:
		p.advance()
		return ast.Literal(ast.FloatLit(tok.Float)), nil
	case lexer.STRING_LIT:
		p.advance()
		return ast.Literal(ast.StrLit(tok.Text)), nil
	case lexer.CHAR_LIT:
		p.advance()
		return ast.Literal(ast.CharLit(tok.Char)), nil
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return ast.Literal(ast.BoolLit(tok.Is(lexer.TRUE))), nil
	case lexer.IDENTIFIER:
		p.advance()
		return &ast.IdentExpr{Name: tok.Text}, nil
	case lexer.MINUS, lexer.BANG:
		p.advance()
		inner, err := p.parsePrattExpr(prefixBP)
		if err != nil {
			return nil, err
		}
		op := ast.Neg
		if tok.Is(lexer.BANG) {
			op = ast.Not
		}
		return &ast.UnaryExpr{Op: op, Expr: inner}, nil
	case lexer.LEFT_PAREN:
		return p.parseGroupExpr()
	case lexer.LEFT_BRACKET:
		elems, err := delimitedList(p, lexer.LEFT_BRACKET, lexer.RIGHT_BRACKET, (*Parser).Expression)
		if err != nil {
			return nil, err
		}
		return ast.Literal(ast.ArrayLit(elems)), nil
	case lexer.IF:
		return p.parseIfExpr()
	case lexer.LET:
		return p.parseLetExpr()
	case lexer.PIPE, lexer.OR:
		return p.parseLambdaExpr()
	case lexer.LEFT_BRACE:
		return p.parseBlockExpr()
	}

	return nil, p.unexpected("start of expression")
}

// parseGroupExpr handles `(e)` and tuple literals `(e,)`, `(a, b)`. The
// comma after the first element is what makes it a tuple.
func (p *Parser) parseGroupExpr() (ast.Expr, error) {
	p.advance()

	first, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.COMMA) {
		if err := p.consume(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return first, nil
	}

	elems := []ast.Expr{first}
	for p.at(lexer.COMMA) {
		p.advance()
		if p.at(lexer.RIGHT_PAREN) {
			break
		}
		e, err := p.Expression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	if err := p.consume(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return ast.Literal(ast.TupleLit(elems)), nil
}

func (p *Parser) parseIfExpr() (ast.Expr, error) {
	p.advance()

	if err := p.consume(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	cond, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	then, err := p.Expression()
	if err != nil {
		return nil, err
	}

	expr := &ast.IfExpr{Cond: cond, Then: then}
	if p.at(lexer.ELSE) {
		p.advance()
		if expr.Else, err = p.Expression(); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) parseLetExpr() (ast.Expr, error) {
	p.advance()

	binding, err := p.Binding()
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
	return &ast.LetExpr{Binding: binding, Value: value}, nil
}

// parseLambdaExpr handles `|params| [: Type] -> body`. `||` lexes as a
// single token and stands for an empty parameter list.
func (p *Parser) parseLambdaExpr() (ast.Expr, error) {
	lambda := &ast.LambdaExpr{}

	if p.at(lexer.OR) {
		p.advance()
	} else {
		params, err := delimitedList(p, lexer.PIPE, lexer.PIPE, (*Parser).Binding)
		if err != nil {
			return nil, err
		}
		lambda.Params = params
	}

	if p.at(lexer.COLON) {
		p.advance()
		rt, err := p.Type()
		if err != nil {
			return nil, err
		}
		lambda.ReturnType = rt
	}

	if err := p.consume(lexer.ARROW); err != nil {
		return nil, err
	}
	body, err := p.Expression()
	if err != nil {
		return nil, err
	}
	lambda.Body = body
	return lambda, nil
}

// parseBlockExpr handles `{ e; e; e }`. A `;` right before `}` makes the
// block unit-valued.
func (p *Parser) parseBlockExpr() (ast.Expr, error) {
	p.advance()

	block := &ast.BlockExpr{}
	for !p.at(lexer.RIGHT_BRACE) {
		e, err := p.Expression()
		if err != nil {
			return nil, err
		}
		block.Exprs = append(block.Exprs, e)

		if !p.at(lexer.SEMICOLON) {
			block.Trailing = true
			break
		}
		p.advance()
	}

	if err := p.consume(lexer.RIGHT_BRACE); err != nil {
		return nil, err
	}
	return block, nil
}
