package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

// expression is the entry point of the precedence chain:
// assignment -> ternary -> or -> and -> equality -> comparison -> term
// -> factor -> unary -> call -> primary.
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.reportError(equals, "Invalid assignment target.")
			return expr
		}
	}

	return expr
}

// ternary parses `cond ? then : else`, right-associative.
func (p *Parser) ternary() ast.Expr {
	expr := p.or()

	if p.match(lexer.QUESTION) {
		question := p.previous()
		then := p.ternary()
		if _, ok := p.consume(lexer.COLON, "Expect ':' after then branch of ternary expression."); !ok {
			panic(parseFailure{})
		}
		elseBranch := p.ternary()
		return ast.NewTernary(question, expr, then, elseBranch)
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return ast.NewUnary(operator, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name, ok := p.consume(lexer.IDENT, "Expect property name after '.'.")
			if !ok {
				panic(parseFailure{})
			}
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.reportError(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, ok := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if !ok {
		panic(parseFailure{})
	}
	return ast.NewCall(callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return ast.NewLiteral(false, p.previous().Pos)
	case p.match(lexer.TRUE):
		return ast.NewLiteral(true, p.previous().Pos)
	case p.match(lexer.NIL):
		return ast.NewLiteral(nil, p.previous().Pos)
	case p.match(lexer.NUMBER, lexer.STRING):
		tok := p.previous()
		return ast.NewLiteral(tok.Literal, tok.Pos)
	case p.match(lexer.SUPER):
		keyword := p.previous()
		if _, ok := p.consume(lexer.DOT, "Expect '.' after 'super'."); !ok {
			panic(parseFailure{})
		}
		method, ok := p.consume(lexer.IDENT, "Expect superclass method name.")
		if !ok {
			panic(parseFailure{})
		}
		return ast.NewSuper(keyword, method)
	case p.match(lexer.THIS):
		return ast.NewThis(p.previous())
	case p.match(lexer.IDENT):
		return ast.NewVariable(p.previous())
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		if _, ok := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); !ok {
			panic(parseFailure{})
		}
		return ast.NewGrouping(expr)
	default:
		p.reportError(p.peek(), "Expect expression.")
		panic(parseFailure{})
	}
}
