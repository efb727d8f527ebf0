package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

// declaration parses a top-level or block-level declaration, recovering
// via synchronize() when a statement is malformed.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name, ok := p.consume(lexer.IDENT, "Expect class name.")
	if !ok {
		panic(parseFailure{})
	}

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		superName, ok := p.consume(lexer.IDENT, "Expect superclass name.")
		if !ok {
			panic(parseFailure{})
		}
		superclass = ast.NewVariable(superName)
	}

	if _, ok := p.consume(lexer.LEFT_BRACE, "Expect '{' before class body."); !ok {
		panic(parseFailure{})
	}

	var methods []*ast.FunctionDecl
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	if _, ok := p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body."); !ok {
		panic(parseFailure{})
	}

	return &ast.ClassDecl{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) *ast.FunctionDecl {
	name, ok := p.consume(lexer.IDENT, "Expect "+kind+" name.")
	if !ok {
		panic(parseFailure{})
	}

	if _, ok := p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name."); !ok {
		panic(parseFailure{})
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.reportError(p.peek(), "Can't have more than 255 parameters.")
			}
			param, ok := p.consume(lexer.IDENT, "Expect parameter name.")
			if !ok {
				panic(parseFailure{})
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, ok := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); !ok {
		panic(parseFailure{})
	}

	if _, ok := p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body."); !ok {
		panic(parseFailure{})
	}
	body := p.block()

	return &ast.FunctionDecl{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name, ok := p.consume(lexer.IDENT, "Expect variable name.")
	if !ok {
		panic(parseFailure{})
	}

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	if _, ok := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); !ok {
		panic(parseFailure{})
	}
	return &ast.VarDecl{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.BREAK):
		return p.breakStatement()
	case p.match(lexer.LEFT_BRACE):
		leftBrace := p.previous()
		return &ast.Block{LeftBrace: leftBrace, Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, ok := p.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); !ok {
		panic(parseFailure{})
	}
	return statements
}

// forStatement desugars `for (init; cond; incr) body` down to a
// WhileStmt wrapped in the init/increment blocks, rather than adding a
// dedicated ForStmt node.
func (p *Parser) forStatement() ast.Stmt {
	keyword := p.previous()
	if _, ok := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'."); !ok {
		panic(parseFailure{})
	}

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	if _, ok := p.consume(lexer.SEMICOLON, "Expect ';' after loop condition."); !ok {
		panic(parseFailure{})
	}

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	if _, ok := p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses."); !ok {
		panic(parseFailure{})
	}

	body := p.statement()

	if increment != nil {
		body = &ast.Block{LeftBrace: keyword, Statements: []ast.Stmt{body, &ast.ExprStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = ast.NewLiteral(true, keyword.Pos)
	}
	body = &ast.WhileStmt{Keyword: keyword, Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{LeftBrace: keyword, Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	keyword := p.previous()
	if _, ok := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'."); !ok {
		panic(parseFailure{})
	}
	condition := p.expression()
	if _, ok := p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition."); !ok {
		panic(parseFailure{})
	}

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Keyword: keyword, Condition: condition, Then: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	keyword := p.previous()
	value := p.expression()
	if _, ok := p.consume(lexer.SEMICOLON, "Expect ';' after value."); !ok {
		panic(parseFailure{})
	}
	return &ast.PrintStmt{Keyword: keyword, Expression: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	if _, ok := p.consume(lexer.SEMICOLON, "Expect ';' after return value."); !ok {
		panic(parseFailure{})
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	keyword := p.previous()
	if _, ok := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'."); !ok {
		panic(parseFailure{})
	}
	condition := p.expression()
	if _, ok := p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition."); !ok {
		panic(parseFailure{})
	}
	body := p.statement()
	return &ast.WhileStmt{Keyword: keyword, Condition: condition, Body: body}
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	if _, ok := p.consume(lexer.SEMICOLON, "Expect ';' after 'break'."); !ok {
		panic(parseFailure{})
	}
	return &ast.BreakStmt{Keyword: keyword}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	if _, ok := p.consume(lexer.SEMICOLON, "Expect ';' after expression."); !ok {
		panic(parseFailure{})
	}
	return &ast.ExprStmt{Expression: expr}
}

// parseFailure is panicked to unwind to the nearest declaration() frame
// for synchronization; it carries no data.
type parseFailure struct{}
