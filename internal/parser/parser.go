// Package parser turns a token stream into an AST via recursive descent
// with precedence climbing over the expression grammar.
package parser

import (
	"fmt"

	"github.com/Byron-voldigoad/AST/internal/ast"
	"github.com/Byron-voldigoad/AST/internal/token"
)

// ParseError is a single syntax error with the line it was raised at.
type ParseError struct {
	Message string
	Line    int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Message, e.Line)
}

// parseError is raised internally to unwind to the nearest declaration
// boundary; Parser.declaration recovers it and calls synchronize.
type parseError struct{ err *ParseError }

// Parser consumes a fixed token slice and builds a Program, accumulating
// every syntax error it encounters rather than stopping at the first one.
type Parser struct {
	tokens []token.Token
	pos    int
	errors []*ParseError
}

// New constructs a Parser over tokens, which must end in an EOF token.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes nothing itself; it expects tokens already produced by
// the lexer and returns the parsed Program plus any errors collected.
func Parse(tokens []token.Token) (*ast.Program, []*ParseError) {
	p := New(tokens)
	return p.ParseProgram(), p.errors
}

// ParseProgram parses the full token stream into a Program, recovering
// from each syntax error at the next statement boundary so a single
// malformed declaration does not stop the rest of the file from parsing.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// Errors returns every syntax error collected during ParseProgram.
func (p *Parser) Errors() []*ParseError { return p.errors }

// --- declarations ---

func (p *Parser) declaration() (stmt ast.Statement) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			p.errors = append(p.errors, pe.err)
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(token.VAR) {
		return p.variableDeclaration(false)
	}
	if p.match(token.CONST) {
		return p.variableDeclaration(true)
	}
	if p.match(token.FUNCTION) {
		return p.functionDeclaration()
	}
	if p.match(token.CLASS) {
		return p.classDeclaration()
	}
	return p.statement()
}

func (p *Parser) variableDeclaration(isConst bool) ast.Statement {
	kw := p.previous()
	kind := "variable"
	if isConst {
		kind = "constant"
	}
	name := p.consume(token.IDENT, kind+" name expected").Value.(string)

	declaredType := ""
	if p.match(token.COLON) {
		declaredType = p.parseType()
	}

	var initializer ast.Expression
	if p.match(token.EQ) {
		initializer = p.expression()
	} else if isConst {
		p.fail("constants must be initialized", kw.Line)
	}

	p.consume(token.SEMICOLON, "expected ';' after "+kind+" declaration")

	return &ast.VariableDecl{
		LineNo: kw.Line, Name: name, DeclaredType: declaredType,
		Initializer: initializer, IsConst: isConst,
	}
}

func (p *Parser) functionDeclaration() *ast.FunctionDecl {
	kw := p.previous()
	name := p.consume(token.IDENT, "function name expected").Value.(string)
	p.consume(token.LPAREN, "expected '(' after function name")
	params := p.parseParams()
	p.consume(token.RPAREN, "expected ')' after parameters")

	returnType := ""
	if p.match(token.COLON) {
		returnType = p.parseType()
	}

	p.consume(token.LBRACE, "expected '{' before function body")
	body := p.block()
	return &ast.FunctionDecl{LineNo: kw.Line, Name: name, Params: params, ReturnType: returnType, Body: body}
}

func (p *Parser) constructorDeclaration() *ast.ConstructorDecl {
	kw := p.previous()
	p.consume(token.LPAREN, "expected '(' after 'constructor'")
	params := p.parseParams()
	p.consume(token.RPAREN, "expected ')' after constructor parameters")
	p.consume(token.LBRACE, "expected '{' before constructor body")
	body := p.block()
	return &ast.ConstructorDecl{LineNo: kw.Line, Params: params, Body: body}
}

func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if !p.check(token.RPAREN) {
		for {
			name := p.consume(token.IDENT, "parameter name expected").Value.(string)
			typ := ""
			if p.match(token.COLON) {
				typ = p.parseType()
			}
			params = append(params, ast.Param{Name: name, Type: typ})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	return params
}

func (p *Parser) classDeclaration() *ast.ClassDecl {
	kw := p.previous()
	name := p.consume(token.IDENT, "class name expected").Value.(string)

	var superClass *ast.Identifier
	if p.match(token.EXTENDS) {
		superTok := p.consume(token.IDENT, "super class name expected after 'extends'")
		superClass = &ast.Identifier{LineNo: superTok.Line, Name: superTok.Value.(string)}
	}

	p.consume(token.LBRACE, "expected '{' before class body")

	var members []ast.Statement
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		switch {
		case p.match(token.VAR):
			members = append(members, p.variableDeclaration(false))
		case p.match(token.FUNCTION):
			members = append(members, p.functionDeclaration())
		case p.match(token.CONSTRUCTOR):
			members = append(members, p.constructorDeclaration())
		case p.check(token.IDENT):
			// A method may omit the `function` keyword: name(params) { ... }
			nameTok := p.advance()
			p.consume(token.LPAREN, "expected '(' after method name")
			params := p.parseParams()
			p.consume(token.RPAREN, "expected ')' after parameters")
			returnType := ""
			if p.match(token.COLON) {
				returnType = p.parseType()
			}
			p.consume(token.LBRACE, "expected '{' before method body")
			body := p.block()
			members = append(members, &ast.FunctionDecl{LineNo: nameTok.Line, Name: nameTok.Value.(string), Params: params, ReturnType: returnType, Body: body})
		default:
			p.fail(fmt.Sprintf("unexpected class member: %s", p.peek().Kind), p.peek().Line)
		}
	}

	p.consume(token.RBRACE, "expected '}' after class body")
	return &ast.ClassDecl{LineNo: kw.Line, Name: name, SuperClass: superClass, Members: members}
}

func (p *Parser) parseType() string {
	var typeStr string
	switch {
	case p.match(token.TYPE_INT):
		typeStr = "int"
	case p.match(token.TYPE_FLOAT):
		typeStr = "float"
	case p.match(token.TYPE_STRING):
		typeStr = "string"
	case p.match(token.TYPE_BOOL):
		typeStr = "bool"
	case p.match(token.TYPE_CHAR):
		typeStr = "char"
	case p.match(token.IDENT):
		typeStr = p.previous().Value.(string)
	case p.check(token.LBRACE):
		return p.parseObjectType()
	default:
		p.fail("type expected", p.peek().Line)
	}

	if p.match(token.LBRACKET) {
		p.consume(token.RBRACKET, "expected ']' to close array type")
		typeStr += "[]"
	}
	return typeStr
}

func (p *Parser) parseObjectType() string {
	p.consume(token.LBRACE, "expected '{' for object type")
	out := "{"
	first := true
	if !p.check(token.RBRACE) {
		for {
			fieldName := p.consume(token.IDENT, "field name expected in object type").Value.(string)
			p.consume(token.COLON, "expected ':' after field name in object type")
			fieldType := p.parseType()
			if !first {
				out += ","
			}
			out += fieldName + ":" + fieldType
			first = false
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RBRACE, "expected '}' after object type")
	return out + "}"
}

// --- statements ---

func (p *Parser) statement() ast.Statement {
	switch {
	case p.match(token.LBRACE):
		return p.block()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.CONTINUE):
		return p.continueStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() *ast.Block {
	kw := p.previous()
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RBRACE, "expected '}' after block")
	return &ast.Block{LineNo: kw.Line, Statements: stmts}
}

func (p *Parser) ifStatement() ast.Statement {
	kw := p.previous()
	p.consume(token.LPAREN, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(token.RPAREN, "expected ')' after if condition")
	then := p.statement()
	var els ast.Statement
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStatement{LineNo: kw.Line, Cond: cond, Then: then, Else: els}
}

func (p *Parser) whileStatement() ast.Statement {
	kw := p.previous()
	p.consume(token.LPAREN, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(token.RPAREN, "expected ')' after while condition")
	body := p.statement()
	return &ast.WhileStatement{LineNo: kw.Line, Cond: cond, Body: body}
}

func (p *Parser) forStatement() ast.Statement {
	kw := p.previous()
	p.consume(token.LPAREN, "expected '(' after 'for'")

	var init ast.Statement
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		init = p.variableDeclaration(false)
	default:
		expr := p.expression()
		p.consume(token.SEMICOLON, "expected ';' after for-loop initializer")
		init = &ast.ExpressionStatement{LineNo: expr.Line(), Expr: expr}
	}

	var cond ast.Expression
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after for-loop condition")

	var update ast.Expression
	if !p.check(token.RPAREN) {
		update = p.expression()
	}
	p.consume(token.RPAREN, "expected ')' after for-loop clauses")

	body := p.statement()
	return &ast.ForStatement{LineNo: kw.Line, Init: init, Cond: cond, Update: update, Body: body}
}

func (p *Parser) returnStatement() ast.Statement {
	kw := p.previous()
	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after return value")
	return &ast.ReturnStatement{LineNo: kw.Line, Value: value}
}

func (p *Parser) breakStatement() ast.Statement {
	kw := p.previous()
	p.consume(token.SEMICOLON, "expected ';' after 'break'")
	return &ast.BreakStatement{LineNo: kw.Line}
}

func (p *Parser) continueStatement() ast.Statement {
	kw := p.previous()
	p.consume(token.SEMICOLON, "expected ';' after 'continue'")
	return &ast.ContinueStatement{LineNo: kw.Line}
}

func (p *Parser) expressionStatement() ast.Statement {
	expr := p.expression()
	p.consume(token.SEMICOLON, "expected ';' after expression")
	return &ast.ExpressionStatement{LineNo: expr.Line(), Expr: expr}
}

// --- expressions, lowest to highest precedence ---

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

var assignOps = map[token.Kind]string{
	token.EQ: "=", token.PLUS_EQ: "+=", token.MINUS_EQ: "-=",
	token.MUL_EQ: "*=", token.DIV_EQ: "/=", token.MOD_EQ: "%=",
}

func (p *Parser) assignment() ast.Expression {
	expr := p.logicalOr()

	if p.match(token.EQ, token.PLUS_EQ, token.MINUS_EQ, token.MUL_EQ, token.DIV_EQ, token.MOD_EQ) {
		opTok := p.previous()
		op := assignOps[opTok.Kind]
		value := p.assignment()

		switch expr.(type) {
		case *ast.Identifier, *ast.MemberAccess, *ast.IndexAccess:
			return &ast.Assignment{LineNo: expr.Line(), Target: expr, Op: op, Value: value}
		}
		p.fail("invalid assignment target: expected identifier, member access, or index access", p.peek().Line)
	}
	return expr
}

func (p *Parser) logicalOr() ast.Expression {
	expr := p.logicalAnd()
	for p.match(token.OR) {
		expr = &ast.BinaryOp{LineNo: expr.Line(), Left: expr, Op: "||", Right: p.logicalAnd()}
	}
	return expr
}

func (p *Parser) logicalAnd() ast.Expression {
	expr := p.equality()
	for p.match(token.AND) {
		expr = &ast.BinaryOp{LineNo: expr.Line(), Left: expr, Op: "&&", Right: p.equality()}
	}
	return expr
}

var equalityOps = map[token.Kind]string{token.EQ_EQ: "==", token.NOT_EQ: "!="}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.match(token.EQ_EQ, token.NOT_EQ) {
		op := equalityOps[p.previous().Kind]
		expr = &ast.BinaryOp{LineNo: expr.Line(), Left: expr, Op: op, Right: p.comparison()}
	}
	return expr
}

var comparisonOps = map[token.Kind]string{
	token.LESS: "<", token.LESS_EQ: "<=", token.GREATER: ">", token.GREATER_EQ: ">=",
}

func (p *Parser) comparison() ast.Expression {
	expr := p.term()
	for p.match(token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ) {
		op := comparisonOps[p.previous().Kind]
		expr = &ast.BinaryOp{LineNo: expr.Line(), Left: expr, Op: op, Right: p.term()}
	}
	return expr
}

var termOps = map[token.Kind]string{token.PLUS: "+", token.MINUS: "-"}

func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		op := termOps[p.previous().Kind]
		expr = &ast.BinaryOp{LineNo: expr.Line(), Left: expr, Op: op, Right: p.factor()}
	}
	return expr
}

var factorOps = map[token.Kind]string{token.MUL: "*", token.DIV: "/", token.MOD: "%"}

func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.match(token.MUL, token.DIV, token.MOD) {
		op := factorOps[p.previous().Kind]
		expr = &ast.BinaryOp{LineNo: expr.Line(), Left: expr, Op: op, Right: p.unary()}
	}
	return expr
}

func (p *Parser) unary() ast.Expression {
	if p.match(token.NOT, token.MINUS) {
		opTok := p.previous()
		op := "-"
		if opTok.Kind == token.NOT {
			op = "!"
		}
		return &ast.UnaryOp{LineNo: opTok.Line, Op: op, Operand: p.unary()}
	}
	return p.call()
}

func (p *Parser) call() ast.Expression {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			memberTok := p.consume(token.IDENT, "member name expected after '.'")
			expr = &ast.MemberAccess{
				LineNo: expr.Line(), Target: expr,
				Member: &ast.Identifier{LineNo: memberTok.Line, Name: memberTok.Value.(string)},
			}
		case p.match(token.LBRACKET):
			index := p.expression()
			p.consume(token.RBRACKET, "expected ']' after index")
			expr = &ast.IndexAccess{LineNo: expr.Line(), Target: expr, Index: index}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expression) ast.Expression {
	var args []ast.Expression
	if !p.check(token.RPAREN) {
		for {
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expected ')' after arguments")
	return &ast.FunctionCall{LineNo: callee.Line(), Callee: callee, Arguments: args}
}

func (p *Parser) primary() ast.Expression {
	tok := p.peek()
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{LineNo: tok.Line, Value: false, RawType: "bool"}
	case p.match(token.TRUE):
		return &ast.Literal{LineNo: tok.Line, Value: true, RawType: "bool"}
	case p.match(token.NULL):
		return &ast.Literal{LineNo: tok.Line, Value: nil, RawType: "null"}
	case p.match(token.INT):
		return &ast.Literal{LineNo: tok.Line, Value: tok.Value, RawType: "int"}
	case p.match(token.FLOAT):
		return &ast.Literal{LineNo: tok.Line, Value: tok.Value, RawType: "float"}
	case p.match(token.STRING):
		return &ast.Literal{LineNo: tok.Line, Value: tok.Value, RawType: "string"}
	case p.match(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, "expected ')' after expression")
		return expr
	case p.match(token.LBRACKET):
		return p.arrayLiteral(tok.Line)
	case p.match(token.LBRACE):
		return p.objectLiteral(tok.Line)
	case p.match(token.IDENT):
		return &ast.Identifier{LineNo: tok.Line, Name: tok.Value.(string)}
	}

	p.fail(fmt.Sprintf("expected expression, found %s", p.peek().Kind), p.peek().Line)
	return nil // unreachable: fail always panics
}

func (p *Parser) arrayLiteral(line int) ast.Expression {
	var elems []ast.Expression
	if !p.check(token.RBRACKET) {
		for {
			elems = append(elems, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RBRACKET, "expected ']' after array elements")
	return &ast.ArrayLiteral{LineNo: line, Elements: elems}
}

func (p *Parser) objectLiteral(line int) ast.Expression {
	var props []ast.ObjectProperty
	if !p.check(token.RBRACE) {
		for {
			key := p.consume(token.IDENT, "property name expected in object literal").Value.(string)
			p.consume(token.COLON, "expected ':' after property name in object literal")
			props = append(props, ast.ObjectProperty{Name: key, Value: p.expression()})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RBRACE, "expected '}' after object literal properties")
	return &ast.ObjectLiteral{LineNo: line, Properties: props}
}

// --- token-stream primitives ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool          { return p.peek().Kind == token.EOF }
func (p *Parser) peek() token.Token      { return p.tokens[p.pos] }
func (p *Parser) previous() token.Token  { return p.tokens[p.pos-1] }

func (p *Parser) consume(k token.Kind, message string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.fail(message, p.peek().Line)
	panic("unreachable")
}

func (p *Parser) fail(message string, line int) {
	panic(parseError{err: &ParseError{Message: message, Line: line}})
}

// synchronize discards tokens until it reaches a likely statement
// boundary: a consumed semicolon, a line break past the error token, or
// a keyword that starts a new declaration or statement.
func (p *Parser) synchronize() {
	switch p.peek().Kind {
	case token.CLASS, token.FUNCTION, token.VAR, token.CONST, token.FOR, token.IF, token.WHILE, token.RETURN:
		// The failing token already starts a new declaration or statement
		// (typically after a missing ';'), so resume right there.
		return
	}
	p.advance()
	currentLine := p.previous().Line

	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		if p.peek().Line > currentLine {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUNCTION, token.VAR, token.CONST, token.FOR, token.IF, token.WHILE, token.RETURN:
			return
		}
		p.advance()
	}
}
