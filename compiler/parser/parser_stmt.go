package parser

import (
	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/lexer"
	"github.com/wobble-lang/wobble/compiler/source"
)

// parseStatement dispatches on the leading token. It always returns a
// statement node; total failure yields a BadStmt after resynchronization.
func (p *Parser) parseStatement() StmtNode {
	switch p.peek().Type {
	case lexer.TOKEN_LET:
		return p.parseLet()
	case lexer.TOKEN_PRINT, lexer.TOKEN_PRINTLN:
		return p.parsePrint()
	case lexer.TOKEN_IF:
		return p.parseIf()
	case lexer.TOKEN_WHILE:
		return p.parseWhile()
	case lexer.TOKEN_FOR:
		return p.parseFor()
	case lexer.TOKEN_RETURN:
		return p.parseReturn()
	case lexer.TOKEN_BREAK:
		tok := p.advance()
		return &BreakStmt{Span: tok.Span}
	case lexer.TOKEN_CONTINUE:
		tok := p.advance()
		return &ContinueStmt{Span: tok.Span}
	case lexer.TOKEN_GUTTER:
		return p.parseGutter()
	default:
		return p.parseExprStatement()
	}
}

// parseLet parses `let [mutable] name [: type] = value`.
func (p *Parser) parseLet() StmtNode {
	start := p.peek().Span
	p.advance() // let

	mutable := p.match(lexer.TOKEN_MUTABLE)

	name := ""
	if p.check(lexer.TOKEN_IDENTIFIER) {
		name = p.advance().Lexeme
	} else {
		p.addError(errors.ErrExpectedIdentifier,
			"expected variable name after `let`, found "+describe(p.peek()), p.peek().Span)
	}

	typeName := ""
	if p.match(lexer.TOKEN_COLON) {
		typeName = p.parseTypeName()
	}

	if !p.match(lexer.TOKEN_EQUAL) {
		p.addError(errors.ErrUnexpectedToken,
			"expected `=` in `let` declaration, found "+describe(p.peek()), p.peek().Span)
	}

	value := p.parseExpression()
	if value == nil {
		value = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
	}

	return &LetStmt{
		Mutable:  mutable,
		Name:     name,
		TypeName: typeName,
		Value:    value,
		Span:     start.Cover(p.previous().Span),
	}
}

// parseTypeName accepts one of the five built-in type names or an
// identifier naming a struct.
func (p *Parser) parseTypeName() string {
	if p.check(lexer.TOKEN_TYPE_INT, lexer.TOKEN_TYPE_FLOAT, lexer.TOKEN_TYPE_STRING,
		lexer.TOKEN_TYPE_BOOL, lexer.TOKEN_TYPE_ARRAY, lexer.TOKEN_IDENTIFIER) {
		return p.advance().Lexeme
	}
	p.addError(errors.ErrUnexpectedToken,
		"expected type name after `:`, found "+describe(p.peek()), p.peek().Span)
	return ""
}

// parsePrint parses `print(args)` / `println(args)`.
func (p *Parser) parsePrint() StmtNode {
	start := p.peek().Span
	keyword := p.advance()

	if !p.match(lexer.TOKEN_LPAREN) {
		p.addError(errors.ErrUnexpectedToken,
			"expected `(` after `"+keyword.Lexeme+"`", p.peek().Span)
		return &BadStmt{Span: start}
	}

	arguments := []ExprNode{}
	if !p.check(lexer.TOKEN_RPAREN) {
		for {
			arg := p.parseExpression()
			if arg == nil {
				break
			}
			arguments = append(arguments, arg)
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}

	if !p.match(lexer.TOKEN_RPAREN) {
		p.addError(errors.ErrMissingClosingDelim,
			"missing `)` to close `"+keyword.Lexeme+"` argument list", p.peek().Span)
	}

	return &PrintStmt{
		Newline:   keyword.Type == lexer.TOKEN_PRINTLN,
		Arguments: arguments,
		Span:      start.Cover(p.previous().Span),
	}
}

// parseIf parses `if cond ... (elseif cond ...)* (else ...)? end`.
func (p *Parser) parseIf() StmtNode {
	start := p.peek().Span
	p.advance() // if

	branches := []IfBranch{p.parseIfBranch()}
	for p.match(lexer.TOKEN_ELSEIF) {
		branches = append(branches, p.parseIfBranch())
	}

	var elseBody []StmtNode
	if p.match(lexer.TOKEN_ELSE) {
		elseBody = p.parseBlock()
	}

	p.expectEnd("`if` statement")

	return &IfStmt{
		Branches: branches,
		Else:     elseBody,
		Span:     start.Cover(p.previous().Span),
	}
}

func (p *Parser) parseIfBranch() IfBranch {
	condition := p.parseExpression()
	if condition == nil {
		condition = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
	}
	return IfBranch{Condition: condition, Body: p.parseBlock()}
}

// parseWhile parses `while cond ... end`.
func (p *Parser) parseWhile() StmtNode {
	start := p.peek().Span
	p.advance() // while

	condition := p.parseExpression()
	if condition == nil {
		condition = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
	}

	body := p.parseBlock()
	p.expectEnd("`while` loop")

	return &WhileStmt{
		Condition: condition,
		Body:      body,
		Span:      start.Cover(p.previous().Span),
	}
}

// parseFor parses `for name in iterable ... end`.
func (p *Parser) parseFor() StmtNode {
	start := p.peek().Span
	p.advance() // for

	name := ""
	if p.check(lexer.TOKEN_IDENTIFIER) {
		name = p.advance().Lexeme
	} else {
		p.addError(errors.ErrExpectedIdentifier,
			"expected loop variable name after `for`, found "+describe(p.peek()), p.peek().Span)
	}

	if !p.match(lexer.TOKEN_IN) {
		p.addError(errors.ErrUnexpectedToken,
			"expected `in` in `for` loop header, found "+describe(p.peek()), p.peek().Span)
	}

	iterable := p.parseExpression()
	if iterable == nil {
		iterable = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
	}

	body := p.parseBlock()
	p.expectEnd("`for` loop")

	return &ForStmt{
		Name:     name,
		Iterable: iterable,
		Body:     body,
		Span:     start.Cover(p.previous().Span),
	}
}

// parseReturn parses `return [value]`.
func (p *Parser) parseReturn() StmtNode {
	start := p.peek().Span
	p.advance() // return

	var value ExprNode
	if canStartExpression(p.peek().Type) {
		value = p.parseExpression()
	}

	return &ReturnStmt{
		Value: value,
		Span:  start.Cover(p.previous().Span),
	}
}

// parseGutter parses `gutter ... end`, retaining every token up to the
// matching `end` verbatim. Gutter content is deliberately not validated
// at parse time: it exists to hold intentionally broken code for the
// error-injection engine or direct human editing. Capture is
// nesting-aware so block constructs inside the gutter keep their `end`s.
func (p *Parser) parseGutter() StmtNode {
	start := p.peek().Span
	p.advance() // gutter

	collected := []lexer.Token{}
	depth := 0
	terminated := false

	for !p.isAtEnd() {
		t := p.peek()
		if t.Type == lexer.TOKEN_END {
			if depth == 0 {
				p.advance()
				terminated = true
				break
			}
			depth--
		} else if opensBlock(t.Type) {
			depth++
		}
		collected = append(collected, p.advance())
	}

	if !terminated {
		p.addError(errors.ErrUnterminatedGutter,
			"gutter block is missing its closing `end`", source.PointSpan(p.peek().Span.Start))
	}

	return &GutterStmt{
		Tokens: collected,
		Span:   start.Cover(p.previous().Span),
	}
}

// opensBlock reports whether a token type begins an end-terminated block.
func opensBlock(t lexer.TokenType) bool {
	switch t {
	case lexer.TOKEN_MAIN, lexer.TOKEN_FUNCTION, lexer.TOKEN_STRUCT,
		lexer.TOKEN_IF, lexer.TOKEN_WHILE, lexer.TOKEN_FOR, lexer.TOKEN_GUTTER:
		return true
	default:
		return false
	}
}

// parseExprStatement parses an expression statement or an assignment.
// Total failure triggers synchronization and yields a BadStmt.
func (p *Parser) parseExprStatement() StmtNode {
	start := p.peek().Span

	expr := p.parseExpression()
	if expr == nil {
		p.synchronize()
		return &BadStmt{Span: start.Cover(p.previous().Span)}
	}

	if p.match(lexer.TOKEN_EQUAL) {
		value := p.parseExpression()
		if value == nil {
			value = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
		}
		return &AssignStmt{
			Target: expr,
			Value:  value,
			Span:   start.Cover(p.previous().Span),
		}
	}

	return &ExprStmt{Expr: expr, Span: expr.GetSpan()}
}

// expectEnd consumes the closing `end` of a block construct or records a
// diagnostic naming the construct.
func (p *Parser) expectEnd(what string) {
	if !p.match(lexer.TOKEN_END) {
		p.addError(errors.ErrUnexpectedToken,
			"expected `end` to close "+what+", found "+describe(p.peek()), p.peek().Span)
	}
}
