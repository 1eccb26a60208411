package parser

import (
	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/lexer"
	"github.com/wobble-lang/wobble/compiler/source"
)

// Binary operator precedence levels, lowest to highest. Every level is
// left-associative; climbing recurses into the right operand with
// minPrec = currentPrec + 1.
const (
	PREC_OR             = iota + 1 // or
	PREC_AND                       // and
	PREC_EQUALITY                  // == !=
	PREC_RELATIONAL                // < <= > >=
	PREC_BIT_OR                    // |
	PREC_BIT_XOR                   // ^
	PREC_BIT_AND                   // &
	PREC_SHIFT                     // << >>
	PREC_ADDITIVE                  // + -
	PREC_MULTIPLICATIVE            // * / %
)

// binaryPrecedence is the fixed operator table driving precedence climbing.
var binaryPrecedence = map[lexer.TokenType]int{
	lexer.TOKEN_OR:              PREC_OR,
	lexer.TOKEN_AND:             PREC_AND,
	lexer.TOKEN_EQUAL_EQUAL:     PREC_EQUALITY,
	lexer.TOKEN_BANG_EQUAL:      PREC_EQUALITY,
	lexer.TOKEN_LESS:            PREC_RELATIONAL,
	lexer.TOKEN_LESS_EQUAL:      PREC_RELATIONAL,
	lexer.TOKEN_GREATER:         PREC_RELATIONAL,
	lexer.TOKEN_GREATER_EQUAL:   PREC_RELATIONAL,
	lexer.TOKEN_PIPE:            PREC_BIT_OR,
	lexer.TOKEN_CARET:           PREC_BIT_XOR,
	lexer.TOKEN_AMPERSAND:       PREC_BIT_AND,
	lexer.TOKEN_LESS_LESS:       PREC_SHIFT,
	lexer.TOKEN_GREATER_GREATER: PREC_SHIFT,
	lexer.TOKEN_PLUS:            PREC_ADDITIVE,
	lexer.TOKEN_MINUS:           PREC_ADDITIVE,
	lexer.TOKEN_STAR:            PREC_MULTIPLICATIVE,
	lexer.TOKEN_SLASH:           PREC_MULTIPLICATIVE,
	lexer.TOKEN_PERCENT:         PREC_MULTIPLICATIVE,
}

// parseExpression parses a full expression, including the ternary form,
// which sits below every binary level and is right-associative.
// A nil return means the primary parse failed; the diagnostic has already
// been recorded and the caller decides how to recover.
func (p *Parser) parseExpression() ExprNode {
	expr := p.parseBinaryExpression(PREC_OR)
	if expr == nil {
		return nil
	}

	if p.match(lexer.TOKEN_QUESTION) {
		trueExpr := p.parseExpression()
		if trueExpr == nil {
			trueExpr = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
		}
		if !p.match(lexer.TOKEN_COLON) {
			p.addError(errors.ErrUnexpectedToken,
				"expected `:` in ternary expression, found "+describe(p.peek()), p.peek().Span)
		}
		falseExpr := p.parseExpression()
		if falseExpr == nil {
			falseExpr = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
		}
		return &TernaryExpr{
			Condition: expr,
			TrueExpr:  trueExpr,
			FalseExpr: falseExpr,
			Span:      expr.GetSpan().Cover(falseExpr.GetSpan()),
		}
	}

	return expr
}

// parseBinaryExpression implements precedence climbing over the fixed
// operator table.
func (p *Parser) parseBinaryExpression(minPrec int) ExprNode {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for {
		prec, ok := binaryPrecedence[p.peek().Type]
		if !ok || prec < minPrec {
			break
		}

		operator := p.advance()
		right := p.parseBinaryExpression(prec + 1)
		if right == nil {
			right = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
		}

		left = &BinaryExpr{
			Left:     left,
			Operator: operator.Type,
			Right:    right,
			Span:     left.GetSpan().Cover(right.GetSpan()),
		}
	}

	return left
}

// parseUnary parses the prefix operators, which bind tighter than all
// binary operators.
func (p *Parser) parseUnary() ExprNode {
	if p.check(lexer.TOKEN_MINUS, lexer.TOKEN_NOT, lexer.TOKEN_BANG, lexer.TOKEN_TILDE) {
		operator := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			operand = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
		}
		return &UnaryExpr{
			Operator: operator.Type,
			Operand:  operand,
			Span:     operator.Span.Cover(operand.GetSpan()),
		}
	}

	return p.parsePostfix()
}

// parsePostfix parses call, index, and member-access suffixes, which bind
// tighter than the prefix operators.
func (p *Parser) parsePostfix() ExprNode {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch {
		case p.match(lexer.TOKEN_LPAREN):
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
					"missing `)` to close call argument list", p.peek().Span)
			}
			expr = &CallExpr{
				Callee:    expr,
				Arguments: arguments,
				Span:      expr.GetSpan().Cover(p.previous().Span),
			}

		case p.match(lexer.TOKEN_LBRACKET):
			index := p.parseExpression()
			if index == nil {
				index = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
			}
			if !p.match(lexer.TOKEN_RBRACKET) {
				p.addError(errors.ErrMissingClosingDelim,
					"missing `]` to close index expression", p.peek().Span)
			}
			expr = &IndexExpr{
				Object: expr,
				Index:  index,
				Span:   expr.GetSpan().Cover(p.previous().Span),
			}

		case p.match(lexer.TOKEN_DOT):
			member := ""
			if p.check(lexer.TOKEN_IDENTIFIER) {
				member = p.advance().Lexeme
			} else {
				p.addError(errors.ErrUnexpectedToken,
					"expected member name after `.`, found "+describe(p.peek()), p.peek().Span)
			}
			expr = &MemberExpr{
				Object: expr,
				Member: member,
				Span:   expr.GetSpan().Cover(p.previous().Span),
			}

		default:
			return expr
		}
	}
}

// parsePrimary parses literals, identifiers, parenthesized groups,
// bracketed array literals, and lambdas. An unexpected token records
// E0001 and yields nil without consuming the token.
func (p *Parser) parsePrimary() ExprNode {
	tok := p.peek()

	switch tok.Type {
	case lexer.TOKEN_INT_LITERAL, lexer.TOKEN_FLOAT_LITERAL, lexer.TOKEN_STRING_LITERAL:
		p.advance()
		return &LiteralExpr{Value: tok.Literal, Span: tok.Span}

	case lexer.TOKEN_TRUE:
		p.advance()
		return &LiteralExpr{Value: true, Span: tok.Span}

	case lexer.TOKEN_FALSE:
		p.advance()
		return &LiteralExpr{Value: false, Span: tok.Span}

	case lexer.TOKEN_IDENTIFIER:
		p.advance()
		return &IdentifierExpr{Name: tok.Lexeme, Span: tok.Span}

	case lexer.TOKEN_LPAREN:
		p.advance()
		inner := p.parseExpression()
		if inner == nil {
			inner = &BadExpr{Span: source.PointSpan(p.peek().Span.Start)}
		}
		if !p.match(lexer.TOKEN_RPAREN) {
			p.addError(errors.ErrMissingClosingDelim,
				"missing `)` to close parenthesized expression", p.peek().Span)
		}
		return &GroupingExpr{Inner: inner, Span: tok.Span.Cover(p.previous().Span)}

	case lexer.TOKEN_LBRACKET:
		p.advance()
		elements := []ExprNode{}
		if !p.check(lexer.TOKEN_RBRACKET) {
			for {
				element := p.parseExpression()
				if element == nil {
					break
				}
				elements = append(elements, element)
				if !p.match(lexer.TOKEN_COMMA) {
					break
				}
			}
		}
		if !p.match(lexer.TOKEN_RBRACKET) {
			p.addError(errors.ErrMissingClosingDelim,
				"missing `]` to close array literal", p.peek().Span)
		}
		return &ArrayLiteralExpr{Elements: elements, Span: tok.Span.Cover(p.previous().Span)}

	case lexer.TOKEN_FUNCTION:
		return p.parseLambda()

	default:
		p.addError(errors.ErrUnexpectedToken,
			"expected expression, found "+describe(tok), tok.Span)
		return nil
	}
}

// parseLambda parses `function (params) body end` in expression position.
func (p *Parser) parseLambda() ExprNode {
	start := p.peek().Span
	p.advance() // function

	if !p.match(lexer.TOKEN_LPAREN) {
		p.addError(errors.ErrUnexpectedToken,
			"expected `(` after `function`, found "+describe(p.peek()), p.peek().Span)
	}

	params := []string{}
	if !p.check(lexer.TOKEN_RPAREN) {
		for {
			if p.check(lexer.TOKEN_IDENTIFIER) {
				params = append(params, p.advance().Lexeme)
			} else {
				p.addError(errors.ErrExpectedIdentifier,
					"expected parameter name, found "+describe(p.peek()), p.peek().Span)
				break
			}
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}
	if !p.match(lexer.TOKEN_RPAREN) {
		p.addError(errors.ErrMissingClosingDelim,
			"missing `)` to close parameter list", p.peek().Span)
	}

	body := p.parseBlock()
	p.expectEnd("`function` expression")

	return &LambdaExpr{
		Params: params,
		Body:   body,
		Span:   start.Cover(p.previous().Span),
	}
}

// canStartExpression reports whether a token type can begin an expression.
// Used to decide whether `return` carries a value.
func canStartExpression(t lexer.TokenType) bool {
	switch t {
	case lexer.TOKEN_INT_LITERAL, lexer.TOKEN_FLOAT_LITERAL, lexer.TOKEN_STRING_LITERAL,
		lexer.TOKEN_TRUE, lexer.TOKEN_FALSE, lexer.TOKEN_IDENTIFIER,
		lexer.TOKEN_LPAREN, lexer.TOKEN_LBRACKET, lexer.TOKEN_FUNCTION,
		lexer.TOKEN_MINUS, lexer.TOKEN_NOT, lexer.TOKEN_BANG, lexer.TOKEN_TILDE:
		return true
	default:
		return false
	}
}
