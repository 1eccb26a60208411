// Package parser turns Wobble token streams into a partially-recovered
// AST. The parser never aborts on malformed input: failures are recorded
// as diagnostics, error-placeholder nodes keep the tree well-typed, and
// panic-mode synchronization bounds error cascades to one diagnostic per
// unparseable region.
package parser

import (
	"fmt"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/lexer"
	"github.com/wobble-lang/wobble/compiler/source"
)

// Parser holds the cursor state for one parse. Each Parse call constructs
// and discards its own instance.
type Parser struct {
	tokens  []lexer.Token
	current int
	diags   []errors.Diagnostic
}

// New creates a Parser over an already-filtered token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
		diags:   []errors.Diagnostic{},
	}
}

// Parse is the consumer-facing entry point: source text in, Program out.
// Lexer diagnostics precede parser diagnostics in the result; within each
// phase they are in source order, but the combined list is not globally
// sorted. Callers needing strict source order use errors.SortBySpan.
func Parse(src string) *Program {
	tokens, lexDiags := lexer.TokenizeFiltered(src)
	program, parseDiags := ParseTokens(tokens)

	diags := make([]errors.Diagnostic, 0, len(lexDiags)+len(parseDiags))
	diags = append(diags, lexDiags...)
	diags = append(diags, parseDiags...)

	program.Diagnostics = diags
	program.StabilityScore = stabilityScore(diags)
	return program
}

// ParseTokens parses an already-filtered token stream into a Program and
// the parser-phase diagnostics.
func ParseTokens(tokens []lexer.Token) (*Program, []errors.Diagnostic) {
	p := New(tokens)
	program := p.parseProgram()
	return program, p.diags
}

// stabilityScore mirrors the injector's scoring: 100 minus 10 per
// error-severity diagnostic, floored at 0.
func stabilityScore(diags []errors.Diagnostic) int {
	score := 100 - 10*errors.CountErrors(diags)
	if score < 0 {
		score = 0
	}
	return score
}

// parseProgram scans top-level declarations. Only `main` blocks are
// productive; anything else at the top level is skipped without a
// diagnostic, since curriculum files are expected to hold exactly one
// main block plus commentary.
func (p *Parser) parseProgram() *Program {
	declarations := []DeclNode{}

	for !p.isAtEnd() {
		if p.check(lexer.TOKEN_MAIN) {
			declarations = append(declarations, p.parseMainDecl())
		} else {
			p.advance()
		}
	}

	return &Program{
		Declarations: declarations,
		Diagnostics:  []errors.Diagnostic{},
	}
}

// parseMainDecl parses `main ... end`.
func (p *Parser) parseMainDecl() *MainDecl {
	start := p.peek().Span
	p.advance() // main

	body := p.parseBlock()

	endSpan := p.peek().Span
	if !p.match(lexer.TOKEN_END) {
		p.addError(errors.ErrUnexpectedToken, "expected `end` to close `main` block", p.peek().Span)
	}

	return &MainDecl{
		Body: body,
		Span: start.Cover(endSpan),
	}
}

// parseBlock collects statements until `end`, `else`, `elseif`, or
// end-of-input. The terminator is left for the caller to consume.
func (p *Parser) parseBlock() []StmtNode {
	statements := []StmtNode{}

	for !p.isAtEnd() && !p.check(lexer.TOKEN_END, lexer.TOKEN_ELSE, lexer.TOKEN_ELSEIF) {
		statements = append(statements, p.parseStatement())
	}

	return statements
}

// Helper methods for token manipulation

// isAtEnd checks if the cursor has reached the end of the token stream.
func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Type == lexer.TOKEN_EOF
}

// peek returns the current token without consuming it. The cursor never
// indexes past the end: over-reads synthesize an EOF token.
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.eofToken()
	}
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() lexer.Token {
	if p.current > 0 && p.current <= len(p.tokens) {
		return p.tokens[p.current-1]
	}
	return p.eofToken()
}

// eofToken synthesizes an EOF token at the end of the stream for
// over-reads on an empty or exhausted token slice.
func (p *Parser) eofToken() lexer.Token {
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		return lexer.Token{Type: lexer.TOKEN_EOF, Span: source.PointSpan(last.Span.End)}
	}
	return lexer.Token{Type: lexer.TOKEN_EOF, Span: source.PointSpan(source.StartOfFile())}
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check reports whether the current token is any of the given types.
func (p *Parser) check(types ...lexer.TokenType) bool {
	current := p.peek().Type
	for _, t := range types {
		if current == t {
			return true
		}
	}
	return false
}

// match consumes the current token if it is any of the given types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	if p.check(types...) {
		p.advance()
		return true
	}
	return false
}

// addError records an Error-severity diagnostic.
func (p *Parser) addError(code errors.Code, message string, span source.Span) {
	p.diags = append(p.diags, errors.New(code, errors.Error, message, span))
}

// synchronize discards tokens until one that can begin a statement (or
// `end`) is found. This bounds error cascades to one diagnostic per
// unparseable region rather than one per token.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.TOKEN_MAIN, lexer.TOKEN_FUNCTION, lexer.TOKEN_STRUCT,
			lexer.TOKEN_LET, lexer.TOKEN_IF, lexer.TOKEN_WHILE, lexer.TOKEN_FOR,
			lexer.TOKEN_RETURN, lexer.TOKEN_GUTTER, lexer.TOKEN_END:
			return
		}
		p.advance()
	}
}

// describe renders a token for diagnostics.
func describe(t lexer.Token) string {
	if t.Type == lexer.TOKEN_EOF {
		return "end of input"
	}
	return fmt.Sprintf("`%s`", t.Lexeme)
}
