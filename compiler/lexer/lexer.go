// Package lexer tokenizes Wobble source code.
//
// The lexer never fails: every input character lands in either a valid
// token or an error-placeholder token plus a diagnostic, and the stream
// always ends with an EOF token. Whitespace, newlines, and comments are
// real tokens in the raw stream so that tooling can reconstruct the
// source byte-for-byte; the parser consumes the filtered stream instead.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/source"
)

// Lexer scans Wobble source text into tokens. Each Tokenize call builds
// its own Lexer; instances hold no state across invocations.
type Lexer struct {
	source string
	pos    source.Position // current scan position
	start  source.Position // position where the current token started
	tokens []Token
	diags  []errors.Diagnostic
}

// New creates a Lexer for the given source text.
func New(src string) *Lexer {
	return &Lexer{
		source: src,
		pos:    source.StartOfFile(),
		start:  source.StartOfFile(),
		tokens: make([]Token, 0, len(src)/8),
		diags:  []errors.Diagnostic{},
	}
}

// Tokenize scans source text into the raw, full-fidelity token stream.
func Tokenize(src string) ([]Token, []errors.Diagnostic) {
	return New(src).ScanTokens()
}

// TokenizeFiltered scans source text and removes whitespace, newline, and
// comment tokens. This is the stream the parser consumes.
func TokenizeFiltered(src string) ([]Token, []errors.Diagnostic) {
	tokens, diags := Tokenize(src)
	return Filter(tokens), diags
}

// Filter removes trivia tokens from a stream.
func Filter(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.Type.IsTrivia() {
			out = append(out, t)
		}
	}
	return out
}

// ScanTokens scans all tokens from the source and returns them with any
// diagnostics collected along the way.
func (l *Lexer) ScanTokens() ([]Token, []errors.Diagnostic) {
	for !l.isAtEnd() {
		l.start = l.pos
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Type:   TOKEN_EOF,
		Lexeme: "",
		Span:   source.PointSpan(l.pos),
	})

	return l.tokens, l.diags
}

// scanToken scans a single token.
func (l *Lexer) scanToken() {
	r := l.advance()

	switch r {
	// Single-character tokens
	case '(':
		l.addToken(TOKEN_LPAREN, nil)
	case ')':
		l.addToken(TOKEN_RPAREN, nil)
	case '[':
		l.addToken(TOKEN_LBRACKET, nil)
	case ']':
		l.addToken(TOKEN_RBRACKET, nil)
	case ',':
		l.addToken(TOKEN_COMMA, nil)
	case ':':
		l.addToken(TOKEN_COLON, nil)
	case '.':
		// A dot only starts a float when scanNumber sees digit-dot-digit,
		// so a bare dot here is always punctuation.
		l.addToken(TOKEN_DOT, nil)
	case '?':
		l.addToken(TOKEN_QUESTION, nil)
	case '+':
		l.addToken(TOKEN_PLUS, nil)
	case '*':
		l.addToken(TOKEN_STAR, nil)
	case '/':
		l.addToken(TOKEN_SLASH, nil)
	case '%':
		l.addToken(TOKEN_PERCENT, nil)
	case '^':
		l.addToken(TOKEN_CARET, nil)
	case '~':
		l.addToken(TOKEN_TILDE, nil)

	// One-character lookahead resolves the two-character operators
	case '-':
		if l.match('>') {
			l.addToken(TOKEN_ARROW, nil)
		} else {
			l.addToken(TOKEN_MINUS, nil)
		}
	case '=':
		if l.match('=') {
			l.addToken(TOKEN_EQUAL_EQUAL, nil)
		} else {
			l.addToken(TOKEN_EQUAL, nil)
		}
	case '!':
		if l.match('=') {
			l.addToken(TOKEN_BANG_EQUAL, nil)
		} else {
			l.addToken(TOKEN_BANG, nil)
		}
	case '<':
		if l.match('=') {
			l.addToken(TOKEN_LESS_EQUAL, nil)
		} else if l.match('<') {
			l.addToken(TOKEN_LESS_LESS, nil)
		} else {
			l.addToken(TOKEN_LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.addToken(TOKEN_GREATER_EQUAL, nil)
		} else if l.match('>') {
			l.addToken(TOKEN_GREATER_GREATER, nil)
		} else {
			l.addToken(TOKEN_GREATER, nil)
		}

	// && and || are accepted but nudged toward the word keywords.
	// The token kind is the same one `and`/`or` produce, so the parser
	// treats both spellings uniformly.
	case '&':
		if l.match('&') {
			l.addWarning(errors.ErrSymbolicLogicalOp, "`&&` works, but Wobble spells this operator `and`")
			l.addToken(TOKEN_AND, nil)
		} else {
			l.addToken(TOKEN_AMPERSAND, nil)
		}
	case '|':
		if l.match('|') {
			l.addWarning(errors.ErrSymbolicLogicalOp, "`||` works, but Wobble spells this operator `or`")
			l.addToken(TOKEN_OR, nil)
		} else {
			l.addToken(TOKEN_PIPE, nil)
		}

	// Comments
	case '#':
		l.scanComment()

	// String literals
	case '"':
		l.scanString(false)

	// Trivia
	case ' ', '\t', '\r':
		l.scanWhitespace()
	case '\n':
		l.addToken(TOKEN_NEWLINE, nil)

	default:
		switch {
		case isDigit(r):
			l.scanNumber()
		case isAlpha(r):
			l.scanIdentifier()
		case isSmartQuote(r):
			// Typographic quote at string-start position: diagnose, then
			// recover by running the normal string scan with the curly
			// delimiters accepted as terminators.
			l.addError(errors.ErrSmartQuote, "typographic quote "+strconv.QuoteRune(r)+" used instead of `\"`")
			l.scanString(true)
		default:
			l.addError(errors.ErrIllegalCharacter, "illegal character "+strconv.QuoteRune(r))
			l.addToken(TOKEN_ERROR, nil)
		}
	}
}

// scanComment scans a single-line comment starting with #.
func (l *Lexer) scanComment() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
	l.addToken(TOKEN_COMMENT, nil)
}

// scanWhitespace collapses a run of spaces, tabs, and carriage returns
// into a single whitespace token.
func (l *Lexer) scanWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			l.addToken(TOKEN_WHITESPACE, nil)
			return
		}
	}
}

// scanString scans a string literal after the opening delimiter has been
// consumed. In smart mode (recovery after a typographic quote) the curly
// quote code points also terminate the string; the decoded value never
// includes the delimiters either way.
func (l *Lexer) scanString(smart bool) {
	var builder strings.Builder

	for !l.isAtEnd() {
		c := l.peek()

		if c == '"' || (smart && isSmartQuote(c)) {
			l.advance() // closing delimiter
			l.addToken(TOKEN_STRING_LITERAL, builder.String())
			return
		}

		if c == '\n' {
			// The newline ends the string immediately; it is not consumed
			// and lexes as its own token next.
			l.addError(errors.ErrUnterminatedString, "unterminated string literal: hit newline")
			l.addToken(TOKEN_STRING_LITERAL, builder.String())
			return
		}

		if c == '\\' {
			l.scanEscape(&builder)
			continue
		}

		builder.WriteRune(l.advance())
	}

	l.addError(errors.ErrUnterminatedString, "unterminated string literal: reached end of input")
	l.addToken(TOKEN_STRING_LITERAL, builder.String())
}

// scanEscape decodes one backslash escape into the string buffer. Unknown
// escapes produce a diagnostic but still append the escaped character, so
// the scan always makes forward progress.
func (l *Lexer) scanEscape(builder *strings.Builder) {
	escStart := l.pos
	l.advance() // consume backslash
	if l.isAtEnd() {
		return // the string loop reports the unterminated literal
	}

	escaped := l.advance()
	switch escaped {
	case 'n':
		builder.WriteRune('\n')
	case 'r':
		builder.WriteRune('\r')
	case 't':
		builder.WriteRune('\t')
	case '\\':
		builder.WriteRune('\\')
	case '"':
		builder.WriteRune('"')
	case '0':
		builder.WriteRune(0)
	case 'x':
		hi, okHi := hexDigit(l.peek())
		if okHi {
			l.advance()
			lo, okLo := hexDigit(l.peek())
			if okLo {
				l.advance()
				builder.WriteByte(byte(hi<<4 | lo))
				return
			}
		}
		l.diags = append(l.diags, errors.New(errors.ErrUnknownEscape, errors.Error,
			"`\\x` escape needs two hex digits", source.NewSpan(escStart, l.pos)))
		builder.WriteRune('x')
	default:
		l.diags = append(l.diags, errors.New(errors.ErrUnknownEscape, errors.Error,
			"unknown escape sequence `\\"+string(escaped)+"`", source.NewSpan(escStart, l.pos)))
		builder.WriteRune(escaped)
	}
}

// scanNumber scans an integer or float literal. The decimal point is
// consumed only when the character immediately after it is a digit, so
// `3.` lexes as the integer 3 followed by a dot token.
func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekNext()) {
		isFloat = true
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	lexeme := l.source[l.start.Offset:l.pos.Offset]

	if isFloat {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			l.addError(errors.ErrMalformedNumber, "malformed float literal "+strconv.Quote(lexeme))
			l.addToken(TOKEN_ERROR, nil)
			return
		}
		l.addToken(TOKEN_FLOAT_LITERAL, value)
		return
	}

	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		l.addError(errors.ErrMalformedNumber, "integer literal "+strconv.Quote(lexeme)+" does not fit in 64 bits")
		l.addToken(TOKEN_ERROR, nil)
		return
	}
	l.addToken(TOKEN_INT_LITERAL, value)
}

// scanIdentifier scans an identifier or keyword.
func (l *Lexer) scanIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	lexeme := l.source[l.start.Offset:l.pos.Offset]
	if tokenType, ok := lookupKeyword(lexeme); ok {
		l.addToken(tokenType, nil)
		return
	}
	l.addToken(TOKEN_IDENTIFIER, nil)
}

// Helper methods

func (l *Lexer) isAtEnd() bool {
	return l.pos.Offset >= len(l.source)
}

// advance consumes and returns the current rune.
func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.source[l.pos.Offset:])
	l.pos = l.pos.Advance(r, size)
	return r
}

// match consumes the current rune if it equals expected.
func (l *Lexer) match(expected rune) bool {
	if l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

// peek returns the current rune without consuming it.
func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos.Offset:])
	return r
}

// peekNext returns the rune after the current one without consuming anything.
func (l *Lexer) peekNext() rune {
	if l.isAtEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.pos.Offset:])
	if l.pos.Offset+size >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos.Offset+size:])
	return r
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

// isSmartQuote reports whether r is one of the four Unicode curly-quote
// code points word processors substitute for straight quotes.
func isSmartQuote(r rune) bool {
	return r == '‘' || r == '’' || r == '“' || r == '”'
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// addToken adds a token covering the current lexeme.
func (l *Lexer) addToken(tokenType TokenType, literal interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tokenType,
		Lexeme:  l.source[l.start.Offset:l.pos.Offset],
		Literal: literal,
		Span:    source.NewSpan(l.start, l.pos),
	})
}

// addError records an Error-severity diagnostic spanning the current lexeme.
func (l *Lexer) addError(code errors.Code, message string) {
	l.diags = append(l.diags, errors.New(code, errors.Error, message, source.NewSpan(l.start, l.pos)))
}

// addWarning records a Warning-severity diagnostic spanning the current lexeme.
func (l *Lexer) addWarning(code errors.Code, message string) {
	l.diags = append(l.diags, errors.New(code, errors.Warning, message, source.NewSpan(l.start, l.pos)))
}
