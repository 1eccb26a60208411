package lexer

import (
	"fmt"

	"github.com/wobble-lang/wobble/compiler/source"
)

// TokenType represents the type of a token in the Wobble language.
type TokenType int

const (
	// Structural markers
	TOKEN_EOF TokenType = iota
	TOKEN_ERROR
	TOKEN_COMMENT
	TOKEN_NEWLINE
	TOKEN_WHITESPACE

	// Keywords - declarations
	TOKEN_MAIN
	TOKEN_FUNCTION
	TOKEN_STRUCT
	TOKEN_LET
	TOKEN_MUTABLE
	TOKEN_GUTTER
	TOKEN_END

	// Keywords - control flow
	TOKEN_IF
	TOKEN_ELSEIF
	TOKEN_ELSE
	TOKEN_WHILE
	TOKEN_FOR
	TOKEN_IN
	TOKEN_RETURN
	TOKEN_BREAK
	TOKEN_CONTINUE

	// Keywords - boolean and logical
	TOKEN_AND
	TOKEN_OR
	TOKEN_NOT
	TOKEN_TRUE
	TOKEN_FALSE

	// Keywords - built-in print forms
	TOKEN_PRINT
	TOKEN_PRINTLN

	// Keywords - built-in type names
	TOKEN_TYPE_INT
	TOKEN_TYPE_FLOAT
	TOKEN_TYPE_STRING
	TOKEN_TYPE_BOOL
	TOKEN_TYPE_ARRAY

	// Literals
	TOKEN_IDENTIFIER
	TOKEN_INT_LITERAL
	TOKEN_FLOAT_LITERAL
	TOKEN_STRING_LITERAL

	// Operators
	TOKEN_PLUS            // +
	TOKEN_MINUS           // -
	TOKEN_STAR            // *
	TOKEN_SLASH           // /
	TOKEN_PERCENT         // %
	TOKEN_EQUAL           // =
	TOKEN_EQUAL_EQUAL     // ==
	TOKEN_BANG            // !
	TOKEN_BANG_EQUAL      // !=
	TOKEN_LESS            // <
	TOKEN_LESS_EQUAL      // <=
	TOKEN_LESS_LESS       // <<
	TOKEN_GREATER         // >
	TOKEN_GREATER_EQUAL   // >=
	TOKEN_GREATER_GREATER // >>
	TOKEN_AMPERSAND       // &
	TOKEN_PIPE            // |
	TOKEN_CARET           // ^
	TOKEN_TILDE           // ~
	TOKEN_ARROW           // ->

	// Punctuation
	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]
	TOKEN_COMMA    // ,
	TOKEN_COLON    // :
	TOKEN_DOT      // .
	TOKEN_QUESTION // ?
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:             "EOF",
	TOKEN_ERROR:           "ERROR",
	TOKEN_COMMENT:         "COMMENT",
	TOKEN_NEWLINE:         "NEWLINE",
	TOKEN_WHITESPACE:      "WHITESPACE",
	TOKEN_MAIN:            "MAIN",
	TOKEN_FUNCTION:        "FUNCTION",
	TOKEN_STRUCT:          "STRUCT",
	TOKEN_LET:             "LET",
	TOKEN_MUTABLE:         "MUTABLE",
	TOKEN_GUTTER:          "GUTTER",
	TOKEN_END:             "END",
	TOKEN_IF:              "IF",
	TOKEN_ELSEIF:          "ELSEIF",
	TOKEN_ELSE:            "ELSE",
	TOKEN_WHILE:           "WHILE",
	TOKEN_FOR:             "FOR",
	TOKEN_IN:              "IN",
	TOKEN_RETURN:          "RETURN",
	TOKEN_BREAK:           "BREAK",
	TOKEN_CONTINUE:        "CONTINUE",
	TOKEN_AND:             "AND",
	TOKEN_OR:              "OR",
	TOKEN_NOT:             "NOT",
	TOKEN_TRUE:            "TRUE",
	TOKEN_FALSE:           "FALSE",
	TOKEN_PRINT:           "PRINT",
	TOKEN_PRINTLN:         "PRINTLN",
	TOKEN_TYPE_INT:        "TYPE_INT",
	TOKEN_TYPE_FLOAT:      "TYPE_FLOAT",
	TOKEN_TYPE_STRING:     "TYPE_STRING",
	TOKEN_TYPE_BOOL:       "TYPE_BOOL",
	TOKEN_TYPE_ARRAY:      "TYPE_ARRAY",
	TOKEN_IDENTIFIER:      "IDENTIFIER",
	TOKEN_INT_LITERAL:     "INT_LITERAL",
	TOKEN_FLOAT_LITERAL:   "FLOAT_LITERAL",
	TOKEN_STRING_LITERAL:  "STRING_LITERAL",
	TOKEN_PLUS:            "PLUS",
	TOKEN_MINUS:           "MINUS",
	TOKEN_STAR:            "STAR",
	TOKEN_SLASH:           "SLASH",
	TOKEN_PERCENT:         "PERCENT",
	TOKEN_EQUAL:           "EQUAL",
	TOKEN_EQUAL_EQUAL:     "EQUAL_EQUAL",
	TOKEN_BANG:            "BANG",
	TOKEN_BANG_EQUAL:      "BANG_EQUAL",
	TOKEN_LESS:            "LESS",
	TOKEN_LESS_EQUAL:      "LESS_EQUAL",
	TOKEN_LESS_LESS:       "LESS_LESS",
	TOKEN_GREATER:         "GREATER",
	TOKEN_GREATER_EQUAL:   "GREATER_EQUAL",
	TOKEN_GREATER_GREATER: "GREATER_GREATER",
	TOKEN_AMPERSAND:       "AMPERSAND",
	TOKEN_PIPE:            "PIPE",
	TOKEN_CARET:           "CARET",
	TOKEN_TILDE:           "TILDE",
	TOKEN_ARROW:           "ARROW",
	TOKEN_LPAREN:          "LPAREN",
	TOKEN_RPAREN:          "RPAREN",
	TOKEN_LBRACKET:        "LBRACKET",
	TOKEN_RBRACKET:        "RBRACKET",
	TOKEN_COMMA:           "COMMA",
	TOKEN_COLON:           "COLON",
	TOKEN_DOT:             "DOT",
	TOKEN_QUESTION:        "QUESTION",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsTrivia reports whether the token type is removed by the filtered
// token stream (whitespace, newlines, comments).
func (t TokenType) IsTrivia() bool {
	return t == TOKEN_WHITESPACE || t == TOKEN_NEWLINE || t == TOKEN_COMMENT
}

// Token is a single lexed token. Tokens are produced once by the lexer and
// immutable thereafter. Literal carries the decoded value for int, float,
// and string literals; it is nil for everything else.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Span    source.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @ %s", t.Type, t.Lexeme, t.Span)
}
