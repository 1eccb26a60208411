package lexer

// keywords maps keyword strings to their token types for O(1) lookup.
// The table is closed: anything not listed lexes as a plain identifier.
var keywords = map[string]TokenType{
	// Declarations
	"main":     TOKEN_MAIN,
	"function": TOKEN_FUNCTION,
	"struct":   TOKEN_STRUCT,
	"let":      TOKEN_LET,
	"mutable":  TOKEN_MUTABLE,
	"gutter":   TOKEN_GUTTER,
	"end":      TOKEN_END,

	// Control flow
	"if":       TOKEN_IF,
	"elseif":   TOKEN_ELSEIF,
	"else":     TOKEN_ELSE,
	"while":    TOKEN_WHILE,
	"for":      TOKEN_FOR,
	"in":       TOKEN_IN,
	"return":   TOKEN_RETURN,
	"break":    TOKEN_BREAK,
	"continue": TOKEN_CONTINUE,

	// Boolean and logical words
	"and":   TOKEN_AND,
	"or":    TOKEN_OR,
	"not":   TOKEN_NOT,
	"true":  TOKEN_TRUE,
	"false": TOKEN_FALSE,

	// Built-in print forms
	"print":   TOKEN_PRINT,
	"println": TOKEN_PRINTLN,

	// Built-in type names
	"int":    TOKEN_TYPE_INT,
	"float":  TOKEN_TYPE_FLOAT,
	"string": TOKEN_TYPE_STRING,
	"bool":   TOKEN_TYPE_BOOL,
	"array":  TOKEN_TYPE_ARRAY,
}

// lookupKeyword checks if an identifier is a keyword.
// Returns the token type and true if it is, TOKEN_IDENTIFIER and false otherwise.
func lookupKeyword(identifier string) (TokenType, bool) {
	if tokenType, ok := keywords[identifier]; ok {
		return tokenType, true
	}
	return TOKEN_IDENTIFIER, false
}
