package errors

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code is a diagnostic code in the frozen Wobble error namespace.
//
// The namespace is banded by phase:
//
//	E0001-E0099: lexical and syntax errors (implemented)
//	E0101-E0199: runtime errors (reserved)
//	E0201-E0299: logical and style errors (reserved)
//	E0301-E0399: semantic errors (reserved)
//
// Only the lexical/syntax band is populated. Callers must treat unknown
// codes as reportable but non-fatal.
type Code string

const (
	// Lexical/syntax errors (E0001-E0099)
	ErrUnexpectedToken     Code = "E0001"
	ErrUnterminatedString  Code = "E0002"
	ErrUnknownEscape       Code = "E0003"
	ErrIllegalCharacter    Code = "E0004"
	ErrUnterminatedGutter  Code = "E0005"
	ErrMalformedNumber     Code = "E0006"
	ErrSmartQuote          Code = "E0007"
	ErrExpectedIdentifier  Code = "E0008"
	ErrSymbolicLogicalOp   Code = "E0009"
	ErrMissingClosingDelim Code = "E0010"
)

// Band names for the frozen code namespace.
const (
	BandSyntax   = "lexical/syntax"
	BandRuntime  = "runtime"
	BandLogical  = "logical/style"
	BandSemantic = "semantic"
)

// Band returns the phase band a code belongs to, or "" for codes outside
// the frozen namespace.
func (c Code) Band() string {
	n, ok := c.number()
	if !ok {
		return ""
	}
	switch {
	case n >= 1 && n <= 99:
		return BandSyntax
	case n >= 101 && n <= 199:
		return BandRuntime
	case n >= 201 && n <= 299:
		return BandLogical
	case n >= 301 && n <= 399:
		return BandSemantic
	default:
		return ""
	}
}

// IsKnown reports whether the code is one this compiler actually emits.
func (c Code) IsKnown() bool {
	_, ok := catalog[c]
	return ok
}

func (c Code) String() string {
	return string(c)
}

func (c Code) number() (int, bool) {
	s := string(c)
	if len(s) != 5 || s[0] != 'E' {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// CodeInfo is the explain-table entry for an error code. The presentation
// layer renders these verbatim for `wobble explain <code>`.
type CodeInfo struct {
	Code              Code   `json:"code"`
	Title             string `json:"title"`
	Explanation       string `json:"explanation"`
	LearningObjective string `json:"learningObjective"`
	RecoveryHint      string `json:"recoveryHint"`
	CurriculumLesson  int    `json:"curriculumLesson"`
}

var catalog = map[Code]CodeInfo{
	ErrUnexpectedToken: {
		Code:              ErrUnexpectedToken,
		Title:             "unexpected token",
		Explanation:       "The parser found a token it could not use here, such as a missing value after `=` or a stray symbol where an expression was expected.",
		LearningObjective: "Read the source position in an error and find the token the compiler tripped over.",
		RecoveryHint:      "Look at the token just before the reported position; something the grammar needs is missing or misplaced.",
		CurriculumLesson:  2,
	},
	ErrUnterminatedString: {
		Code:              ErrUnterminatedString,
		Title:             "unterminated string",
		Explanation:       "A string literal was opened with `\"` but never closed before the end of the line or the end of the file.",
		LearningObjective: "Understand that string literals must open and close on the same line.",
		RecoveryHint:      "Add the missing closing `\"` before the end of the line.",
		CurriculumLesson:  1,
	},
	ErrUnknownEscape: {
		Code:              ErrUnknownEscape,
		Title:             "unknown escape sequence",
		Explanation:       "A backslash inside a string was followed by a character that is not a recognized escape. Valid escapes are \\n \\r \\t \\\\ \\\" \\0 and \\xNN.",
		LearningObjective: "Learn the escape sequences strings support and why a bare backslash is ambiguous.",
		RecoveryHint:      "Double the backslash (`\\\\`) if you meant a literal backslash, or use a valid escape.",
		CurriculumLesson:  3,
	},
	ErrIllegalCharacter: {
		Code:              ErrIllegalCharacter,
		Title:             "illegal character",
		Explanation:       "A character appeared that is not part of the language: not a letter, digit, underscore, operator, punctuation, quote, or whitespace. Invisible characters pasted from documents are a common cause.",
		LearningObjective: "Recognize that source code allows only a fixed character set, and that invisible characters still count.",
		RecoveryHint:      "Delete the character. If nothing looks wrong, retype the line; an invisible character may be hiding there.",
		CurriculumLesson:  4,
	},
	ErrUnterminatedGutter: {
		Code:              ErrUnterminatedGutter,
		Title:             "gutter block missing `end`",
		Explanation:       "A `gutter` block was opened but its closing `end` was never found before the end of the file.",
		LearningObjective: "Understand that every block-opening keyword must be balanced by `end`.",
		RecoveryHint:      "Add `end` after the gutter contents.",
		CurriculumLesson:  5,
	},
	ErrMalformedNumber: {
		Code:              ErrMalformedNumber,
		Title:             "malformed number",
		Explanation:       "A numeric literal could not be converted to a value, for example because it is too large to represent.",
		LearningObjective: "Learn that numbers have representation limits even when the digits look fine.",
		RecoveryHint:      "Shorten the number or switch to a float literal.",
		CurriculumLesson:  6,
	},
	ErrSmartQuote: {
		Code:              ErrSmartQuote,
		Title:             "typographic quote",
		Explanation:       "A curly quote (“ ” ‘ ’) was used where a straight `\"` is required. Word processors substitute these automatically.",
		LearningObjective: "Spot typographic quotes introduced by copy-pasting code from documents or chats.",
		RecoveryHint:      "Replace the curly quotes with straight `\"` quotes.",
		CurriculumLesson:  1,
	},
	ErrExpectedIdentifier: {
		Code:              ErrExpectedIdentifier,
		Title:             "expected identifier",
		Explanation:       "A `let` declaration needs a variable name after the keyword (and after `mutable`, if present).",
		LearningObjective: "Learn the shape of a `let` declaration: keyword, name, `=`, value.",
		RecoveryHint:      "Write a name between `let` and `=`.",
		CurriculumLesson:  2,
	},
	ErrSymbolicLogicalOp: {
		Code:              ErrSymbolicLogicalOp,
		Title:             "symbolic logical operator",
		Explanation:       "`&&` and `||` work, but Wobble spells these operators `and` and `or`. This is a style nudge, not an error.",
		LearningObjective: "Get comfortable with word-spelled logical operators.",
		RecoveryHint:      "Replace `&&` with `and` and `||` with `or`.",
		CurriculumLesson:  7,
	},
	ErrMissingClosingDelim: {
		Code:              ErrMissingClosingDelim,
		Title:             "missing closing delimiter",
		Explanation:       "An opening `(` or `[` was never matched by its closing counterpart.",
		LearningObjective: "Practice balancing parentheses and brackets by reading outward from the innermost pair.",
		RecoveryHint:      "Count opening and closing delimiters on the reported line; one closer is missing.",
		CurriculumLesson:  5,
	},
}

// Lookup returns the explain-table entry for a code.
func Lookup(code Code) (CodeInfo, bool) {
	info, ok := catalog[code]
	return info, ok
}

// AllCodes returns every implemented code in ascending order.
func AllCodes() []Code {
	codes := make([]Code, 0, len(catalog))
	for c := range catalog {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Normalize canonicalizes user-typed codes ("e7", "0007", "E7") to the
// E-prefixed zero-padded form. It does not require the code to be known.
func Normalize(raw string) (Code, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "E")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 9999 {
		return "", fmt.Errorf("malformed error code %q", raw)
	}
	return Code(fmt.Sprintf("E%04d", n)), nil
}
