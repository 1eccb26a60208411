package inject

import (
	"regexp"
	"strings"

	"github.com/wobble-lang/wobble/compiler/errors"
)

// Template is one pure text transformation paired with the lexical error
// code it provokes, closing the teaching loop between injection and
// detection.
type Template struct {
	Code        errors.Code
	Description string
	Transform   func(string) string
	Objective   string
	Hint        string
	Lesson      int
}

// Templates is the fixed injection table. Order matters: the injector
// walks it top to bottom, so under a tight per-region budget the earlier
// entries are attempted first. Match-count semantics are deliberately
// per-template (most fire once; the escape corruption is global) and must
// not be unified, or injected-error placement shifts under existing
// curriculum levels.
var Templates = []Template{
	{
		Code:        errors.ErrUnterminatedString,
		Description: "removed the closing quote of a string literal",
		Transform:   stripClosingQuote,
		Objective:   "Find the string that never ends and close it.",
		Hint:        "Every opening `\"` needs a matching closing `\"` on the same line.",
		Lesson:      1,
	},
	{
		Code:        errors.ErrUnknownEscape,
		Description: "replaced `\\n` escapes with the invalid escape `\\q`",
		Transform:   corruptNewlineEscape,
		Objective:   "Recognize an invalid escape sequence inside a string.",
		Hint:        "`\\q` is not an escape; you probably want `\\n`.",
		Lesson:      3,
	},
	{
		Code:        errors.ErrUnterminatedGutter,
		Description: "deleted an `end` keyword",
		Transform:   deleteEndKeyword,
		Objective:   "Balance block-opening keywords against their `end`s.",
		Hint:        "Count the block openers and the `end`s; one `end` is missing.",
		Lesson:      5,
	},
	{
		Code:        errors.ErrMissingClosingDelim,
		Description: "deleted a closing parenthesis",
		Transform:   deleteClosingParen,
		Objective:   "Balance parentheses by reading outward from the innermost pair.",
		Hint:        "An opening `(` no longer has a partner.",
		Lesson:      5,
	},
	{
		Code:        errors.ErrSmartQuote,
		Description: "swapped a straight quote for a typographic one",
		Transform:   smartenQuote,
		Objective:   "Spot typographic quotes that word processors sneak into code.",
		Hint:        "One of the quotes is curly. Retype it as `\"`.",
		Lesson:      1,
	},
	{
		Code:        errors.ErrIllegalCharacter,
		Description: "prepended an illegal character to an identifier",
		Transform:   prependIllegalChar,
		Objective:   "Notice characters that are not part of the language.",
		Hint:        "A name starts with a character that can never begin an identifier.",
		Lesson:      4,
	},
	{
		Code:        errors.ErrIllegalCharacter,
		Description: "replaced an ordinary space with a no-break space",
		Transform:   substituteNoBreakSpace,
		Objective:   "Learn that invisible characters still break code.",
		Hint:        "Nothing looks wrong? Retype the whitespace on the reported line.",
		Lesson:      4,
	},
}

var identPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
var endPattern = regexp.MustCompile(`\bend\b`)

// stripClosingQuote removes the terminator of the first string literal.
func stripClosingQuote(s string) string {
	open := strings.IndexByte(s, '"')
	if open < 0 {
		return s
	}
	rel := strings.IndexByte(s[open+1:], '"')
	if rel < 0 {
		return s
	}
	closing := open + 1 + rel
	return s[:closing] + s[closing+1:]
}

// corruptNewlineEscape turns every `\n` escape into the invalid `\q`.
func corruptNewlineEscape(s string) string {
	return strings.ReplaceAll(s, `\n`, `\q`)
}

// deleteEndKeyword removes the last `end` keyword.
func deleteEndKeyword(s string) string {
	matches := endPattern.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}
	last := matches[len(matches)-1]
	return s[:last[0]] + s[last[1]:]
}

// deleteClosingParen removes the last closing parenthesis.
func deleteClosingParen(s string) string {
	idx := strings.LastIndexByte(s, ')')
	if idx < 0 {
		return s
	}
	return s[:idx] + s[idx+1:]
}

// smartenQuote replaces the first straight quote with a curly one.
func smartenQuote(s string) string {
	return strings.Replace(s, `"`, "“", 1)
}

// prependIllegalChar sticks `$` in front of the first identifier.
func prependIllegalChar(s string) string {
	loc := identPattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + "$" + s[loc[0]:]
}

// substituteNoBreakSpace swaps the first ordinary space for U+00A0.
func substituteNoBreakSpace(s string) string {
	return strings.Replace(s, " ", "\u00a0", 1)
}
