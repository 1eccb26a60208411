package parser

import (
	"github.com/wobble-lang/wobble/compiler/errors"
	"github.com/wobble-lang/wobble/compiler/lexer"
	"github.com/wobble-lang/wobble/compiler/source"
)

// ExprNode is the interface for all expression AST nodes.
type ExprNode interface {
	exprNode()
	GetSpan() source.Span
}

// StmtNode is the interface for all statement AST nodes.
type StmtNode interface {
	stmtNode()
	GetSpan() source.Span
}

// DeclNode is the interface for all top-level declaration AST nodes.
type DeclNode interface {
	declNode()
	GetSpan() source.Span
}

// Program is the root of the AST. It owns its declaration tree and
// diagnostic list. StabilityScore is the 0-100 gamified health metric:
// 100 minus 10 per error-severity diagnostic, floored at 0.
type Program struct {
	Declarations   []DeclNode          `json:"declarations"`
	Diagnostics    []errors.Diagnostic `json:"diagnostics"`
	StabilityScore int                 `json:"stabilityScore"`
}

// Expressions

// LiteralExpr represents a literal value. Value holds the decoded form:
// int64, float64, string, or bool.
type LiteralExpr struct {
	Value interface{}
	Span  source.Span
}

func (e *LiteralExpr) exprNode()            {}
func (e *LiteralExpr) GetSpan() source.Span { return e.Span }

// IdentifierExpr represents an identifier reference.
type IdentifierExpr struct {
	Name string
	Span source.Span
}

func (e *IdentifierExpr) exprNode()            {}
func (e *IdentifierExpr) GetSpan() source.Span { return e.Span }

// UnaryExpr represents a prefix operation: -x, not x, !x, ~x.
type UnaryExpr struct {
	Operator lexer.TokenType
	Operand  ExprNode
	Span     source.Span
}

func (e *UnaryExpr) exprNode()            {}
func (e *UnaryExpr) GetSpan() source.Span { return e.Span }

// BinaryExpr represents a binary operation. All binary operators are
// left-associative.
type BinaryExpr struct {
	Left     ExprNode
	Operator lexer.TokenType
	Right    ExprNode
	Span     source.Span
}

func (e *BinaryExpr) exprNode()            {}
func (e *BinaryExpr) GetSpan() source.Span { return e.Span }

// CallExpr represents a call: callee(arguments).
type CallExpr struct {
	Callee    ExprNode
	Arguments []ExprNode
	Span      source.Span
}

func (e *CallExpr) exprNode()            {}
func (e *CallExpr) GetSpan() source.Span { return e.Span }

// IndexExpr represents indexing: object[index].
type IndexExpr struct {
	Object ExprNode
	Index  ExprNode
	Span   source.Span
}

func (e *IndexExpr) exprNode()            {}
func (e *IndexExpr) GetSpan() source.Span { return e.Span }

// MemberExpr represents member access: object.member.
type MemberExpr struct {
	Object ExprNode
	Member string
	Span   source.Span
}

func (e *MemberExpr) exprNode()            {}
func (e *MemberExpr) GetSpan() source.Span { return e.Span }

// ArrayLiteralExpr represents a bracketed array literal.
type ArrayLiteralExpr struct {
	Elements []ExprNode
	Span     source.Span
}

func (e *ArrayLiteralExpr) exprNode()            {}
func (e *ArrayLiteralExpr) GetSpan() source.Span { return e.Span }

// LambdaExpr represents an anonymous function in expression position:
// function (params) body end.
type LambdaExpr struct {
	Params []string
	Body   []StmtNode
	Span   source.Span
}

func (e *LambdaExpr) exprNode()            {}
func (e *LambdaExpr) GetSpan() source.Span { return e.Span }

// TernaryExpr represents the conditional expression cond ? a : b.
type TernaryExpr struct {
	Condition ExprNode
	TrueExpr  ExprNode
	FalseExpr ExprNode
	Span      source.Span
}

func (e *TernaryExpr) exprNode()            {}
func (e *TernaryExpr) GetSpan() source.Span { return e.Span }

// GroupingExpr represents a parenthesized expression.
type GroupingExpr struct {
	Inner ExprNode
	Span  source.Span
}

func (e *GroupingExpr) exprNode()            {}
func (e *GroupingExpr) GetSpan() source.Span { return e.Span }

// BadExpr is the error-placeholder expression. It keeps the tree
// well-typed where expression parsing failed locally; the diagnostic for
// the failure lives in the program's diagnostic list, not here.
type BadExpr struct {
	Span source.Span
}

func (e *BadExpr) exprNode()            {}
func (e *BadExpr) GetSpan() source.Span { return e.Span }

// Statements

// LetStmt represents `let [mutable] name [: type] = value`.
type LetStmt struct {
	Mutable  bool
	Name     string
	TypeName string // "" when no annotation
	Value    ExprNode
	Span     source.Span
}

func (s *LetStmt) stmtNode()            {}
func (s *LetStmt) GetSpan() source.Span { return s.Span }

// AssignStmt represents `target = value` where target is an existing
// identifier, index, or member expression.
type AssignStmt struct {
	Target ExprNode
	Value  ExprNode
	Span   source.Span
}

func (s *AssignStmt) stmtNode()            {}
func (s *AssignStmt) GetSpan() source.Span { return s.Span }

// IfBranch is one condition/body pair of an if/elseif chain.
type IfBranch struct {
	Condition ExprNode
	Body      []StmtNode
}

// IfStmt represents `if ... elseif ... else ... end`.
type IfStmt struct {
	Branches []IfBranch // the if branch followed by elseif branches in order
	Else     []StmtNode // nil when there is no else
	Span     source.Span
}

func (s *IfStmt) stmtNode()            {}
func (s *IfStmt) GetSpan() source.Span { return s.Span }

// WhileStmt represents `while cond ... end`.
type WhileStmt struct {
	Condition ExprNode
	Body      []StmtNode
	Span      source.Span
}

func (s *WhileStmt) stmtNode()            {}
func (s *WhileStmt) GetSpan() source.Span { return s.Span }

// ForStmt represents `for name in iterable ... end`.
type ForStmt struct {
	Name     string
	Iterable ExprNode
	Body     []StmtNode
	Span     source.Span
}

func (s *ForStmt) stmtNode()            {}
func (s *ForStmt) GetSpan() source.Span { return s.Span }

// ReturnStmt represents `return [value]`.
type ReturnStmt struct {
	Value ExprNode // nil for a bare return
	Span  source.Span
}

func (s *ReturnStmt) stmtNode()            {}
func (s *ReturnStmt) GetSpan() source.Span { return s.Span }

// BreakStmt represents `break`.
type BreakStmt struct {
	Span source.Span
}

func (s *BreakStmt) stmtNode()            {}
func (s *BreakStmt) GetSpan() source.Span { return s.Span }

// ContinueStmt represents `continue`.
type ContinueStmt struct {
	Span source.Span
}

func (s *ContinueStmt) stmtNode()            {}
func (s *ContinueStmt) GetSpan() source.Span { return s.Span }

// PrintStmt represents `print(args)` or `println(args)`.
type PrintStmt struct {
	Newline   bool // true for println
	Arguments []ExprNode
	Span      source.Span
}

func (s *PrintStmt) stmtNode()            {}
func (s *PrintStmt) GetSpan() source.Span { return s.Span }

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	Expr ExprNode
	Span source.Span
}

func (s *ExprStmt) stmtNode()            {}
func (s *ExprStmt) GetSpan() source.Span { return s.Span }

// GutterStmt represents a `gutter ... end` block. The contents are
// deliberately not parsed: a gutter is a zone for intentionally broken
// code, so the raw tokens are retained verbatim for the error-injection
// engine or direct human editing. Tokens is an owned copy of the slice.
type GutterStmt struct {
	Tokens []lexer.Token
	Span   source.Span
}

func (s *GutterStmt) stmtNode()            {}
func (s *GutterStmt) GetSpan() source.Span { return s.Span }

// BadStmt is the error-placeholder statement produced when statement
// parsing fails and the parser resynchronizes.
type BadStmt struct {
	Span source.Span
}

func (s *BadStmt) stmtNode()            {}
func (s *BadStmt) GetSpan() source.Span { return s.Span }

// Declarations

// MainDecl represents the `main ... end` block, the single productive
// top-level form.
type MainDecl struct {
	Body []StmtNode
	Span source.Span
}

func (d *MainDecl) declNode()            {}
func (d *MainDecl) GetSpan() source.Span { return d.Span }

// FunctionParam is a named, optionally typed function parameter.
type FunctionParam struct {
	Name     string
	TypeName string
}

// FunctionDecl represents a named function declaration. The current
// grammar does not yet produce these at top level; the variant is part of
// the public AST so tooling can rely on the full declaration sum.
type FunctionDecl struct {
	Name       string
	Params     []FunctionParam
	ReturnType string
	Body       []StmtNode
	Span       source.Span
}

func (d *FunctionDecl) declNode()            {}
func (d *FunctionDecl) GetSpan() source.Span { return d.Span }

// StructField is one field of a struct declaration.
type StructField struct {
	Name     string
	TypeName string
}

// StructDecl represents a struct declaration. Like FunctionDecl, defined
// for the declaration sum; not yet produced by the grammar.
type StructDecl struct {
	Name   string
	Fields []StructField
	Span   source.Span
}

func (d *StructDecl) declNode()            {}
func (d *StructDecl) GetSpan() source.Span { return d.Span }

// StmtDecl wraps a bare statement appearing at the top level.
type StmtDecl struct {
	Stmt StmtNode
	Span source.Span
}

func (d *StmtDecl) declNode()            {}
func (d *StmtDecl) GetSpan() source.Span { return d.Span }
