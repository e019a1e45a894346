/*
File    : easylang/parser/ast.go
Package : parser

Defines EasyLang's abstract syntax tree. The tree is a pure ownership
hierarchy — no sharing, no cycles — built once during parsing and walked
read-only by the evaluator.
*/
package parser

import "easylang/lexer"

// Stmt is implemented by every statement-level AST node.
type Stmt interface {
	stmtNode()
	Line() int
}

// Expr is implemented by every expression-level AST node.
type Expr interface {
	exprNode()
	Line() int
}

// StmtList is an ordered sequence of statements. It is the body of a
// program, an if/else branch, a while loop, or a function — every one of
// those constructs is well-formed only when its body is a StmtList.
type StmtList struct {
	Stmts []Stmt
}

func (*StmtList) stmtNode() {}
func (s *StmtList) Line() int {
	if len(s.Stmts) == 0 {
		return 0
	}
	return s.Stmts[0].Line()
}

// SetStmt is `set NAME to EXPR`.
type SetStmt struct {
	Name string
	Expr Expr
	Ln   int
}

func (*SetStmt) stmtNode()  {}
func (s *SetStmt) Line() int { return s.Ln }

// PrintStmt is `print EXPR`, including the implicit form produced by a bare
// expression statement.
type PrintStmt struct {
	Expr Expr
	Ln   int
}

func (*PrintStmt) stmtNode()  {}
func (s *PrintStmt) Line() int { return s.Ln }

// ReadStmt is `read NAME`.
type ReadStmt struct {
	Name string
	Ln   int
}

func (*ReadStmt) stmtNode()  {}
func (s *ReadStmt) Line() int { return s.Ln }

// IfStmt is `if COMPARE then STMTS [else STMTS] end`. Else is nil when no
// else branch was written.
type IfStmt struct {
	Cond Expr
	Then *StmtList
	Else *StmtList
	Ln   int
}

func (*IfStmt) stmtNode()  {}
func (s *IfStmt) Line() int { return s.Ln }

// WhileStmt is `while COMPARE do STMTS end`.
type WhileStmt struct {
	Cond Expr
	Body *StmtList
	Ln   int
}

func (*WhileStmt) stmtNode()  {}
func (s *WhileStmt) Line() int { return s.Ln }

// FuncDefStmt is `function NAME(PARAMS) { STMTS }`.
type FuncDefStmt struct {
	Name   string
	Params []string
	Body   *StmtList
	Ln     int
}

func (*FuncDefStmt) stmtNode()  {}
func (s *FuncDefStmt) Line() int { return s.Ln }

// ReturnStmt is `return [EXPR]`. Expr is nil when no expression was
// written, in which case the evaluator defaults to Number 0.
type ReturnStmt struct {
	Expr Expr
	Ln   int
}

func (*ReturnStmt) stmtNode()  {}
func (s *ReturnStmt) Line() int { return s.Ln }

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
	Ln    int
}

func (*NumberExpr) exprNode()  {}
func (e *NumberExpr) Line() int { return e.Ln }

// StringExpr is a string literal, already relieved of its surrounding quotes
// (escape sequences are kept verbatim, per the lexer's literal-preservation
// rule).
type StringExpr struct {
	Value string
	Ln    int
}

func (*StringExpr) exprNode()  {}
func (e *StringExpr) Line() int { return e.Ln }

// VarExpr is a bare identifier used as a value: a variable reference.
type VarExpr struct {
	Name string
	Ln   int
}

func (*VarExpr) exprNode()  {}
func (e *VarExpr) Line() int { return e.Ln }

// BinaryExpr is a binary operator application. Op is one of the arithmetic,
// comparison, or `and` token types; unary minus is desugared into
// `0 - factor` at parse time, so BinaryExpr also covers that case.
type BinaryExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	Ln    int
}

func (*BinaryExpr) exprNode()  {}
func (e *BinaryExpr) Line() int { return e.Ln }

// CallExpr is `NAME(ARGS)`, a call to a user-defined function.
type CallExpr struct {
	Name string
	Args []Expr
	Ln   int
}

func (*CallExpr) exprNode()  {}
func (e *CallExpr) Line() int { return e.Ln }
