/*
File    : easylang/eval/evaluator.go
Package : eval

Package eval is the tree-walking evaluator: the fourth stage of the
pipeline, executing the AST the parser produces against the scope/function
state held by an Evaluator. It threads an early-return signal out of every
statement call by returning it as an ordinary value alongside a Go error,
rather than by panicking across frames or modelling control flow as a
special sum-typed result object — Go's multi-value returns already give us
that shape for free.
*/
package eval

import (
	"fmt"
	"io"

	"easylang/function"
	"easylang/parser"
	"easylang/scope"
	"easylang/value"
)

// LineReader supplies the input for `read` statements. ReadLine returns one
// line with its trailing newline already stripped; it returns io.EOF (or a
// wrapped error) once there is nothing left to read.
type LineReader interface {
	ReadLine() (string, error)
}

// RuntimeError is a language-level runtime failure: undefined variable,
// arity mismatch, division by zero, and the like. Its Error text always
// carries the "Error: " prefix the CLI's diagnostics use verbatim.
type RuntimeError struct {
	msg string
}

func (e *RuntimeError) Error() string { return "Error: " + e.msg }

func runtimeErrorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{msg: fmt.Sprintf(format, args...)}
}

// Evaluator holds everything a running EasyLang program needs beyond its
// AST: the Global scope, the function table, and the two I/O seams the core
// talks to the outside world through.
type Evaluator struct {
	global *scope.Scope
	funcs  *function.Table
	out    io.Writer
	in     LineReader
}

// New creates an Evaluator with a fresh Global scope and an empty function
// table, writing print output to out and satisfying read statements from in.
func New(out io.Writer, in LineReader) *Evaluator {
	return &Evaluator{
		global: scope.NewGlobal(),
		funcs:  function.NewTable(),
		out:    out,
		in:     in,
	}
}

// Run executes a parsed program to completion. It returns the first runtime
// error encountered, or nil on a clean finish. A stray `return` at top level
// (outside any function) simply ends the program early rather than erroring
// — there is no enclosing call frame for it to violate.
func (e *Evaluator) Run(program *parser.StmtList) error {
	_, _, err := e.evalStmtList(program, e.global)
	return err
}
