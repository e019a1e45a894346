/*
File    : easylang/eval/eval_statements.go
Package : eval

Statement evaluation. Every evalXxx here returns (value, returned, err):
value is the statement's own result — used both directly and, for a
StmtList, as the value a function call yields when its body never executes
a `return` — returned reports whether a `return` fired during this
statement and should unwind to the nearest call frame, and err is a Go
error for any failure. A StmtList stops at the first statement that sets
returned or fails.
*/
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"easylang/parser"
	"easylang/scope"
	"easylang/value"
)

func (e *Evaluator) evalStmtList(list *parser.StmtList, sc *scope.Scope) (value.Value, bool, error) {
	last := value.None
	for _, stmt := range list.Stmts {
		v, returned, err := e.evalStmt(stmt, sc)
		if err != nil {
			return value.None, false, err
		}
		last = v
		if returned {
			return last, true, nil
		}
	}
	return last, false, nil
}

func (e *Evaluator) evalStmt(stmt parser.Stmt, sc *scope.Scope) (value.Value, bool, error) {
	switch n := stmt.(type) {
	case *parser.SetStmt:
		return e.evalSet(n, sc)
	case *parser.PrintStmt:
		return e.evalPrint(n, sc)
	case *parser.ReadStmt:
		return e.evalRead(n, sc)
	case *parser.IfStmt:
		return e.evalIf(n, sc)
	case *parser.WhileStmt:
		return e.evalWhile(n, sc)
	case *parser.FuncDefStmt:
		return e.evalFuncDef(n, sc)
	case *parser.ReturnStmt:
		return e.evalReturn(n, sc)
	default:
		return value.None, false, fmt.Errorf("eval: unhandled statement type %T", stmt)
	}
}

func (e *Evaluator) evalSet(n *parser.SetStmt, sc *scope.Scope) (value.Value, bool, error) {
	v, err := e.evalExpr(n.Expr, sc)
	if err != nil {
		return value.None, false, err
	}
	sc.Assign(n.Name, v)
	return v, false, nil
}

func (e *Evaluator) evalPrint(n *parser.PrintStmt, sc *scope.Scope) (value.Value, bool, error) {
	v, err := e.evalExpr(n.Expr, sc)
	if err != nil {
		return value.None, false, err
	}
	fmt.Fprintln(e.out, v.String())
	return value.None, false, nil
}

// evalRead reads one line and stores it as a Number if the whole (trimmed)
// line parses as one, otherwise as the trimmed string itself.
func (e *Evaluator) evalRead(n *parser.ReadStmt, sc *scope.Scope) (value.Value, bool, error) {
	line, err := e.in.ReadLine()
	if err != nil {
		return value.None, false, runtimeErrorf("end of input while reading %q", n.Name)
	}
	trimmed := strings.TrimSpace(line)
	var v value.Value
	if f, ferr := strconv.ParseFloat(trimmed, 64); ferr == nil {
		v = value.Number(f)
	} else {
		v = value.String(trimmed)
	}
	sc.Assign(n.Name, v)
	return v, false, nil
}

func (e *Evaluator) evalIf(n *parser.IfStmt, sc *scope.Scope) (value.Value, bool, error) {
	cond, err := e.evalExpr(n.Cond, sc)
	if err != nil {
		return value.None, false, err
	}
	if !cond.IsNumber() {
		return value.None, false, runtimeErrorf("if condition must be a number")
	}
	if cond.Truthy() {
		return e.evalStmtList(n.Then, sc)
	}
	if n.Else != nil {
		return e.evalStmtList(n.Else, sc)
	}
	return value.None, false, nil
}

func (e *Evaluator) evalWhile(n *parser.WhileStmt, sc *scope.Scope) (value.Value, bool, error) {
	last := value.None
	for {
		cond, err := e.evalExpr(n.Cond, sc)
		if err != nil {
			return value.None, false, err
		}
		if !cond.IsNumber() {
			return value.None, false, runtimeErrorf("while condition must be a number")
		}
		if !cond.Truthy() {
			return last, false, nil
		}
		v, returned, err := e.evalStmtList(n.Body, sc)
		if err != nil {
			return value.None, false, err
		}
		last = v
		if returned {
			return last, true, nil
		}
	}
}

func (e *Evaluator) evalFuncDef(n *parser.FuncDefStmt, sc *scope.Scope) (value.Value, bool, error) {
	if ok := e.funcs.Define(n.Name, n.Params, n.Body); !ok {
		return value.None, false, runtimeErrorf("function %q is already defined", n.Name)
	}
	return value.None, false, nil
}

func (e *Evaluator) evalReturn(n *parser.ReturnStmt, sc *scope.Scope) (value.Value, bool, error) {
	if n.Expr == nil {
		return value.Number(0), true, nil
	}
	v, err := e.evalExpr(n.Expr, sc)
	if err != nil {
		return value.None, false, err
	}
	return v, true, nil
}
