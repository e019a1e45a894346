/*
File    : easylang/eval/eval_expr.go
Package : eval

Expression evaluation, including the call semantics whose evaluation order
is the one rule this whole interpreter exists to get right: every argument
is evaluated against the caller's scope before the callee's scope is even
created. Functions don't capture their defining scope: every call pushes a
scope whose parent is Global, never the caller's scope and never a
captured one (see scope.NewChild) — there are no closures.
*/
package eval

import (
	"fmt"
	"math"

	"easylang/lexer"
	"easylang/parser"
	"easylang/scope"
	"easylang/value"
)

func (e *Evaluator) evalExpr(expr parser.Expr, sc *scope.Scope) (value.Value, error) {
	switch n := expr.(type) {
	case *parser.NumberExpr:
		return value.Number(n.Value), nil
	case *parser.StringExpr:
		return value.String(n.Value), nil
	case *parser.VarExpr:
		v, ok := sc.Lookup(n.Name)
		if !ok {
			return value.None, runtimeErrorf("undefined variable %q", n.Name)
		}
		return v, nil
	case *parser.BinaryExpr:
		return e.evalBinary(n, sc)
	case *parser.CallExpr:
		return e.evalCall(n, sc)
	default:
		return value.None, fmt.Errorf("eval: unhandled expression type %T", expr)
	}
}

// evalCall resolves name, checks arity, evaluates every argument against the
// caller's scope sc, and only then pushes the callee's scope. Binding the
// precomputed argument values afterward means a parameter can shadow a
// caller-local of the same name without corrupting the value the call
// actually passed — see S5 in the evaluator tests.
func (e *Evaluator) evalCall(n *parser.CallExpr, sc *scope.Scope) (value.Value, error) {
	def, ok := e.funcs.Lookup(n.Name)
	if !ok {
		return value.None, runtimeErrorf("undefined function %q", n.Name)
	}
	if len(def.Params) != len(n.Args) {
		return value.None, runtimeErrorf("function %q expects %d argument(s), got %d", n.Name, len(def.Params), len(n.Args))
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a, sc)
		if err != nil {
			return value.None, err
		}
		args[i] = v
	}

	callScope := scope.NewChild(e.global)
	for i, p := range def.Params {
		callScope.Assign(p, args[i])
	}

	result, _, err := e.evalStmtList(def.Body, callScope)
	if err != nil {
		return value.None, err
	}
	return result, nil
}

// evalBinary evaluates both operands unconditionally before dispatching on
// the operator, matching the source's eager (non-short-circuiting)
// evaluation of `and`.
func (e *Evaluator) evalBinary(n *parser.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	l, err := e.evalExpr(n.Left, sc)
	if err != nil {
		return value.None, err
	}
	r, err := e.evalExpr(n.Right, sc)
	if err != nil {
		return value.None, err
	}

	switch n.Op {
	case lexer.PLUS:
		if l.IsString() || r.IsString() {
			ls, ok := concatOperand(l)
			if !ok {
				return value.None, runtimeErrorf("'+' cannot operate on none")
			}
			rs, ok := concatOperand(r)
			if !ok {
				return value.None, runtimeErrorf("'+' cannot operate on none")
			}
			return value.String(ls + rs), nil
		}
		ln, rn, err := requireNumbers(l, r, "+")
		if err != nil {
			return value.None, err
		}
		return value.Number(ln + rn), nil
	case lexer.MINUS:
		ln, rn, err := requireNumbers(l, r, "-")
		if err != nil {
			return value.None, err
		}
		return value.Number(ln - rn), nil
	case lexer.STAR:
		ln, rn, err := requireNumbers(l, r, "*")
		if err != nil {
			return value.None, err
		}
		return value.Number(ln * rn), nil
	case lexer.SLASH:
		ln, rn, err := requireNumbers(l, r, "/")
		if err != nil {
			return value.None, err
		}
		if rn == 0 {
			return value.None, runtimeErrorf("division by zero")
		}
		return value.Number(ln / rn), nil
	case lexer.PCT:
		ln, rn, err := requireNumbers(l, r, "%")
		if err != nil {
			return value.None, err
		}
		if rn == 0 {
			return value.None, runtimeErrorf("division by zero")
		}
		return value.Number(math.Mod(ln, rn)), nil
	case lexer.EQ, lexer.NE, lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		ln, rn, err := requireNumbers(l, r, string(n.Op))
		if err != nil {
			return value.None, err
		}
		return value.Number(boolToNum(compare(n.Op, ln, rn))), nil
	case lexer.AND:
		ln, rn, err := requireNumbers(l, r, "and")
		if err != nil {
			return value.None, err
		}
		return value.Number(boolToNum(ln != 0 && rn != 0)), nil
	default:
		return value.None, fmt.Errorf("eval: unhandled binary operator %q", n.Op)
	}
}

// concatOperand renders an operand of '+' as a string when the other side is
// already a string. A None operand is never a valid operand of '+'.
func concatOperand(v value.Value) (string, bool) {
	if v.IsNone() {
		return "", false
	}
	return v.String(), true
}

func requireNumbers(l, r value.Value, op string) (float64, float64, error) {
	if !l.IsNumber() || !r.IsNumber() {
		return 0, 0, runtimeErrorf("'%s' requires two numbers", op)
	}
	return l.Num, r.Num, nil
}

func compare(op lexer.TokenType, l, r float64) bool {
	switch op {
	case lexer.EQ:
		return l == r
	case lexer.NE:
		return l != r
	case lexer.LT:
		return l < r
	case lexer.LE:
		return l <= r
	case lexer.GT:
		return l > r
	case lexer.GE:
		return l >= r
	}
	return false
}

func boolToNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
