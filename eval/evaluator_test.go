/*
File    : easylang/eval/evaluator_test.go
Package : eval
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easylang/parser"
)

// stringLineReader feeds ReadLine from a fixed list of lines, one per call.
type stringLineReader struct {
	lines []string
	pos   int
}

func newLineReader(lines ...string) *stringLineReader {
	return &stringLineReader{lines: lines}
}

func (r *stringLineReader) ReadLine() (string, error) {
	if r.pos >= len(r.lines) {
		return "", errEOF
	}
	line := r.lines[r.pos]
	r.pos++
	return line, nil
}

var errEOF = &RuntimeError{msg: "no more input"}

func runSource(t *testing.T, src string, in LineReader) (string, error) {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err, "source must parse")
	var buf bytes.Buffer
	ev := New(&buf, in)
	runErr := ev.Run(program)
	return buf.String(), runErr
}

func mustRun(t *testing.T, src string) string {
	t.Helper()
	out, err := runSource(t, src, newLineReader())
	require.NoError(t, err)
	return out
}

func TestEval_S1_ArithmeticAndPrecedence(t *testing.T) {
	out := mustRun(t, `set a to 2 + 3 * 4. print a.`)
	assert.Equal(t, "14\n", out)
}

func TestEval_S2_LoopSum(t *testing.T) {
	out := mustRun(t, `set s to 0. set i to 1. while i <= 5 do set s to s + i. set i to i + 1. end. print s.`)
	assert.Equal(t, "15\n", out)
}

func TestEval_S3_IfElse(t *testing.T) {
	out := mustRun(t, `set x to 7. if x > 5 then print "big". else print "small". end.`)
	assert.Equal(t, "big\n", out)
}

func TestEval_S4_RecursiveFactorial(t *testing.T) {
	out := mustRun(t, `function fact(n) { if n <= 1 then return 1. end. return n * fact(n - 1). } print fact(5).`)
	assert.Equal(t, "120\n", out)
}

func TestEval_S5_ArgumentEvaluationOrderRegression(t *testing.T) {
	out := mustRun(t, `set n to 4. function f(n) { return n + 1. } print f(n + 10).`)
	assert.Equal(t, "15\n", out)
}

func TestEval_S6_StringConcatWithNumber(t *testing.T) {
	out := mustRun(t, `set x to 42. print "value=" + x.`)
	assert.Equal(t, "value=42\n", out)
}

func TestEval_NumberPlusString_BothOrders(t *testing.T) {
	out := mustRun(t, `print 1 + "x". print "x" + 1.`)
	assert.Equal(t, "1x\nx1\n", out)
}

func TestEval_ScopeIsolation_CalleeLocalsDontLeak(t *testing.T) {
	out, err := runSource(t, `
function f() {
	set local to 99.
	return local.
}
print f().
print local.
`, newLineReader())
	require.Error(t, err, "a binding local to the callee must not leak to the caller's scope")
	assert.Equal(t, "99\n", out, "the call itself must still have completed and printed before the later reference fails")
}

func TestEval_ReturnPropagatesOutOfNestedControlFlow(t *testing.T) {
	out := mustRun(t, `
function firstEven(n) {
	set i to 0.
	while i < n do
		if i % 2 == 0 then
			return i.
		end.
		set i to i + 1.
	end.
	return -1.
}
print firstEven(7).
print "after".
`)
	assert.Equal(t, "0\nafter\n", out)
}

func TestEval_FunctionWithoutExplicitReturnYieldsLastStatementValue(t *testing.T) {
	out := mustRun(t, `
function setsAndYields() {
	set a to 5.
}
print setsAndYields().
`)
	assert.Equal(t, "5\n", out)
}

func TestEval_FunctionEndingInPrintYieldsNone(t *testing.T) {
	out := mustRun(t, `
function noisy() {
	print "side effect".
}
print noisy().
`)
	assert.Equal(t, "side effect\n\n", out, "printing a None result renders as an empty line")
}

func TestEval_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print 1 / 0.`, newLineReader())
	require.Error(t, err)
	assert.Equal(t, "Error: division by zero", err.Error())
}

func TestEval_ModuloByZeroIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print 1 % 0.`, newLineReader())
	assert.Error(t, err)
}

func TestEval_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print missing.`, newLineReader())
	require.Error(t, err)
	assert.Equal(t, `Error: undefined variable "missing"`, err.Error())
}

func TestEval_UndefinedFunctionIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print ghost().`, newLineReader())
	assert.Error(t, err)
}

func TestEval_ArityMismatchIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `function f(a, b) { return a + b. } print f(1).`, newLineReader())
	assert.Error(t, err)
}

func TestEval_DuplicateFunctionDefinitionIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `function f() { return 1. } function f() { return 2. }`, newLineReader())
	assert.Error(t, err)
}

func TestEval_NonNumericConditionIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `if "x" then print 1. end.`, newLineReader())
	assert.Error(t, err)
}

func TestEval_MixedArithmeticWithStringIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print "x" - 1.`, newLineReader())
	assert.Error(t, err)
}

func TestEval_ReadParsesNumericLineAsNumber(t *testing.T) {
	out := mustRunWithInput(t, `read n. print n + 1.`, "41")
	assert.Equal(t, "42\n", out)
}

func TestEval_ReadKeepsNonNumericLineAsTrimmedString(t *testing.T) {
	out := mustRunWithInput(t, `read name. print name.`, "  Ada  ")
	assert.Equal(t, "Ada\n", out)
}

func TestEval_ReadAtEndOfInputIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `read n.`, newLineReader())
	assert.Error(t, err)
}

func TestEval_AndIsTrueOnlyWhenBothOperandsAreNonZero(t *testing.T) {
	out := mustRun(t, `if 1 and 1 then print "both". end.`)
	assert.Equal(t, "both\n", out)
	out = mustRun(t, `if 0 and 1 then print "yes". else print "no". end.`)
	assert.Equal(t, "no\n", out)
}

func mustRunWithInput(t *testing.T, src string, lines ...string) string {
	t.Helper()
	out, err := runSource(t, src, newLineReader(lines...))
	require.NoError(t, err)
	return out
}
