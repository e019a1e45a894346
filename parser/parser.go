/*
File    : easylang/parser/parser.go
Package : parser

A hand-written recursive-descent parser with a single token of lookahead.
It aborts at the first grammar violation and returns a single *ParseError
rather than collecting every error and continuing — EasyLang programs are
short enough that a second error is rarely worth the extra bookkeeping, and
cascading errors after the first are usually noise anyway.
*/
package parser

import (
	"fmt"
	"strconv"

	"easylang/lexer"
)

// ParseError is the diagnostic returned for any grammar violation. Line is
// the 1-based source line where the unexpected token was found.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error at line %d: %s", e.Line, e.Msg)
}

func errf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Parser turns a token stream into a StmtList. It holds exactly one token of
// lookahead in cur.
type Parser struct {
	lx  *lexer.Lexer
	cur lexer.Token
}

// New creates a Parser reading from src.
func New(src string) *Parser {
	p := &Parser{lx: lexer.New(src)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.lx.NextToken()
}

// stopSet tags the token types that end a nested statement list. Used
// by parseStmtList to know when to stop without consuming the stopper.
type stopSet map[lexer.TokenType]bool

func stoppers(types ...lexer.TokenType) stopSet {
	s := make(stopSet, len(types))
	for _, t := range types {
		s[t] = true
	}
	return s
}

// Parse parses an entire program: a statement list followed by end of input.
func Parse(src string) (*StmtList, error) {
	p := New(src)
	list, err := p.parseStmtList(stoppers())
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, errf(p.cur.Line, "expected end of input, got %s", describe(p.cur))
	}
	return list, nil
}

// parseStmtList parses statements until EOF or a token in stop is reached.
// Leading newlines before each statement are skipped; a lone DOT is an empty
// statement and is likewise skipped without producing a node.
func (p *Parser) parseStmtList(stop stopSet) (*StmtList, error) {
	list := &StmtList{}
	for {
		for p.cur.Type == lexer.NEWLINE {
			p.advance()
		}
		if p.cur.Type == lexer.EOF || stop[p.cur.Type] {
			return list, nil
		}
		if p.cur.Type == lexer.DOT {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			list.Stmts = append(list.Stmts, stmt)
		}
	}
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.cur.Type {
	case lexer.SET:
		return p.parseSet()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.READ:
		return p.parseRead()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FUNCTION:
		return p.parseFuncDef()
	case lexer.RETURN:
		return p.parseReturn()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseSet() (Stmt, error) {
	line := p.cur.Line
	p.advance() // "set"
	if p.cur.Type != lexer.IDENT {
		return nil, errf(p.cur.Line, "expected a variable name after 'set', got %s", describe(p.cur))
	}
	name := p.cur.Literal
	p.advance()
	if p.cur.Type != lexer.TO {
		return nil, errf(p.cur.Line, "expected 'to', got %s", describe(p.cur))
	}
	p.advance()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &SetStmt{Name: name, Expr: expr, Ln: line}, nil
}

func (p *Parser) parsePrint() (Stmt, error) {
	line := p.cur.Line
	p.advance() // "print"
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr, Ln: line}, nil
}

func (p *Parser) parseRead() (Stmt, error) {
	line := p.cur.Line
	p.advance() // "read"
	if p.cur.Type != lexer.IDENT {
		return nil, errf(p.cur.Line, "expected a variable name after 'read', got %s", describe(p.cur))
	}
	name := p.cur.Literal
	p.advance()
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ReadStmt{Name: name, Ln: line}, nil
}

func (p *Parser) parseIf() (Stmt, error) {
	line := p.cur.Line
	p.advance() // "if"
	cond, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.THEN {
		return nil, errf(p.cur.Line, "expected 'then', got %s", describe(p.cur))
	}
	p.advance()
	thenList, err := p.parseStmtList(stoppers(lexer.END, lexer.ELSE))
	if err != nil {
		return nil, err
	}
	var elseList *StmtList
	if p.cur.Type == lexer.ELSE {
		p.advance()
		elseList, err = p.parseStmtList(stoppers(lexer.END))
		if err != nil {
			return nil, err
		}
	}
	if p.cur.Type != lexer.END {
		return nil, errf(p.cur.Line, "expected 'end', got %s", describe(p.cur))
	}
	p.advance()
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &IfStmt{Cond: cond, Then: thenList, Else: elseList, Ln: line}, nil
}

func (p *Parser) parseWhile() (Stmt, error) {
	line := p.cur.Line
	p.advance() // "while"
	cond, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.DO {
		return nil, errf(p.cur.Line, "expected 'do', got %s", describe(p.cur))
	}
	p.advance()
	body, err := p.parseStmtList(stoppers(lexer.END))
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.END {
		return nil, errf(p.cur.Line, "expected 'end', got %s", describe(p.cur))
	}
	p.advance()
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body, Ln: line}, nil
}

func (p *Parser) parseFuncDef() (Stmt, error) {
	line := p.cur.Line
	p.advance() // "function"
	if p.cur.Type != lexer.IDENT {
		return nil, errf(p.cur.Line, "expected a function name, got %s", describe(p.cur))
	}
	name := p.cur.Literal
	p.advance()
	if p.cur.Type != lexer.LPAREN {
		return nil, errf(p.cur.Line, "expected '(', got %s", describe(p.cur))
	}
	p.advance()
	var params []string
	if p.cur.Type != lexer.RPAREN {
		for {
			if p.cur.Type != lexer.IDENT {
				return nil, errf(p.cur.Line, "expected a parameter name, got %s", describe(p.cur))
			}
			params = append(params, p.cur.Literal)
			p.advance()
			if p.cur.Type != lexer.COMMA {
				break
			}
			p.advance()
		}
	}
	if p.cur.Type != lexer.RPAREN {
		return nil, errf(p.cur.Line, "expected ')', got %s", describe(p.cur))
	}
	p.advance()
	if p.cur.Type != lexer.LBRACE {
		return nil, errf(p.cur.Line, "expected '{', got %s", describe(p.cur))
	}
	p.advance()
	body, err := p.parseStmtList(stoppers(lexer.RBRACE))
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.RBRACE {
		return nil, errf(p.cur.Line, "expected '}', got %s", describe(p.cur))
	}
	p.advance()
	// No terminator required here: the grammar doesn't put one after the
	// closing brace, and the brace itself already satisfies the implicit
	// termination rule for whatever statement follows.
	return &FuncDefStmt{Name: name, Params: params, Body: body, Ln: line}, nil
}

// parseReturn mirrors the original interpreter's narrower lookahead for the
// optional return expression: it's treated as absent only when immediately
// followed by '.', a newline, '}', or end of input, not the full set of
// implicit terminators.
func (p *Parser) parseReturn() (Stmt, error) {
	line := p.cur.Line
	p.advance() // "return"
	var expr Expr
	if p.cur.Type != lexer.DOT && p.cur.Type != lexer.NEWLINE && p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		var err error
		expr, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ReturnStmt{Expr: expr, Ln: line}, nil
}

// parseExprStmt parses a bare expression as a statement, EasyLang's
// convenience shorthand for `print`.
func (p *Parser) parseExprStmt() (Stmt, error) {
	line := p.cur.Line
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr, Ln: line}, nil
}

// expectTerminator consumes an explicit '.' or one-or-more NEWLINEs, or
// accepts (without consuming) an implicit terminator: a statement keyword, a
// block closer, the 'else' keyword, or end of input.
func (p *Parser) expectTerminator() error {
	switch p.cur.Type {
	case lexer.DOT:
		p.advance()
		return nil
	case lexer.NEWLINE:
		for p.cur.Type == lexer.NEWLINE {
			p.advance()
		}
		return nil
	case lexer.SET, lexer.PRINT, lexer.READ, lexer.IF, lexer.WHILE, lexer.FUNCTION,
		lexer.RETURN, lexer.END, lexer.RBRACE, lexer.ELSE, lexer.EOF:
		return nil
	default:
		return errf(p.cur.Line, "expected '.' or a newline, got %s", describe(p.cur))
	}
}

// parseCompare parses the grammar's `compare` production: an expression,
// optionally followed by one comparison against a second expression, with
// zero or more `and`-joined compares to its right. `and` is right
// associative: `a and b and c` parses as `a and (b and c)`.
func (p *Parser) parseCompare() (Expr, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if isComparisonOp(p.cur.Type) {
		op := p.cur.Type
		line := p.cur.Line
		p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right, Ln: line}
	}
	for p.cur.Type == lexer.AND {
		line := p.cur.Line
		p.advance()
		right, err := p.parseCompare()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: lexer.AND, Left: left, Right: right, Ln: line}
	}
	return left, nil
}

func isComparisonOp(t lexer.TokenType) bool {
	switch t {
	case lexer.EQ, lexer.NE, lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return true
	}
	return false
}

// parseExpression parses the grammar's `expression` production: a sum of
// terms. It has no knowledge of comparisons or `and` — those only appear in
// an if/while condition, parsed via parseCompare.
func (p *Parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op := p.cur.Type
		line := p.cur.Line
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right, Ln: line}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.STAR || p.cur.Type == lexer.SLASH || p.cur.Type == lexer.PCT {
		op := p.cur.Type
		line := p.cur.Line
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right, Ln: line}
	}
	return left, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	line := p.cur.Line
	switch p.cur.Type {
	case lexer.NUMBER:
		n, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			return nil, errf(line, "malformed number literal %q", p.cur.Literal)
		}
		p.advance()
		return &NumberExpr{Value: n, Ln: line}, nil
	case lexer.STRING:
		s := p.cur.Literal
		p.advance()
		return &StringExpr{Value: s, Ln: line}, nil
	case lexer.IDENT:
		name := p.cur.Literal
		p.advance()
		if p.cur.Type == lexer.LPAREN {
			return p.parseCallArgs(name, line)
		}
		return &VarExpr{Name: name, Ln: line}, nil
	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.RPAREN {
			return nil, errf(p.cur.Line, "expected ')', got %s", describe(p.cur))
		}
		p.advance()
		return expr, nil
	case lexer.MINUS:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: lexer.MINUS, Left: &NumberExpr{Value: 0, Ln: line}, Right: operand, Ln: line}, nil
	default:
		return nil, errf(line, "expected a value, got %s", describe(p.cur))
	}
}

func (p *Parser) parseCallArgs(name string, line int) (Expr, error) {
	p.advance() // "("
	var args []Expr
	if p.cur.Type != lexer.RPAREN {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Type != lexer.COMMA {
				break
			}
			p.advance()
		}
	}
	if p.cur.Type != lexer.RPAREN {
		return nil, errf(p.cur.Line, "expected ')', got %s", describe(p.cur))
	}
	p.advance()
	return &CallExpr{Name: name, Args: args, Ln: line}, nil
}

// describe renders a token for a diagnostic message.
func describe(t lexer.Token) string {
	if t.Type == lexer.EOF {
		return "end of input"
	}
	if t.Literal == "" {
		return string(t.Type)
	}
	return fmt.Sprintf("%q", t.Literal)
}
