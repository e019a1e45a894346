/*
File    : easylang/function/function.go
Package : function

Package function holds EasyLang's flat function table: a name-to-definition
map with no nesting and no captured scope. Functions are not closures —
every call resolves its body's free variables against Global, per the
scope package's shallow-parent rule — so a Def needs nothing beyond its
name, parameters, and body.
*/
package function

import "easylang/parser"

// Def is a registered function definition: its declared parameter names and
// its body statement list.
type Def struct {
	Name   string
	Params []string
	Body   *parser.StmtList
}

// Table is EasyLang's function table: a flat, name-keyed registry with no
// scoping of its own. Names are unique for the lifetime of the table.
type Table struct {
	defs map[string]*Def
}

// NewTable creates an empty function table.
func NewTable() *Table {
	return &Table{defs: make(map[string]*Def)}
}

// Define registers a function. It returns false without modifying the table
// if name is already defined — duplicate function definitions are a runtime
// error in EasyLang, and the caller is expected to turn that into one.
func (t *Table) Define(name string, params []string, body *parser.StmtList) bool {
	if _, exists := t.defs[name]; exists {
		return false
	}
	t.defs[name] = &Def{Name: name, Params: params, Body: body}
	return true
}

// Lookup returns the function registered under name, if any.
func (t *Table) Lookup(name string) (*Def, bool) {
	d, ok := t.defs[name]
	return d, ok
}
