/*
File    : easylang/value/value.go
Package : value

Package value defines EasyLang's runtime value model: a closed, three-variant
sum of Number, String, and None. Values are small and copied by Go's own
assignment semantics — a String holds an immutable Go string, so a copied
Value can share its bytes and a program can never observe one binding's
string mutate because of an assignment to another.
*/
package value

import "strconv"

// Kind tags which of the three variants a Value holds.
type Kind string

const (
	NumberKind Kind = "number"
	StringKind Kind = "string"
	NoneKind   Kind = "none"
)

// Value is the tagged union of EasyLang's two primitive kinds plus the
// absence of a value. Exactly one of the Num/Str fields is meaningful,
// selected by Kind; None carries neither.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Number constructs a numeric Value.
func Number(n float64) Value { return Value{Kind: NumberKind, Num: n} }

// String constructs a string Value.
func String(s string) Value { return Value{Kind: StringKind, Str: s} }

// None is the absence of a value, produced by statements that don't yield
// one (print, a function definition, an if with no branch taken, a while
// whose body never runs) and by a call whose body executes no return and
// whose last executed statement is one of those (see eval).
var None = Value{Kind: NoneKind}

// IsNone reports whether v is the None variant.
func (v Value) IsNone() bool { return v.Kind == NoneKind }

// IsNumber reports whether v holds a Number.
func (v Value) IsNumber() bool { return v.Kind == NumberKind }

// IsString reports whether v holds a String.
func (v Value) IsString() bool { return v.Kind == StringKind }

// Truthy treats a Number as a boolean condition: any non-zero value is true.
// Callers must have already rejected non-Number values; Truthy panics on
// anything else so a misuse surfaces immediately during development rather
// than silently evaluating as false.
func (v Value) Truthy() bool {
	if v.Kind != NumberKind {
		panic("value: Truthy called on a non-Number Value")
	}
	return v.Num != 0
}

// FormatNumber renders n using the shortest decimal representation that
// round-trips back to the same float64 — the %g convention EasyLang's print
// statement and string-plus-number coercion both rely on.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// String renders v for `print` and for string-plus coercion: numbers use
// FormatNumber, strings render verbatim, and None renders as the empty
// string, so printing a None value prints an empty line.
func (v Value) String() string {
	switch v.Kind {
	case NumberKind:
		return FormatNumber(v.Num)
	case StringKind:
		return v.Str
	default:
		return ""
	}
}
