package cliargs

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant held by a [Value].
type Kind int

// The three value variants. The set is closed: a flag is one of these for
// its whole lifetime, fixed by the kind of its default value.
const (
	KindInt    Kind = iota // int
	KindBool               // bool
	KindString             // string
)

// String returns the lowercase name of the kind, suitable for help output.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the three flag value variants.
//
// The zero Value is an integer zero, which keeps [Result] maps seeded from
// defaults well-formed without special cases.
type Value struct {
	s    string
	n    int
	kind Kind
	b    bool
}

// Int returns an integer [Value].
func Int(n int) Value { return Value{kind: KindInt, n: n} }

// Bool returns a boolean [Value].
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a text [Value] holding s verbatim.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload.
// It panics if the value is not [KindInt]: requesting the wrong variant is a
// programming error knowable at the call site from the schema.
func (v Value) Int() int {
	v.mustBe(KindInt)

	return v.n
}

// Bool returns the boolean payload. It panics if the value is not [KindBool].
func (v Value) Bool() bool {
	v.mustBe(KindBool)

	return v.b
}

// Text returns the text payload. It panics if the value is not [KindString].
func (v Value) Text() string {
	v.mustBe(KindString)

	return v.s
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool { return v == o }

// String returns the display form of the payload, without the kind tag.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.n)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	default:
		return "invalid"
	}
}

func (v Value) mustBe(kind Kind) {
	if v.kind != kind {
		panic(fmt.Sprintf("cliargs: %s requested from %s value", kind, v.kind))
	}
}
