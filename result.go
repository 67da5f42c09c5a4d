package cliargs

import (
	"fmt"
	"iter"
)

// Result maps every flag identifier in the schema to its resolved value:
// defaults fill the gaps left by flags that did not appear in the argument
// vector. A Result is exclusively owned by the caller of [Schema.Parse] and
// holds no reference back to the schema.
type Result struct {
	values map[byte]Value
}

// Len returns the number of flags in the result.
func (r Result) Len() int { return len(r.values) }

// Lookup returns the value for the given flag and whether the flag exists.
func (r Result) Lookup(flag byte) (Value, bool) {
	val, ok := r.values[flag]

	return val, ok
}

// Int returns the integer value of the given flag.
//
// It panics if the flag is not in the result or was not declared [KindInt]:
// both mismatches are programming errors knowable at the call site from the
// schema, not parse errors.
func (r Result) Int(flag byte) int { return r.value(flag).Int() }

// Bool returns the boolean value of the given flag, with the same panic
// semantics as [Result.Int].
func (r Result) Bool(flag byte) bool { return r.value(flag).Bool() }

// Text returns the text value of the given flag, with the same panic
// semantics as [Result.Int].
func (r Result) Text(flag byte) string { return r.value(flag).Text() }

// Flags returns every flag identifier in the result, sorted.
func (r Result) Flags() []byte { return sortedFlags(r.values) }

// All returns an iterator over flag/value pairs in ascending flag order.
func (r Result) All() iter.Seq2[byte, Value] {
	return func(yield func(byte, Value) bool) {
		for _, flag := range sortedFlags(r.values) {
			if !yield(flag, r.values[flag]) {
				return
			}
		}
	}
}

func (r Result) value(flag byte) Value {
	val, ok := r.values[flag]
	if !ok {
		panic(fmt.Sprintf("cliargs: flag '-%c' is not in the result", flag))
	}

	return val
}
