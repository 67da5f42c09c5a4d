package cliargs

import (
	"errors"
	"strings"
	"testing"
)

// FuzzParse feeds arbitrary whitespace-split argument vectors through a
// representative schema. Parsing must never panic, and the outcome must be
// all-or-nothing: a full result on success, an empty one with a *ParseError
// on failure.
func FuzzParse(f *testing.F) {
	f.Add("-n 100 -f test.txt")
	f.Add("-n=100 --file=test.txt -v")
	f.Add("--count 5 --file a --verbose")
	f.Add("-x --bogus -n")
	f.Add("-- -n 1 -f a")
	f.Add("-v=yes -n abc")
	f.Add("- -h --=x ---")

	f.Fuzz(func(t *testing.T, input string) {
		schema := testSchema(t)
		argv := append([]string{"prog"}, strings.Fields(input)...)

		result, err := schema.Parse(argv)

		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("error is %T, want *ParseError", err)
			}

			if !strings.Contains(err.Error(), " for '-") {
				t.Errorf("error message %q lacks the flag slot", err.Error())
			}

			if result.Len() != 0 {
				t.Errorf("failed parse returned %d values", result.Len())
			}

			return
		}

		// Success must resolve every schema flag.
		for _, flag := range schema.Flags() {
			if _, ok := result.Lookup(flag); !ok {
				t.Errorf("flag '-%c' missing from successful result", flag)
			}
		}
	})
}
