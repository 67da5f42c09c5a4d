// Package cliargs is a declarative command-line argument parser.
//
// A parser is described by a [Config]: a table of single-character flag
// identifiers, each with a typed default value, an optional long-form alias,
// an optional help string, and an optional required marker. The default's
// kind fixes the flag's type for every parse; a flag declared with an
// integer default always coerces its argument text as an integer.
//
// # Usage
//
//	schema := cliargs.New(cliargs.Config{
//		Defaults: map[byte]cliargs.Value{
//			'n': cliargs.Int(0),
//			'f': cliargs.String(""),
//			'v': cliargs.Bool(false),
//		},
//		LongNames: map[byte]string{'n': "count", 'f': "file", 'v': "verbose"},
//		Required:  []byte{'n', 'f'},
//	})
//
//	result, err := schema.Parse(os.Args)
//	if err != nil {
//		// err is always a *ParseError; errors.Is matches the kind sentinels.
//	}
//	count := result.Int('n')
//
// # Accepted syntax
//
// Each argument token is interpreted independently:
//
//	-c            short flag (boolean: true; otherwise consumes next token)
//	-c VALUE      short flag with next-token value
//	-c=VALUE      short flag with inline value
//	--name        long flag (boolean: true; otherwise consumes next token)
//	--name VALUE  long flag with next-token value
//	--name=VALUE  long flag with inline value
//
// A bare "-", a bare "--", and any token not starting with "-" are skipped.
// Note that "--" is not treated as an end-of-options terminator: tokens after
// it are still scanned as flags.
//
// # Semantics
//
// Parsing is a single left-to-right scan that stops at the first error. The
// outcome is all-or-nothing: on failure no partial [Result] is returned.
// Each flag may appear at most once per parse; a repeated flag is an error
// even when both occurrences agree.
//
// Boolean flags are asymmetric. An optional boolean flag is set to true by
// mere presence. A required boolean flag must be given an explicit "true" or
// "false", either inline or as the next token, because required implies the
// caller must state the value.
//
// Unless disabled with [WithAutoHelp], [New] injects a boolean 'h' flag with
// long alias "help" when the config does not define 'h'. [Schema.HelpRequested]
// reports whether an argument vector asks for help; rendering the help text
// itself lives in the display subpackage.
package cliargs
