// Package schemafile loads cliargs schemas from YAML documents.
//
// A schema file declares the program name and its flag table:
//
//	program: fileproc
//	flags:
//	  - flag: n
//	    long: repeat
//	    type: int
//	    default: 5
//	    required: true
//	    help: Number of times to repeat
//	  - flag: v
//	    long: verbose
//	    type: bool
//	    help: Enable verbose logging
//	  - flag: t
//	    long: threads
//	    type: int
//	    default_expr: "2 * 2"
//
// Defaults may be literal values or constant expressions evaluated once at
// load time; either way the result must match the declared type, since the
// declared type is what fixes the flag's variant for every parse.
//
// Schema files are programmer input, not argument vectors, so validation
// failures are ordinary wrapped errors rather than parse errors.
package schemafile
