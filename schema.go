package cliargs

import (
	"slices"

	"github.com/asjadenet/cliargs/log"
)

// Config collects the declarative inputs for [New].
//
// Only Defaults is meaningful on its own; the other tables refine flags it
// declares. An empty Defaults is legal but yields a schema that rejects
// every flag token.
type Config struct {
	// Defaults maps each flag identifier to its default value. The kind of
	// the default fixes the flag's declared type for every parse.
	Defaults map[byte]Value

	// LongNames optionally maps flag identifiers to long-form aliases.
	// Aliases must be unique; the last writer wins on a collision.
	LongNames map[byte]string

	// Help optionally maps flag identifiers to one-line descriptions. Help
	// text is display-only and has no effect on parsing.
	Help map[byte]string

	// Required lists flags that must appear in every argument vector.
	// Identifiers listed here must also exist in Defaults; an entry without
	// a default is a caller bug that the schema does not validate.
	Required []byte
}

// Schema is the immutable set of recognized flags. It is safe for concurrent
// use: construction copies every table from the [Config], and no method
// mutates the receiver.
type Schema struct {
	defaults  map[byte]Value
	longNames map[byte]string
	byLong    map[string]byte
	help      map[byte]string
	required  map[byte]bool
	logger    log.Logger
}

// New builds a [Schema] from cfg. Construction never fails.
//
// Unless disabled with [WithAutoHelp], a boolean 'h' flag aliased to "help"
// is injected when cfg does not define 'h'.
func New(cfg Config, opts ...Option) *Schema {
	c := makeConfig(opts...)

	s := &Schema{
		defaults:  make(map[byte]Value, len(cfg.Defaults)+1),
		longNames: make(map[byte]string, len(cfg.LongNames)+1),
		byLong:    make(map[string]byte, len(cfg.LongNames)+1),
		help:      make(map[byte]string, len(cfg.Help)+1),
		required:  make(map[byte]bool, len(cfg.Required)),
		logger:    c.logger,
	}

	for flag, val := range cfg.Defaults {
		s.defaults[flag] = val
	}

	for flag, name := range cfg.LongNames {
		s.longNames[flag] = name
	}

	for flag, text := range cfg.Help {
		s.help[flag] = text
	}

	for _, flag := range cfg.Required {
		s.required[flag] = true
	}

	if c.autoHelp {
		if _, ok := s.defaults['h']; !ok {
			s.defaults['h'] = Bool(false)
			s.longNames['h'] = "help"
			s.help['h'] = "Show this help message"
		}
	}

	for flag, name := range s.longNames {
		s.byLong[name] = flag
	}

	return s
}

// Flags returns every flag identifier in the schema, sorted.
func (s *Schema) Flags() []byte { return sortedFlags(s.defaults) }

// Has reports whether the schema defines the given flag.
func (s *Schema) Has(flag byte) bool {
	_, ok := s.defaults[flag]

	return ok
}

// Default returns the declared default value for the given flag.
func (s *Schema) Default(flag byte) (Value, bool) {
	val, ok := s.defaults[flag]

	return val, ok
}

// LongName returns the long-form alias for the given flag, or "" if none.
func (s *Schema) LongName(flag byte) string { return s.longNames[flag] }

// HelpText returns the description for the given flag, or "" if none.
func (s *Schema) HelpText(flag byte) string { return s.help[flag] }

// Required reports whether the given flag is in the required set.
func (s *Schema) Required(flag byte) bool { return s.required[flag] }

// HelpRequested reports whether the argument vector asks for help: a literal
// "-h" token, or "--help" while 'h' is aliased to "help". argv[0] is the
// program name and is not examined.
//
// This is a convenience pre-scan so callers can render help before a full
// parse rejects an otherwise incomplete command line.
func (s *Schema) HelpRequested(argv []string) bool {
	if len(argv) > 0 {
		argv = argv[1:]
	}

	helpAlias := s.longNames['h'] == "help"

	for _, arg := range argv {
		if arg == "-h" {
			return true
		}

		if helpAlias && arg == "--help" {
			return true
		}
	}

	return false
}

// sortedFlags returns the keys of m in ascending byte order.
func sortedFlags[T any](m map[byte]T) []byte {
	if len(m) == 0 {
		return nil
	}

	keys := make([]byte, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
