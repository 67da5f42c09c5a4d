package cliargs

import (
	"log/slog"
	"strconv"
	"strings"
)

// Parse scans the argument vector and returns the resolved values, or the
// first error encountered. argv[0] is the program name and is excluded from
// the scan.
//
// The scan is strictly left to right with no recovery: on failure the
// returned [Result] is empty and the error is a [*ParseError]. Tokens that
// are not flag-shaped (empty, bare "-", bare "--", or not starting with '-')
// are skipped unless consumed as the value of the preceding flag.
func (s *Schema) Parse(argv []string) (Result, error) {
	args := argv
	if len(args) > 0 {
		args = args[1:]
	}

	values := make(map[byte]Value, len(s.defaults))
	for flag, val := range s.defaults {
		values[flag] = val
	}

	seen := make(map[byte]bool, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "" || arg[0] != '-' {
			continue
		}

		var (
			flag     byte
			raw      string
			explicit bool
		)

		switch {
		case strings.HasPrefix(arg, "--"):
			if arg == "--" {
				// Recognized but not an end-of-options terminator: tokens
				// after it are still scanned as flags.
				continue
			}

			name := arg[2:]
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				raw = name[eq+1:]
				explicit = true
				name = name[:eq]
			}

			id, ok := s.byLong[name]
			if !ok {
				// No identifier resolved, so the flag slot is '-'.
				return Result{}, &ParseError{Err: ErrUnknownArgument, Flag: '-', Detail: arg}
			}

			flag = id

		case len(arg) >= 2:
			flag = arg[1]
			// Anything after the flag character other than "=value" is
			// ignored; there is no short-flag bundling.
			if len(arg) > 2 && arg[2] == '=' {
				raw = arg[3:]
				explicit = true
			}

		default:
			// Bare "-".
			continue
		}

		if _, ok := s.defaults[flag]; !ok {
			return Result{}, &ParseError{Err: ErrUnknownArgument, Flag: flag, Detail: arg}
		}

		if seen[flag] {
			return Result{}, &ParseError{Err: ErrDuplicateArgument, Flag: flag}
		}

		seen[flag] = true

		s.logger.Trace("resolved flag token",
			slog.String("token", arg),
			slog.String("flag", string(flag)),
			slog.Bool("inline_value", explicit),
		)

		switch {
		case explicit:
			val, err := s.coerce(flag, raw)
			if err != nil {
				return Result{}, err
			}

			values[flag] = val

		case s.defaults[flag].Kind() == KindBool && s.required[flag]:
			// Required booleans cannot rely on mere-presence semantics:
			// required implies the caller must state the value.
			if i+1 >= len(args) {
				return Result{}, &ParseError{
					Err:    ErrMissingValue,
					Flag:   flag,
					Detail: "required boolean needs explicit value",
				}
			}

			i++

			val, err := s.coerce(flag, args[i])
			if err != nil {
				return Result{}, err
			}

			values[flag] = val

		case s.defaults[flag].Kind() == KindBool:
			values[flag] = Bool(true)

		default:
			if i+1 >= len(args) {
				return Result{}, &ParseError{Err: ErrMissingValue, Flag: flag}
			}

			i++

			val, err := s.coerce(flag, args[i])
			if err != nil {
				return Result{}, err
			}

			values[flag] = val
		}
	}

	// Sorted iteration keeps the "first missing" flag deterministic.
	for _, flag := range sortedFlags(s.required) {
		if !seen[flag] {
			return Result{}, &ParseError{
				Err:    ErrMissingRequiredArgument,
				Flag:   flag,
				Detail: s.longNames[flag],
			}
		}
	}

	return Result{values: values}, nil
}

// coerce converts raw value text into a [Value] of the flag's declared kind.
func (s *Schema) coerce(flag byte, raw string) (Value, error) {
	switch s.defaults[flag].Kind() {
	case KindBool:
		switch raw {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		default:
			return Value{}, &ParseError{Err: ErrInvalidBooleanValue, Flag: flag, Detail: raw}
		}

	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, &ParseError{Err: ErrInvalidIntegerValue, Flag: flag, Detail: raw}
		}

		return Int(n), nil

	case KindString:
		return String(raw), nil

	default:
		// Unreachable while the Kind set stays closed.
		return Value{}, &ParseError{Err: ErrTypeMismatch, Flag: flag}
	}
}
