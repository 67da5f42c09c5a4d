package cliargs

import (
	"errors"
	"strings"
)

// Sentinel errors identifying each parse failure kind.
//
// Every error returned by [Schema.Parse] is a [*ParseError] wrapping exactly
// one of these, so callers can dispatch with [errors.Is]. The sentinel text
// is the user-presentable kind message rendered by [ParseError.Error].
var (
	// ErrUnknownArgument is returned when a token names a flag that does not
	// exist in the schema.
	ErrUnknownArgument = errors.New("Unknown argument")

	// ErrMissingRequiredArgument is returned after the scan when a flag in
	// the required set was never seen.
	ErrMissingRequiredArgument = errors.New("Missing required argument")

	// ErrMissingValue is returned when a flag needs a value token and the
	// argument vector ends before one is found.
	ErrMissingValue = errors.New("Missing value for argument")

	// ErrInvalidBooleanValue is returned when a boolean flag's value text is
	// neither exactly "true" nor exactly "false".
	ErrInvalidBooleanValue = errors.New("Invalid boolean value (expected 'true' or 'false')")

	// ErrInvalidIntegerValue is returned when an integer flag's value text is
	// not a base-10 integer consumed in full, or overflows the native int.
	ErrInvalidIntegerValue = errors.New("Invalid integer value")

	// ErrTypeMismatch is returned from the defensive coercion branch that is
	// unreachable while the [Kind] set stays closed.
	ErrTypeMismatch = errors.New("Type mismatch")

	// ErrDuplicateArgument is returned when a flag appears more than once in
	// a single parse, regardless of whether the occurrences agree.
	ErrDuplicateArgument = errors.New("Duplicate argument")
)

// ParseError is the structured failure produced by [Schema.Parse].
//
// Flag is the offending flag identifier; for an unknown long-form token it is
// '-' because no identifier could be resolved. Detail carries free-form
// context such as the original token or the raw value text.
type ParseError struct {
	// Err is one of the package sentinel errors, identifying the kind.
	Err error
	// Detail is optional free-text context for the failure.
	Detail string
	// Flag is the flag identifier the failure is attributed to.
	Flag byte
}

// Error renders the failure as "<kind message> for '-<flag>'[: <detail>]".
func (e *ParseError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Err.Error())
	sb.WriteString(" for '-")
	sb.WriteByte(e.Flag)
	sb.WriteByte('\'')

	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}

	return sb.String()
}

// Unwrap returns the sentinel kind, enabling [errors.Is] dispatch.
func (e *ParseError) Unwrap() error { return e.Err }
