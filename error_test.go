package cliargs

import (
	"errors"
	"testing"
)

func TestParseError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with detail",
			err:  &ParseError{Err: ErrUnknownArgument, Flag: 'x', Detail: "-x"},
			want: "Unknown argument for '-x': -x",
		},
		{
			name: "without detail",
			err:  &ParseError{Err: ErrDuplicateArgument, Flag: 'n'},
			want: "Duplicate argument for '-n'",
		},
		{
			name: "unknown long flag uses dash slot",
			err:  &ParseError{Err: ErrUnknownArgument, Flag: '-', Detail: "--bogus"},
			want: "Unknown argument for '--': --bogus",
		},
		{
			name: "required boolean detail",
			err: &ParseError{
				Err:    ErrMissingValue,
				Flag:   'r',
				Detail: "required boolean needs explicit value",
			},
			want: "Missing value for argument for '-r': required boolean needs explicit value",
		},
		{
			name: "boolean literal hint is part of the kind message",
			err:  &ParseError{Err: ErrInvalidBooleanValue, Flag: 'v', Detail: "yes"},
			want: "Invalid boolean value (expected 'true' or 'false') for '-v': yes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_KindMatching(t *testing.T) {
	err := error(&ParseError{Err: ErrInvalidIntegerValue, Flag: 'n', Detail: "abc"})

	if !errors.Is(err, ErrInvalidIntegerValue) {
		t.Error("errors.Is failed to match the wrapped kind")
	}

	if errors.Is(err, ErrInvalidBooleanValue) {
		t.Error("errors.Is matched a different kind")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatal("errors.As failed to recover *ParseError")
	}

	if perr.Flag != 'n' || perr.Detail != "abc" {
		t.Errorf("recovered flag=%q detail=%q", perr.Flag, perr.Detail)
	}
}
