package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asjadenet/cliargs"
)

var styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

// Report writes a parse failure to w: the error message, a "did you mean"
// suggestion when an unknown long flag resembles a declared alias, and the
// full help listing.
//
// Non-ParseError values are reported verbatim without the help listing.
func Report(w io.Writer, s *cliargs.Schema, program string, err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(w, "%s %s\n", styleError.Render("Error:"), err.Error())

	var perr *cliargs.ParseError
	if !errors.As(err, &perr) {
		return
	}

	if errors.Is(perr, cliargs.ErrUnknownArgument) && strings.HasPrefix(perr.Detail, "--") {
		name, _, _ := strings.Cut(strings.TrimPrefix(perr.Detail, "--"), "=")
		if hint := Suggest(name, longNames(s)); hint != "" {
			fmt.Fprintf(w, "Did you mean '--%s'?\n", hint)
		}
	}

	fmt.Fprintf(w, "\n%s", Help(s, program))
}
