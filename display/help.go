package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asjadenet/cliargs"
)

// descriptionColumn is the column where flag descriptions begin.
const descriptionColumn = 28

var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleFlag   = lipgloss.NewStyle().Bold(true)
	styleNote   = lipgloss.NewStyle().Faint(true)
)

// Help returns the help listing for the schema: a usage line followed by one
// line per flag, sorted by flag identifier.
//
// Each line shows the short form, the long alias when one exists, and the
// flag's help text, or its type in brackets when no help text was declared.
// Optional flags show their default when it is informative; required flags
// are annotated "(required)".
func Help(s *cliargs.Schema, program string) string {
	if program == "" {
		program = "program"
	}

	var sb strings.Builder

	sb.WriteString(styleHeader.Render("Usage:"))
	sb.WriteString(" " + program + " [OPTIONS]\n\n")
	sb.WriteString(styleHeader.Render("Options:"))
	sb.WriteByte('\n')

	for _, flag := range s.Flags() {
		sb.WriteString(optionLine(s, flag))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// optionLine renders one flag's help line without the trailing newline.
func optionLine(s *cliargs.Schema, flag byte) string {
	names := fmt.Sprintf("  -%c", flag)
	if long := s.LongName(flag); long != "" {
		names += ", --" + long
	}

	pad := ""
	if width := len(names); width < descriptionColumn {
		pad = strings.Repeat(" ", descriptionColumn-width)
	}

	def, _ := s.Default(flag)

	text := s.HelpText(flag)
	if text == "" {
		text = "[" + def.Kind().String() + "]"
	}

	if note := annotation(s, flag, def); note != "" {
		text += " " + styleNote.Render(note)
	}

	return styleFlag.Render(names) + pad + text
}

// annotation returns the "(required)" or "(default: …)" suffix for a flag.
// Booleans without a required marker and empty string defaults carry no
// annotation, since the defaults are implied.
func annotation(s *cliargs.Schema, flag byte, def cliargs.Value) string {
	if s.Required(flag) {
		return "(required)"
	}

	switch def.Kind() {
	case cliargs.KindInt:
		return fmt.Sprintf("(default: %d)", def.Int())
	case cliargs.KindString:
		if text := def.Text(); text != "" {
			return fmt.Sprintf("(default: %q)", text)
		}
	case cliargs.KindBool:
	}

	return ""
}
