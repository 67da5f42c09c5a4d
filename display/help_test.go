package display

import (
	"strings"
	"testing"

	"github.com/asjadenet/cliargs"
)

func helpSchema() *cliargs.Schema {
	return cliargs.New(cliargs.Config{
		Defaults: map[byte]cliargs.Value{
			'v': cliargs.Bool(false),
			'n': cliargs.Int(0),
			'f': cliargs.String(""),
			't': cliargs.Int(4),
			'o': cliargs.String("out.txt"),
		},
		LongNames: map[byte]string{
			'v': "verbose",
			'n': "count",
			'f': "file",
			't': "threads",
		},
		Required: []byte{'n', 'f'},
		Help: map[byte]string{
			'v': "Enable verbose output",
			'n': "Number of iterations",
			'f': "Input filename",
		},
	})
}

func TestHelp_UsageLine(t *testing.T) {
	out := Help(helpSchema(), "myprog")

	if !strings.Contains(out, "Usage:") || !strings.Contains(out, "myprog [OPTIONS]") {
		t.Errorf("missing usage line in:\n%s", out)
	}

	if out := Help(helpSchema(), ""); !strings.Contains(out, "program [OPTIONS]") {
		t.Errorf("empty program name not defaulted in:\n%s", out)
	}
}

func TestHelp_FlagsSortedByIdentifier(t *testing.T) {
	out := Help(helpSchema(), "myprog")

	last := -1

	for _, flag := range []string{"-f", "-h", "-n", "-o", "-t", "-v"} {
		idx := strings.Index(out, "  "+flag)
		if idx < 0 {
			t.Fatalf("flag %s missing from help:\n%s", flag, out)
		}

		if idx < last {
			t.Errorf("flag %s out of order in help:\n%s", flag, out)
		}

		last = idx
	}
}

func TestHelp_Lines(t *testing.T) {
	out := Help(helpSchema(), "myprog")

	tests := []struct {
		name string
		want []string
	}{
		{
			name: "required flag with help text",
			want: []string{"-n, --count", "Number of iterations", "(required)"},
		},
		{
			name: "required string flag",
			want: []string{"-f, --file", "Input filename", "(required)"},
		},
		{
			name: "optional bool carries no annotation",
			want: []string{"-v, --verbose", "Enable verbose output"},
		},
		{
			name: "type tag when help text absent",
			want: []string{"-t, --threads", "[int]", "(default: 4)"},
		},
		{
			name: "string default is quoted",
			want: []string{"-o", `(default: "out.txt")`},
		},
		{
			name: "implicit help entry",
			want: []string{"-h, --help", "Show this help message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := findLine(t, out, tt.want[0])

			for _, want := range tt.want[1:] {
				if !strings.Contains(line, want) {
					t.Errorf("line %q missing %q", line, want)
				}
			}
		})
	}
}

func TestHelp_OptionalBoolHasNoDefaultAnnotation(t *testing.T) {
	line := findLine(t, Help(helpSchema(), "myprog"), "-v, --verbose")

	if strings.Contains(line, "(default") {
		t.Errorf("optional bool line carries a default annotation: %q", line)
	}
}

func TestHelp_ShortOnlyFlagAligns(t *testing.T) {
	line := findLine(t, Help(helpSchema(), "myprog"), "  -o")

	if strings.Contains(line, "--") {
		t.Errorf("flag without alias shows a long form: %q", line)
	}

	// The description starts at the same column as aliased flags.
	if idx := strings.Index(line, "[string]"); idx != descriptionColumn {
		t.Errorf("description starts at column %d, want %d: %q", idx, descriptionColumn, line)
	}
}

func findLine(t *testing.T, out, substr string) string {
	t.Helper()

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}

	t.Fatalf("no line containing %q in:\n%s", substr, out)

	return ""
}
