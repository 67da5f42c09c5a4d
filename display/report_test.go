package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReport_UnknownLongFlagSuggests(t *testing.T) {
	schema := helpSchema()

	_, err := schema.Parse([]string{"prog", "--cont", "5"})
	if err == nil {
		t.Fatal("expected parse error")
	}

	var buf bytes.Buffer

	Report(&buf, schema, "myprog", err)

	out := buf.String()

	for _, want := range []string{
		"Error:",
		"Unknown argument for '--': --cont",
		"Did you mean '--count'?",
		"Usage:",
		"Options:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestReport_ShortFlagErrorSkipsSuggestion(t *testing.T) {
	schema := helpSchema()

	_, err := schema.Parse([]string{"prog", "-x"})
	if err == nil {
		t.Fatal("expected parse error")
	}

	var buf bytes.Buffer

	Report(&buf, schema, "myprog", err)

	out := buf.String()

	if strings.Contains(out, "Did you mean") {
		t.Errorf("unexpected suggestion for a short flag:\n%s", out)
	}

	if !strings.Contains(out, "Usage:") {
		t.Errorf("report missing help listing:\n%s", out)
	}
}

func TestReport_MissingRequired(t *testing.T) {
	schema := helpSchema()

	_, err := schema.Parse([]string{"prog", "-n", "5"})
	if err == nil {
		t.Fatal("expected parse error")
	}

	var buf bytes.Buffer

	Report(&buf, schema, "myprog", err)

	if !strings.Contains(buf.String(), "Missing required argument for '-f': file") {
		t.Errorf("report missing error message:\n%s", buf.String())
	}
}

func TestReport_NonParseError(t *testing.T) {
	var buf bytes.Buffer

	Report(&buf, helpSchema(), "myprog", errors.New("disk on fire"))

	out := buf.String()

	if !strings.Contains(out, "disk on fire") {
		t.Errorf("report missing error text:\n%s", out)
	}

	if strings.Contains(out, "Usage:") {
		t.Errorf("help listing rendered for a non-parse error:\n%s", out)
	}
}

func TestReport_NilError(t *testing.T) {
	var buf bytes.Buffer

	Report(&buf, helpSchema(), "myprog", nil)

	if buf.Len() != 0 {
		t.Errorf("nil error produced output: %q", buf.String())
	}
}
