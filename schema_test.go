package cliargs

import (
	"slices"
	"testing"
)

func TestNew_InjectsImplicitHelp(t *testing.T) {
	schema := New(Config{Defaults: map[byte]Value{'n': Int(0)}})

	def, ok := schema.Default('h')
	if !ok {
		t.Fatal("expected implicit 'h' flag")
	}

	if def.Kind() != KindBool || def.Bool() {
		t.Errorf("implicit help default = %s (%s), want boolean false", def, def.Kind())
	}

	if got := schema.LongName('h'); got != "help" {
		t.Errorf("implicit help long name = %q, want \"help\"", got)
	}

	if schema.HelpText('h') == "" {
		t.Error("implicit help flag has no description")
	}
}

func TestNew_AutoHelpOptOut(t *testing.T) {
	schema := New(Config{Defaults: map[byte]Value{'n': Int(0)}}, WithAutoHelp(false))

	if schema.Has('h') {
		t.Error("'h' injected despite WithAutoHelp(false)")
	}
}

func TestNew_ExplicitHFlagIsPreserved(t *testing.T) {
	schema := New(Config{
		Defaults:  map[byte]Value{'h': Int(8)},
		LongNames: map[byte]string{'h': "height"},
	})

	def, _ := schema.Default('h')
	if def.Kind() != KindInt || def.Int() != 8 {
		t.Errorf("explicit 'h' default = %s (%s), want Int(8)", def, def.Kind())
	}

	if got := schema.LongName('h'); got != "height" {
		t.Errorf("explicit 'h' long name = %q, want \"height\"", got)
	}
}

func TestNew_CopiesConfigTables(t *testing.T) {
	cfg := Config{
		Defaults:  map[byte]Value{'n': Int(0)},
		LongNames: map[byte]string{'n': "count"},
	}

	schema := New(cfg)

	// Mutating the caller's config after construction must not leak into the
	// schema.
	cfg.Defaults['z'] = Bool(true)
	cfg.LongNames['n'] = "changed"

	if schema.Has('z') {
		t.Error("schema observed post-construction mutation of Defaults")
	}

	if got := schema.LongName('n'); got != "count" {
		t.Errorf("schema observed post-construction mutation of LongNames: %q", got)
	}
}

func TestSchema_FlagsSorted(t *testing.T) {
	schema := New(Config{
		Defaults: map[byte]Value{
			'z': Int(0),
			'a': Bool(false),
			'm': String(""),
		},
	})

	want := []byte{'a', 'h', 'm', 'z'}
	if got := schema.Flags(); !slices.Equal(got, want) {
		t.Errorf("Flags() = %q, want %q", got, want)
	}
}

func TestSchema_HelpRequested(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		argv []string
		want bool
	}{
		{
			name: "short help flag",
			argv: []string{"prog", "-h"},
			want: true,
		},
		{
			name: "long help flag",
			argv: []string{"prog", "--help"},
			want: true,
		},
		{
			name: "help anywhere in the vector",
			argv: []string{"prog", "-n", "5", "--help"},
			want: true,
		},
		{
			name: "no help flag",
			argv: []string{"prog", "-n", "5"},
			want: false,
		},
		{
			name: "program name is not scanned",
			argv: []string{"-h"},
			want: false,
		},
		{
			name: "long form ignored when help alias is absent",
			opts: []Option{WithAutoHelp(false)},
			argv: []string{"prog", "--help"},
			want: false,
		},
		{
			name: "short form recognized even without injection",
			opts: []Option{WithAutoHelp(false)},
			argv: []string{"prog", "-h"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := New(Config{Defaults: map[byte]Value{'n': Int(0)}}, tt.opts...)

			if got := schema.HelpRequested(tt.argv); got != tt.want {
				t.Errorf("HelpRequested(%v) = %v, want %v", tt.argv, got, tt.want)
			}
		})
	}
}
