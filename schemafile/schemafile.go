package schemafile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/asjadenet/cliargs"
)

// Sentinel errors for schema file validation, testable with [errors.Is].
var (
	// ErrBadIdentifier is returned when a flag identifier is not exactly one
	// character.
	ErrBadIdentifier = errors.New("flag identifier must be a single character")

	// ErrUnknownType is returned when a flag declares a type other than
	// "int", "bool", or "string".
	ErrUnknownType = errors.New("unknown flag type")

	// ErrDuplicateFlag is returned when two entries declare the same flag
	// identifier.
	ErrDuplicateFlag = errors.New("duplicate flag identifier")

	// ErrDuplicateLong is returned when two entries declare the same long
	// name.
	ErrDuplicateLong = errors.New("duplicate long name")

	// ErrBadDefault is returned when a default value or expression result
	// does not match the declared type.
	ErrBadDefault = errors.New("default value does not match declared type")

	// ErrConflictingDefaults is returned when an entry sets both default and
	// default_expr.
	ErrConflictingDefaults = errors.New("default and default_expr are mutually exclusive")
)

// File is a parsed schema document.
type File struct {
	// Program is the name shown in usage lines.
	Program string `yaml:"program"`

	// AutoHelp controls implicit help flag injection. Absent means enabled.
	AutoHelp *bool `yaml:"auto_help"`

	// Flags is the flag table.
	Flags []Flag `yaml:"flags"`
}

// Flag is one flag declaration.
type Flag struct {
	// Flag is the single-character identifier.
	Flag string `yaml:"flag"`

	// Long is the optional long-form alias.
	Long string `yaml:"long"`

	// Type is one of "int", "bool", or "string".
	Type string `yaml:"type"`

	// Default is an optional literal default value of the declared type.
	Default any `yaml:"default"`

	// DefaultExpr is an optional constant expression evaluated at load time;
	// its result must be of the declared type. Mutually exclusive with
	// Default.
	DefaultExpr string `yaml:"default_expr"`

	// Required marks the flag as mandatory in every argument vector.
	Required bool `yaml:"required"`

	// Help is the optional one-line description.
	Help string `yaml:"help"`
}

// Load decodes a schema document from r.
func Load(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode schema file: %w", err)
	}

	return &f, nil
}

// LoadFile decodes a schema document from the file at path.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode schema file %s: %w", path, err)
	}

	return &f, nil
}

// Config validates the flag table and converts it to a [cliargs.Config].
func (f *File) Config() (cliargs.Config, error) {
	cfg := cliargs.Config{
		Defaults:  make(map[byte]cliargs.Value, len(f.Flags)),
		LongNames: make(map[byte]string, len(f.Flags)),
		Help:      make(map[byte]string, len(f.Flags)),
	}

	longSeen := make(map[string]bool, len(f.Flags))

	for _, entry := range f.Flags {
		if len(entry.Flag) != 1 {
			return cliargs.Config{}, fmt.Errorf("%w: %q", ErrBadIdentifier, entry.Flag)
		}

		flag := entry.Flag[0]

		if _, ok := cfg.Defaults[flag]; ok {
			return cliargs.Config{}, fmt.Errorf("%w: '-%c'", ErrDuplicateFlag, flag)
		}

		def, err := entry.value()
		if err != nil {
			return cliargs.Config{}, fmt.Errorf("flag '-%c': %w", flag, err)
		}

		cfg.Defaults[flag] = def

		if entry.Long != "" {
			if longSeen[entry.Long] {
				return cliargs.Config{}, fmt.Errorf("%w: %q", ErrDuplicateLong, entry.Long)
			}

			longSeen[entry.Long] = true
			cfg.LongNames[flag] = entry.Long
		}

		if entry.Help != "" {
			cfg.Help[flag] = entry.Help
		}

		if entry.Required {
			cfg.Required = append(cfg.Required, flag)
		}
	}

	return cfg, nil
}

// Options returns the construction options implied by the document.
func (f *File) Options() []cliargs.Option {
	if f.AutoHelp != nil && !*f.AutoHelp {
		return []cliargs.Option{cliargs.WithAutoHelp(false)}
	}

	return nil
}

// Schema validates the document and builds a schema from it. Additional
// options are applied after the document's own.
func (f *File) Schema(extra ...cliargs.Option) (*cliargs.Schema, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}

	return cliargs.New(cfg, append(f.Options(), extra...)...), nil
}

// value resolves the entry's default to a typed [cliargs.Value].
func (entry Flag) value() (cliargs.Value, error) {
	if entry.Default != nil && entry.DefaultExpr != "" {
		return cliargs.Value{}, ErrConflictingDefaults
	}

	def := entry.Default

	if entry.DefaultExpr != "" {
		out, err := expr.Eval(entry.DefaultExpr, nil)
		if err != nil {
			return cliargs.Value{}, fmt.Errorf("evaluate default_expr: %w", err)
		}

		def = out
	}

	switch entry.Type {
	case "int":
		n, ok := asInt(def)
		if !ok && def != nil {
			return cliargs.Value{}, fmt.Errorf("%w: %v is not an int", ErrBadDefault, def)
		}

		return cliargs.Int(n), nil

	case "bool":
		b, ok := def.(bool)
		if !ok && def != nil {
			return cliargs.Value{}, fmt.Errorf("%w: %v is not a bool", ErrBadDefault, def)
		}

		return cliargs.Bool(b), nil

	case "string":
		s, ok := def.(string)
		if !ok && def != nil {
			return cliargs.Value{}, fmt.Errorf("%w: %v is not a string", ErrBadDefault, def)
		}

		return cliargs.String(s), nil

	default:
		return cliargs.Value{}, fmt.Errorf("%w: %q", ErrUnknownType, entry.Type)
	}
}

// asInt widens the integer representations produced by YAML decoding and
// expression evaluation to the native int.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}
