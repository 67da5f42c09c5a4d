// Command fileproc is a demonstration of driving a small file-processing
// tool entirely with cliargs: its flag table is loaded from an embedded
// schema document, help and errors are rendered by the display package, and
// profiling is available when built with the pprof tag.
//
// Usage:
//
//	fileproc -f input.txt -o copies.txt --repeat 3 -v
package main

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/asjadenet/cliargs"
	"github.com/asjadenet/cliargs/display"
	"github.com/asjadenet/cliargs/log"
	"github.com/asjadenet/cliargs/profile"
	"github.com/asjadenet/cliargs/schemafile"
)

//go:embed schema.yaml
var schemaYAML string

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	// Pre-scan for the verbose flag so the logger attached to the schema
	// captures the scanner's trace records during the real parse.
	level := log.LevelInfo

	for _, arg := range argv {
		if arg == "-v" || arg == "--verbose" {
			level = log.LevelTrace
		}
	}

	logger := log.Make(stderr,
		log.WithLevel(level),
		log.WithFormat(log.FormatText),
		log.WithPretty(true),
		log.WithTimeLayout(""),
	)

	file, err := schemafile.Load(strings.NewReader(schemaYAML))
	if err != nil {
		logger.Error("load schema", slog.Any("error", err))

		return 1
	}

	schema, err := file.Schema(cliargs.WithLogger(logger))
	if err != nil {
		logger.Error("build schema", slog.Any("error", err))

		return 1
	}

	if schema.HelpRequested(argv) {
		fmt.Fprint(stdout, display.Help(schema, file.Program))

		return 0
	}

	result, err := schema.Parse(argv)
	if err != nil {
		display.Report(stderr, schema, file.Program, err)

		return 1
	}

	if mode := result.Text('p'); mode != "" {
		stop := profile.Start(mode, "")
		defer stop.Stop()
	}

	if err := process(logger, stdout, result); err != nil {
		logger.Error("process", slog.Any("error", err))

		return 1
	}

	return 0
}

// process copies the input file to the output file the requested number of
// times.
func process(logger log.Logger, stdout io.Writer, result cliargs.Result) error {
	var (
		repeat = result.Int('n')
		input  = result.Text('f')
		output = result.Text('o')
	)

	logger.Debug("processing",
		slog.String("input", input),
		slog.String("output", output),
		slog.Int("repeat", repeat),
	)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	for i := 0; i < repeat; i++ {
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	fmt.Fprintf(stdout, "wrote %d copies of %s to %s\n", repeat, input, output)

	return nil
}
