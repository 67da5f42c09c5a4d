package log_test

import (
	"log/slog"
	"os"

	"github.com/asjadenet/cliargs/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout)
	logger.Info("parser ready", slog.Int("flags", 4))
}

func Example_configuration() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatText),
		log.WithTimeLayout(""),
	)

	logger.Trace("scanned token", slog.String("token", "-n"))
}

func Example_pretty() {
	logger := log.Make(os.Stdout, log.WithPretty(true))
	logger.Warn("flag table is empty")
}
