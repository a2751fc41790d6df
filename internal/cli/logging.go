// internal/cli/logging.go

package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// initLogging wires the orchestration trace. User-facing status lines go
// through fmt; this stream only carries diagnostics (staleness decisions,
// exec argv, child exit codes) and stays silent unless asked for.
func initLogging() {
	level := zerolog.WarnLevel
	if flagQuiet {
		level = zerolog.ErrorLevel
	}
	if flagVerbose || os.Getenv("HVCTL_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}
