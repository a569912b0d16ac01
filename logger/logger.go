// Package logger holds the process-wide zerolog logger. Levels are named the way GCP cloud
// logging expects, so the JSON output can go straight to stderr on Cloud Run or App Engine.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func Log() *zerolog.Logger {
	return &log
}

func init() {
	zerolog.LevelFieldName = "severity"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		switch l {
		case zerolog.TraceLevel: return "DEFAULT"
		case zerolog.DebugLevel: return "DEBUG"
		case zerolog.InfoLevel:  return "INFO"
		case zerolog.WarnLevel:  return "WARN"
		case zerolog.ErrorLevel: return "ERROR"
		case zerolog.PanicLevel: return "CRITICAL"
		case zerolog.FatalLevel: return "EMERGENCY"
		default:                 return "DEFAULT"
		}
	}

	SetConsoleWriter()
}

func SetConsoleWriter() {
	SetConsoleWriterTo(os.Stderr, false)
}

func SetConsoleWriterTo(out io.Writer, noColor bool) {
	log = zerolog.New(newConsoleWriter(out, noColor)).With().Timestamp().Logger()
}

func SetJsonWriter() {
	SetWriter(os.Stderr)
}

func SetWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel takes one of trace, debug, info, warn, error; blank means info.
func SetLevel(level string) error {
	if level == "" { level = "info" }
	l,err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// Setup picks a writer by format ("console" or "json") and sets the level.
func Setup(format, level string) error {
	switch format {
	case "", "console": SetConsoleWriter()
	case "json":        SetJsonWriter()
	default:
		return fmt.Errorf("log format %q: want console or json", format)
	}
	return SetLevel(level)
}
