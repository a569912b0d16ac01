package logger

import(
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const(
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35

	colorBold    = 1
)

func newConsoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = noColor
		w.FormatLevel = consoleFormatLevel(noColor)
		w.TimeFormat = "15:04:05.000"
	})
}

// colorize returns the string s wrapped in ANSI code c, unless disabled is true.
func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// The stock console formatter only knows zerolog's lowercase level names; ours are the GCP
// severities.
func consoleFormatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		ll,ok := i.(string)
		if !ok {
			return colorize("???", colorBold, noColor)
		}
		switch strings.ToLower(ll) {
		case "default", "trace":
			return colorize("TRC", colorMagenta, noColor)
		case "debug":
			return colorize("DBG", colorYellow, noColor)
		case "info":
			return colorize("INF", colorGreen, noColor)
		case "warn", "warning":
			return colorize("WRN", colorRed, noColor)
		case "error":
			return colorize(colorize("ERR", colorRed, noColor), colorBold, noColor)
		case "critical", "panic":
			return colorize(colorize("PNC", colorRed, noColor), colorBold, noColor)
		case "emergency", "fatal":
			return colorize(colorize("FTL", colorRed, noColor), colorBold, noColor)
		}
		return colorize("???", colorBold, noColor)
	}
}
