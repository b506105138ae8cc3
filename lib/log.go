package lib

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogTimeFormat = "2006-01-02T15:04:05.000"
)

// console logs go to stderr so generated output on stdout stays clean
func consoleWriter(pretty bool) io.Writer {
	if !pretty {
		return os.Stderr
	}
	var out io.Writer = os.Stderr
	if runtime.GOOS == "windows" {
		out = colorable.NewColorableStderr()
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: LogTimeFormat}
}

// ZeroConsoleLog points the global logger at the console. When pretty is
// false, JSON lines are written instead.
func ZeroConsoleLog(pretty bool) {
	log.Logger = zerolog.New(consoleWriter(pretty)).With().Timestamp().Logger()
}

// ZeroConsoleAndFileLog logs to the console and appends JSON lines to
// filename. The returned closer releases the file.
func ZeroConsoleAndFileLog(filename string, pretty bool) (io.Closer, error) {
	logFile, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		ZeroConsoleLog(pretty)
		return nil, fmt.Errorf("failed to open log file %s: %w", filename, err)
	}

	mw := zerolog.MultiLevelWriter(consoleWriter(pretty), logFile)
	log.Logger = zerolog.New(mw).With().Timestamp().Logger()
	return logFile, nil
}

// SetLogLevel sets the global level from a name such as "debug" or "warn"
func SetLogLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
