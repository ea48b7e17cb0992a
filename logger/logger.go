package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	LevelEnv  = "RELEX_LOGLEVEL"
	FormatEnv = "RELEX_LOGFORMAT"

	formatConsole = "console"
)

var levels = map[string]zerolog.Level{
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
	"PANIC": zerolog.PanicLevel,
}

func SetupLogging() {
	zerolog.LevelFieldName = "level_name"
	zerolog.TimestampFieldName = "timestamp"
}

// ParseLevel maps a level name to zerolog, ignoring case. Unknown names
// log at info.
func ParseLevel(level string) zerolog.Level {
	if l, ok := levels[strings.ToUpper(strings.TrimSpace(level))]; ok {
		return l
	}
	return zerolog.InfoLevel
}

func output() io.Writer {
	if strings.EqualFold(os.Getenv(FormatEnv), formatConsole) {
		return zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return os.Stderr
}

func NewLogger(component string) zerolog.Logger {
	return New(output(), component)
}

// New builds a component logger writing to w at the level from RELEX_LOGLEVEL.
func New(w io.Writer, component string) zerolog.Logger {
	return zerolog.New(w).
		With().
		Str("component", component).
		Timestamp().
		Logger().
		Level(ParseLevel(os.Getenv(LevelEnv)))
}
