package log

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is the severity of a log entry.
type Level = logrus.Level

const (
	Trace = logrus.TraceLevel
	Debug = logrus.DebugLevel
	Info  = logrus.InfoLevel
	Warn  = logrus.WarnLevel
	Error = logrus.ErrorLevel
	Fatal = logrus.FatalLevel
)

// ErrInvalidLevel is returned when parsing an unknown level string.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a level name, case-insensitively.
// Unknown names return Info together with ErrInvalidLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return logrus.ParseLevel(s)
	default:
		return Info, ErrInvalidLevel
	}
}
