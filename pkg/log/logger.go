// Package log is a small structured logger with request-scoped context.
// Entries are written as JSON lines by logrus.
package log

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger writes structured entries at or above its level.
type Logger struct {
	base  *logrus.Logger
	entry *logrus.Entry
}

// New creates a JSON logger writing to out.
func New(level Level, out io.Writer) *Logger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(level)
	base.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	return &Logger{base: base, entry: logrus.NewEntry(base)}
}

// SetLevel changes the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.base.SetLevel(level)
}

// With returns a child logger carrying extra fields on every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{base: l.base, entry: l.entry.WithFields(pairs(keysAndValues))}
}

func (l *Logger) log(ctx context.Context, level Level, msg string, keysAndValues ...any) {
	if !l.base.IsLevelEnabled(level) {
		return
	}

	e := l.entry
	if ctx != nil {
		if id := RequestIDFromContext(ctx); id != "" {
			e = e.WithField("request_id", id)
		}
		if fields := FieldsFromContext(ctx); len(fields) > 0 {
			e = e.WithFields(fields)
		}
	}

	// Log never exits, even at Fatal; that is the caller's call.
	e.WithFields(pairs(keysAndValues)).Log(level, msg)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) { l.log(nil, Debug, msg, keysAndValues...) }
func (l *Logger) Info(msg string, keysAndValues ...any)  { l.log(nil, Info, msg, keysAndValues...) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.log(nil, Warn, msg, keysAndValues...) }
func (l *Logger) Error(msg string, keysAndValues ...any) { l.log(nil, Error, msg, keysAndValues...) }
func (l *Logger) Fatal(msg string, keysAndValues ...any) { l.log(nil, Fatal, msg, keysAndValues...) }

func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Debug, msg, keysAndValues...)
}

func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Info, msg, keysAndValues...)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Warn, msg, keysAndValues...)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Error, msg, keysAndValues...)
}

// --- Global Logger ---

var (
	globalLogger *Logger
	globalMu     sync.RWMutex

	discard = New(logrus.PanicLevel, io.Discard)
)

// SetDefault sets the global default logger.
func SetDefault(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Default returns the global logger, or a silent one if none is set.
func Default() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()

	if l == nil {
		return discard
	}
	return l
}

func GlobalDebug(msg string, keysAndValues ...any) { Default().Debug(msg, keysAndValues...) }
func GlobalInfo(msg string, keysAndValues ...any)  { Default().Info(msg, keysAndValues...) }
func GlobalWarn(msg string, keysAndValues ...any)  { Default().Warn(msg, keysAndValues...) }
func GlobalError(msg string, keysAndValues ...any) { Default().Error(msg, keysAndValues...) }
func GlobalFatal(msg string, keysAndValues ...any) { Default().Fatal(msg, keysAndValues...) }

// GlobalDebugCtx logs at Debug level with context using the global logger.
func GlobalDebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().DebugCtx(ctx, msg, keysAndValues...)
}

// GlobalInfoCtx logs at Info level with context using the global logger.
func GlobalInfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().InfoCtx(ctx, msg, keysAndValues...)
}

// GlobalWarnCtx logs at Warn level with context using the global logger.
func GlobalWarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().WarnCtx(ctx, msg, keysAndValues...)
}

// GlobalErrorCtx logs at Error level with context using the global logger.
func GlobalErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().ErrorCtx(ctx, msg, keysAndValues...)
}
