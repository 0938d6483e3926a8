package logio

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Level orders diagnostic severities; it shares slog's scale, extended
// downward with a trace level.
type Level = slog.Level

// Levels used by the interpreter and host.
const (
	LevelTrace Level = slog.LevelDebug - 4
	LevelDebug Level = slog.LevelDebug
	LevelInfo  Level = slog.LevelInfo
	LevelError Level = slog.LevelError
)

// Sink receives diagnostic records. Args are alternating key/value pairs, as
// with slog.
type Sink interface {
	Log(level Level, mess string, args ...interface{})
}

// Format selects a Logger output encoding.
type Format int

// Formats; FormatAuto picks text for terminals and JSON otherwise.
const (
	FormatAuto Format = iota
	FormatText
	FormatJSON
)

// Logger implements a leveled logging facility, around an slog handler.
type Logger struct {
	sync.Mutex
	handler  slog.Handler
	exitCode int
}

// New creates a logger writing records at or above level to out, encoded as
// text if format resolves to FormatText, JSON otherwise.
func New(out io.Writer, level Level, format Format) *Logger {
	if format == FormatAuto {
		format = FormatJSON
		if IsTerminal(out) {
			format = FormatText
		}
	}
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel,
	}
	var log Logger
	if format == FormatText {
		log.handler = slog.NewTextHandler(out, opts)
	} else {
		log.handler = slog.NewJSONHandler(out, opts)
	}
	return &log
}

func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey && len(groups) == 0 {
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(LevelName(level))
		}
	}
	return a
}

// LevelName returns the lower case name of a level, e.g. "trace" or "error".
func LevelName(level Level) string {
	switch {
	case level < LevelDebug:
		return "trace"
	case level < LevelInfo:
		return "debug"
	case level < LevelError:
		return "info"
	default:
		return "error"
	}
}

// ParseLevel maps a level name back to its Level; unknown names are false.
func ParseLevel(name string) (Level, bool) {
	switch name {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "error":
		return LevelError, true
	}
	return 0, false
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Log emits one record, retaining error state for ExitCode.
func (log *Logger) Log(level Level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if level >= LevelError {
		log.exitCode = 1
	}
	ctx := context.Background()
	if !log.handler.Enabled(ctx, level) {
		return
	}
	rec := slog.NewRecord(time.Now(), level, mess, 0)
	rec.Add(args...)
	if err := log.handler.Handle(ctx, rec); err != nil {
		log.exitCode = 2
	}
}

// ErrorIf logs any non-nil error at error level.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Log(LevelError, err.Error())
	}
}

// Discard is a Sink that drops every record.
var Discard Sink = discard{}

type discard struct{}

func (discard) Log(Level, string, ...interface{}) {}
