package prettylog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level classifies the importance of a log event. Levels are totally ordered:
// Trace < Debug < Info < Warn < Error. LevelOff is a threshold-only value
// that disables all output, including panic reports; it is never attached to
// an event.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

// TraceLevel is the slog level used for trace records. slog defines no trace
// constant, so the usual convention of one step below debug applies.
const TraceLevel slog.Level = slog.LevelDebug - 4

// panicLabel is the synthetic tag rendered by the panic hook. It is not a
// Level and never participates in filtering.
const panicLabel = "PANIC"

// Levels returns every loggable level in ascending severity order.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// ParseLevel maps a configuration string to a Level. Matching is
// case-insensitive; the empty string means info.
func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	default:
		return LevelInfo, fmt.Errorf("log level: unrecognized value %q", value)
	}
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Label returns the uppercase tag text rendered inside brackets.
func (l Level) Label() string {
	return strings.ToUpper(l.String())
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelTrace:
		return TraceLevel
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func levelForRecord(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Stream selects which process output a line is written to.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

// Stream returns the output stream for events at this level. Error goes to
// stderr; every other severity goes to stdout.
func (l Level) Stream() Stream {
	if l == LevelError {
		return Stderr
	}
	return Stdout
}

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}
