package vtpool

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Severity classifies a diagnostic message.
type Severity uint8

// Diagnostic severities, lowest first.
const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// Emitter receives diagnostic messages from the pool and its objects.
// Implementations must be safe to call from whatever goroutine drives
// mutation; the pool itself never calls Emit concurrently.
type Emitter interface {
	Emit(sev Severity, msg string)
}

// NopEmitter discards all diagnostics.
type NopEmitter struct{}

// Emit implements Emitter.
func (NopEmitter) Emit(Severity, string) {}

// zerologEmitter forwards diagnostics to a zerolog logger.
type zerologEmitter struct {
	logger zerolog.Logger
}

// NewZerologEmitter returns an Emitter that logs through the given logger.
func NewZerologEmitter(logger zerolog.Logger) Emitter {
	return &zerologEmitter{logger: logger}
}

// Emit implements Emitter.
func (e *zerologEmitter) Emit(sev Severity, msg string) {
	e.logger.WithLevel(zerologLevel(sev)).Msg(msg)
}

func zerologLevel(sev Severity) zerolog.Level {
	switch sev {
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	case SeverityError:
		return zerolog.ErrorLevel
	case SeverityCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.ErrorLevel
	}
}

// emitf formats and emits a diagnostic, tolerating a nil emitter.
func emitf(e Emitter, sev Severity, format string, args ...interface{}) {
	if e == nil {
		return
	}
	e.Emit(sev, fmt.Sprintf(format, args...))
}
