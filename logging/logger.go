package logging

import (
	"io"
	"log"
)

// Classification is the level of a log entry.
type Classification string

const (
	Warn  Classification = "WARN"
	Debug Classification = "DEBUG"
)

// Logger is an interface for logging entries at certain classifications.
type Logger interface {
	// Logf is expected to support the standard fmt package "verbs".
	Logf(level Classification, format string, v ...interface{})
}

// Noop is a Logger implementation that simply does not perform any logging.
type Noop struct{}

func (n Noop) Logf(Classification, string, ...interface{}) {}

// StandardLogger is a Logger implementation that wraps the standard library logger, and delegates logging to it's
// Printf method.
type StandardLogger struct {
	Logger *log.Logger
}

// Logf logs the given classification and message to the underlying logger.
func (s StandardLogger) Logf(classification Classification, format string, v ...interface{}) {
	if len(classification) != 0 {
		format = string(classification) + " " + format
	}

	s.Logger.Printf(format, v...)
}

// NewStandardLogger returns a new StandardLogger
func NewStandardLogger(writer io.Writer) *StandardLogger {
	return &StandardLogger{
		Logger: log.New(writer, "XMLFORMAT ", log.LstdFlags),
	}
}

// Filtered is a Logger that forwards only entries of the allowed
// classifications.
type Filtered struct {
	Logger  Logger
	Allowed []Classification
}

// Logf forwards the entry when its classification is allowed.
func (f Filtered) Logf(classification Classification, format string, v ...interface{}) {
	for _, c := range f.Allowed {
		if c == classification {
			f.Logger.Logf(classification, format, v...)
			return
		}
	}
}

// WithClassifications returns a Logger forwarding only the given
// classifications to logger.
func WithClassifications(logger Logger, allowed ...Classification) Logger {
	return Filtered{Logger: logger, Allowed: allowed}
}
