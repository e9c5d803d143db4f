package calculation

import (
	"fmt"
	"os"
)

// Logger is a minimal logging interface for the simulation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger implements Logger by writing level-prefixed lines to stderr.
type StdLogger struct{}

func (StdLogger) Debugf(format string, args ...any) { stdLog("DEBUG", format, args...) }
func (StdLogger) Infof(format string, args ...any)  { stdLog("INFO", format, args...) }
func (StdLogger) Warnf(format string, args ...any)  { stdLog("WARN", format, args...) }
func (StdLogger) Errorf(format string, args ...any) { stdLog("ERROR", format, args...) }

func stdLog(level, format string, args ...any) {
	fmt.Fprintf(os.Stderr, level+": "+format+"\n", args...)
}
