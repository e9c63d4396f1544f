package dirmeta

// Logger provides a pluggable logging interface for dirmeta operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}

// nopLogger discards everything. Used when no logger is injected.
type nopLogger struct{}

func (nopLogger) Verbose(format string, args ...interface{}) {}
func (nopLogger) Info(format string, args ...interface{})    {}
func (nopLogger) Error(format string, args ...interface{})   {}
