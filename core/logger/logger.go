package logger

// Logger exposes logging methods for common severity levels. Implementations
// live under infra; core packages only depend on this interface.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
