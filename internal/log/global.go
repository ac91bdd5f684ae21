package log

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global logger. Child loggers created with
// NewFromGlobal pick up the change for settings they do not override.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}

// PatchLevel patches the global logger level.
func PatchLevel(level Level) {
	globalLogger.PatchLevel(level)
}
