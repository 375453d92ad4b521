// Package logging decouples the rest of the application from the concrete
// logging backend. Packages depend on the Logger interface; the logrus
// adapter is wired in once at startup.
package logging

// Logger is the structured logging seam used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error field attached.
	WithError(err error) Logger
	// WithField returns a logger with one extra field attached.
	WithField(key string, value interface{}) Logger
	// WithFields returns a logger with the given fields attached.
	WithFields(fields ...Field) Logger

	// Fatal logs at fatal level and exits the process.
	Fatal(msg string, fields ...Field)
}

// Field is one key-value pair of structured log context.
type Field struct {
	Key   string
	Value interface{}
}
