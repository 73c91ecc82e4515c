package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all output
type NopLogger struct{}

// Printf discards its arguments
func (NopLogger) Printf(format string, args ...interface{}) {}
