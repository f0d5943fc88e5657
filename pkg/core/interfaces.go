package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// OrDiscard returns logger, or a logger that drops everything when logger is nil
func OrDiscard(logger Logger) Logger {
	if logger == nil {
		return discardLogger{}
	}
	return logger
}
