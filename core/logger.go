package core

// Logger is any leveled logging service.
// Extra args may carry errors or structured context maps; implementations
// decide what to do with them.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
