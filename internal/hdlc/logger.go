package hdlc

// Logger receives decode diagnostics. Implementations must be safe for
// concurrent use when an Interpreter is shared.
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Tracef(string, ...any) {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Errorf(string, ...any) {}

// Option configures an Interpreter.
type Option func(*Interpreter)

func WithLogger(l Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.log = l
		}
	}
}
