package log

// multiLogger fans each event out to every wrapped logger in order.
type multiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers into one, so an event can go to both a
// console SlogAdapter and a FileLogger at the same time.
func NewMultiLogger(loggers ...Logger) Logger {
	return &multiLogger{loggers: loggers}
}

func (m *multiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}
