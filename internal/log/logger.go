package log

import (
	"fmt"
	"strings"
	"sync"
)

// Logger is a leveled logger writing one line per message.
// It is thread safe to use, and child loggers share the
// mutex of their parent.
type Logger struct {
	settings settings
	parent   *Logger
	mutex    *sync.Mutex
}

// New creates a new root logger.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a child logger. Settings not given in options
// are inherited from the parent at logging time, so patching
// the parent propagates to the child.
func (l *Logger) New(options ...Option) *Logger {
	return &Logger{
		settings: newSettings(options),
		parent:   l,
		mutex:    l.mutex,
	}
}

// Patch patches the existing settings with any option given.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.settings.overrideWith(newSettings(options))
}

// PatchLevel patches the level of the logger.
func (l *Logger) PatchLevel(level Level) {
	l.Patch(SetLevel(level))
}

// effective must be called with the mutex held.
func (l *Logger) effective() settings {
	var s settings
	s.mergeWith(l.settings)

	for p := l.parent; p != nil; p = p.parent {
		s.mergeWith(p.settings)
	}

	s.setDefaults()

	return s
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	s := l.effective()
	if *s.level > level {
		return
	}

	var b strings.Builder

	if *s.colour {
		b.WriteString(level.ColouredString())
	} else {
		b.WriteString(level.String())
	}

	b.WriteByte(' ')

	if len(args) == 0 {
		b.WriteString(format)
	} else {
		fmt.Fprintf(&b, format, args...)
	}

	if len(s.context) > 0 {
		b.WriteByte('\t')
		for i, kvs := range s.context {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(kvs.key + "=" + strings.Join(kvs.values, ","))
		}
	}

	b.WriteByte('\n')

	_, _ = s.writer.Write([]byte(b.String()))
}

// Trace logs with the trce level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs with the dbug level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs with the info level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs with the warn level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs with the eror level.
func (l *Logger) Error(s string) { l.log(Error, s) }

// Critical logs with the crit level.
func (l *Logger) Critical(s string) { l.log(Critical, s) }

// Tracef formats and logs at the trce level.
func (l *Logger) Tracef(format string, args ...any) { l.log(Trace, format, args...) }

// Debugf formats and logs at the dbug level.
func (l *Logger) Debugf(format string, args ...any) { l.log(Debug, format, args...) }

// Infof formats and logs at the info level.
func (l *Logger) Infof(format string, args ...any) { l.log(Info, format, args...) }

// Warnf formats and logs at the warn level.
func (l *Logger) Warnf(format string, args ...any) { l.log(Warn, format, args...) }

// Errorf formats and logs at the eror level.
func (l *Logger) Errorf(format string, args ...any) { l.log(Error, format, args...) }

// Criticalf formats and logs at the crit level.
func (l *Logger) Criticalf(format string, args ...any) { l.log(Critical, format, args...) }
