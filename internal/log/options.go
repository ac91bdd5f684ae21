package log

import (
	"io"
	"os"
)

// Option is the type to specify settings modifier
// for the logger operation.
type Option func(s *settings)

// SetLevel sets the level for the logger.
// The level defaults to Info.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetWriter sets the writer for the logger.
// The writer defaults to os.Stderr.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// SetColour enables or disables coloured level strings.
// The default is disabled.
func SetColour(enabled bool) Option {
	return func(s *settings) {
		s.colour = &enabled
	}
}

// AddContext adds the context for the logger as a key values pair.
// It adds them in order. If a key already exists, the value is added to the
// existing values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		s.context = append(s.context, contextKeyValues{key: key, values: []string{value}})
	}
}

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	level   *Level
	writer  io.Writer
	colour  *bool
	context []contextKeyValues
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergeWith sets values from other for fields left unset in s.
// Contexts of other are prepended to the contexts of s.
func (s *settings) mergeWith(other settings) {
	if s.level == nil && other.level != nil {
		level := *other.level
		s.level = &level
	}

	if s.writer == nil {
		s.writer = other.writer
	}

	if s.colour == nil && other.colour != nil {
		colour := *other.colour
		s.colour = &colour
	}

	merged := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kvs := range other.context {
		merged = append(merged, contextKeyValues{
			key:    kvs.key,
			values: append([]string(nil), kvs.values...),
		})
	}
	s.context = append(merged, s.context...)
}

// overrideWith sets values from other for fields set in other.
func (s *settings) overrideWith(other settings) {
	if other.level != nil {
		level := *other.level
		s.level = &level
	}

	if other.writer != nil {
		s.writer = other.writer
	}

	if other.colour != nil {
		colour := *other.colour
		s.colour = &colour
	}

	s.context = append(s.context, other.context...)
}

func (s *settings) setDefaults() {
	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.writer == nil {
		s.writer = os.Stderr
	}

	if s.colour == nil {
		colour := false
		s.colour = &colour
	}
}
