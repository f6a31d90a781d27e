// Package report collects the fields decoded from a boot catalog as an
// ordered sequence of (name, value) pairs. Sinks are diagnostic only;
// extraction results never depend on what a sink does with the fields.
package report

import (
	"github.com/bgrewell/eltorito-kit/pkg/logging"
)

// Sink receives each decoded field, in decode order.
type Sink interface {
	Record(name string, value interface{})
}

// Field is a single recorded (name, value) pair.
type Field struct {
	Name  string
	Value interface{}
}

// Fields is an in-memory Sink preserving decode order.
type Fields struct {
	pairs []Field
}

func (f *Fields) Record(name string, value interface{}) {
	f.pairs = append(f.pairs, Field{Name: name, Value: value})
}

// Pairs returns all recorded fields in decode order.
func (f *Fields) Pairs() []Field {
	return f.pairs
}

// Get returns the most recently recorded value for name.
func (f *Fields) Get(name string) (interface{}, bool) {
	for i := len(f.pairs) - 1; i >= 0; i-- {
		if f.pairs[i].Name == name {
			return f.pairs[i].Value, true
		}
	}
	return nil, false
}

// Names returns just the field names, in decode order.
func (f *Fields) Names() []string {
	names := make([]string, len(f.pairs))
	for i, p := range f.pairs {
		names[i] = p.Name
	}
	return names
}

// Discard returns a Sink that drops every field.
func Discard() Sink {
	return discard{}
}

type discard struct{}

func (discard) Record(name string, value interface{}) {}

// NewLogSink returns a Sink that forwards each field to log as a
// key-value pair at info level.
func NewLogSink(log *logging.Logger) Sink {
	if log == nil {
		log = logging.DefaultLogger()
	}
	return &logSink{log: log}
}

type logSink struct {
	log *logging.Logger
}

func (s *logSink) Record(name string, value interface{}) {
	s.log.Info("decoded", name, value)
}

// Tee returns a Sink that records every field into each of sinks.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Record(name string, value interface{}) {
	for _, s := range t {
		s.Record(name, value)
	}
}
