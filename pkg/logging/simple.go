package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

var (
	infoColor  = color.New(color.FgGreen).SprintFunc()
	debugColor = color.New(color.FgCyan).SprintFunc()
	traceColor = color.New(color.FgYellow).SprintFunc()
	errorColor = color.New(color.FgRed).SprintFunc()
)

// SimpleLogSink is a logr.LogSink producing labeled, human-readable lines
// with key-value pairs indented underneath.
type SimpleLogSink struct {
	writer       io.Writer
	minVerbosity int
	name         string
	keyValues    []interface{}
	mutex        sync.Mutex
	useColor     bool
}

// NewSimpleLogSink creates a sink writing to writer (os.Stdout when nil)
// that drops messages above minVerbosity.
func NewSimpleLogSink(writer io.Writer, minVerbosity int, useColor bool) *SimpleLogSink {
	if writer == nil {
		writer = os.Stdout
	}
	return &SimpleLogSink{
		writer:       writer,
		minVerbosity: minVerbosity,
		useColor:     useColor,
	}
}

// NewSimpleLogger creates a logr.Logger backed by a SimpleLogSink.
func NewSimpleLogger(writer io.Writer, minVerbosity int, useColor bool) logr.Logger {
	return logr.New(NewSimpleLogSink(writer, minVerbosity, useColor))
}

func (s *SimpleLogSink) Init(info logr.RuntimeInfo) {}

func (s *SimpleLogSink) Enabled(level int) bool {
	return level <= s.minVerbosity
}

func (s *SimpleLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(level) {
		return
	}
	s.log(s.label(false, level), msg, keysAndValues...)
}

func (s *SimpleLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.log(s.label(true, 0), msg, append(keysAndValues, "error", err)...)
}

func (s *SimpleLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	clone := s.clone()
	clone.keyValues = append(clone.keyValues, keysAndValues...)
	return clone
}

func (s *SimpleLogSink) WithName(name string) logr.LogSink {
	clone := s.clone()
	if clone.name != "" {
		name = clone.name + "." + name
	}
	clone.name = name
	return clone
}

func (s *SimpleLogSink) clone() *SimpleLogSink {
	return &SimpleLogSink{
		writer:       s.writer,
		minVerbosity: s.minVerbosity,
		name:         s.name,
		keyValues:    append([]interface{}{}, s.keyValues...),
		useColor:     s.useColor,
	}
}

func (s *SimpleLogSink) label(isError bool, level int) string {
	plain := map[int]string{
		LEVEL_INFO:  "[INFO]",
		LEVEL_DEBUG: "[DEBUG]",
		LEVEL_TRACE: "[TRACE]",
	}
	colored := map[int]func(a ...interface{}) string{
		LEVEL_INFO:  infoColor,
		LEVEL_DEBUG: debugColor,
		LEVEL_TRACE: traceColor,
	}
	if isError {
		if s.useColor {
			return errorColor("[ERROR]")
		}
		return "[ERROR]"
	}
	text, ok := plain[level]
	if !ok {
		return fmt.Sprintf("[LEVEL %d]", level)
	}
	if s.useColor {
		return colored[level](text)
	}
	return text
}

func (s *SimpleLogSink) log(label string, msg string, keysAndValues ...interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.name != "" {
		msg = fmt.Sprintf("[%s] %s", s.name, msg)
	}
	fmt.Fprintf(s.writer, "%s %s\n", label, msg)

	all := append(append([]interface{}{}, s.keyValues...), keysAndValues...)
	for i := 0; i+1 < len(all); i += 2 {
		key, ok := all[i].(string)
		if !ok {
			key = fmt.Sprintf("key%d", i/2)
		}
		fmt.Fprintf(s.writer, "  %s: %v\n", key, all[i+1])
	}
}
