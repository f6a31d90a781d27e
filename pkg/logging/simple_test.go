package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

// Test that if writer is nil, the logger defaults to os.Stdout.
func TestDefaultWriter(t *testing.T) {
	s := NewSimpleLogSink(nil, 1, true)
	if s.writer != os.Stdout {
		t.Errorf("expected default writer to be os.Stdout, got %v", s.writer)
	}
}

// Test that Enabled returns true only for levels at or below minVerbosity.
func TestEnabled(t *testing.T) {
	s := NewSimpleLogSink(&bytes.Buffer{}, 1, true)
	if !s.Enabled(0) {
		t.Error("expected level 0 to be enabled")
	}
	if !s.Enabled(1) {
		t.Error("expected level 1 to be enabled")
	}
	if s.Enabled(2) {
		t.Error("expected level 2 to be disabled")
	}
}

// Test that Info writes a labeled message with its key-value pairs.
func TestInfoLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 1, false)
	s.Info(0, "catalog decoded", "media_type", "harddisk")
	output := buf.String()

	if !strings.Contains(output, "catalog decoded") {
		t.Errorf("expected output to contain message, got %q", output)
	}
	if !strings.Contains(output, "media_type: harddisk") {
		t.Errorf("expected output to contain key-value pair, got %q", output)
	}
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("expected output to contain [INFO] label, got %q", output)
	}
}

// Test that messages above the minimum verbosity are dropped.
func TestInfoNotLoggedWhenDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 0, true)
	s.Info(1, "should not appear", "foo", "bar")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// Test that Error logging appends the error as a key-value pair.
func TestErrorLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 0, false)
	s.Error(errors.New("boom"), "extraction failed")
	output := buf.String()

	if !strings.Contains(output, "[ERROR]") {
		t.Errorf("expected output to contain [ERROR] label, got %q", output)
	}
	if !strings.Contains(output, "error: boom") {
		t.Errorf("expected output to contain the error value, got %q", output)
	}
}

// Test that WithName prefixes messages and WithValues carries pairs over.
func TestWithNameAndValues(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 0, false)
	named := s.WithName("catalog").WithValues("sector", 19).(*SimpleLogSink)
	named.Info(0, "decoding")
	output := buf.String()

	if !strings.Contains(output, "[catalog] decoding") {
		t.Errorf("expected named message, got %q", output)
	}
	if !strings.Contains(output, "sector: 19") {
		t.Errorf("expected carried key-value pair, got %q", output)
	}
}
