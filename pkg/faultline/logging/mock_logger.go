package logging

import (
	"fmt"
	"io"
)

// MockLogger writes level-prefixed plain lines to a caller supplied
// writer so tests can assert on emitted output.
type MockLogger struct {
	level Level
	out   io.Writer
}

// NewMockLogger returns a logger for tests writing to out at DEBUG level.
func NewMockLogger(out io.Writer) Logger {
	return &MockLogger{
		level: DEBUG,
		out:   out,
	}
}

func (m *MockLogger) logf(level Level, format string, args ...any) {
	if level < m.level {
		return
	}

	_, filtered := extractTraceIDAndFilterArgs(args)

	var message any

	switch {
	case len(filtered) == 1 && format == "":
		message = filtered[0]
	case len(filtered) != 1 && format == "":
		message = filtered
	case format != "":
		message = fmt.Sprintf(format, filtered...)
	}

	fmt.Fprintf(m.out, "%s %v\n", level.String(), message)
}

func (m *MockLogger) Debug(args ...any) {
	m.logf(DEBUG, "", args...)
}

func (m *MockLogger) Debugf(format string, args ...any) {
	m.logf(DEBUG, format, args...)
}

func (m *MockLogger) Info(args ...any) {
	m.logf(INFO, "", args...)
}

func (m *MockLogger) Infof(format string, args ...any) {
	m.logf(INFO, format, args...)
}

func (m *MockLogger) Notice(args ...any) {
	m.logf(NOTICE, "", args...)
}

func (m *MockLogger) Noticef(format string, args ...any) {
	m.logf(NOTICE, format, args...)
}

func (m *MockLogger) Warn(args ...any) {
	m.logf(WARN, "", args...)
}

func (m *MockLogger) Warnf(format string, args ...any) {
	m.logf(WARN, format, args...)
}

func (m *MockLogger) Error(args ...any) {
	m.logf(ERROR, "", args...)
}

func (m *MockLogger) Errorf(format string, args ...any) {
	m.logf(ERROR, format, args...)
}

func (m *MockLogger) Critical(args ...any) {
	m.logf(CRITICAL, "", args...)
}

func (m *MockLogger) Criticalf(format string, args ...any) {
	m.logf(CRITICAL, format, args...)
}

func (m *MockLogger) Alert(args ...any) {
	m.logf(ALERT, "", args...)
}

func (m *MockLogger) Alertf(format string, args ...any) {
	m.logf(ALERT, format, args...)
}

func (m *MockLogger) Emergency(args ...any) {
	m.logf(EMERGENCY, "", args...)
}

func (m *MockLogger) Emergencyf(format string, args ...any) {
	m.logf(EMERGENCY, format, args...)
}

func (m *MockLogger) ChangeLevel(level Level) {
	m.level = level
}
