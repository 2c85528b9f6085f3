package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"faultline.dev/pkg/faultline/version"
)

const fileMode = 0644

// PrettyPrint defines an interface for objects that can render
// themselves in a human-readable format to the provided writer.
type PrettyPrint interface {
	PrettyPrint(writer io.Writer)
}

// Logger represents a logging interface covering the full syslog
// severity scale.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Notice(args ...any)
	Noticef(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Critical(args ...any)
	Criticalf(format string, args ...any)
	Alert(args ...any)
	Alertf(format string, args ...any)
	Emergency(args ...any)
	Emergencyf(format string, args ...any)
	ChangeLevel(level Level)
}

type logger struct {
	level      Level
	normalOut  io.Writer
	errorOut   io.Writer
	isTerminal bool
	lock       chan struct{}
}

type logEntry struct {
	Level   Level     `json:"level"`
	Time    time.Time `json:"time"`
	Message any       `json:"message"`
	TraceID string    `json:"trace_id,omitempty"`
	Version string    `json:"faultlineVersion"`
}

func (l *logger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}

	out := l.normalOut
	if level >= ERROR {
		out = l.errorOut
	}

	entry := logEntry{
		Level:   level,
		Time:    time.Now(),
		Version: version.Framework,
	}

	traceID, filteredArgs := extractTraceIDAndFilterArgs(args)
	entry.TraceID = traceID

	switch {
	case len(filteredArgs) == 1 && format == "":
		entry.Message = filteredArgs[0]
	case len(filteredArgs) != 1 && format == "":
		entry.Message = filteredArgs
	case format != "":
		entry.Message = fmt.Sprintf(format, filteredArgs...)
	}

	if l.isTerminal {
		l.prettyPrint(&entry, out)
	} else {
		_ = json.NewEncoder(out).Encode(entry)
	}
}

func (l *logger) Debug(args ...any) {
	l.logf(DEBUG, "", args...)
}

func (l *logger) Debugf(format string, args ...any) {
	l.logf(DEBUG, format, args...)
}

func (l *logger) Info(args ...any) {
	l.logf(INFO, "", args...)
}

func (l *logger) Infof(format string, args ...any) {
	l.logf(INFO, format, args...)
}

func (l *logger) Notice(args ...any) {
	l.logf(NOTICE, "", args...)
}

func (l *logger) Noticef(format string, args ...any) {
	l.logf(NOTICE, format, args...)
}

func (l *logger) Warn(args ...any) {
	l.logf(WARN, "", args...)
}

func (l *logger) Warnf(format string, args ...any) {
	l.logf(WARN, format, args...)
}

func (l *logger) Error(args ...any) {
	l.logf(ERROR, "", args...)
}

func (l *logger) Errorf(format string, args ...any) {
	l.logf(ERROR, format, args...)
}

func (l *logger) Critical(args ...any) {
	l.logf(CRITICAL, "", args...)
}

func (l *logger) Criticalf(format string, args ...any) {
	l.logf(CRITICAL, format, args...)
}

func (l *logger) Alert(args ...any) {
	l.logf(ALERT, "", args...)
}

func (l *logger) Alertf(format string, args ...any) {
	l.logf(ALERT, format, args...)
}

func (l *logger) Emergency(args ...any) {
	l.logf(EMERGENCY, "", args...)
}

func (l *logger) Emergencyf(format string, args ...any) {
	l.logf(EMERGENCY, format, args...)
}

func (l *logger) ChangeLevel(level Level) {
	l.level = level
}

func (l *logger) prettyPrint(e *logEntry, out io.Writer) {
	// Note: we need to lock the pretty print as printing to standard output is not concurrency safe.
	// A single line of log is achieved in separate statements which otherwise misalign under goroutines.
	l.lock <- struct{}{} // Acquire the channel's lock
	defer func() {
		<-l.lock // Release the channel's token
	}()

	// Pretty printing if the message interface defines a method PrettyPrint else print the log message.
	// This decouples the logger implementation from its usage.
	fmt.Fprintf(out, "\u001B[38;5;%dm%s\u001B[0m [%s]", e.Level.color(), e.Level.String()[0:4], e.Time.Format(time.TimeOnly))

	if e.TraceID != "" {
		fmt.Fprintf(out, " \u001B[38;5;8m%s\u001B[0m", e.TraceID)
	}

	fmt.Fprint(out, " ")

	if fn, ok := e.Message.(PrettyPrint); ok {
		fn.PrettyPrint(out)
	} else {
		fmt.Fprintf(out, "%v\n", e.Message)
	}
}

// NewLogger creates a new logger instance with the specified logging level.
func NewLogger(level Level) Logger {
	l := &logger{
		normalOut: os.Stdout,
		errorOut:  os.Stderr,
		lock:      make(chan struct{}, 1),
	}

	l.level = level

	l.isTerminal = checkIfTerminal(l.normalOut)

	return l
}

// NewFileLogger creates a new logger instance with logging to a file.
func NewFileLogger(path string) Logger {
	l := &logger{
		normalOut: io.Discard,
		errorOut:  io.Discard,
		lock:      make(chan struct{}, 1),
	}

	if path == "" {
		return l
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return l
	}

	l.normalOut = f
	l.errorOut = f

	return l
}

func checkIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return term.IsTerminal(int(v.Fd()))
	default:
		return false
	}
}

// Log emits args on l at the given severity. It exists for callers that
// resolve the severity at runtime, such as the error reporting pipeline.
func Log(l Logger, level Level, args ...any) {
	if l == nil {
		return
	}

	switch level {
	case DEBUG:
		l.Debug(args...)
	case INFO:
		l.Info(args...)
	case NOTICE:
		l.Notice(args...)
	case WARN:
		l.Warn(args...)
	case ERROR:
		l.Error(args...)
	case CRITICAL:
		l.Critical(args...)
	case ALERT:
		l.Alert(args...)
	case EMERGENCY:
		l.Emergency(args...)
	default:
		l.Error(args...)
	}
}

// extractTraceIDAndFilterArgs scans log arguments for a trace ID map and
// returns the extracted trace ID (if found) and a filtered list of log arguments
// excluding the trace metadata.
func extractTraceIDAndFilterArgs(args []any) (traceID string, filtered []any) {
	filtered = make([]any, 0, len(args))

	for _, arg := range args {
		if m, ok := arg.(map[string]any); ok {
			if tid, exists := m["__trace_id__"].(string); exists && traceID == "" {
				traceID = tid

				continue
			}
		}

		filtered = append(filtered, arg)
	}

	return traceID, filtered
}
