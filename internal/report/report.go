// Package report provides the diagnostics channel used by directive
// builders and transforms. Authoring errors and structural warnings are
// keyed by source location so the author can find the offending directive.
package report

import (
	"bytes"
	"fmt"
	"log/slog"
)

// Location identifies where in a source document a diagnostic applies.
type Location struct {
	Doc  string
	Line int
}

func (l Location) String() string {
	if l.Doc == "" {
		return fmt.Sprintf("line %d", l.Line)
	}
	return fmt.Sprintf("%s:%d", l.Doc, l.Line)
}

// Reporter receives diagnostics from builders and transforms. Warnings are
// non-fatal; errors mean the offending directive's output was omitted. The
// build itself continues in both cases.
type Reporter interface {
	Warningf(loc Location, format string, args ...any)
	Errorf(loc Location, format string, args ...any)
}

// LineAt returns the 1-based line number of a byte offset in source.
func LineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

type logReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a Reporter that emits slog records on the given
// logger, or on the default logger when nil.
func NewLogReporter(logger *slog.Logger) Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &logReporter{logger: logger}
}

func (r *logReporter) Warningf(loc Location, format string, args ...any) {
	r.logger.Warn(fmt.Sprintf(format, args...), "doc", loc.Doc, "line", loc.Line)
}

func (r *logReporter) Errorf(loc Location, format string, args ...any) {
	r.logger.Error(fmt.Sprintf(format, args...), "doc", loc.Doc, "line", loc.Line)
}

// Diagnostic is a recorded message with its location, used by Recorder.
type Diagnostic struct {
	Location Location
	Message  string
}

// Recorder is a Reporter that collects diagnostics in memory. Intended for
// tests and for callers that want to inspect warnings after a build.
type Recorder struct {
	Warnings []Diagnostic
	Errors   []Diagnostic
}

// Warningf implements Reporter.
func (r *Recorder) Warningf(loc Location, format string, args ...any) {
	r.Warnings = append(r.Warnings, Diagnostic{Location: loc, Message: fmt.Sprintf(format, args...)})
}

// Errorf implements Reporter.
func (r *Recorder) Errorf(loc Location, format string, args ...any) {
	r.Errors = append(r.Errors, Diagnostic{Location: loc, Message: fmt.Sprintf(format, args...)})
}
