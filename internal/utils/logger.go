// Package utils provides small pieces shared by the matcher, walker and app
package utils

import "path/filepath"

// Logger defines the logging interface the internal packages depend on
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger is a logger implementation that does nothing
type NoopLogger struct{}

func (l NoopLogger) Debug(format string, args ...interface{}) {}
func (l NoopLogger) Info(format string, args ...interface{})  {}
func (l NoopLogger) Warn(format string, args ...interface{})  {}
func (l NoopLogger) Error(format string, args ...interface{}) {}

// OrNoop returns logger, or a NoopLogger when logger is nil
func OrNoop(logger Logger) Logger {
	if logger == nil {
		return NoopLogger{}
	}
	return logger
}

// DirectoryLabel returns the display name of an absolute directory path
// with a trailing slash, e.g. "/work/project" -> "project/".
// The filesystem root renders as a single "/".
func DirectoryLabel(absPath string) string {
	base := filepath.Base(absPath)
	if base == string(filepath.Separator) || base == "." {
		base = ""
	}
	return base + "/"
}
