package logging

import (
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

var logger = newLogger(io.Discard, log.InfoLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		ReportCaller:    true,
		CallerOffset:    1,
		Prefix:          "sftune",
	})
}

// ParseLevel maps "debug", "info", "warn" and "error" to a level. Anything
// else falls back to info.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SetupLogging configures logging.
// If filename is empty, logging is disabled: the terminal belongs to the UI.
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string, level string) (cleanup func(), err error) {
	lvl := ParseLevel(level)
	if filename == "" {
		logger = newLogger(io.Discard, lvl)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	logger = newLogger(f, lvl)

	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, err
	}

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// SetOutput redirects logging, mainly for tests.
func SetOutput(w io.Writer, level string) {
	logger = newLogger(w, ParseLevel(level))
}

// IsDebugMode reports whether debug output is enabled.
func IsDebugMode() bool {
	return logger.GetLevel() <= log.DebugLevel
}

func Debugf(format string, args ...any) { logger.Debugf(format, args...) }

func Infof(format string, args ...any) { logger.Infof(format, args...) }

func Warnf(format string, args ...any) { logger.Warnf(format, args...) }

func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
