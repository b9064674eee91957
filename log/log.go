// Package log provides structured logging with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/filesystem"
	"github.com/stackcalc/stackcalc/key"
	"github.com/stackcalc/stackcalc/where"
)

// Fields is a set of structured values attached to a log entry.
type Fields = logrus.Fields

// enabled indicates whether log emissions reach the backend.
var enabled bool

// Setup opens today's log file and configures format and level from the global configuration.
// When logging is disabled every emission is silently discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Enabled reports whether Setup activated the backend.
func Enabled() bool {
	return enabled
}

// With returns an entry carrying fields, or nil when logging is disabled.
// The returned entry's methods are safe to call on nil through the helpers below.
func With(fields Fields) *Entry {
	if !enabled {
		return nil
	}
	return &Entry{logrus.WithFields(fields)}
}

// Entry wraps a logrus entry so a disabled logger can hand out nil.
type Entry struct {
	e *logrus.Entry
}

func (e *Entry) Debug(args ...any) {
	if e != nil {
		e.e.Debug(args...)
	}
}

func (e *Entry) Warn(args ...any) {
	if e != nil {
		e.e.Warn(args...)
	}
}

func (e *Entry) Error(args ...any) {
	if e != nil {
		e.e.Error(args...)
	}
}

// Error logs at error level when logging is enabled.
func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}
