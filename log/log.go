// Package log provides the structured logging infrastructure with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/framecast/framecast/filesystem"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// enabled indicates the logging state for the active application instance.
var enabled bool

// Setup initializes the logging subsystem: file handle, optional stderr mirror, formatting and level.
// If neither file logging nor the stderr mirror is enabled, all subsequent log emissions are discarded.
func Setup() error {
	var writers []io.Writer

	if viper.GetBool(key.LogsWrite) {
		dir := where.Logs()
		if dir == "" {
			return errors.New("log directory path is empty")
		}

		path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

		f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
	}

	if viper.GetBool(key.LogsStderr) {
		writers = append(writers, os.Stderr)
	}

	enabled = len(writers) > 0
	if !enabled {
		return nil
	}

	logrus.SetOutput(io.MultiWriter(writers...))

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Enabled reports whether log emissions reach any output.
func Enabled() bool {
	return enabled
}

// Fields is an alias kept so callers do not import logrus directly.
type Fields = logrus.Fields

// WithFields returns an entry carrying structured context; it is discarded when logging is off.
func WithFields(fields Fields) *logrus.Entry {
	if !enabled {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return logrus.NewEntry(l).WithFields(fields)
	}
	return logrus.WithFields(fields)
}

// Severity-specific emissions - these proxy messages to the configured backend when logging is enabled.

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
