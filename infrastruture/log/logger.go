// Package logger provides a prefixed, colored logger on top of logrus.
package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/maze-ball/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix is empty")
	ErrNilWriter   = errors.New("logger writer is nil")
)

// Logger writes lines of the form `<time> [PREFIX] [LEVEL] message`.
type Logger struct {
	base *logrus.Logger
}

// New creates a Logger that tags every line with prefix in the given color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{base: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.base.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.base.Warn(msg)
}

// Error logs a failed operation.
func (l *Logger) Error(msg string) {
	l.base.Error(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	levelColor := config.LogInfoColor
	switch e.Level {
	case logrus.WarnLevel:
		levelColor = config.LogWarningColor
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = config.LogErrorColor
	}

	line := fmt.Sprintf("%s %s[%s]%s %s[%s]%s %s\n",
		e.Time.Format(time.RFC3339),
		f.color, f.prefix, config.ColorReset,
		levelColor, strings.ToUpper(e.Level.String()), config.LogColorReset,
		e.Message,
	)
	return []byte(line), nil
}
