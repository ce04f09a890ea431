// Package logging provides the leveled logger used by the rbkv tools.
// Library packages never log; they return errors to their callers.
//
// Log format: YYYY/MM/DD HH:MM:SS LEVEL [component] message
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cockroachdb/errors"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts the level names case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info", "":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}
	return LevelInfo, errors.Newf("logging: unknown level %q", s)
}

type Logger interface {
	Error(msg string)
	Errorf(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Info(msg string)
	Infof(format string, args ...any)
	Debug(msg string)
	Debugf(format string, args ...any)
}

type defaultLogger struct {
	l         *log.Logger
	level     Level
	component string
}

// New returns a logger writing lines at or above level to w, tagged with
// component.
func New(w io.Writer, level Level, component string) Logger {
	return &defaultLogger{
		l:         log.New(w, "", log.LstdFlags),
		level:     level,
		component: component,
	}
}

func (d *defaultLogger) logf(level Level, format string, args ...any) {
	if level > d.level {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	d.l.Printf("%s [%s] %s", level, d.component, msg)
}

func (d *defaultLogger) Error(msg string)                  { d.logf(LevelError, "%s", msg) }
func (d *defaultLogger) Errorf(format string, args ...any) { d.logf(LevelError, format, args...) }
func (d *defaultLogger) Warn(msg string)                   { d.logf(LevelWarn, "%s", msg) }
func (d *defaultLogger) Warnf(format string, args ...any)  { d.logf(LevelWarn, format, args...) }
func (d *defaultLogger) Info(msg string)                   { d.logf(LevelInfo, "%s", msg) }
func (d *defaultLogger) Infof(format string, args ...any)  { d.logf(LevelInfo, format, args...) }
func (d *defaultLogger) Debug(msg string)                  { d.logf(LevelDebug, "%s", msg) }
func (d *defaultLogger) Debugf(format string, args ...any) { d.logf(LevelDebug, format, args...) }

type discard struct{}

// Discard drops every message.
var Discard Logger = discard{}

func (discard) Error(string)          {}
func (discard) Errorf(string, ...any) {}
func (discard) Warn(string)           {}
func (discard) Warnf(string, ...any)  {}
func (discard) Info(string)           {}
func (discard) Infof(string, ...any)  {}
func (discard) Debug(string)          {}
func (discard) Debugf(string, ...any) {}
