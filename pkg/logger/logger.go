// Package logger carries the leveled text logger behind domain.Logger.
// Lines are timestamp, level, message, then any key=value pairs.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"learning-resources/internal/domain"
)

// Level orders severities from most to least verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

type textLogger struct {
	min Level
	out *log.Logger
}

// NewLogger builds a logger filtering below the named level. Unknown
// level names fall back to info.
func NewLogger(levelName string) domain.Logger {
	return NewWithWriter(levelName, os.Stdout)
}

// NewWithWriter is NewLogger with an explicit sink.
func NewWithWriter(levelName string, w io.Writer) domain.Logger {
	return &textLogger{
		min: parseLevel(levelName),
		out: log.New(w, "", 0),
	}
}

func (l *textLogger) Info(msg string, fields ...interface{}) {
	l.emit(LevelInfo, msg, fields)
}

func (l *textLogger) Error(msg string, err error, fields ...interface{}) {
	l.emit(LevelError, msg, append([]interface{}{"error", err}, fields...))
}

func (l *textLogger) Debug(msg string, fields ...interface{}) {
	l.emit(LevelDebug, msg, fields)
}

func (l *textLogger) Warn(msg string, fields ...interface{}) {
	l.emit(LevelWarn, msg, fields)
}

func (l *textLogger) emit(level Level, msg string, fields []interface{}) {
	if level < l.min {
		return
	}

	var b strings.Builder
	b.WriteString("[" + time.Now().Format("2006-01-02 15:04:05") + "] ")
	b.WriteString(levelNames[level] + ": " + msg)

	// Fields come in pairs; a trailing odd value is dropped.
	for i := 0; i+1 < len(fields); i += 2 {
		b.WriteString(fmt.Sprintf(" %v=%v", fields[i], fields[i+1]))
	}

	l.out.Println(b.String())
}

func parseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
