// Package log is a minimal leveled logger in the style the teacher
// repo uses throughout its volume-reading code: a verbosity level plus
// gated fmt.Fprintf calls, rather than a full logging framework. See
// prodos.operator's debug field and readVolume's debug-gated
// fmt.Fprintf(os.Stderr, ...) calls for the idiom this mirrors.
package log

import (
	"fmt"
	"io"
	"os"
)

// Level is a logging verbosity level.
type Level int

const (
	// LevelSilent logs nothing.
	LevelSilent Level = iota
	// LevelInfo logs high-level operations (mkdir, writefile, defrag...).
	LevelInfo
	// LevelDebug additionally logs block-level bookkeeping (bitmap
	// scans, block relocations).
	LevelDebug
)

// Logger is a leveled logger that writes to an io.Writer.
type Logger struct {
	Level Level
	Out   io.Writer
}

// New returns a Logger at the given level, writing to os.Stderr.
func New(level Level) *Logger {
	return &Logger{Level: level, Out: os.Stderr}
}

// Infof logs a message if the level is at least LevelInfo.
func (l *Logger) Infof(format string, a ...interface{}) {
	l.logf(LevelInfo, format, a...)
}

// Debugf logs a message if the level is at least LevelDebug.
func (l *Logger) Debugf(format string, a ...interface{}) {
	l.logf(LevelDebug, format, a...)
}

func (l *Logger) logf(level Level, format string, a ...interface{}) {
	if l == nil || l.Level < level {
		return
	}
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, format+"\n", a...)
}
