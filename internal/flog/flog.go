package flog

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level controls which messages are emitted. Messages below the
// configured level are dropped.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	level  atomic.Int32
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	level.Store(int32(LevelInfo))
}

// ParseLevel converts a config string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level: %q", s)
}

// SetLevel sets the global log level.
func SetLevel(l Level) {
	level.Store(int32(l))
}

// SetOutput redirects log output, e.g. to a file from config.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func logf(l Level, prefix, format string, v ...any) {
	if int32(l) < level.Load() {
		return
	}
	logger.Output(3, prefix+fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...any) { logf(LevelDebug, "DEBUG ", format, v...) }
func Infof(format string, v ...any)  { logf(LevelInfo, "INFO  ", format, v...) }
func Warnf(format string, v ...any)  { logf(LevelWarn, "WARN  ", format, v...) }
func Errorf(format string, v ...any) { logf(LevelError, "ERROR ", format, v...) }

// Fatalf logs at error level and exits.
func Fatalf(format string, v ...any) {
	logf(LevelError, "FATAL ", format, v...)
	os.Exit(1)
}
