package utils

import (
	"log"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

var currentLevel = levelInfo

// SetLogLevel configures the minimum level for the leveled helpers below.
// When debug is true the level is forced to debug regardless of name.
func SetLogLevel(level string, debug bool) {
	if debug {
		currentLevel = levelDebug
		return
	}
	switch strings.ToLower(level) {
	case "debug":
		currentLevel = levelDebug
	case "info":
		currentLevel = levelInfo
	case "warning", "warn":
		currentLevel = levelWarn
	case "error", "critical":
		currentLevel = levelError
	default:
		currentLevel = levelInfo
	}
}

// DebugEnabled reports whether debug logging is active, for callers that
// need to skip expensive log-only computation.
func DebugEnabled() bool {
	return currentLevel <= levelDebug
}

func Debugf(format string, v ...interface{}) {
	if currentLevel <= levelDebug {
		log.Printf("DEBUG "+format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	if currentLevel <= levelInfo {
		log.Printf("INFO "+format, v...)
	}
}

func Warnf(format string, v ...interface{}) {
	if currentLevel <= levelWarn {
		log.Printf("WARN "+format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if currentLevel <= levelError {
		log.Printf("ERROR "+format, v...)
	}
}

// CloseLogger closes the rotating log file opened in main.
func CloseLogger(logger *lumberjack.Logger) {
	if logger == nil {
		return
	}
	if err := logger.Close(); err != nil {
		log.Printf("failed to close logger: %v", err)
	}
}
