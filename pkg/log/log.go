// package log provides a simple logger with leveled log messages.
//
//   - DebugLevel (highest verbosity)
//   - InfoLevel (default, debug messages suppressed)
//   - WarningLevel
//   - ErrorLevel (lowest verbosity)
//
// Output is written to the default logger, which writes to stderr
// unless redirected with SetOutput.
package log

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"
)

type level int32

const (
	DebugLevel   level = iota // DebugLevel logs all messages
	InfoLevel                 // InfoLevel logs warning messages and above
	WarningLevel              // WarningLevel logs warning messages and above
	ErrorLevel                // ErrorLevel only logs error messages
)

const (
	tagDebug   = "DEBU"
	tagWarning = "WARN"
	tagError   = "ERRO"
)

var currentLevel int32

func init() {
	currentLevel = int32(InfoLevel)
}

// SetLevel sets the logging level.  Available options: DebugLevel, InfoLevel,
// WarningLevel, ErrorLevel.
func SetLevel(lv level) {
	atomic.StoreInt32(&currentLevel, int32(lv))
}

func SetLevelFromString(levelName string) error {
	switch levelName {
	case "debug":
		SetLevel(DebugLevel)
	case "info":
		SetLevel(InfoLevel)
	case "warning":
		SetLevel(WarningLevel)
	case "error":
		SetLevel(ErrorLevel)
	default:
		return fmt.Errorf("invalid logging level %s", levelName)
	}
	return nil
}

// SetOutput redirects the default logger.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetDate controls whether messages are prefixed with date and time.
func SetDate(enable bool) {
	if enable {
		log.SetFlags(log.LstdFlags)
	} else {
		log.SetFlags(0)
	}
}

func isEnabled(lv level) bool {
	return level(atomic.LoadInt32(&currentLevel)) <= lv
}

func Debug(format string, v ...interface{}) {
	if isEnabled(DebugLevel) {
		log.Printf("["+tagDebug+"] "+format, v...)
	}
}

func Warning(format string, v ...interface{}) {
	if isEnabled(WarningLevel) {
		log.Printf("["+tagWarning+"] "+format, v...)
	}
}

func Error(format string, v ...interface{}) {
	if isEnabled(ErrorLevel) {
		log.Printf("["+tagError+"] "+format, v...)
	}
}
