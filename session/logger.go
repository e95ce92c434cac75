package session

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	// debugLogger carries tracelog's own diagnostics, not trace output.
	// It discards everything until debug logging is enabled.
	debugLogger = log.New(io.Discard, "DEBUG ", log.LstdFlags|log.Lshortfile)
)

// EnableDebug sends diagnostics to stderr.
func EnableDebug() {
	EnableDebugWithWriter(os.Stderr)
}

// EnableDebugWithWriter sends diagnostics to w, or to stderr when w is nil.
func EnableDebugWithWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugLogger.SetOutput(w)
}

// DisableDebug discards diagnostics again.
func DisableDebug() {
	debugLogger.SetOutput(io.Discard)
}

// Debugf formats and writes a diagnostic message if debug logging is enabled.
// The reported file and line are those of the caller.
func Debugf(format string, v ...interface{}) {
	debugLogger.Output(2, fmt.Sprintf(format, v...))
}
