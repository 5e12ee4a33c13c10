package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// DebugEnabled returns true if debug mode is enabled via the OT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("OT_DEBUG") != ""
}

// Debugf logs a formatted debug message through the default slog logger only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		slog.Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		slog.Debug(strings.TrimRight(fmt.Sprintln(args...), "\n"))
	}
}
