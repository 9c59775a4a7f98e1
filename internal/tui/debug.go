package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// debugLogger appends timestamped lines to the file named by
// ASSETGRID_TUI_DEBUG_LOG. The zero value discards everything.
type debugLogger string

func newDebugLogger() debugLogger {
	return debugLogger(strings.TrimSpace(os.Getenv("ASSETGRID_TUI_DEBUG_LOG")))
}

func (d debugLogger) logf(format string, args ...any) {
	if d == "" {
		return
	}
	f, err := os.OpenFile(string(d), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
