package tui

import (
	"sync"

	"github.com/mwantia/webterm/log"
)

var (
	debugLog *log.Logger
	debugMu  sync.Mutex
)

// InitDebugLog starts writing debug messages to file. The terminal itself is
// owned by the TUI, so nothing is written to stderr.
func InitDebugLog(file string) {
	debugMu.Lock()
	defer debugMu.Unlock()

	debugLog = log.NewLogger("tui", log.Debug, file, true)
	debugLog.Debug("debug log started")
}

// CloseDebugLog stops debug logging.
func CloseDebugLog() {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugLog != nil {
		debugLog.Debug("debug log ended")
		debugLog = nil
	}
}

// DebugLog writes a message to the debug log if one was initialized.
func DebugLog(format string, args ...any) {
	debugMu.Lock()
	logger := debugLog
	debugMu.Unlock()

	logger.Debug(format, args...)
}
