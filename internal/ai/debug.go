package ai

import "sync/atomic"

// debugLoggingEnabled gates per-enemy decision logging.
// Checked on every enemy every tick, so it is an atomic flag rather than a log level lookup.
// Set via EnableDebugLogging() from main based on config debug.ai_logging.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables per-enemy decision logging.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if per-enemy decision logging is enabled.
// Guard expensive attributes with it:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("enemy decision", "enemy", e.String())
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
