// Package logging provides structured logging for the wesplit screen.
//
// This package wraps a global zap logger with convenience functions for the
// few events the screen produces: lifecycle (opened, closed), state mutations
// and re-renders.
//
// # Log Levels
//
//   - Debug: Every render and the size of the tree produced
//   - Info: Lifecycle events and state mutations
//   - Warn: Rejected input (for example an unknown student)
//   - Error: Startup failures
//
// # Configuration
//
// Logging is silent by default. Set WESPLIT_LOG_LEVEL (or pass a level to
// Initialize) to enable it:
//
//	if err := logging.Initialize("debug", ""); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Output
//
// The interactive screen owns stdout, so log output goes to stderr unless a
// file path is given:
//
//	logging.Initialize("info", "/tmp/wesplit.log")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
