// Package logging provides structured logging utilities shared by all
// cluster-assessment components.
//
// It wraps the standard library slog package with project defaults: JSON
// records to stderr, module and version context on every record, LOG_LEVEL
// environment-based level configuration, and source location tracking for
// debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("assess", version)
//	    slog.Info("starting", "cluster", clusterID)
//	}
//
// Setting an explicit log level (e.g. from a CLI flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("assess", version, "debug")
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given; it defaults to INFO.
package logging
