// Package logutil provides the shared logging facade for docs-core.
//
// Logging is built on log/slog with a process-wide logger writing to stderr.
// Debug output is gated on Setup(true) or the DOCSFORGE_DEBUG environment
// variable, so library consumers get quiet output by default.
package logutil
