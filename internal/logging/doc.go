// Package logging provides concrete implementations of the mxf.Logger interface.
//
// Available implementations:
//   - ZapLogger: Structured logging through go.uber.org/zap (console or JSON encoding)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
