// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Structured logs are diagnostic only: the
// per-item verification lines printed by the verify feature are part of the
// tool's output contract and are written directly to stdout, not through Zap.
//
// # Context Awareness
//
// The report server tags every request with a RayID (Request ID). The
// WithRayID helper extracts the RayID from a Fiber context and attaches it to
// the log entry, ensuring that all logs related to a specific request can be
// correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("verification run started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("handler failed", zap.Error(err))
package logger
