// Package observability groups the logging, metrics and tracing support of
// the summary service.
//
// Subpackages:
//   - logging: slog logger construction and request-scoped loggers
//   - metrics: Prometheus business metrics (requests by outcome, history size)
//   - tracing: OpenTelemetry provider setup and HTTP middleware
package observability
