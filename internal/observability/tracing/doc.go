// Package tracing integrates OpenTelemetry tracing.
//
// Setup installs an SDK tracer provider and the W3C trace-context propagator.
// No exporter is configured; spans exist so that trace IDs can be propagated
// from callers, echoed in the X-Trace-Id response header and written to logs.
// Without Setup the global no-op provider is used and trace IDs are empty.
//
//	shutdown := tracing.Setup("summary-api", version)
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.GetTracer().Start(ctx, "summary.Process")
//	defer span.End()
package tracing
