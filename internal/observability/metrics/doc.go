// Package metrics holds the Prometheus business metrics of the summary
// service. HTTP transport metrics live next to the middleware that records
// them; summarizer latency and word-count metrics live in the summarizer
// package.
//
// All metrics are registered with the default Prometheus registry and
// exposed on /metrics.
package metrics
