// Package resilience provides fault tolerance patterns for calls to external
// language-model APIs.
//
// The circuitbreaker subpackage wraps github.com/sony/gobreaker with
// per-provider presets (OpenAI, Claude, Ollama). Calls are never retried; an
// open breaker fails fast until its timeout elapses.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.OpenAIAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
package resilience
