// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module call the registered hooks at interesting points
// (a record reaching a terminal state, a cache hit, an outbound request)
// without depending on any observability backend. The CLI registers
// log-backed hooks under --verbose; anything else (Prometheus, OpenTelemetry)
// can be plugged in the same way.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSurveyHooks(&mySurveyHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Survey().OnRecordStart(ctx, name)
//	// ... classify ...
//	observability.Survey().OnRecordDone(ctx, name, "included", time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Survey Hooks
// =============================================================================

// SurveyHooks receives events from the record classification pipeline.
type SurveyHooks interface {
	// OnRecordStart fires when a record enters the classifier.
	OnRecordStart(ctx context.Context, name string)

	// OnRecordDone fires once per record with its terminal state.
	OnRecordDone(ctx context.Context, name, state string, duration time.Duration)

	// OnEnrichError fires for every soft-failed enrichment call.
	// Stage is "downloads" or "prebuilds".
	OnEnrichError(ctx context.Context, name, stage string, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, namespace string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, namespace string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, namespace string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSurveyHooks is a no-op implementation of SurveyHooks.
type NoopSurveyHooks struct{}

func (NoopSurveyHooks) OnRecordStart(context.Context, string)                        {}
func (NoopSurveyHooks) OnRecordDone(context.Context, string, string, time.Duration) {}
func (NoopSurveyHooks) OnEnrichError(context.Context, string, string, error)        {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	surveyHooks SurveyHooks = NoopSurveyHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetSurveyHooks registers custom survey hooks.
// This should be called once at application startup before any records flow.
func SetSurveyHooks(h SurveyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		surveyHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Survey returns the registered survey hooks.
func Survey() SurveyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return surveyHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	surveyHooks = NoopSurveyHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
