// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional and carries no dependency on a specific
// backend. Consumers register hooks at startup and receive events about
// package inspections and outbound registry/API calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Hook interfaces per event category
//   - No-op default implementations
//   - A global registry written once at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetInspectHooks(&myInspectHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Inspect().OnInspectStart(ctx, pkg)
//	// ... fetch and merge ...
//	observability.Inspect().OnInspectComplete(ctx, pkg, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Inspect Hooks
// =============================================================================

// InspectHooks receives events from the package inspector.
type InspectHooks interface {
	// OnInspectStart fires before any request for pkg is issued.
	OnInspectStart(ctx context.Context, pkg string)

	// OnInspectComplete fires once per package. err is non-nil only for
	// fatal failures; degraded lookups are reported through OnDegraded.
	OnInspectComplete(ctx context.Context, pkg string, duration time.Duration, err error)

	// OnDegraded records a sub-fetch that fell back to sentinel values.
	OnDegraded(ctx context.Context, pkg, source string, err error)
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

// NoopInspectHooks is a no-op implementation of InspectHooks.
type NoopInspectHooks struct{}

func (NoopInspectHooks) OnInspectStart(context.Context, string)                            {}
func (NoopInspectHooks) OnInspectComplete(context.Context, string, time.Duration, error) {}
func (NoopInspectHooks) OnDegraded(context.Context, string, string, error)                 {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	inspectHooks InspectHooks = NoopInspectHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetInspectHooks registers custom inspect hooks.
// This should be called once at application startup before any inspection.
func SetInspectHooks(h InspectHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inspectHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Inspect returns the registered inspect hooks.
func Inspect() InspectHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inspectHooks
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
	inspectHooks = NoopInspectHooks{}
	httpHooks = NoopHTTPHooks{}
}
