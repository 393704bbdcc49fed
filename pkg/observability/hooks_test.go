package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Survey hooks
	s := NoopSurveyHooks{}
	s.OnRecordStart(ctx, "sharp")
	s.OnRecordDone(ctx, "sharp", "included", time.Second)
	s.OnEnrichError(ctx, "sharp", "prebuilds", nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "npm")
	c.OnCacheMiss(ctx, "github")
	c.OnCacheSet(ctx, "npm", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "api.npmjs.org", "/downloads/point/last-month/sharp")
	h.OnResponse(ctx, "GET", "api.npmjs.org", "/downloads/point/last-month/sharp", 200, time.Second)
	h.OnError(ctx, "GET", "api.npmjs.org", "/downloads/point/last-month/sharp", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Survey().(NoopSurveyHooks); !ok {
		t.Error("Survey() should return NoopSurveyHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customSurvey := &testSurveyHooks{}
	SetSurveyHooks(customSurvey)
	if Survey() != customSurvey {
		t.Error("SetSurveyHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Survey().(NoopSurveyHooks); !ok {
		t.Error("Reset() should restore NoopSurveyHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSurveyHooks{}
	SetSurveyHooks(custom)

	// Setting nil should be ignored
	SetSurveyHooks(nil)

	if Survey() != custom {
		t.Error("SetSurveyHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSurveyHooks struct{ NoopSurveyHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
