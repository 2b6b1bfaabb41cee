package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnBuildStart(ctx, "demo")
	p.OnBuildComplete(ctx, "demo", 100, time.Second, nil)
	p.OnComputeStart(ctx, "demo", 100)
	p.OnComputeComplete(ctx, "demo", 42, time.Second, nil)
	p.OnRenderStart(ctx, []string{"vtk"})
	p.OnRenderComplete(ctx, []string{"vtk"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "network")
	c.OnCacheMiss(ctx, "mesh")
	c.OnCacheSet(ctx, "artifact", 1024)

	// Store hooks
	s := NoopStoreHooks{}
	s.OnStoreOp(ctx, "save", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testStoreHooks struct{ NoopStoreHooks }
