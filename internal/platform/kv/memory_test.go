package kv

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()
	val, ok, err := m.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected missing key, got %q", val)
	}
}

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || val != "v1" {
		t.Fatalf("Get = (%q, %v, %v)", val, ok, err)
	}

	// Overwrite
	if err := m.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, _, _ = m.Get(ctx, "k")
	if val != "v2" {
		t.Fatalf("expected overwrite, got %q", val)
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, "shared", "value")
		}()
		go func() {
			defer wg.Done()
			_, _, _ = m.Get(ctx, "shared")
		}()
	}
	wg.Wait()
}
