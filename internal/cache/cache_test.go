package cache

import (
	"context"
	"testing"
)

func TestInMemCacheRoundTrip(t *testing.T) {
	c := NewInMemCache()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set(ctx, "k", "v")
	v, ok := c.Get(ctx, "k")
	if !ok || v != "v" {
		t.Fatalf("got (%q, %v), want (\"v\", true)", v, ok)
	}

	// Unconditional overwrite.
	c.Set(ctx, "k", "v2")
	v, ok = c.Get(ctx, "k")
	if !ok || v != "v2" {
		t.Fatalf("got (%q, %v), want (\"v2\", true)", v, ok)
	}
}

func TestInMemCacheDelete(t *testing.T) {
	c := NewInMemCache()
	ctx := context.Background()

	if existed := c.Delete(ctx, "nope"); existed {
		t.Fatal("delete of missing key should return false")
	}

	c.Set(ctx, "k", "v")
	if existed := c.Delete(ctx, "k"); !existed {
		t.Fatal("delete of present key should return true")
	}
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("key should be gone after delete")
	}
}

func TestHandleSwapPreservesContract(t *testing.T) {
	h := NewHandle()
	ctx := context.Background()

	h.Current().Set(ctx, "a", "1")

	if err := h.SetCache("inmem", ""); err != nil {
		t.Fatalf("set cache: %v", err)
	}

	// A fresh backend after swap: the old value is gone because the
	// handle now hands out a brand new InMemCache, not because the swap
	// corrupted anything in flight.
	if _, ok := h.Current().Get(ctx, "a"); ok {
		t.Fatal("new backend after swap should start empty")
	}

	h.Current().Set(ctx, "b", "2")
	v, ok := h.Current().Get(ctx, "b")
	if !ok || v != "2" {
		t.Fatalf("got (%q, %v), want (\"2\", true)", v, ok)
	}
}

func TestHandleSetCacheInvalidBackend(t *testing.T) {
	h := NewHandle()
	if err := h.SetCache("bogus", ""); err == nil {
		t.Fatal("expected error for invalid backend")
	}
}
