package memcache

import (
	"context"
	"testing"
	"time"
)

func TestSetGetDelete(t *testing.T) {
	c := New()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "menus"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "menus", []byte(`[]`), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := c.Get(ctx, "menus")
	if err != nil || !ok || string(value) != `[]` {
		t.Fatalf("get: value=%q ok=%v err=%v", value, ok, err)
	}
	if err := c.Delete(ctx, "menus", "missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "menus"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New()
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "preview", []byte(`{}`), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "preview"); !ok {
		t.Fatal("expected hit before expiry")
	}
	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "preview"); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestFlush(t *testing.T) {
	c := New()
	ctx := context.Background()

	c.Set(ctx, "a", []byte("1"), 0)
	c.Set(ctx, "b", []byte("2"), 0)
	if err := c.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", c.Len())
	}
}

func TestGetReturnsCopy(t *testing.T) {
	c := New()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("abc"), 0)
	value, _, _ := c.Get(ctx, "k")
	value[0] = 'x'
	again, _, _ := c.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("cached value mutated: %q", again)
	}
}
