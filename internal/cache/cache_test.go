package cache

import (
	"testing"
	"time"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	if err := c.Set("k", "hello", time.Minute); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}

	got, ok, err := c.Get("k")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit for a just-written key")
	}
	if got != "hello" {
		t.Fatalf("expected %q, got %q", "hello", got)
	}
}

func TestSetOverwritesExistingEntry(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	c.Set("k", 1, time.Minute)
	c.Set("k", 2, time.Minute)

	got, ok, _ := c.Get("k")
	if !ok || got != 2 {
		t.Fatalf("expected overwritten value 2, got %d (hit=%v)", got, ok)
	}
}

func TestExpiredEntryIsAbsentAndRemoved(t *testing.T) {
	c := New[string](time.Hour) // sweep far away; rely on lazy eviction
	defer c.Close()

	c.Set("k", "v", 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok, err := c.Get("k")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if ok {
		t.Fatal("expected expired entry to be treated as absent")
	}
	if n := c.Len(); n != 0 {
		t.Fatalf("expected lazy eviction to remove the entry, %d left", n)
	}
}

func TestDelete(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Set("k", "v", time.Minute)
	if err := c.Delete("k"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	if _, ok, _ := c.Get("k"); ok {
		t.Fatal("expected deleted key to be absent")
	}
}

func TestClear(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}

	if n := c.Len(); n != 0 {
		t.Fatalf("expected empty cache after clear, %d left", n)
	}
}

func TestSweepRemovesExpiredEntries(t *testing.T) {
	c := New[string](10 * time.Millisecond)
	defer c.Close()

	c.Set("short", "v", time.Millisecond)
	c.Set("long", "v", time.Hour)

	// Give the sweep a few cycles without touching the keys via Get.
	time.Sleep(60 * time.Millisecond)

	if n := c.Len(); n != 1 {
		t.Fatalf("expected only the unexpired entry to survive the sweep, have %d", n)
	}
	if _, ok, _ := c.Get("long"); !ok {
		t.Fatal("expected unexpired entry to survive the sweep")
	}
}

func TestCacheUsableAfterClose(t *testing.T) {
	c := New[string](time.Minute)
	c.Close()
	c.Close() // idempotent

	c.Set("k", "v", time.Minute)
	if _, ok, _ := c.Get("k"); !ok {
		t.Fatal("expected cache to stay usable after Close")
	}
}
