package cache

import (
	"testing"
	"time"
)

func TestMemoryPages_SetGet(t *testing.T) {
	c := NewMemoryPages(1*time.Minute, 5*time.Minute)

	c.Set("https://example.com/annonce-123", "<html>page</html>")

	val, found := c.Get("https://example.com/annonce-123")
	if !found {
		t.Fatal("Expected cache hit")
	}
	if val != "<html>page</html>" {
		t.Errorf("Unexpected cached value: %s", val)
	}
}

func TestMemoryPages_Miss(t *testing.T) {
	c := NewMemoryPages(1*time.Minute, 5*time.Minute)

	if _, found := c.Get("https://example.com/missing"); found {
		t.Error("Expected cache miss")
	}
}

func TestMemoryPages_Expiry(t *testing.T) {
	c := NewMemoryPages(10*time.Millisecond, time.Minute)

	c.Set("https://example.com/a", "a")
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("https://example.com/a"); found {
		t.Error("Expected entry to expire")
	}
}

func TestMemoryPages_DeleteAndClear(t *testing.T) {
	c := NewMemoryPages(1*time.Minute, 5*time.Minute)

	c.Set("https://example.com/a", "a")
	c.Set("https://example.com/b", "b")

	c.Delete("https://example.com/a")
	if _, found := c.Get("https://example.com/a"); found {
		t.Error("Expected deleted entry to miss")
	}

	c.Clear()
	if _, found := c.Get("https://example.com/b"); found {
		t.Error("Expected cleared cache to miss")
	}
}

func TestPageKey_DistinctURLs(t *testing.T) {
	a := pageKey("https://example.com/annonce-1")
	b := pageKey("https://example.com/annonce-2")
	if a == b {
		t.Error("Expected distinct keys for distinct URLs")
	}
	if a != pageKey("https://example.com/annonce-1") {
		t.Error("Expected stable keys")
	}
}
