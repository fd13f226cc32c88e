package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// newTestCache returns a cache whose clock the test controls
func newTestCache(t *testing.T, ttl time.Duration) (*FileCache, *time.Time) {
	t.Helper()
	c, err := NewFileCache(t.TempDir(), ttl)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestFileCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	key := "http://localhost:8080/api/train.php?train_no=12951"
	value := []byte(`{"trainName": "Rajdhani"}`)

	if err := c.Set(key, value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if string(got) != string(value) {
		t.Errorf("Get() = %q, want %q", got, value)
	}
}

func TestFileCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() returned true for missing key")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	c, now := newTestCache(t, time.Minute)

	key := "train_no=1"
	if err := c.Set(key, []byte("x")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	*now = now.Add(59 * time.Second)
	if _, ok := c.Get(key); !ok {
		t.Error("Get() returned false before TTL elapsed")
	}

	*now = now.Add(2 * time.Second)
	if _, ok := c.Get(key); ok {
		t.Error("Get() returned true after TTL elapsed")
	}

	// expired entry is removed from disk
	if _, err := os.Stat(c.path(key)); !os.IsNotExist(err) {
		t.Error("expired entry still on disk")
	}
}

func TestFileCache_CorruptEntryRemoved(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	p := c.path("broken")
	if err := os.WriteFile(p, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get("broken"); ok {
		t.Error("Get() returned true for corrupt entry")
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("corrupt entry still on disk")
	}
}

func TestFileCache_KeysDoNotCollide(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	if err := c.Set("train_no=1", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := c.Set("train_no=2", []byte("two")); err != nil {
		t.Fatal(err)
	}

	one, ok1 := c.Get("train_no=1")
	two, ok2 := c.Get("train_no=2")
	if !ok1 || !ok2 {
		t.Fatal("failed to retrieve one or both keys")
	}
	if string(one) != "one" || string(two) != "two" {
		t.Errorf("got %q and %q", one, two)
	}
}

func TestFileCache_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	c, err := NewFileCache(dir, time.Minute)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory not created: %v", err)
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}
}

func TestDefaultCacheDir_XDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	if got := DefaultCacheDir(); got != filepath.Join("/tmp/xdg", "trainfinder") {
		t.Errorf("DefaultCacheDir() = %q", got)
	}
}

func TestFileCache_Clear(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(k, []byte(k)); err != nil {
			t.Fatal(err)
		}
	}
	// foreign files are left alone
	other := filepath.Join(c.Dir(), "README")
	if err := os.WriteFile(other, []byte("keep"), 0600); err != nil {
		t.Fatal(err)
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() removed %d, want 3", n)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived Clear()")
	}
	if _, err := os.Stat(other); err != nil {
		t.Error("Clear() removed a non-entry file")
	}
}

func TestFileCache_Cleanup(t *testing.T) {
	c, now := newTestCache(t, time.Minute)

	for _, k := range []string{"old1", "old2"} {
		if err := c.Set(k, []byte("old")); err != nil {
			t.Fatal(err)
		}
	}

	*now = now.Add(90 * time.Second)
	if err := c.Set("fresh", []byte("fresh")); err != nil {
		t.Fatal(err)
	}

	n, err := c.Cleanup()
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Cleanup() removed %d, want 2", n)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry removed by Cleanup()")
	}
}

func TestFileCache_CleanupEmpty(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	n, err := c.Cleanup()
	if err != nil || n != 0 {
		t.Errorf("Cleanup() = %d, %v on empty cache", n, err)
	}
}
