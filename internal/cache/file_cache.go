// Package cache stores upstream response bodies on disk for a short time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const entryExt = ".json"

// FileCache keeps one file per key, named by the key's SHA-256.
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

type entry struct {
	Key       string    `json:"key"`
	Body      []byte    `json:"body"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFileCache creates dir if needed and returns a cache rooted there
func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, ttl: ttl, now: time.Now}, nil
}

// DefaultCacheDir is $XDG_CACHE_HOME/trainfinder, falling back to
// ~/.cache/trainfinder.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "trainfinder")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "trainfinder-cache")
	}
	return filepath.Join(home, ".cache", "trainfinder")
}

// Dir returns the directory holding the entries
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+entryExt)
}

// Get returns the stored body for key if present and not expired.
// Corrupt or expired entries are removed.
func (c *FileCache) Get(key string) ([]byte, bool) {
	p := c.path(key)
	e, ok := c.read(p)
	if !ok {
		return nil, false
	}
	if e.Key != key || c.now().After(e.ExpiresAt) {
		_ = os.Remove(p)
		return nil, false
	}
	return e.Body, true
}

// Set stores body under key with the cache's TTL
func (c *FileCache) Set(key string, body []byte) error {
	now := c.now()
	data, err := json.Marshal(entry{
		Key:       key,
		Body:      body,
		StoredAt:  now,
		ExpiresAt: now.Add(c.ttl),
	})
	if err != nil {
		return err
	}

	// write to a temp file first so concurrent readers never see a partial entry
	tmp, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path(key))
}

// Clear removes every entry and returns how many were removed
func (c *FileCache) Clear() (int, error) {
	return c.sweep(func(string) bool { return true })
}

// Cleanup removes expired or unreadable entries and returns how many
// were removed
func (c *FileCache) Cleanup() (int, error) {
	now := c.now()
	return c.sweep(func(p string) bool {
		e, ok := c.read(p)
		return !ok || now.After(e.ExpiresAt)
	})
}

func (c *FileCache) sweep(remove func(path string) bool) (int, error) {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), entryExt) {
			continue
		}
		p := filepath.Join(c.dir, f.Name())
		if remove(p) && os.Remove(p) == nil {
			removed++
		}
	}
	return removed, nil
}

func (c *FileCache) read(p string) (entry, bool) {
	// #nosec G304 -- path is a hash inside the cache directory
	data, err := os.ReadFile(p)
	if err != nil {
		return entry{}, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(p)
		return entry{}, false
	}
	return e, true
}
