// Package snapshot caches parsed ratings tables on disk in msgpack form so
// large CSV datasets are not re-parsed on every start.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/EZ-Api/concreteness"
)

// Bump when Payload changes shape.
const schemaVersion uint16 = 1

// Key identifies a dataset by the SHA-256 of its raw bytes.
type Key [sha256.Size]byte

// KeyFor hashes dataset bytes.
func KeyFor(data []byte) Key {
	return sha256.Sum256(data)
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Payload is the on-disk form of a table.
type Payload struct {
	Schema  uint16
	Count   uint32
	Words   []string
	Ratings []float64
}

// Cache stores payloads under a directory. A nil *Cache is a no-op cache.
// Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open returns a cache rooted at $XDG_CACHE_HOME/app (or ~/.cache/app).
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDir(filepath.Join(base, app))
}

// OpenDir returns a cache rooted at dir, creating it if needed.
func OpenDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) snapshotDir() string {
	return filepath.Join(c.dir, "ratings")
}

func (c *Cache) pathFor(key Key) string {
	return filepath.Join(c.snapshotDir(), key.String()+".mp")
}

// Encode converts a table into a payload.
func Encode(table *concreteness.Table) (*Payload, error) {
	entries := table.Entries()
	count, err := safecast.Conv[uint32](len(entries))
	if err != nil {
		return nil, fmt.Errorf("table too large for snapshot: %w", err)
	}
	payload := &Payload{
		Schema:  schemaVersion,
		Count:   count,
		Words:   make([]string, len(entries)),
		Ratings: make([]float64, len(entries)),
	}
	for i, e := range entries {
		payload.Words[i] = e.Word
		payload.Ratings[i] = e.Rating
	}
	return payload, nil
}

// Decode rebuilds a table from a payload.
func Decode(payload *Payload) (*concreteness.Table, error) {
	if payload.Schema != schemaVersion {
		return nil, fmt.Errorf("snapshot schema %d, want %d", payload.Schema, schemaVersion)
	}
	count, err := safecast.Conv[int](payload.Count)
	if err != nil {
		return nil, err
	}
	if len(payload.Words) != count || len(payload.Ratings) != count {
		return nil, fmt.Errorf("snapshot holds %d words and %d ratings, header says %d", len(payload.Words), len(payload.Ratings), count)
	}
	ratings := make(map[string]float64, count)
	for i, w := range payload.Words {
		ratings[w] = payload.Ratings[i]
	}
	return concreteness.NewTable(ratings)
}

// Put writes the table under key, replacing any existing snapshot atomically.
func (c *Cache) Put(key Key, table *concreteness.Table) error {
	if c == nil {
		return nil
	}
	payload, err := Encode(table)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get loads the table stored under key. It reports false without error when
// no snapshot exists.
func (c *Cache) Get(key Key) (*concreteness.Table, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decoding snapshot %s: %w", key, err)
	}
	table, err := Decode(&payload)
	if err != nil {
		return nil, false, fmt.Errorf("snapshot %s: %w", key, err)
	}
	return table, true, nil
}

// DropAll removes every snapshot. Other files under the cache root are left
// alone.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := c.snapshotDir()
	old := dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
