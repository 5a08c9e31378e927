package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// entryExt is the suffix of every entry file under a FileCache root.
const entryExt = ".entry"

// FileCache persists entries on disk so query results survive between CLI
// runs. Entries live at <dir>/<h[:2]>/<h[2:]>.entry, where h is the SHA-256
// of the key, and each file records its key and expiry next to the data.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache opens a cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// DefaultDir returns the per-user cache directory for geograph.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "geograph"), nil
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

type fileEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get returns the entry stored under key. Corrupt, expired or foreign
// entries are removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	path := c.path(key)
	entry, err := readEntry(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		var perr *fs.PathError
		if errors.As(err, &perr) {
			return nil, false, err
		}
		_ = os.Remove(path)
		return nil, false, nil
	}
	if entry.Key != key || entry.expired(c.now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set writes the entry to a temporary file in its shard and renames it into
// place, so readers never observe a partial entry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		entry.ExpiresAt = c.now().Add(ttl)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	shard := filepath.Dir(path)
	if err := os.MkdirAll(shard, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(shard, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(c.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

// Stats summarizes the entries currently on disk.
type Stats struct {
	Entries int
	Expired int
	Bytes   int64
}

// Stats walks the cache root and counts entries.
func (c *FileCache) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	now := c.now()
	err := c.walk(ctx, func(path string, info fs.FileInfo) {
		st.Entries++
		st.Bytes += info.Size()
		if e, err := readEntry(path); err != nil || e.expired(now) {
			st.Expired++
		}
	})
	return st, err
}

// Prune removes expired and unreadable entries and returns how many it removed.
func (c *FileCache) Prune(ctx context.Context) (int, error) {
	removed := 0
	now := c.now()
	err := c.walk(ctx, func(path string, _ fs.FileInfo) {
		if e, err := readEntry(path); err == nil && !e.expired(now) {
			return
		}
		if os.Remove(path) == nil {
			removed++
		}
	})
	return removed, err
}

// Clear removes every entry and empty shard directory and returns how many
// entries it removed. The root itself is kept.
func (c *FileCache) Clear(ctx context.Context) (int, error) {
	removed := 0
	err := c.walk(ctx, func(path string, _ fs.FileInfo) {
		if os.Remove(path) == nil {
			removed++
		}
	})
	if err != nil {
		return removed, err
	}
	shards, _ := os.ReadDir(c.dir)
	for _, s := range shards {
		if s.IsDir() {
			_ = os.Remove(filepath.Join(c.dir, s.Name()))
		}
	}
	return removed, nil
}

// walk calls fn for every entry file under the root.
func (c *FileCache) walk(ctx context.Context, fn func(path string, info fs.FileInfo)) error {
	return filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, entryExt) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		fn(path, info)
		return nil
	})
}

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+entryExt)
}

// readEntry returns a *fs.PathError for I/O failures and a decode error for
// corrupt files.
func readEntry(path string) (fileEntry, error) {
	var e fileEntry
	raw, err := os.ReadFile(path)
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(raw, &e)
	return e, err
}

var _ Cache = (*FileCache)(nil)
