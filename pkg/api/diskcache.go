package api

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
)

// DiskCache persists upstream responses between runs, one gzip file per
// request path. It is exposed to the user only as a size/file-count display
// and a manual clear action.
type DiskCache struct {
	dir string
}

type CacheInfo struct {
	SizeBytes int64
	FileCount int
}

func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) filename(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:16])+".json.gz")
}

func (c *DiskCache) Get(key string) ([]byte, bool) {
	f, err := os.Open(c.filename(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, false
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *DiskCache) Put(key string, data []byte) error {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return os.WriteFile(c.filename(key), buf.Bytes(), 0o644)
}

// Info walks the cache directory and sums up file sizes.
func (c *DiskCache) Info() CacheInfo {
	ret := CacheInfo{}
	_ = filepath.Walk(c.dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			//nolint:nilerr // unreadable entries are simply not counted
			return nil
		}
		ret.FileCount++
		ret.SizeBytes += info.Size()
		return nil
	})
	return ret
}

// Clear removes all cached files. The directory itself is kept.
func (c *DiskCache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
