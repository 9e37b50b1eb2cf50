package hasher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonibytes/filetag/filetag"
)

type entry struct {
	size, mtime int64
	hash        string
}

type countingCache struct {
	mu   sync.Mutex
	m    map[string]entry
	puts int
	hits int
}

func newCountingCache() *countingCache {
	return &countingCache{m: map[string]entry{}}
}

func (c *countingCache) CachedHash(_ context.Context, path string, size, mtime int64) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[path]
	if !ok || e.size != size || e.mtime != mtime {
		return "", false, nil
	}
	c.hits++
	return e.hash, true, nil
}

func (c *countingCache) PutHashCache(_ context.Context, path string, size, mtime int64, hash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[path] = entry{size, mtime, hash}
	c.puts++
	return nil
}

func TestHashKnownValues(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	abc := filepath.Join(dir, "abc")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	require.NoError(t, os.WriteFile(abc, []byte("abc"), 0o644))

	h := New(nil, Options{})
	sum, err := h.Hash(context.Background(), empty)
	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", sum)

	sum, err = h.Hash(context.Background(), abc)
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", sum)
}

func TestHashLargerThanChunk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big")
	data := make([]byte, chunkSize*2+17)
	for i := range data {
		data[i] = byte(i)
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))

	a, err := New(nil, Options{}).Hash(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, a, 32)

	// same content elsewhere hashes the same
	other := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, os.WriteFile(other, data, 0o644))
	b, err := New(nil, Options{}).Hash(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCacheHitSkipsRehash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	cache := newCountingCache()
	h := New(cache, Options{})
	ctx := context.Background()

	first, err := h.Hash(ctx, path)
	require.NoError(t, err)
	second, err := h.Hash(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, 1, cache.hits)

	// a stale entry with the right key but wrong size is ignored
	info, err := os.Stat(path)
	require.NoError(t, err)
	cache.m[path] = entry{size: 99, mtime: info.ModTime().Unix(), hash: "stale"}
	third, err := h.Hash(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestHashErrors(t *testing.T) {
	dir := t.TempDir()
	h := New(nil, Options{})

	_, err := h.Hash(context.Background(), filepath.Join(dir, "missing"))
	assert.True(t, filetag.IsKind(err, filetag.ErrNotFound), "got %v", err)

	_, err = h.Hash(context.Background(), dir)
	assert.True(t, filetag.IsKind(err, filetag.ErrInvalid), "got %v", err)
}

func TestHashAll(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0o644))
		paths = append(paths, p)
	}

	got, err := New(newCountingCache(), Options{Workers: 2}).HashAll(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "0cc175b9c0f1b6a831c399e269772661", got[paths[0]])

	_, err = New(nil, Options{}).HashAll(context.Background(), append(paths, filepath.Join(dir, "nope")))
	assert.Error(t, err)
}

func TestHashCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(nil, Options{}).Hash(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
