// Package hasher computes content hashes so tags can follow a file when it
// is moved or renamed.
package hasher

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/nonibytes/filetag/filetag"
)

const chunkSize = 1 << 20

// Cache stores hashes keyed by path and validated by size and mtime.
// *filetag.Store implements it.
type Cache interface {
	CachedHash(ctx context.Context, path string, size, mtimeSecs int64) (string, bool, error)
	PutHashCache(ctx context.Context, path string, size, mtimeSecs int64, hash string) error
}

type Options struct {
	// Workers bounds concurrent hashing in HashAll; <= 0 picks max(2, NumCPU-1)
	Workers int
	Log     logrus.FieldLogger
}

type Hasher struct {
	cache   Cache
	workers int
	log     logrus.FieldLogger
}

// New returns a Hasher. cache may be nil to always hash from disk.
func New(cache Cache, opts Options) *Hasher {
	if opts.Workers <= 0 {
		opts.Workers = max(2, runtime.NumCPU()-1)
	}
	if opts.Log == nil {
		opts.Log = filetag.NopLogger()
	}
	return &Hasher{cache: cache, workers: opts.Workers, log: opts.Log}
}

// Hash returns the lowercase hex MD5 of the file at path
func (h *Hasher) Hash(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", filetag.PathError(path, "stat", err)
	}
	if !info.Mode().IsRegular() {
		return "", &filetag.Error{Kind: filetag.ErrInvalid, Message: "not a regular file", Path: path}
	}
	size, mtime := info.Size(), info.ModTime().Unix()
	log := h.log.WithField("path", path)

	if h.cache != nil {
		sum, ok, err := h.cache.CachedHash(ctx, path, size, mtime)
		if err != nil {
			log.WithError(err).Warn("hash cache lookup failed")
		} else if ok {
			return sum, nil
		}
	}

	sum, err := hashFile(ctx, path)
	if err != nil {
		return "", err
	}

	if h.cache != nil {
		if err := h.cache.PutHashCache(ctx, path, size, mtime, sum); err != nil {
			log.WithError(err).Warn("hash cache update failed")
		}
	}
	log.WithField("hash", sum).Debug("hashed")
	return sum, nil
}

// HashAll hashes paths concurrently. The first failure cancels the rest.
func (h *Hasher) HashAll(ctx context.Context, paths []string) (map[string]string, error) {
	out := make(map[string]string, len(paths))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)
	for _, p := range paths {
		g.Go(func() error {
			sum, err := h.Hash(gctx, p)
			if err != nil {
				return err
			}
			mu.Lock()
			out[p] = sum
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func hashFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", filetag.PathError(path, "open", err)
	}
	defer f.Close()

	sum := md5.New()
	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := f.Read(buf)
		if n > 0 {
			sum.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", filetag.PathError(path, "read", err)
		}
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}
