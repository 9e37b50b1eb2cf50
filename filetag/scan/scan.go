package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/filetag/match"
)

// TagSource bulk-loads stored tags by path. *filetag.Store implements it.
type TagSource interface {
	TagsByPaths(ctx context.Context, paths []string) (map[string][]string, error)
}

// Options configures Load
type Options struct {
	// SidecarDir is the per-directory folder holding <name>.json tag files
	SidecarDir string
	// Tags is consulted before sidecars. Sidecars are read for every entry
	// without a stored row, including when Tags is nil.
	Tags TagSource
	Log  logrus.FieldLogger
	// Workers bounds concurrent kind classification; <= 0 uses NumCPU
	Workers int
}

func (o Options) withDefaults() Options {
	if o.SidecarDir == "" {
		o.SidecarDir = filetag.DefaultSidecarDir
	}
	if o.Log == nil {
		o.Log = filetag.NopLogger()
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}

// Load lists the direct, non-hidden children of dir as sorted file records
func Load(ctx context.Context, dir string, opts Options) ([]match.FileRecord, error) {
	opts = opts.withDefaults()

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, filetag.PathError(dir, "resolve directory", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, filetag.PathError(abs, "read directory", err)
	}
	log := opts.Log.WithField("dir", abs)

	entries = slices.DeleteFunc(entries, func(e fs.DirEntry) bool {
		return strings.HasPrefix(e.Name(), ".")
	})

	records := make([]match.FileRecord, len(entries))
	keep := make([]bool, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := buildRecord(abs, e)
			if err != nil {
				// entry vanished between listing and stat
				log.WithError(err).WithField("path", e.Name()).Debug("skipping entry")
				return nil
			}
			records[i] = rec
			keep[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := records[:0]
	for i, r := range records {
		if keep[i] {
			out = append(out, r)
		}
	}

	if err := attachTags(ctx, abs, out, opts, log); err != nil {
		return nil, err
	}

	SortRecords(out)
	log.WithField("entries", len(out)).Debug("directory loaded")
	return out, nil
}

func buildRecord(dir string, e fs.DirEntry) (match.FileRecord, error) {
	info, err := e.Info()
	if err != nil {
		return match.FileRecord{}, err
	}
	path := filepath.Join(dir, e.Name())
	rec := match.FileRecord{
		Path:     path,
		FileName: e.Name(),
		Modified: info.ModTime(),
		Created:  createdTime(info),
		Kind:     ClassifyKind(path, info),
	}
	if rec.Kind != match.KindDirectory {
		rec.SizeBytes = info.Size()
	}
	return rec, nil
}

func attachTags(ctx context.Context, dir string, records []match.FileRecord, opts Options, log logrus.FieldLogger) error {
	var stored map[string][]string
	if opts.Tags != nil {
		paths := make([]string, 0, len(records))
		for _, r := range records {
			if r.Kind != match.KindDirectory {
				paths = append(paths, r.Path)
			}
		}
		var err error
		stored, err = opts.Tags.TagsByPaths(ctx, paths)
		if err != nil {
			return err
		}
	}

	sidecarRoot := filepath.Join(dir, opts.SidecarDir)
	for i := range records {
		r := &records[i]
		if r.Kind == match.KindDirectory {
			continue
		}
		if tags, ok := stored[r.Path]; ok {
			r.Tags = tags
			continue
		}
		r.Tags = readSidecarTags(filepath.Join(sidecarRoot, r.FileName+".json"))
		if len(r.Tags) > 0 {
			log.WithField("path", r.Path).Trace("sidecar tags")
		}
	}
	return nil
}
