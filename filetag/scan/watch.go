package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/filetag/match"
)

// DefaultDebounce is how long Watch waits for a burst of events to settle
const DefaultDebounce = 250 * time.Millisecond

// Watch reloads dir whenever it or its sidecar folder changes and passes the
// fresh records to onChange. It blocks until ctx is done.
func Watch(ctx context.Context, dir string, opts Options, debounce time.Duration, onChange func([]match.FileRecord)) error {
	opts = opts.withDefaults()
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filetag.PathError(dir, "resolve directory", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return filetag.Wrap(filetag.ErrIO, "create watcher", err)
	}
	defer w.Close()

	if err := w.Add(abs); err != nil {
		return filetag.PathError(abs, "watch directory", err)
	}
	sidecar := filepath.Join(abs, opts.SidecarDir)
	if fi, err := os.Stat(sidecar); err == nil && fi.IsDir() {
		if err := w.Add(sidecar); err != nil {
			opts.Log.WithError(err).WithField("dir", sidecar).Warn("cannot watch sidecar folder")
		}
	}

	log := opts.Log.WithField("dir", abs)
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name == sidecar && ev.Has(fsnotify.Create) {
				_ = w.Add(sidecar)
			}
			log.WithField("path", ev.Name).Trace(ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		case <-timer.C:
			records, err := Load(ctx, abs, opts)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				if filetag.IsKind(err, filetag.ErrNotFound) {
					return err
				}
				log.WithError(err).Warn("reload failed")
				continue
			}
			onChange(records)
		}
	}
}
