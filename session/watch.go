package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/tokencap/analysis"
)

// watchPollInterval is the fallback polling cadence when fsnotify is
// unavailable.
const watchPollInterval = 500 * time.Millisecond

// WatchFile analyzes path immediately and re-analyzes it on every change,
// invoking fn with each outcome. Runs superseded by a newer change are
// skipped silently. Blocks until ctx is done.
//
// Uses fsnotify for efficient file watching with a polling fallback.
func (s *Session) WatchFile(ctx context.Context, path string, fn func(*analysis.Result, error)) error {
	run := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			fn(nil, err)
			return
		}
		result, err := s.Analyze(string(data))
		if errors.Is(err, ErrSuperseded) {
			return
		}
		fn(result, err)
	}

	run()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return s.watchPolling(ctx, path, run)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file rather than
	// write it in place.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return s.watchPolling(ctx, path, run)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			run()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(nil, werr)
		}
	}
}

// watchPolling re-analyzes on modification-time changes when a watcher
// cannot be created.
func (s *Session) watchPolling(ctx context.Context, path string, run func()) error {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(lastMod) {
				lastMod = mod
				run()
			}
		}
	}
}
