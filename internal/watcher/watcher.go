// Package watcher monitors a sections directory for partition changes.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/mazo-labs/mazo/internal/assembler"
)

// DefaultDebounce is the quiet period before changes are reported.
const DefaultDebounce = 500 * time.Millisecond

// Config holds watcher configuration.
type Config struct {
	// Dir is the sections directory to watch.
	Dir string
	// Pattern selects partition file names, e.g. "sec_*.json".
	Pattern string
	// Debounce is the quiet period before a batch of changes is
	// reported. Zero means DefaultDebounce.
	Debounce time.Duration
	// Logger receives watch diagnostics.
	Logger *slog.Logger
}

// Watcher reports batches of changed partition files.
type Watcher struct {
	dir      string
	pattern  string
	debounce time.Duration
	logger   *slog.Logger

	// hashes caches the last seen content hash per path so editor
	// saves that do not change bytes are ignored.
	hashes map[string]string
}

// New creates a watcher for the configured sections directory.
func New(cfg Config) *Watcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:      cfg.Dir,
		pattern:  cfg.Pattern,
		debounce: debounce,
		logger:   logger,
		hashes:   make(map[string]string),
	}
}

// Watch blocks until ctx is done, invoking onChange with the sorted batch
// of changed partition paths after each quiet period.
func (w *Watcher) Watch(ctx context.Context, onChange func(changed []string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	// pending is shared with the debounce timer goroutine.
	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
	)

	flush := func() {
		mu.Lock()
		changed := make([]string, 0, len(pending))
		for path := range pending {
			changed = append(changed, path)
		}
		pending = make(map[string]struct{})
		mu.Unlock()

		if len(changed) == 0 {
			return
		}
		sort.Strings(changed)
		onChange(changed)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 && !w.contentChanged(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				delete(w.hashes, event.Name)
			}
			w.logger.Debug("change detected", "file", filepath.Base(event.Name), "op", event.Op.String())

			mu.Lock()
			pending[event.Name] = struct{}{}
			mu.Unlock()

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, flush)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// matches reports whether the event path names a partition file.
func (w *Watcher) matches(path string) bool {
	ok, err := doublestar.Match(w.pattern, filepath.Base(path))
	if err != nil {
		w.logger.Warn("bad watch pattern", "pattern", w.pattern, "error", err)
		return false
	}
	return ok
}

// contentChanged reports whether the file's bytes differ from the last
// seen version. Unreadable files count as changed so a rebuild surfaces
// the error.
func (w *Watcher) contentChanged(path string) bool {
	hash, err := assembler.HashFile(path)
	if err != nil {
		delete(w.hashes, path)
		return true
	}
	if prev, ok := w.hashes[path]; ok && prev == hash {
		return false
	}
	w.hashes[path] = hash
	return true
}
