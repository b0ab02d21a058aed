// Package watch reports debounced batches of changes below a content root.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period that closes a batch of changes.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc receives the sorted, de-duplicated paths changed in one batch.
type ChangeFunc func(ctx context.Context, changed []string)

// Watcher watches a directory tree recursively. Directories created while
// running are added to the watch.
type Watcher struct {
	root     string
	debounce time.Duration
	onChange ChangeFunc
	logger   *slog.Logger
	recorder metrics.Recorder
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(w *Watcher) {
		if r != nil {
			w.recorder = r
		}
	}
}

// New creates a watcher for root that calls onChange after each batch.
func New(root string, onChange ChangeFunc, opts ...Option) *Watcher {
	w := &Watcher{
		root:     root,
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done. onChange is invoked from Run's goroutine, so
// batches never overlap; changes arriving meanwhile form the next batch.
func (w *Watcher) Run(ctx context.Context) error {
	info, err := os.Stat(w.root)
	if err != nil || !info.IsDir() {
		return derrors.FileSystemError("content root is not a directory").
			WithContext("root", w.root).
			WithCause(err).
			Build()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = fw.Close() }()

	w.addDirsRecursive(fw, w.root)
	w.logger.Info("Watching content", logfields.Path(w.root))

	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending = map[string]struct{}{}
		fire    = make(chan struct{}, 1)
	)
	trigger := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		pending[path] = struct{}{}
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			select {
			case fire <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fw, ev, trigger)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", logfields.Error(err))
		case <-fire:
			mu.Lock()
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			pending = map[string]struct{}{}
			mu.Unlock()

			if len(changed) == 0 {
				continue
			}
			slices.Sort(changed)
			w.recorder.IncContentChange()
			w.logger.Debug("Content changed", logfields.Count(len(changed)))
			w.onChange(ctx, changed)
		}
	}
}

func (w *Watcher) handleEvent(fw *fsnotify.Watcher, ev fsnotify.Event, trigger func(string)) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Chmod == ev.Op {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			w.addDirsRecursive(fw, ev.Name)
		}
	}
	w.logger.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger(ev.Name)
}

func (w *Watcher) addDirsRecursive(fw *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && vcsDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			w.logger.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

var vcsDirs = map[string]bool{".git": true, ".hg": true, ".svn": true}

// shouldIgnoreEvent returns true for editor temp and OS metadata files.
// Other dot-prefixed files are content like any other.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".#") || base == ".DS_Store" {
		return true
	}

	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasSuffix(base, ".tmp") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	return base == "Thumbs.db" || base == "4913"
}
