package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 150 * time.Millisecond

// Watcher notices cart changes written by other processes that share the
// same storage file. It watches the file's directory, waits for writes to
// settle, re-reads the cart and publishes the new list when it differs from
// the last one seen.
type Watcher struct {
	mu       sync.Mutex
	store    *Store
	path     string
	debounce time.Duration
	log      logging.Logger

	fsw     *fsnotify.Watcher
	updates chan []LineItem
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	last    []byte
}

func NewWatcher(store *Store, storagePath string, debounce time.Duration, l logging.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		store:    store,
		path:     filepath.Clean(storagePath),
		debounce: debounce,
		log:      l,
		updates:  make(chan []LineItem, 1),
	}
}

// Updates delivers the latest cart after an external change. Only the newest
// pending list is kept.
func (w *Watcher) Updates() <-chan []LineItem {
	return w.updates
}

// Start begins watching and returns immediately. A stopped watcher may be
// started again.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.fsw = fsw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.last = w.snapshot(ctx)
	w.running = true

	go w.run(ctx, fsw, w.stopCh, w.doneCh)
	return nil
}

// Stop ends the watch loop and waits for it to exit. Safe to call twice.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	fsw, stopCh, doneCh := w.fsw, w.stopCh, w.doneCh
	w.mu.Unlock()

	close(stopCh)
	<-doneCh
	if err := fsw.Close(); err != nil {
		w.log.Warn(context.Background(), "closing cart watcher", "error", err)
	}
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn(ctx, "cart watcher error", "error", err)
		case <-timer.C:
			w.refresh(ctx)
		}
	}
}

// relevant matches the storage file and its journal siblings (-wal,
// -journal) on write, create or rename.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return strings.HasPrefix(filepath.Clean(ev.Name), w.path)
}

func (w *Watcher) refresh(ctx context.Context) {
	snap := w.snapshot(ctx)

	w.mu.Lock()
	changed := !bytes.Equal(snap, w.last)
	w.last = snap
	w.mu.Unlock()

	if !changed {
		return
	}

	var items []LineItem
	if err := json.Unmarshal(snap, &items); err != nil {
		w.log.Warn(ctx, "cart watcher decode", "error", err)
		return
	}
	w.log.Debug(ctx, "cart changed externally", "lines", len(items))

	select {
	case <-w.updates:
	default:
	}
	w.updates <- items
}

// snapshot is the canonical encoding of the current cart, used for change
// detection.
func (w *Watcher) snapshot(ctx context.Context) []byte {
	b, err := json.Marshal(w.store.Read(ctx))
	if err != nil {
		return nil
	}
	return b
}
