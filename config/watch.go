package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"commandsite/debounce"
	"commandsite/log"

	"github.com/fsnotify/fsnotify"
)

// settleDelay lets an editor finish writing before the file is re-read.
const settleDelay = 50 * time.Millisecond

// Watcher reports theme preference changes made to the config file while the
// program runs. It stands in for the platform's colour scheme change event.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan ThemePreference
	reloads chan struct{}
	settle  *debounce.Debouncer
	last    ThemePreference

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher watches the directory holding path so that editors which replace
// the file on save are still seen.
func NewWatcher(path string, initial ThemePreference) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	w := &Watcher{
		path:    filepath.Clean(path),
		watcher: fw,
		changes: make(chan ThemePreference, 1),
		reloads: make(chan struct{}, 1),
		last:    initial,
	}
	w.settle = debounce.New(settleDelay, func() {
		select {
		case w.reloads <- struct{}{}:
		default:
		}
	})
	return w, nil
}

// Changes delivers each new theme preference. The channel is closed when the
// watcher stops.
func (w *Watcher) Changes() <-chan ThemePreference {
	return w.changes
}

// Start processes file events until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer close(w.changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					w.settle.Trigger()
				}
			case <-w.reloads:
				w.reload(ctx)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.WarningLog.Printf("config watcher: %v", err)
			}
		}
	}()
}

func (w *Watcher) reload(ctx context.Context) {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		log.WarningLog.Printf("config watcher: %v", err)
		return
	}
	if cfg.UI.Theme == w.last {
		return
	}
	w.last = cfg.UI.Theme
	select {
	case w.changes <- cfg.UI.Theme:
	case <-ctx.Done():
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.settle.Cancel()
	if w.cancel != nil {
		w.cancel()
	}
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
