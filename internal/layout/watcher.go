package layout

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 150 * time.Millisecond

// ErrWatcherClosed indicates use of a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Watcher reports changes to a single layout file. The parent directory is
// watched so that editors which save by renaming are still seen. Bursts of
// events within the debounce window are coalesced into one change.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string
	delay   time.Duration
	timer   *time.Timer

	// Output channels
	changes chan string
	errors  chan error

	// Lifecycle
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher starts watching path. A non-positive delay uses DefaultDebounce.
func NewWatcher(path string, delay time.Duration) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    absPath,
		delay:   delay,
		changes: make(chan string, 1),
		errors:  make(chan error, 10),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes returns the channel of debounced change notifications.
// Each value is the watched path.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Errors returns the error channel.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.changes)
	close(w.errors)

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				// Channel full, drop error
			}
		}
	}
}

// relevant returns true for content changes to the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

// fire emits one change notification unless one is already pending.
func (w *Watcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.changes <- w.path:
	default:
	}
}
