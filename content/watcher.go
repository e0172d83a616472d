package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow suppresses the duplicate events editors emit when they
// write a file (truncate then write, or write then rename into place).
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to asset files under the watched roots,
// including subdirectories. Directories created while watching are picked
// up automatically.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given root directories, recursively, for asset
// changes.
func NewWatcher(roots ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, root := range roots {
		if err := addTree(fsw, root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:     fsw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// addTree registers root and every directory below it.
func addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return fsw.Add(path)
	})
}

// Close stops the watcher. Safe to call more than once. The Events and
// Errors channels close once the watch goroutine has drained out.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	// run owns the outbound channels: they close here, after the loop has
	// exited, so Close can never race a send in handle.
	defer close(w.Errors)
	defer close(w.Events)

	lastSent := make(map[string]time.Time)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event, lastSent)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event, lastSent map[string]time.Time) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	// New subdirectories join the watch so assets dropped into them are
	// seen. Add failures mean the directory vanished again; ignore them.
	if event.Op&fsnotify.Create != 0 {
		if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
			_ = w.fsw.Add(event.Name)
			return
		}
	}

	if KindOf(event.Name) == KindUnknown {
		return
	}
	now := time.Now()
	if t, ok := lastSent[event.Name]; ok && now.Sub(t) < debounceWindow {
		return
	}
	lastSent[event.Name] = now

	select {
	case w.Events <- event.Name:
	case <-w.closeCh:
	}
}
