// Package watch monitors the currently open directory and asks the view to
// rescan when its contents change.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"galleray/internal/log"
	"galleray/internal/scan"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one directory at a time using fsnotify. Whenever an image
// file is created, removed, or renamed inside it, a rescan signal is emitted.
type Watcher struct {
	// Channel signalling that the watched directory changed
	rescanChan chan string

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Reports whether a base name belongs to the displayed image set
	accepts func(name string) bool

	// Lock for running state and the watched directory
	mutex sync.RWMutex

	// Currently watched directory, empty if none
	dir string

	// Whether the watcher is running
	running bool
}

// New creates a new directory watcher using fsnotify. accepts decides which
// base names can change the image set; nil means the fixed extension set.
// Pass the scanner's predicate so configured include patterns trigger
// rescans too.
func New(accepts func(name string) bool) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if accepts == nil {
		accepts = scan.Supported
	}
	return &Watcher{
		rescanChan: make(chan string, 1),
		stopChan:   make(chan struct{}),
		fsWatcher:  fsWatcher,
		accepts:    accepts,
	}, nil
}

// Watch switches the watcher to a new directory, replacing any previous one.
func (w *Watcher) Watch(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.LogWithFields(log.F("directory", w.dir), log.F("error", err)).Warn("Could not stop watching directory")
		}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// Rescans returns the channel that delivers rescan requests. The value is
// the directory that changed.
func (w *Watcher) Rescans() <-chan string {
	return w.rescanChan
}

// Start begins the event loop
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		log.Debug("Watcher event loop started")

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return // Channel closed
				}

				// Only image files can change the set; writes to an already
				// listed file do not alter ordering so re-decoding is left to
				// the next navigation.
				if !w.accepts(filepath.Base(event.Name)) {
					continue
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
					continue
				}

				// The running check and the send share the lock with Stop,
				// which closes rescanChan; without it an event racing Stop
				// would send on a closed channel.
				w.mutex.RLock()
				if w.running {
					// Coalesce: a pending rescan already covers this event
					select {
					case w.rescanChan <- w.dir:
					default:
					}
				}
				w.mutex.RUnlock()

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return // Channel closed
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts the watcher and closes its channels
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false
	close(w.rescanChan)
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directory returns the directory currently being watched
func (w *Watcher) Directory() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}
