package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"dropzone/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Event represents a file arrival detected by the watcher
type Event struct {
	Path      string
	Info      os.FileInfo
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors drop-zone directories for arriving files using
// fsnotify
type Watcher struct {
	// Directories being watched
	directories []string

	// Channel delivering file arrivals
	eventChan chan Event

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the directories list
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a new directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		directories: []string{},
		eventChan:   make(chan Event, 10),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
		running:     false,
	}, nil
}

// AddDirectory registers a directory as a drop zone
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	// fsnotify tolerates duplicates; the list is deduplicated only so
	// Directories() stays accurate
	w.mutex.Lock()
	found := false
	for _, existing := range w.directories {
		if existing == dir {
			found = true
			break
		}
	}
	if !found {
		w.directories = append(w.directories, dir)
	}
	w.mutex.Unlock()
	log.LogWithFields(log.F("directory", dir)).Info("Watching drop zone")
	return nil
}

// Events returns the channel that delivers file arrivals
func (w *Watcher) Events() <-chan Event {
	return w.eventChan
}

// Start begins watching for file arrivals
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	// Create a new stop channel each time Start is called
	w.stopChan = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return // Channel closed
				}

				// Only file creation and writes matter for a drop zone.
				// The stat guards against events for already-deleted files.
				if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
					info, err := os.Stat(event.Name)
					if err != nil {
						if !os.IsNotExist(err) {
							log.LogWithFields(log.F("file", event.Name), log.F("error", err)).Error("Error stating file")
						}
						continue
					}

					if info.IsDir() {
						continue
					}

					ev := Event{
						Path:      event.Name,
						Info:      info,
						Timestamp: time.Now(),
						Op:        event.Op,
					}

					// Non-blocking send so the loop never stalls on a
					// slow consumer
					select {
					case w.eventChan <- ev:
					default:
						log.LogWithFields(log.F("file", event.Name)).Warn("Event channel is full, dropped event")
					}
				}

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

	log.Info("Watcher started.")
	return nil
}

// Stop halts the watcher
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	// Signal the event processing goroutine to stop
	close(w.stopChan)

	// Close the underlying fsnotify watcher
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false

	// Close the public channel under the lock to prevent races with
	// Events()
	close(w.eventChan)

	log.Info("Watcher stopped.")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directories returns the list of directories being watched
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirsCopy := make([]string, len(w.directories))
	copy(dirsCopy, w.directories)
	return dirsCopy
}
