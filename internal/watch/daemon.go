package watch

import (
	"fmt"
	"mime"
	"path/filepath"
	"sync"
	"time"

	"dropzone/internal/classify"
	"dropzone/internal/config"
	"dropzone/internal/log"
	"dropzone/pkg/types"
)

// DaemonStatus represents the current status of the daemon
type DaemonStatus struct {
	Running          bool      // Whether the daemon is currently active
	WatchDirectories []string  // Directories being watched
	LastActivity     time.Time // Time of last file activity
	FilesSeen        int       // Total files classified
	FilesAccepted    int       // Files the accept list permitted
	FilesRejected    int       // Files flagged as invalid type
}

// VerdictFunc receives the verdict for each file arriving in a watched
// drop zone.
type VerdictFunc func(path string, verdict types.Verdict)

// Daemon treats configured directories as drop zones: files arriving
// there are classified against the accept list and reported through a
// callback. It only classifies; nothing is moved or uploaded.
type Daemon struct {
	// Configuration
	config *config.Config

	// The file watcher
	watcher *Watcher

	// The accept-list classifier
	engine *classify.Engine

	// Statistics
	seen         int
	accepted     int
	rejected     int
	lastActivity time.Time

	// Callback for each classified file
	callback VerdictFunc

	// Lock for modifications
	mutex sync.RWMutex

	// Whether the daemon is running
	running bool
}

// NewDaemon creates a drop-zone daemon from the configuration.
func NewDaemon(cfg *config.Config) (*Daemon, error) {
	watcher, err := New()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher for daemon: %w", err)
	}

	engine, err := classify.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		config:       cfg,
		watcher:      watcher,
		engine:       engine,
		lastActivity: time.Now(),
	}, nil
}

// Start initiates the daemon process
func (d *Daemon) Start() error {
	if d.running {
		return fmt.Errorf("daemon is already running")
	}

	// Add the watch directories from config
	for _, dir := range d.config.Directories.Watch {
		if err := d.watcher.AddDirectory(dir); err != nil {
			return fmt.Errorf("error adding watch directory %s: %w", dir, err)
		}
	}

	// Make sure we have directories to watch
	if len(d.watcher.Directories()) == 0 {
		return fmt.Errorf("no directories to watch")
	}

	if err := d.watcher.Start(); err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}

	d.running = true

	// Start processing file arrivals
	go d.processEvents()

	return nil
}

// Stop halts the daemon process
func (d *Daemon) Stop() {
	if !d.running {
		return
	}

	d.watcher.Stop()
	d.running = false
}

// AddWatchDirectory adds a directory to be watched
func (d *Daemon) AddWatchDirectory(dir string) error {
	return d.watcher.AddDirectory(dir)
}

// SetCallback sets a function to be called for each classified file
func (d *Daemon) SetCallback(cb VerdictFunc) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.callback = cb
}

// Status returns the current status of the daemon
func (d *Daemon) Status() DaemonStatus {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return DaemonStatus{
		Running:          d.running,
		WatchDirectories: d.watcher.Directories(),
		LastActivity:     d.lastActivity,
		FilesSeen:        d.seen,
		FilesAccepted:    d.accepted,
		FilesRejected:    d.rejected,
	}
}

// processEvents handles file arrivals from the watcher
func (d *Daemon) processEvents() {
	for ev := range d.watcher.Events() {
		// Skip directories
		if ev.Info.IsDir() {
			continue
		}

		d.mutex.Lock()
		d.lastActivity = ev.Timestamp
		d.mutex.Unlock()

		d.classifyFile(ev.Path, ev.Info.Size())
	}
}

// classifyFile runs one arrived file through the accept list
func (d *Daemon) classifyFile(path string, size int64) {
	name := filepath.Base(path)
	desc := types.FileDescriptor{
		Name:     name,
		MIMEType: mime.TypeByExtension(filepath.Ext(name)),
		Size:     size,
	}

	verdicts := d.engine.Classify([]types.FileDescriptor{desc})
	if len(verdicts) == 0 {
		// Name has no recognizable extension; excluded by contract
		log.Debugf("ignoring %s: no recognizable extension", path)
		return
	}

	verdict := verdicts[0]

	d.mutex.Lock()
	d.seen++
	if verdict.Rejected() {
		d.rejected++
	} else {
		d.accepted++
	}
	cb := d.callback
	d.mutex.Unlock()

	if verdict.Rejected() {
		log.LogWithFields(log.F("file", path), log.F("reason", string(verdict.Reason))).Warn("Rejected drop-zone file")
	} else {
		log.LogWithFields(log.F("file", path)).Info("Accepted drop-zone file")
	}

	if cb != nil {
		cb(path, verdict)
	}
}
