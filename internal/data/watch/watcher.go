// Package watch notices snapshot-file changes so the dashboard can rebuild.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/ryvens/repdash/internal/core/model"
	"github.com/ryvens/repdash/internal/util"
)

// FileWatcher watches a single snapshot file. The parent directory is
// watched rather than the file itself because exporters typically replace
// the file atomically (write + rename), which drops a direct watch.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	events  chan model.FileEvent
}

// NewFileWatcher starts watching the given snapshot file.
func NewFileWatcher(path string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		target:  filepath.Clean(path),
		events:  make(chan model.FileEvent, 16),
	}

	if err := watcher.Add(filepath.Dir(fw.target)); err != nil {
		watcher.Close()
		return nil, err
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != fw.target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			fw.events <- model.FileEvent{
				Path:      event.Name,
				Operation: event.Op.String(),
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("Snapshot watch error: " + err.Error())
		}
	}
}

// Events returns the change notification channel.
func (fw *FileWatcher) Events() <-chan model.FileEvent {
	return fw.events
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
