package workspace

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dhamidi/jeedd/jee"
	"github.com/dhamidi/jeedd/project"
)

// Notify is called by a FileWatcher after a descriptor changed. f is nil
// when the file was removed.
type Notify func(path string, f *File)

// FileWatcher polls the workspace root for descriptor files and keeps the
// workspace up to date. Archives are not watched.
type FileWatcher struct {
	workspace    *Workspace
	notify       Notify
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewFileWatcher(w *Workspace, notify Notify) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		notify:       notify,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

func (w *FileWatcher) Start() {
	go w.run()
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

func (w *FileWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *FileWatcher) scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(w.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.workspace.RootDir() && project.SkipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if jee.KindForFile(path) == jee.KindUnknown {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			f, err := w.workspace.ScanFile(path)
			if err != nil {
				log.Warningf("%s: %s", path, err)
				return nil
			}
			w.emit(path, f)
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.workspace.RemoveFile(path)
			w.emit(path, nil)
		}
	}
}

func (w *FileWatcher) emit(path string, f *File) {
	if w.notify != nil {
		w.notify(path, f)
	}
}
