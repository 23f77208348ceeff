package workspace

import (
	"errors"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/jee"
	"github.com/dhamidi/jeedd/project"
)

var log = commonlog.GetLogger("jeedd.workspace")

// Workspace caches the decode results of the descriptors below a root
// directory. It is safe for concurrent use.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*File
}

// File is the decode result of one descriptor.
type File struct {
	Path        string
	Content     []byte
	Descriptor  jee.Descriptor
	Diagnostics binding.Diagnostics
	// Err is set when the descriptor could not be read, is not well formed
	// or has an unknown document element.
	Err error
}

// Kind returns the kind of the decoded descriptor, or the kind implied by
// the file name.
func (f *File) Kind() jee.Kind {
	if f.Descriptor != nil {
		return f.Descriptor.Kind()
	}
	return project.KindOf(f.Path)
}

// Unsupported reports whether the file is not a deployment descriptor.
func (f *File) Unsupported() bool {
	return errors.Is(f.Err, jee.ErrUnsupportedRoot)
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*File),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll decodes every descriptor project.Scan finds below the root.
func (w *Workspace) ScanAll() error {
	sources, err := project.Scan(w.rootDir)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, src := range sources {
		if src.Err != nil {
			w.files[src.Path] = &File{Path: src.Path, Err: src.Err}
			continue
		}
		w.updateFileLocked(src.Path, src.Content)
	}
	return nil
}

// ScanFile reads and decodes a file or virtual archive path.
func (w *Workspace) ScanFile(path string) (*File, error) {
	content, err := project.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.UpdateFile(path, content), nil
}

// UpdateFile decodes content as the descriptor at path, replacing any
// earlier result.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.updateFileLocked(path, content)
}

func (w *Workspace) updateFileLocked(path string, content []byte) *File {
	d, diags, err := jee.DecodeDescriptor(content, binding.WithFile(path))
	f := &File{
		Path:        path,
		Content:     content,
		Descriptor:  d,
		Diagnostics: diags,
		Err:         err,
	}
	if err != nil {
		log.Debugf("%s: %s", path, err)
	}
	w.files[path] = f
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) Get(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns all cached results ordered by path.
func (w *Workspace) Files() []*File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	files := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}
