package project

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/dhamidi/jeedd/jee"
)

// maxNesting bounds archive recursion; an ear holding a war holding a
// fragment jar is three levels deep.
const maxNesting = 4

// IsArchive reports whether name has a Java EE archive extension.
func IsArchive(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".war", ".jar", ".ear", ".rar":
		return true
	}
	return false
}

func (s *scanner) scanArchiveFile(name string) {
	data, err := os.ReadFile(name)
	if err != nil {
		s.add(Source{Path: name, Module: name, Err: fmt.Errorf("read archive: %w", err)})
		return
	}
	s.scanArchive(name, data, 0)
}

func (s *scanner) scanArchive(vpath string, data []byte, depth int) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.add(Source{Path: vpath, Module: vpath, Err: fmt.Errorf("open archive: %w", err)})
		return
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entry := vpath + ArchiveSep + f.Name
		if kind, ok := descriptorEntry(f.Name); ok && strings.Count(f.Name, "/") == 1 {
			content, err := readEntry(f)
			s.add(Source{Path: entry, Kind: kind, Content: content, Module: vpath, Err: err})
			continue
		}
		if !IsArchive(f.Name) || !nestedModule(f.Name) {
			continue
		}
		if depth+1 >= maxNesting {
			log.Warningf("%s: archives nested too deeply", entry)
			continue
		}
		content, err := readEntry(f)
		if err != nil {
			s.add(Source{Path: entry, Module: vpath, Err: err})
			continue
		}
		s.scanArchive(entry, content, depth+1)
	}
}

// nestedModule reports whether an archive entry is a module or library
// that may carry descriptors of its own: ear modules and libraries, and
// war libraries.
func nestedModule(name string) bool {
	dir := path.Dir(name)
	return dir == "." || dir == "lib" || dir == "WEB-INF/lib"
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}
	return data, nil
}

// ReadFile returns the content of a file or of a virtual archive path as
// produced by Scan.
func ReadFile(vpath string) ([]byte, error) {
	parts := strings.Split(vpath, ArchiveSep)
	data, err := os.ReadFile(parts[0])
	if err != nil {
		return nil, err
	}
	for _, entry := range parts[1:] {
		data, err = readArchiveEntry(data, entry)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", vpath, err)
		}
	}
	return data, nil
}

func readArchiveEntry(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == name {
			return readEntry(f)
		}
	}
	return nil, fmt.Errorf("open %s: %w", name, os.ErrNotExist)
}

// IsVirtual reports whether p points into an archive.
func IsVirtual(p string) bool {
	return strings.Contains(p, ArchiveSep)
}

// KindOf returns the descriptor kind of a scanned path.
func KindOf(p string) jee.Kind {
	if i := strings.LastIndex(p, ArchiveSep); i >= 0 {
		kind, _ := descriptorEntry(p[i+1:])
		return kind
	}
	return jee.KindForFile(p)
}
