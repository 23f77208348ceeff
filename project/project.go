package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jeedd/jee"
	"github.com/dhamidi/jeedd/pom"
)

var log = commonlog.GetLogger("jeedd.project")

// ArchiveSep separates an archive path from the entry inside it in a
// virtual path, as in shop.ear!shop-web.war!WEB-INF/web.xml.
const ArchiveSep = "!"

// ErrMissingDescriptor is set on a Source whose module packaging requires
// a descriptor that does not exist.
var ErrMissingDescriptor = errors.New("required descriptor is missing")

// Source is a deployment descriptor found by Scan.
type Source struct {
	// Path is a file path or a virtual path into an archive.
	Path    string
	Kind    jee.Kind
	Content []byte
	// Module is the Maven module directory or archive holding the
	// descriptor.
	Module string
	// Err is set when the descriptor could not be read.
	Err error
}

// Scan finds the deployment descriptors below root. root may be a Maven
// project, an exploded or packed war, jar or ear, any directory holding
// such things, or a single descriptor file. Problems with single
// descriptors are recorded on their Source; the error is non-nil only
// when root itself cannot be read.
func Scan(root string) ([]Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	s := &scanner{visited: make(map[string]bool)}
	switch {
	case !info.IsDir() && IsArchive(root):
		s.scanArchiveFile(root)
	case !info.IsDir():
		s.addFile(root, jee.KindForFile(root), root)
	case exists(filepath.Join(root, "pom.xml")):
		s.scanMaven(root)
	default:
		s.scanTree(root)
	}

	sort.SliceStable(s.sources, func(i, j int) bool {
		return s.sources[i].Path < s.sources[j].Path
	})
	log.Debugf("scanned %s: %d descriptors", root, len(s.sources))
	return s.sources, nil
}

type scanner struct {
	sources []Source
	visited map[string]bool
}

func (s *scanner) add(src Source) {
	if src.Err != nil {
		log.Infof("%s: %s", src.Path, src.Err)
	}
	s.sources = append(s.sources, src)
}

func (s *scanner) addFile(name string, kind jee.Kind, module string) {
	data, err := os.ReadFile(name)
	if err != nil {
		err = fmt.Errorf("read descriptor: %w", err)
	}
	s.add(Source{Path: name, Kind: kind, Content: data, Module: module, Err: err})
}

// scanMaven reads the descriptors a Maven module declares through its
// packaging and plugin configuration, then descends into its modules.
func (s *scanner) scanMaven(dir string) {
	abs, err := filepath.Abs(dir)
	if err == nil {
		if s.visited[abs] {
			return
		}
		s.visited[abs] = true
	}

	p, err := pom.ReadFile(filepath.Join(dir, "pom.xml"))
	if err != nil {
		s.add(Source{Path: filepath.Join(dir, "pom.xml"), Module: dir, Err: err})
		return
	}

	for _, d := range p.Descriptors() {
		name := filepath.Join(dir, filepath.FromSlash(d.Path))
		kind := jee.KindForFile(d.File)
		switch {
		case exists(name):
			s.addFile(name, kind, dir)
		case d.Required:
			s.add(Source{Path: name, Kind: kind, Module: dir, Err: ErrMissingDescriptor})
		}
	}

	for _, m := range p.Modules {
		sub := filepath.Join(dir, filepath.FromSlash(strings.TrimSpace(m)))
		if exists(filepath.Join(sub, "pom.xml")) {
			s.scanMaven(sub)
			continue
		}
		// <module> may name the pom file itself.
		if strings.HasSuffix(sub, ".xml") && exists(sub) {
			s.scanMaven(filepath.Dir(sub))
			continue
		}
		log.Warningf("%s: module %s has no pom.xml", dir, m)
	}
}

// scanTree walks a directory for exploded archives, packed archives and
// nested Maven projects.
func (s *scanner) scanTree(root string) {
	err := filepath.WalkDir(root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			s.add(Source{Path: name, Module: root, Err: err})
			return nil
		}
		if d.IsDir() {
			if name != root && SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			if name != root && exists(filepath.Join(name, "pom.xml")) {
				s.scanMaven(name)
				return filepath.SkipDir
			}
			return nil
		}
		switch {
		case IsArchive(name):
			s.scanArchiveFile(name)
		default:
			rel, _ := filepath.Rel(root, name)
			if kind, ok := descriptorEntry(filepath.ToSlash(rel)); ok {
				s.addFile(name, kind, moduleDir(name))
			}
		}
		return nil
	})
	if err != nil {
		s.add(Source{Path: root, Module: root, Err: err})
	}
}

// SkipDir reports whether a directory walk should not descend into the
// named directory: build output, dependencies and hidden directories.
func SkipDir(name string) bool {
	switch name {
	case "node_modules", "target", "build", "out":
		return true
	}
	return strings.HasPrefix(name, ".")
}

// moduleDir returns the directory above the WEB-INF or META-INF directory
// holding a descriptor.
func moduleDir(name string) string {
	return filepath.Dir(filepath.Dir(name))
}

// descriptorEntry reports whether the slash separated path names a
// deployment descriptor at its standard location within a module.
func descriptorEntry(name string) (jee.Kind, bool) {
	dir, file := path.Split(name)
	switch path.Base(dir) + "/" + file {
	case "WEB-INF/web.xml":
		return jee.KindWebApp, true
	case "WEB-INF/ejb-jar.xml", "META-INF/ejb-jar.xml":
		return jee.KindEjbJar, true
	case "META-INF/web-fragment.xml":
		return jee.KindWebFragment, true
	case "META-INF/application.xml":
		return jee.KindApplication, true
	}
	return jee.KindUnknown, false
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
