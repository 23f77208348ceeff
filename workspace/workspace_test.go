package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/jee"
)

const (
	goodWeb = `<web-app xmlns="http://java.sun.com/xml/ns/javaee" version="3.0">
  <display-name>shop</display-name>
</web-app>`
	badWeb = `<web-app xmlns="http://java.sun.com/xml/ns/javaee">
  <servlet-klass/>
</web-app>`
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

func TestWorkspace_ScanAll(t *testing.T) {
	root := t.TempDir()
	webXML := filepath.Join(root, "shop", "WEB-INF", "web.xml")
	ejbJar := filepath.Join(root, "shop", "META-INF", "ejb-jar.xml")
	writeFile(t, webXML, goodWeb)
	writeFile(t, ejbJar, `<ejb-jar xmlns="http://java.sun.com/xml/ns/javaee"><enterprise-beans>`)

	w := New(root)
	require.NoError(t, w.ScanAll())

	files := w.Files()
	require.Len(t, files, 2)
	assert.Equal(t, ejbJar, files[0].Path)
	assert.Error(t, files[0].Err, "malformed")
	assert.False(t, files[0].Unsupported())
	assert.Equal(t, jee.KindEjbJar, files[0].Kind())

	web := w.Get(webXML)
	require.NotNil(t, web)
	require.NoError(t, web.Err)
	assert.Empty(t, web.Diagnostics)
	assert.Equal(t, jee.KindWebApp, web.Kind())
	assert.Equal(t, "shop", web.Descriptor.(*jee.WebApp).DisplayNames[0].Value)
}

func TestWorkspace_UpdateAndRemove(t *testing.T) {
	w := New(t.TempDir())
	path := "/virtual/WEB-INF/web.xml"

	f := w.UpdateFile(path, []byte(badWeb))
	require.NoError(t, f.Err)
	require.Len(t, f.Diagnostics, 1)
	assert.Equal(t, binding.UnexpectedElement, f.Diagnostics[0].Kind)
	assert.Equal(t, path, f.Diagnostics[0].Pos.File)

	f = w.UpdateFile(path, []byte(goodWeb))
	assert.Empty(t, f.Diagnostics)
	assert.Same(t, f, w.Get(path))

	other := w.UpdateFile("/virtual/pom.xml", []byte(`<project/>`))
	assert.True(t, other.Unsupported())

	w.RemoveFile(path)
	assert.Nil(t, w.Get(path))
	assert.Len(t, w.Files(), 1)
}

func TestWorkspace_ScanFileMissing(t *testing.T) {
	w := New(t.TempDir())
	_, err := w.ScanFile(filepath.Join(w.RootDir(), "WEB-INF", "web.xml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type event struct {
	path    string
	removed bool
	diags   int
}

func TestFileWatcher_Scan(t *testing.T) {
	root := t.TempDir()
	webXML := filepath.Join(root, "WEB-INF", "web.xml")
	writeFile(t, webXML, goodWeb)
	writeFile(t, filepath.Join(root, "target", "WEB-INF", "web.xml"), badWeb)
	writeFile(t, filepath.Join(root, "WEB-INF", "jboss-web.xml"), `<jboss-web/>`)

	w := New(root)
	var events []event
	fw := NewFileWatcher(w, func(path string, f *File) {
		e := event{path: path, removed: f == nil}
		if f != nil {
			e.diags = len(f.Diagnostics)
		}
		events = append(events, e)
	})

	fw.scan()
	assert.Equal(t, []event{{path: webXML}}, events)

	events = nil
	fw.scan()
	assert.Empty(t, events, "unchanged files are not rescanned")

	writeFile(t, webXML, badWeb)
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(webXML, later, later))
	fw.scan()
	assert.Equal(t, []event{{path: webXML, diags: 1}}, events)
	assert.Len(t, w.Get(webXML).Diagnostics, 1)

	events = nil
	require.NoError(t, os.Remove(webXML))
	fw.scan()
	assert.Equal(t, []event{{path: webXML, removed: true}}, events)
	assert.Nil(t, w.Get(webXML))
}
