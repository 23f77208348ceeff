package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messyWeb = `<?xml version="1.0" encoding="UTF-8"?>
<j:web-app xmlns:j="http://java.sun.com/xml/ns/javaee" version="3.0">
<j:servlet-mapping><j:servlet-name>front</j:servlet-name><j:url-pattern>/*</j:url-pattern></j:servlet-mapping>
          <j:servlet>
   <j:servlet-name>front</j:servlet-name>
              <j:servlet-class>com.acme.Front</j:servlet-class>
  </j:servlet>
</j:web-app>
`

const badWeb = `<web-app xmlns="http://java.sun.com/xml/ns/javaee">
  <servlet-klass/>
</web-app>
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

func TestFmt_Idempotent(t *testing.T) {
	first, stderr, err := execute(t, messyWeb, "fmt")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.True(t, strings.HasPrefix(first, "<?xml"))
	assert.Contains(t, first, "<servlet-class>com.acme.Front</servlet-class>")
	assert.Less(t, strings.Index(first, "<servlet>"), strings.Index(first, "<servlet-mapping>"),
		"servlet is written before servlet-mapping")

	second, _, err := execute(t, first, "fmt")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFmt_Write(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good", "WEB-INF", "web.xml")
	bad := filepath.Join(dir, "bad", "WEB-INF", "web.xml")
	writeFile(t, good, messyWeb)
	writeFile(t, bad, badWeb)

	_, _, err := execute(t, "", "fmt", "-w", good)
	require.NoError(t, err)
	written, err := os.ReadFile(good)
	require.NoError(t, err)
	stdout, _, err := execute(t, messyWeb, "fmt")
	require.NoError(t, err)
	assert.Equal(t, stdout, string(written))

	_, stderr, err := execute(t, "", "fmt", "-w", bad)
	assert.ErrorContains(t, err, "not overwriting")
	assert.Contains(t, stderr, "unexpected element")
	unchanged, err := os.ReadFile(bad)
	require.NoError(t, err)
	assert.Equal(t, badWeb, string(unchanged))

	_, _, err = execute(t, messyWeb, "fmt", "-w")
	assert.ErrorContains(t, err, "requires a file argument")
}

func TestDump(t *testing.T) {
	name := filepath.Join(t.TempDir(), "WEB-INF", "web.xml")
	writeFile(t, name, badWeb)

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"kind": "web-app"`},
		{"yaml", "kind: web-app"},
		{"line", "descriptor\tweb-app\t" + name + "\t1"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := execute(t, "", "dump", "-f", tt.format, name)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.want)
		})
	}

	_, _, err := execute(t, "", "dump", "-f", "toml", name)
	assert.ErrorContains(t, err, "unknown format: toml")
}

func TestCheck(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "clean", "WEB-INF", "web.xml"), messyWeb)

	stdout, _, err := execute(t, "", "check", filepath.Join(root, "clean"))
	require.NoError(t, err)
	assert.Empty(t, stdout)

	writeFile(t, filepath.Join(root, "broken", "WEB-INF", "web.xml"), badWeb)
	writeFile(t, filepath.Join(root, "broken", "META-INF", "ejb-jar.xml"), "<ejb-jar")

	stdout, _, err = execute(t, "", "check", root)
	assert.ErrorIs(t, err, errFindings)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], filepath.Join("broken", "META-INF", "ejb-jar.xml")+": ")
	assert.Contains(t, lines[1], "\tunexpected element\t")

	_, _, err = execute(t, "", "check", "--watch", root, root)
	assert.ErrorContains(t, err, "exactly one path")
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "WEB-INF", "web.xml"), messyWeb)
	writeFile(t, filepath.Join(root, "META-INF", "web-fragment.xml"), `<web-fragment/>`)

	stdout, _, err := execute(t, "", "scan", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "web-app\t"+filepath.Join(root, "WEB-INF", "web.xml"))
	assert.Contains(t, stdout, "web-fragment\t"+filepath.Join(root, "META-INF", "web-fragment.xml"))
	assert.Contains(t, stdout, "2 descriptors, 0 unreadable")
}

func TestVerbosity(t *testing.T) {
	tests := []struct {
		name string
		flag int
		env  string
		want int
	}{
		{"default", 0, "", 0},
		{"env", 0, "2", 2},
		{"flag wins", 1, "2", 1},
		{"bad env", 0, "debug", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verbosity(tt.flag, tt.env))
		})
	}
}
