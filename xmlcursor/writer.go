package xmlcursor

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/beevik/etree"
)

// TreeWriter builds an etree document from Writer events.
//
// The namespace of the root element becomes the default namespace. Any other
// namespace gets an nsN prefix declared on the root.
type TreeWriter struct {
	doc       *etree.Document
	root      *etree.Element
	stack     []*etree.Element
	prefixes  map[string]string
	defaultNS string
	next      int
	indent    int
}

func NewTreeWriter() *TreeWriter {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return &TreeWriter{
		doc:      doc,
		prefixes: map[string]string{XMLNamespace: "xml"},
		indent:   2,
	}
}

// SetIndent sets the number of spaces per nesting level; zero writes the
// document on a single line.
func (w *TreeWriter) SetIndent(spaces int) {
	w.indent = spaces
}

func (w *TreeWriter) top() *etree.Element {
	if len(w.stack) == 0 {
		return nil
	}
	return w.stack[len(w.stack)-1]
}

func (w *TreeWriter) StartElement(name xml.Name) {
	var el *etree.Element
	if parent := w.top(); parent != nil {
		el = parent.CreateElement(name.Local)
	} else {
		el = w.doc.CreateElement(name.Local)
		w.root = el
		if name.Space != "" {
			w.defaultNS = name.Space
			w.prefixes[name.Space] = ""
			el.CreateAttr(xmlnsPrefix, name.Space)
		}
	}

	switch {
	case name.Space == "" && w.defaultNS != "":
		el.CreateAttr(xmlnsPrefix, "")
	case name.Space != "":
		el.Space = w.prefix(name.Space)
	}
	w.stack = append(w.stack, el)
}

func (w *TreeWriter) Attr(name xml.Name, value string) {
	el := w.top()
	if el == nil {
		return
	}
	if name.Space == "" {
		el.CreateAttr(name.Local, value)
		return
	}
	el.CreateAttr(w.prefix(name.Space)+":"+name.Local, value)
}

func (w *TreeWriter) Characters(text string) {
	el := w.top()
	if el == nil {
		return
	}
	el.SetText(el.Text() + text)
}

func (w *TreeWriter) EndElement() {
	if len(w.stack) > 0 {
		w.stack = w.stack[:len(w.stack)-1]
	}
}

func (w *TreeWriter) XsiNil() {
	w.Attr(xml.Name{Space: XSINamespace, Local: "nil"}, "true")
}

func (w *TreeWriter) XsiType(name xml.Name) {
	prefix := w.prefix(name.Space)
	value := name.Local
	if prefix != "" {
		value = prefix + ":" + name.Local
	}
	w.Attr(xml.Name{Space: XSINamespace, Local: "type"}, value)
}

// prefix returns the prefix bound to uri, declaring it on the root element
// the first time uri is seen.
func (w *TreeWriter) prefix(uri string) string {
	if uri == "" {
		return ""
	}
	if p, ok := w.prefixes[uri]; ok {
		return p
	}
	p := "ns" + strconv.Itoa(w.next+1)
	if uri == XSINamespace {
		p = "xsi"
	} else {
		w.next++
	}
	w.prefixes[uri] = p
	if w.root != nil {
		w.root.CreateAttr(xmlnsPrefix+":"+p, uri)
	}
	return p
}

func (w *TreeWriter) Document() *etree.Document {
	if w.indent > 0 {
		w.doc.Indent(w.indent)
	}
	return w.doc
}

func (w *TreeWriter) WriteTo(out io.Writer) (int64, error) {
	return w.Document().WriteTo(out)
}

func (w *TreeWriter) Bytes() ([]byte, error) {
	return w.Document().WriteToBytes()
}
