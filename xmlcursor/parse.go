package xmlcursor

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const xmlnsPrefix = "xmlns"

type Option func(*parseConfig)

type parseConfig struct {
	file    string
	aliases map[string]string
}

// WithFile records path as the File of every position in the parsed tree.
func WithFile(path string) Option {
	return func(c *parseConfig) {
		c.file = path
	}
}

// WithNamespaceAlias reads element names and QName values in namespace
// from as if they were in namespace to. Unqualified attributes are not
// affected.
func WithNamespaceAlias(from, to string) Option {
	return func(c *parseConfig) {
		if c.aliases == nil {
			c.aliases = make(map[string]string)
		}
		c.aliases[from] = to
	}
}

func (c *parseConfig) alias(space string) string {
	if to, ok := c.aliases[space]; ok {
		return to
	}
	return space
}

// Element is a parsed XML element. It implements Reader.
type Element struct {
	name     xml.Name
	attrs    []xml.Attr
	children []*Element
	text     []byte
	pos      Position
	parent   *Element
	ns       map[string]string
	cfg      *parseConfig
}

// Parse reads a complete document and returns its root element. Documents
// declaring a non UTF-8 encoding are transcoded.
func Parse(r io.Reader, opts ...Option) (*Element, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element
	for {
		line, col := d.InputPos()
		offset := d.InputOffset()
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var parent *Element
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			} else if root != nil {
				return nil, fmt.Errorf("parse xml: %d:%d: more than one root element", line, col)
			}
			el := newElement(t, parent, &cfg, Position{File: cfg.file, Offset: int(offset), Line: line, Column: col})
			if parent != nil {
				parent.children = append(parent.children, el)
			} else {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text = append(top.text, t...)
			}
		}
	}

	if root == nil {
		return nil, errors.New("parse xml: no root element")
	}
	return root, nil
}

func newElement(start xml.StartElement, parent *Element, cfg *parseConfig, pos Position) *Element {
	el := &Element{
		name:   xml.Name{Space: cfg.alias(start.Name.Space), Local: start.Name.Local},
		parent: parent,
		pos:    pos,
		cfg:    cfg,
	}
	for _, a := range start.Attr {
		switch {
		case a.Name.Space == xmlnsPrefix:
			el.declare(a.Name.Local, a.Value)
		case a.Name.Space == "" && a.Name.Local == xmlnsPrefix:
			el.declare("", a.Value)
		default:
			el.attrs = append(el.attrs, a)
		}
	}
	return el
}

func (e *Element) declare(prefix, uri string) {
	if e.ns == nil {
		e.ns = make(map[string]string)
	}
	e.ns[prefix] = uri
}

func (e *Element) Name() xml.Name {
	return e.name
}

func (e *Element) Attrs() []xml.Attr {
	return e.attrs
}

// Attr returns the value of the attribute with the given name.
func (e *Element) Attr(space, local string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) Children() []Reader {
	out := make([]Reader, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// Elements returns the child elements without converting them to Reader.
func (e *Element) Elements() []*Element {
	return e.children
}

func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) Text() string {
	return string(e.text)
}

func (e *Element) Pos() Position {
	return e.pos
}

func (e *Element) XsiNil() bool {
	v, ok := e.Attr(XSINamespace, "nil")
	if !ok {
		return false
	}
	v = strings.TrimSpace(v)
	return v == "true" || v == "1"
}

func (e *Element) XsiType() (xml.Name, bool) {
	v, ok := e.Attr(XSINamespace, "type")
	if !ok {
		return xml.Name{}, false
	}
	return e.ResolveQName(strings.TrimSpace(v)), true
}

// ResolveQName resolves a prefixed name appearing in content against the
// namespace declarations in scope. An unprefixed name takes the default
// namespace. An undeclared prefix leaves Space empty and is not aliased.
func (e *Element) ResolveQName(qname string) xml.Name {
	prefix, local, found := strings.Cut(qname, ":")
	if !found {
		prefix, local = "", qname
	}
	uri, declared := e.LookupNamespace(prefix)
	if e.cfg != nil && (declared || prefix == "") {
		uri = e.cfg.alias(uri)
	}
	return xml.Name{Space: uri, Local: local}
}

// LookupNamespace returns the namespace bound to prefix at this element.
func (e *Element) LookupNamespace(prefix string) (string, bool) {
	if prefix == "xml" {
		return XMLNamespace, true
	}
	for el := e; el != nil; el = el.parent {
		if uri, ok := el.ns[prefix]; ok {
			return uri, true
		}
	}
	return "", false
}
