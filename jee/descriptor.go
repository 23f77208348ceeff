package jee

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"path"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/xmlcursor"
)

var log = commonlog.GetLogger("jeedd.jee")

// Older and newer releases of the descriptor schemas keep the element
// vocabulary but move the namespace. Documents in these namespaces, and
// DTD based documents without one, are read as javaee documents.
var legacyNamespaces = []string{
	"",
	"http://java.sun.com/xml/ns/j2ee",
	"http://xmlns.jcp.org/xml/ns/javaee",
	"https://jakarta.ee/xml/ns/jakartaee",
}

// ErrUnsupportedRoot is returned for documents that are not one of the
// descriptors this package knows.
var ErrUnsupportedRoot = errors.New("unsupported descriptor root")

type Kind int

const (
	KindUnknown Kind = iota
	KindApplication
	KindWebApp
	KindWebFragment
	KindEjbJar
)

var kinds = []struct {
	kind Kind
	root string
	file string
}{
	{KindApplication, "application", "application.xml"},
	{KindWebApp, "web-app", "web.xml"},
	{KindWebFragment, "web-fragment", "web-fragment.xml"},
	{KindEjbJar, "ejb-jar", "ejb-jar.xml"},
}

func (k Kind) String() string {
	for _, e := range kinds {
		if e.kind == k {
			return e.root
		}
	}
	return "unknown"
}

// FileName returns the conventional file name of the descriptor.
func (k Kind) FileName() string {
	for _, e := range kinds {
		if e.kind == k {
			return e.file
		}
	}
	return ""
}

// RootName returns the name of the document element.
func (k Kind) RootName() xml.Name {
	return typeName(k.String())
}

// DetectKind maps a document element name to a descriptor kind. root must
// already be in the javaee namespace.
func DetectKind(root xml.Name) Kind {
	if root.Space != Namespace {
		return KindUnknown
	}
	for _, e := range kinds {
		if e.root == root.Local {
			return e.kind
		}
	}
	return KindUnknown
}

// KindForFile guesses the descriptor kind from a file name.
func KindForFile(name string) Kind {
	base := path.Base(name)
	for _, e := range kinds {
		if e.file == base {
			return e.kind
		}
	}
	return KindUnknown
}

// Descriptor is a decoded deployment descriptor: *Application, *WebApp,
// *WebFragment or *EjbJar.
type Descriptor interface {
	Kind() Kind
}

func (*Application) Kind() Kind { return KindApplication }
func (*WebApp) Kind() Kind      { return KindWebApp }
func (*WebFragment) Kind() Kind { return KindWebFragment }
func (*EjbJar) Kind() Kind      { return KindEjbJar }

// ParseOptions returns the xmlcursor options used for descriptor
// documents: positions tagged with file and legacy namespaces read as
// javaee.
func ParseOptions(file string) []xmlcursor.Option {
	opts := []xmlcursor.Option{xmlcursor.WithFile(file)}
	for _, ns := range legacyNamespaces {
		opts = append(opts, xmlcursor.WithNamespaceAlias(ns, Namespace))
	}
	return opts
}

// DecodeDescriptor decodes any supported descriptor. The error is non-nil
// for malformed XML and for an unsupported document element; structural
// problems are returned as diagnostics. An xsi:nil document element
// decodes to a nil Descriptor.
func DecodeDescriptor(data []byte, opts ...binding.Option) (Descriptor, binding.Diagnostics, error) {
	c := binding.NewContext(opts...)
	root, err := xmlcursor.Parse(bytes.NewReader(data), ParseOptions(c.File())...)
	if err != nil {
		return nil, nil, fmt.Errorf("decode descriptor: %w", err)
	}
	d, err := decodeRoot(c, root)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("decoded %s %s with %d conditions", root.Name().Local, c.File(), len(c.Diagnostics()))
	return d, c.Diagnostics(), nil
}

// DecodeElement decodes an already parsed document element.
func DecodeElement(c *binding.Context, root xmlcursor.Reader) (Descriptor, error) {
	return decodeRoot(c, root)
}

func decodeRoot(c *binding.Context, root xmlcursor.Reader) (Descriptor, error) {
	switch DetectKind(root.Name()) {
	case KindApplication:
		return nonNil(applicationSchema.Decode(c, root)), nil
	case KindWebApp:
		return nonNil(webAppSchema.Decode(c, root)), nil
	case KindWebFragment:
		return nonNil(webFragmentSchema.Decode(c, root)), nil
	case KindEjbJar:
		return nonNil(ejbJarSchema.Decode(c, root)), nil
	}
	return nil, fmt.Errorf("decode descriptor: %w: %s", ErrUnsupportedRoot, xmlcursor.FormatName(root.Name()))
}

func nonNil[T any, P interface {
	*T
	Descriptor
}](rec P) Descriptor {
	if rec == nil {
		return nil
	}
	return rec
}

// EncodeDescriptor writes d as a complete document.
func EncodeDescriptor(d Descriptor, opts ...binding.Option) ([]byte, binding.Diagnostics, error) {
	switch d := d.(type) {
	case *Application:
		return binding.Marshal(applicationSchema, KindApplication.RootName(), d, opts...)
	case *WebApp:
		return binding.Marshal(webAppSchema, KindWebApp.RootName(), d, opts...)
	case *WebFragment:
		return binding.Marshal(webFragmentSchema, KindWebFragment.RootName(), d, opts...)
	case *EjbJar:
		return binding.Marshal(ejbJarSchema, KindEjbJar.RootName(), d, opts...)
	}
	return nil, nil, fmt.Errorf("encode descriptor: %w: %T", ErrUnsupportedRoot, d)
}

// Schemas for callers that bind one descriptor type, or a lone session
// bean fragment, directly.
var (
	ApplicationSchema = applicationSchema
	WebAppSchema      = webAppSchema
	WebFragmentSchema = webFragmentSchema
	EjbJarSchema      = ejbJarSchema
	SessionBeanSchema = sessionBeanSchema
)
