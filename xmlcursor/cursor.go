// Package xmlcursor provides the structured XML reader and writer that the
// binding engine walks: a position-tracking element tree for reading and an
// etree-backed writer that allocates namespace prefixes.
package xmlcursor

import (
	"encoding/xml"
	"fmt"
)

const (
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	switch {
	case !p.IsValid() && p.File == "":
		return "-"
	case !p.IsValid():
		return p.File
	case p.File == "":
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	default:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
}

// Reader is a cursor positioned on one element of a parsed document.
type Reader interface {
	// Name returns the element name; Space holds the namespace URI.
	Name() xml.Name
	// Attrs returns the attributes with namespace declarations removed.
	Attrs() []xml.Attr
	Children() []Reader
	// Text returns the character data directly inside the element.
	Text() string
	XsiNil() bool
	// XsiType returns the resolved value of the xsi:type attribute.
	XsiType() (xml.Name, bool)
	Pos() Position
}

// Writer receives a document as a sequence of structural events.
type Writer interface {
	StartElement(name xml.Name)
	Attr(name xml.Name, value string)
	Characters(text string)
	EndElement()
	XsiNil()
	XsiType(name xml.Name)
}

// FormatName renders a name as {namespace}local, or just local when the
// name has no namespace.
func FormatName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return "{" + name.Space + "}" + name.Local
}
