package binding

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/dhamidi/jeedd/xmlcursor"
)

// Unmarshal decodes a document whose root element has schema s. The error
// is non-nil only for malformed XML; every other problem is returned in the
// diagnostics.
func Unmarshal[T any](s *Schema[T], data []byte, opts ...Option) (*T, Diagnostics, error) {
	c := NewContext(opts...)
	root, err := xmlcursor.Parse(bytes.NewReader(data), xmlcursor.WithFile(c.file))
	if err != nil {
		return nil, nil, fmt.Errorf("unmarshal %s: %w", s.Type.Local, err)
	}
	if !c.acceptRoot(root) {
		return nil, c.Diagnostics(), nil
	}
	return s.Decode(c, root), c.Diagnostics(), nil
}

// UnmarshalInto decodes a document over an existing record. Fields the
// document does not mention keep their values.
func UnmarshalInto[T any](s *Schema[T], data []byte, rec *T, opts ...Option) (Diagnostics, error) {
	c := NewContext(opts...)
	root, err := xmlcursor.Parse(bytes.NewReader(data), xmlcursor.WithFile(c.file))
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", s.Type.Local, err)
	}
	if c.acceptRoot(root) {
		s.DecodeInto(c, root, rec)
	}
	return c.Diagnostics(), nil
}

// Marshal encodes rec as a document with the given root element.
func Marshal[T any](s *Schema[T], root xml.Name, rec *T, opts ...Option) ([]byte, Diagnostics, error) {
	c := NewContext(opts...)
	w := xmlcursor.NewTreeWriter()
	w.StartElement(root)
	s.Encode(c, w, rec)
	w.EndElement()
	out, err := w.Bytes()
	if err != nil {
		return nil, c.Diagnostics(), fmt.Errorf("marshal %s: %w", s.Type.Local, err)
	}
	return out, c.Diagnostics(), nil
}
