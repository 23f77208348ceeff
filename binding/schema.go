package binding

import (
	"encoding/xml"

	"github.com/dhamidi/jeedd/xmlcursor"
)

// Field is one entry in a schema's attribute or element table. Fields are
// created with the constructors in field.go and bound to a schema by
// NewSchema.
type Field[T any] interface {
	bind(s *Schema[T])
}

type attribute[T any] interface {
	Field[T]
	name() xml.Name
	decode(c *Context, r xmlcursor.Reader, rec *T, text string, owner xml.Name)
	encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name)
}

type element[T any] interface {
	Field[T]
	names() []xml.Name
	slot(c *Context, rec *T, owner xml.Name) slot
	encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name)
}

// slot accumulates the occurrences of one element field during a single
// decode and publishes them to the record once all children are read.
type slot interface {
	decode(r xmlcursor.Reader)
	commit()
}

// Schema describes how one record type maps to an XML schema type.
type Schema[T any] struct {
	// Type is the schema type name; its Space qualifies every element.
	Type xml.Name

	new    func() *T
	typeOf func(*T) xml.Name

	attrs     []attribute[T]
	attrIndex map[xml.Name]attribute[T]
	elems     []element[T]
	elemIndex map[xml.Name]int
	expected  []xml.Name
	value     attribute[T]

	derived map[xml.Name]*Schema[T]
}

func NewSchema[T any](name xml.Name, fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		Type:      name,
		new:       func() *T { return new(T) },
		attrIndex: make(map[xml.Name]attribute[T]),
		elemIndex: make(map[xml.Name]int),
	}
	for _, f := range fields {
		f.bind(s)
	}
	return s
}

func (s *Schema[T]) addAttr(a attribute[T]) {
	if _, dup := s.attrIndex[a.name()]; dup {
		panic("binding: duplicate attribute " + xmlcursor.FormatName(a.name()) + " in " + s.Type.Local)
	}
	s.attrs = append(s.attrs, a)
	s.attrIndex[a.name()] = a
}

func (s *Schema[T]) addElem(e element[T]) {
	for _, n := range e.names() {
		if _, dup := s.elemIndex[n]; dup {
			panic("binding: duplicate element " + xmlcursor.FormatName(n) + " in " + s.Type.Local)
		}
		s.elemIndex[n] = len(s.elems)
		s.expected = append(s.expected, n)
	}
	s.elems = append(s.elems, e)
}

// WithNew replaces the record constructor.
func (s *Schema[T]) WithNew(fn func() *T) *Schema[T] {
	s.new = fn
	return s
}

// WithTypeOf installs the function reporting a record's runtime schema
// type. Records whose runtime type differs from Type are encoded through
// the matching derived schema.
func (s *Schema[T]) WithTypeOf(fn func(*T) xml.Name) *Schema[T] {
	s.typeOf = fn
	return s
}

// Derive registers a schema type derived from s under local, sharing the
// attribute and element tables. newFn builds records of the derived type.
func (s *Schema[T]) Derive(local string, newFn func() *T) *Schema[T] {
	sub := &Schema[T]{
		Type:      xml.Name{Space: s.Type.Space, Local: local},
		new:       newFn,
		typeOf:    s.typeOf,
		attrs:     s.attrs,
		attrIndex: s.attrIndex,
		elems:     s.elems,
		elemIndex: s.elemIndex,
		expected:  s.expected,
		value:     s.value,
	}
	if s.derived == nil {
		s.derived = make(map[xml.Name]*Schema[T])
	}
	s.derived[sub.Type] = sub
	return sub
}

// Resolve returns the schema registered for the xsi:type name, which is
// s itself or one of its derived schemas.
func (s *Schema[T]) Resolve(name xml.Name) (*Schema[T], bool) {
	if name == s.Type {
		return s, true
	}
	sub, ok := s.derived[name]
	return sub, ok
}

// Expected returns the element names s accepts, in declaration order.
func (s *Schema[T]) Expected() []xml.Name {
	return append([]xml.Name(nil), s.expected...)
}

// Decode builds a record from the element r is positioned on. It returns
// nil for an xsi:nil element and for an xsi:type s does not know.
func (s *Schema[T]) Decode(c *Context, r xmlcursor.Reader) *T {
	if r.XsiNil() {
		return nil
	}
	target, ok := s.target(c, r)
	if !ok {
		return nil
	}
	rec := target.new()
	target.decodeInto(c, r, rec)
	return rec
}

// DecodeInto merges the element r is positioned on into an existing
// record. Only fields present in the document are replaced.
func (s *Schema[T]) DecodeInto(c *Context, r xmlcursor.Reader, rec *T) {
	if r.XsiNil() {
		return
	}
	target, ok := s.target(c, r)
	if !ok {
		return
	}
	target.decodeInto(c, r, rec)
}

func (s *Schema[T]) target(c *Context, r xmlcursor.Reader) (*Schema[T], bool) {
	typ, ok := r.XsiType()
	if !ok {
		return s, true
	}
	target, ok := s.Resolve(typ)
	if !ok {
		c.report(Condition{
			Kind:     UnexpectedXsiType,
			Type:     s.Type,
			Name:     typ,
			Expected: []xml.Name{s.Type},
			Pos:      r.Pos(),
		})
		return nil, false
	}
	return target, true
}

func (s *Schema[T]) decodeInto(c *Context, r xmlcursor.Reader, rec *T) {
	c.beforeUnmarshal(rec)

	for _, attr := range r.Attrs() {
		if attr.Name.Space == xmlcursor.XSINamespace {
			continue
		}
		a, ok := s.attrIndex[attr.Name]
		if !ok {
			c.report(Condition{
				Kind: UnexpectedAttribute,
				Type: s.Type,
				Name: attr.Name,
				Pos:  r.Pos(),
			})
			continue
		}
		a.decode(c, r, rec, attr.Value, s.Type)
	}

	if s.value != nil {
		s.value.decode(c, r, rec, r.Text(), s.Type)
	}

	slots := make([]slot, len(s.elems))
	for _, child := range r.Children() {
		i, ok := s.elemIndex[child.Name()]
		if !ok {
			c.report(Condition{
				Kind:     UnexpectedElement,
				Type:     s.Type,
				Name:     child.Name(),
				Expected: s.expected,
				Pos:      child.Pos(),
			})
			continue
		}
		if slots[i] == nil {
			slots[i] = s.elems[i].slot(c, rec, s.Type)
		}
		slots[i].decode(child)
	}
	for _, sl := range slots {
		if sl != nil {
			sl.commit()
		}
	}

	c.afterUnmarshal(rec)
}

// Encode writes the attributes and children of rec into the element the
// caller has started. A nil record is written as xsi:nil.
func (s *Schema[T]) Encode(c *Context, w xmlcursor.Writer, rec *T) {
	if rec == nil {
		w.XsiNil()
		return
	}
	if s.typeOf != nil {
		if typ := s.typeOf(rec); typ != s.Type {
			sub, ok := s.derived[typ]
			if !ok {
				c.report(Condition{
					Kind: UnexpectedSubclass,
					Type: s.Type,
					Name: typ,
				})
				return
			}
			w.XsiType(typ)
			sub.encodeBody(c, w, rec)
			return
		}
	}
	s.encodeBody(c, w, rec)
}

func (s *Schema[T]) encodeBody(c *Context, w xmlcursor.Writer, rec *T) {
	c.beforeMarshal(rec)
	for _, a := range s.attrs {
		a.encode(c, w, rec, s.Type)
	}
	if s.value != nil {
		s.value.encode(c, w, rec, s.Type)
	}
	for _, e := range s.elems {
		e.encode(c, w, rec, s.Type)
	}
	c.afterMarshal(rec)
}
