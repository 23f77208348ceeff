package binding

import (
	"encoding/xml"
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/dhamidi/jeedd/xmlcursor"
)

// fieldName is the record field name reported in conditions.
func fieldName(local string) string {
	return strcase.ToLowerCamel(local)
}

func adapterError[V any](c *Context, owner xml.Name, name xml.Name, pos xmlcursor.Position, a Adapter[V], err error) {
	c.report(Condition{
		Kind:  AdapterError,
		Type:  owner,
		Name:  name,
		Field: fieldName(name.Local),
		Pos:   pos,
		Err:   fmt.Errorf("%s: %w", a, err),
	})
}

func nullValue(c *Context, owner xml.Name, name xml.Name) {
	c.report(Condition{
		Kind:  UnexpectedNullValue,
		Type:  owner,
		Name:  name,
		Field: fieldName(name.Local),
	})
}

// Attributes

type attrField[T, V any] struct {
	space, local string
	qname        xml.Name
	adapter      Adapter[V]
	get          func(*T) *V
	id           bool
}

// Attr maps an unqualified attribute to a scalar field.
func Attr[T, V any](local string, a Adapter[V], get func(*T) *V) Field[T] {
	return &attrField[T, V]{local: local, adapter: a, get: get}
}

// AttrNS maps an attribute in the given namespace, such as xml:lang.
func AttrNS[T, V any](space, local string, a Adapter[V], get func(*T) *V) Field[T] {
	return &attrField[T, V]{space: space, local: local, adapter: a, get: get}
}

// ID maps the id attribute and registers the record in the context's
// xml id table.
func ID[T any](get func(*T) *string) Field[T] {
	return &attrField[T, string]{local: "id", adapter: CollapsedString, get: get, id: true}
}

func (f *attrField[T, V]) bind(s *Schema[T]) {
	f.qname = xml.Name{Space: f.space, Local: f.local}
	s.addAttr(f)
}

func (f *attrField[T, V]) name() xml.Name { return f.qname }

func (f *attrField[T, V]) decode(c *Context, r xmlcursor.Reader, rec *T, text string, owner xml.Name) {
	v, err := f.adapter.Unmarshal(text)
	if err != nil {
		adapterError(c, owner, f.qname, r.Pos(), f.adapter, err)
		return
	}
	*f.get(rec) = v
	if f.id {
		if id := any(v).(string); id != "" {
			c.registerID(r, id, rec)
		}
	}
}

func (f *attrField[T, V]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	text, ok, err := f.adapter.Marshal(*f.get(rec))
	if err != nil {
		adapterError(c, owner, f.qname, xmlcursor.Position{}, f.adapter, err)
		return
	}
	if ok {
		w.Attr(f.qname, text)
	}
}

// Character content

type valueField[T, V any] struct {
	adapter Adapter[V]
	get     func(*T) *V
}

// Value maps the character content of the element itself.
func Value[T, V any](a Adapter[V], get func(*T) *V) Field[T] {
	return &valueField[T, V]{adapter: a, get: get}
}

func (f *valueField[T, V]) bind(s *Schema[T]) {
	if s.value != nil {
		panic("binding: second value field in " + s.Type.Local)
	}
	s.value = f
}

func (f *valueField[T, V]) name() xml.Name { return xml.Name{Local: "value"} }

func (f *valueField[T, V]) decode(c *Context, r xmlcursor.Reader, rec *T, text string, owner xml.Name) {
	v, err := f.adapter.Unmarshal(text)
	if err != nil {
		adapterError(c, owner, f.name(), r.Pos(), f.adapter, err)
		return
	}
	*f.get(rec) = v
}

func (f *valueField[T, V]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	text, ok, err := f.adapter.Marshal(*f.get(rec))
	if err != nil {
		adapterError(c, owner, f.name(), xmlcursor.Position{}, f.adapter, err)
		return
	}
	if ok {
		w.Characters(text)
	}
}

// elemBase carries the name of an element field; the namespace is taken
// from the owning schema.
type elemBase struct {
	local string
	qname xml.Name
}

func (b *elemBase) bindName(ns string) {
	b.qname = xml.Name{Space: ns, Local: b.local}
}

func (b *elemBase) names() []xml.Name { return []xml.Name{b.qname} }

func (b *elemBase) start(w xmlcursor.Writer) {
	w.StartElement(b.qname)
}

// writeText writes one element holding text.
func (b *elemBase) writeText(w xmlcursor.Writer, text string) {
	w.StartElement(b.qname)
	w.Characters(text)
	w.EndElement()
}

// Scalar elements

type scalarField[T, V any] struct {
	elemBase
	adapter  Adapter[V]
	get      func(*T) *V
	required bool
}

// Scalar maps a single element holding text. A later occurrence overwrites
// an earlier one.
func Scalar[T, V any](local string, a Adapter[V], get func(*T) *V) Field[T] {
	return &scalarField[T, V]{elemBase: elemBase{local: local}, adapter: a, get: get}
}

func (f *scalarField[T, V]) bind(s *Schema[T]) {
	f.bindName(s.Type.Space)
	s.addElem(f)
}

func (f *scalarField[T, V]) setRequired() { f.required = true }

func (f *scalarField[T, V]) slot(c *Context, rec *T, owner xml.Name) slot {
	return &scalarSlot[T, V]{c: c, f: f, rec: rec, owner: owner}
}

type scalarSlot[T, V any] struct {
	c     *Context
	f     *scalarField[T, V]
	rec   *T
	owner xml.Name
}

func (s *scalarSlot[T, V]) decode(r xmlcursor.Reader) {
	v, err := s.f.adapter.Unmarshal(r.Text())
	if err != nil {
		adapterError(s.c, s.owner, s.f.qname, r.Pos(), s.f.adapter, err)
		return
	}
	*s.f.get(s.rec) = v
}

func (s *scalarSlot[T, V]) commit() {}

func (f *scalarField[T, V]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	text, ok, err := f.adapter.Marshal(*f.get(rec))
	if err != nil {
		adapterError(c, owner, f.qname, xmlcursor.Position{}, f.adapter, err)
		return
	}
	if !ok {
		if f.required {
			c.report(Condition{
				Kind:  MissingRequired,
				Type:  owner,
				Name:  f.qname,
				Field: fieldName(f.local),
			})
		}
		return
	}
	f.writeText(w, text)
}

// Repeated scalar elements

type scalarsField[T, V any] struct {
	elemBase
	adapter Adapter[V]
	get     func(*T) *[]V
}

// Scalars maps a repeated element holding text to an ordered slice.
func Scalars[T, V any](local string, a Adapter[V], get func(*T) *[]V) Field[T] {
	return &scalarsField[T, V]{elemBase: elemBase{local: local}, adapter: a, get: get}
}

func (f *scalarsField[T, V]) bind(s *Schema[T]) {
	f.bindName(s.Type.Space)
	s.addElem(f)
}

func (f *scalarsField[T, V]) slot(c *Context, rec *T, owner xml.Name) slot {
	return &scalarsSlot[T, V]{c: c, f: f, rec: rec, owner: owner, acc: []V{}}
}

type scalarsSlot[T, V any] struct {
	c     *Context
	f     *scalarsField[T, V]
	rec   *T
	owner xml.Name
	acc   []V
}

func (s *scalarsSlot[T, V]) decode(r xmlcursor.Reader) {
	v, err := s.f.adapter.Unmarshal(r.Text())
	if err != nil {
		adapterError(s.c, s.owner, s.f.qname, r.Pos(), s.f.adapter, err)
		return
	}
	s.acc = append(s.acc, v)
}

func (s *scalarsSlot[T, V]) commit() {
	*s.f.get(s.rec) = s.acc
}

func (f *scalarsField[T, V]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	for _, v := range *f.get(rec) {
		text, ok, err := f.adapter.Marshal(v)
		if err != nil {
			adapterError(c, owner, f.qname, xmlcursor.Position{}, f.adapter, err)
			continue
		}
		if !ok {
			nullValue(c, owner, f.qname)
			continue
		}
		f.writeText(w, text)
	}
}

// Unordered string sets

type uniqueField[T any] struct {
	elemBase
	adapter Adapter[string]
	get     func(*T) **Set
}

// Unique maps a repeated element holding text to a de-duplicated Set.
func Unique[T any](local string, a Adapter[string], get func(*T) **Set) Field[T] {
	return &uniqueField[T]{elemBase: elemBase{local: local}, adapter: a, get: get}
}

func (f *uniqueField[T]) bind(s *Schema[T]) {
	f.bindName(s.Type.Space)
	s.addElem(f)
}

func (f *uniqueField[T]) slot(c *Context, rec *T, owner xml.Name) slot {
	return &uniqueSlot[T]{c: c, f: f, rec: rec, owner: owner, acc: NewSet()}
}

type uniqueSlot[T any] struct {
	c     *Context
	f     *uniqueField[T]
	rec   *T
	owner xml.Name
	acc   *Set
}

func (s *uniqueSlot[T]) decode(r xmlcursor.Reader) {
	v, err := s.f.adapter.Unmarshal(r.Text())
	if err != nil {
		adapterError(s.c, s.owner, s.f.qname, r.Pos(), s.f.adapter, err)
		return
	}
	s.acc.Add(v)
}

func (s *uniqueSlot[T]) commit() {
	dst := s.f.get(s.rec)
	if *dst == nil {
		*dst = s.acc
		return
	}
	(*dst).Clear()
	for _, v := range s.acc.Values() {
		(*dst).Add(v)
	}
}

func (f *uniqueField[T]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	for _, v := range (*f.get(rec)).Values() {
		text, ok, err := f.adapter.Marshal(v)
		if err != nil {
			adapterError(c, owner, f.qname, xmlcursor.Position{}, f.adapter, err)
			continue
		}
		if ok {
			f.writeText(w, text)
		}
	}
}

// Singular nested records

type oneField[T, V any] struct {
	elemBase
	schema *Schema[V]
	get    func(*T) **V
}

// One maps a single nested record. A later occurrence overwrites an
// earlier one.
func One[T, V any](local string, s *Schema[V], get func(*T) **V) Field[T] {
	return &oneField[T, V]{elemBase: elemBase{local: local}, schema: s, get: get}
}

func (f *oneField[T, V]) bind(s *Schema[T]) {
	f.bindName(s.Type.Space)
	s.addElem(f)
}

func (f *oneField[T, V]) slot(c *Context, rec *T, owner xml.Name) slot {
	return &oneSlot[T, V]{c: c, f: f, rec: rec}
}

type oneSlot[T, V any] struct {
	c   *Context
	f   *oneField[T, V]
	rec *T
}

func (s *oneSlot[T, V]) decode(r xmlcursor.Reader) {
	*s.f.get(s.rec) = s.f.schema.Decode(s.c, r)
}

func (s *oneSlot[T, V]) commit() {}

func (f *oneField[T, V]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	v := *f.get(rec)
	if v == nil {
		return
	}
	f.start(w)
	f.schema.Encode(c, w, v)
	w.EndElement()
}

// Repeated nested records

type manyField[T, V any] struct {
	elemBase
	schema   *Schema[V]
	get      func(*T) *[]*V
	nillable bool
}

// Many maps a repeated nested record to an ordered slice. Members decoded
// from xsi:nil elements are kept as nil.
func Many[T, V any](local string, s *Schema[V], get func(*T) *[]*V) Field[T] {
	return &manyField[T, V]{elemBase: elemBase{local: local}, schema: s, get: get}
}

func (f *manyField[T, V]) bind(s *Schema[T]) {
	f.bindName(s.Type.Space)
	s.addElem(f)
}

func (f *manyField[T, V]) setNillable() { f.nillable = true }

func (f *manyField[T, V]) slot(c *Context, rec *T, owner xml.Name) slot {
	return &manySlot[T, V]{c: c, f: f, rec: rec, acc: []*V{}}
}

type manySlot[T, V any] struct {
	c   *Context
	f   *manyField[T, V]
	rec *T
	acc []*V
}

func (s *manySlot[T, V]) decode(r xmlcursor.Reader) {
	s.acc = append(s.acc, s.f.schema.Decode(s.c, r))
}

func (s *manySlot[T, V]) commit() {
	*s.f.get(s.rec) = s.acc
}

func (f *manyField[T, V]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	for _, v := range *f.get(rec) {
		if v == nil && !f.nillable {
			nullValue(c, owner, f.qname)
			continue
		}
		f.start(w)
		f.schema.Encode(c, w, v)
		w.EndElement()
	}
}

// Keyed nested records

type indexedField[T, V any] struct {
	elemBase
	schema *Schema[V]
	get    func(*T) **Keyed[V]
}

// Indexed maps a repeated nested record to a Keyed collection. V must
// implement Keyer; a later record with the same key replaces the earlier
// one.
func Indexed[T, V any](local string, s *Schema[V], get func(*T) **Keyed[V]) Field[T] {
	return &indexedField[T, V]{elemBase: elemBase{local: local}, schema: s, get: get}
}

func (f *indexedField[T, V]) bind(s *Schema[T]) {
	if _, ok := any(new(V)).(Keyer); !ok {
		panic("binding: " + s.Type.Local + "/" + f.local + ": element type does not implement Keyer")
	}
	f.bindName(s.Type.Space)
	s.addElem(f)
}

func (f *indexedField[T, V]) slot(c *Context, rec *T, owner xml.Name) slot {
	return &indexedSlot[T, V]{c: c, f: f, rec: rec, acc: NewKeyed[V]()}
}

type indexedSlot[T, V any] struct {
	c   *Context
	f   *indexedField[T, V]
	rec *T
	acc *Keyed[V]
}

func (s *indexedSlot[T, V]) decode(r xmlcursor.Reader) {
	s.acc.Add(s.f.schema.Decode(s.c, r))
}

func (s *indexedSlot[T, V]) commit() {
	dst := s.f.get(s.rec)
	if *dst == nil {
		*dst = s.acc
		return
	}
	(*dst).Clear()
	for _, key := range s.acc.Keys() {
		v, _ := s.acc.Get(key)
		(*dst).Put(key, v)
	}
}

func (f *indexedField[T, V]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	for _, v := range (*f.get(rec)).Values() {
		if v == nil {
			nullValue(c, owner, f.qname)
			continue
		}
		f.start(w)
		f.schema.Encode(c, w, v)
		w.EndElement()
	}
}

// Wrapped scalar lists

type wrappedField[T, V any] struct {
	elemBase
	item    elemBase
	adapter Adapter[V]
	get     func(*T) *[]V
}

// Wrapped maps a wrapper element around repeated item elements holding
// text, such as depends-on around ejb-name. The wrapper is written
// whenever the slice is non-nil, even when it is empty.
func Wrapped[T, V any](wrapper, item string, a Adapter[V], get func(*T) *[]V) Field[T] {
	return &wrappedField[T, V]{
		elemBase: elemBase{local: wrapper},
		item:     elemBase{local: item},
		adapter:  a,
		get:      get,
	}
}

func (f *wrappedField[T, V]) bind(s *Schema[T]) {
	f.bindName(s.Type.Space)
	f.item.bindName(s.Type.Space)
	s.addElem(f)
}

func (f *wrappedField[T, V]) slot(c *Context, rec *T, owner xml.Name) slot {
	return &wrappedSlot[T, V]{c: c, f: f, rec: rec, owner: owner}
}

type wrappedSlot[T, V any] struct {
	c     *Context
	f     *wrappedField[T, V]
	rec   *T
	owner xml.Name
	acc   []V
}

// decode starts a fresh list on every wrapper occurrence; the last one wins.
func (s *wrappedSlot[T, V]) decode(r xmlcursor.Reader) {
	s.acc = []V{}
	for _, child := range r.Children() {
		if child.Name() != s.f.item.qname {
			s.c.report(Condition{
				Kind:     UnexpectedElement,
				Type:     s.owner,
				Name:     child.Name(),
				Field:    fieldName(s.f.local),
				Expected: s.f.item.names(),
				Pos:      child.Pos(),
			})
			continue
		}
		v, err := s.f.adapter.Unmarshal(child.Text())
		if err != nil {
			adapterError(s.c, s.owner, s.f.item.qname, child.Pos(), s.f.adapter, err)
			continue
		}
		s.acc = append(s.acc, v)
	}
}

func (s *wrappedSlot[T, V]) commit() {
	*s.f.get(s.rec) = s.acc
}

func (f *wrappedField[T, V]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	items := *f.get(rec)
	if items == nil {
		return
	}
	f.start(w)
	for _, v := range items {
		text, ok, err := f.adapter.Marshal(v)
		if err != nil {
			adapterError(c, owner, f.item.qname, xmlcursor.Position{}, f.adapter, err)
			continue
		}
		if !ok {
			nullValue(c, owner, f.qname)
			continue
		}
		f.item.writeText(w, text)
	}
	w.EndElement()
}

// Choices

// Case is one alternative of a Choice, selected by element name when
// decoding and by the member's Go type when encoding.
type Case[I any] interface {
	bindName(ns string)
	names() []xml.Name
	decode(c *Context, r xmlcursor.Reader) I
	encode(c *Context, w xmlcursor.Writer, item I) bool
}

type variant[I, V any] struct {
	elemBase
	schema *Schema[V]
	wrap   func(*V) I
	unwrap func(I) (*V, bool)
}

// Variant declares a Choice case: elements named local decode with s and
// are stored through wrap; members for which unwrap succeeds encode as
// local.
func Variant[I, V any](local string, s *Schema[V], wrap func(*V) I, unwrap func(I) (*V, bool)) Case[I] {
	return &variant[I, V]{elemBase: elemBase{local: local}, schema: s, wrap: wrap, unwrap: unwrap}
}

func (v *variant[I, V]) decode(c *Context, r xmlcursor.Reader) I {
	rec := v.schema.Decode(c, r)
	if rec == nil {
		var zero I
		return zero
	}
	return v.wrap(rec)
}

func (v *variant[I, V]) encode(c *Context, w xmlcursor.Writer, item I) bool {
	rec, ok := v.unwrap(item)
	if !ok {
		return false
	}
	v.start(w)
	v.schema.Encode(c, w, rec)
	w.EndElement()
	return true
}

type choiceField[T, I any] struct {
	elemBase
	cases    []Case[I]
	expected []xml.Name
	byName   map[xml.Name]Case[I]
	get      func(*T) *[]I
	always   bool
}

// Choice maps a wrapper element whose children are drawn from several
// record types, such as enterprise-beans.
func Choice[T, I any](wrapper string, get func(*T) *[]I, cases ...Case[I]) Field[T] {
	return &choiceField[T, I]{elemBase: elemBase{local: wrapper}, cases: cases, get: get}
}

func (f *choiceField[T, I]) bind(s *Schema[T]) {
	f.bindName(s.Type.Space)
	f.byName = make(map[xml.Name]Case[I])
	for _, cs := range f.cases {
		cs.bindName(s.Type.Space)
		for _, n := range cs.names() {
			f.byName[n] = cs
			f.expected = append(f.expected, n)
		}
	}
	s.addElem(f)
}

func (f *choiceField[T, I]) setAlways() { f.always = true }

func (f *choiceField[T, I]) slot(c *Context, rec *T, owner xml.Name) slot {
	return &choiceSlot[T, I]{c: c, f: f, rec: rec, owner: owner, acc: []I{}}
}

type choiceSlot[T, I any] struct {
	c     *Context
	f     *choiceField[T, I]
	rec   *T
	owner xml.Name
	acc   []I
}

func (s *choiceSlot[T, I]) decode(r xmlcursor.Reader) {
	for _, child := range r.Children() {
		cs, ok := s.f.byName[child.Name()]
		if !ok {
			s.c.report(Condition{
				Kind:     UnexpectedElement,
				Type:     s.owner,
				Name:     child.Name(),
				Field:    fieldName(s.f.local),
				Expected: s.f.expected,
				Pos:      child.Pos(),
			})
			continue
		}
		s.acc = append(s.acc, cs.decode(s.c, child))
	}
}

func (s *choiceSlot[T, I]) commit() {
	*s.f.get(s.rec) = s.acc
}

func (f *choiceField[T, I]) encode(c *Context, w xmlcursor.Writer, rec *T, owner xml.Name) {
	items := *f.get(rec)
	if items == nil && !f.always {
		return
	}
	f.start(w)
	for _, item := range items {
		if any(item) == nil {
			nullValue(c, owner, f.qname)
			continue
		}
		written := false
		for _, cs := range f.cases {
			if cs.encode(c, w, item) {
				written = true
				break
			}
		}
		if !written {
			c.report(Condition{
				Kind:     UnexpectedElementType,
				Type:     owner,
				Name:     f.qname,
				Field:    fieldName(f.local),
				Expected: f.expected,
				Err:      fmt.Errorf("no case for %T", item),
			})
		}
	}
	w.EndElement()
}

// Modifiers

// Required marks a scalar element whose absence is reported when encoding.
func Required[T any](f Field[T]) Field[T] {
	r, ok := f.(interface{ setRequired() })
	if !ok {
		panic(fmt.Sprintf("binding: %T cannot be required", f))
	}
	r.setRequired()
	return f
}

// Nillable makes a Many field write nil members as xsi:nil elements
// instead of reporting them.
func Nillable[T any](f Field[T]) Field[T] {
	n, ok := f.(interface{ setNillable() })
	if !ok {
		panic(fmt.Sprintf("binding: %T cannot be nillable", f))
	}
	n.setNillable()
	return f
}

// Always makes a Choice write its wrapper even when the record holds no
// members.
func Always[T any](f Field[T]) Field[T] {
	a, ok := f.(interface{ setAlways() })
	if !ok {
		panic(fmt.Sprintf("binding: %T has no always-written wrapper", f))
	}
	a.setAlways()
	return f
}

// Fields concatenates field lists, for schemas built from shared groups.
func Fields[T any](groups ...[]Field[T]) []Field[T] {
	var out []Field[T]
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
