package binding

import (
	"encoding/xml"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jeedd/xmlcursor"
)

var log = commonlog.GetLogger("jeedd.binding")

// Listener observes records as they are built or written.
type Listener interface {
	BeforeUnmarshal(rec any)
	AfterUnmarshal(rec any)
	BeforeMarshal(rec any)
	AfterMarshal(rec any)
}

type Option func(*Context)

// WithFile names the document being decoded; it is reported in positions.
func WithFile(path string) Option {
	return func(c *Context) {
		c.file = path
	}
}

func WithListener(l Listener) Option {
	return func(c *Context) {
		c.listener = l
	}
}

// WithRoot makes Unmarshal and UnmarshalInto check the name of the
// document element. A different element is reported as UnexpectedElement
// and nothing is decoded.
func WithRoot(name xml.Name) Option {
	return func(c *Context) {
		c.root = name
	}
}

func WithLogger(l commonlog.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// Context carries the state of one decode or encode call: the collected
// conditions, the xml id table and the lifecycle listener. A Context must
// not be shared between concurrent calls.
type Context struct {
	file     string
	root     xml.Name
	diags    Diagnostics
	ids      map[string]any
	listener Listener
	log      commonlog.Logger
}

func NewContext(opts ...Option) *Context {
	c := &Context{
		ids: make(map[string]any),
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) File() string {
	return c.file
}

// Diagnostics returns the conditions recorded so far.
func (c *Context) Diagnostics() Diagnostics {
	return c.diags
}

// acceptRoot reports whether r is the document element expected by
// WithRoot.
func (c *Context) acceptRoot(r xmlcursor.Reader) bool {
	if c.root.Local == "" || r.Name() == c.root {
		return true
	}
	c.report(Condition{
		Kind:     UnexpectedElement,
		Name:     r.Name(),
		Expected: []xml.Name{c.root},
		Pos:      r.Pos(),
	})
	return false
}

// Lookup returns the record registered under an xml id.
func (c *Context) Lookup(id string) (any, bool) {
	rec, ok := c.ids[id]
	return rec, ok
}

func (c *Context) report(cond Condition) {
	c.diags = append(c.diags, cond)
	c.log.Debugf("%s", cond)
}

func (c *Context) registerID(r xmlcursor.Reader, id string, rec any) {
	if _, ok := c.ids[id]; ok {
		c.report(Condition{
			Kind: DuplicateID,
			Name: xml.Name{Local: id},
			Pos:  r.Pos(),
		})
		return
	}
	c.ids[id] = rec
}

func (c *Context) beforeUnmarshal(rec any) {
	if c.listener != nil {
		c.listener.BeforeUnmarshal(rec)
	}
}

func (c *Context) afterUnmarshal(rec any) {
	if c.listener != nil {
		c.listener.AfterUnmarshal(rec)
	}
}

func (c *Context) beforeMarshal(rec any) {
	if c.listener != nil {
		c.listener.BeforeMarshal(rec)
	}
}

func (c *Context) afterMarshal(rec any) {
	if c.listener != nil {
		c.listener.AfterMarshal(rec)
	}
}
