package format

import (
	"encoding"
	"encoding/xml"
	"io"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/jee"
	"github.com/dhamidi/jeedd/xmlcursor"
)

// Result is one decoded descriptor file.
type Result struct {
	Path        string
	Descriptor  jee.Descriptor
	Diagnostics binding.Diagnostics
}

// Kind returns the kind of the decoded descriptor, falling back to the
// file name when decoding produced no record.
func (r *Result) Kind() jee.Kind {
	if r.Descriptor != nil {
		return r.Descriptor.Kind()
	}
	return jee.KindForFile(r.Path)
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(r *Result) error
}

// New returns the encoder registered under name, or nil.
func New(name string, w io.Writer) Encoder {
	switch name {
	case "json":
		return NewJSONEncoder(w)
	case "yaml":
		return NewYAMLEncoder(w)
	case "line":
		return NewLineEncoder(w)
	case "spew":
		return NewSpewEncoder(w)
	}
	return nil
}

// Names lists the encoders New knows.
var Names = []string{"json", "yaml", "line", "spew"}

type resultData struct {
	Path       string          `json:"path,omitempty"`
	Kind       string          `json:"kind"`
	Descriptor jee.Descriptor  `json:"descriptor"`
	Conditions []conditionData `json:"conditions,omitempty"`
}

type conditionData struct {
	Kind     string   `json:"kind"`
	Pos      string   `json:"pos,omitempty"`
	Type     string   `json:"type,omitempty"`
	Name     string   `json:"name,omitempty"`
	Field    string   `json:"field,omitempty"`
	Expected []string `json:"expected,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func buildResultData(r *Result) resultData {
	data := resultData{
		Path:       r.Path,
		Kind:       r.Kind().String(),
		Descriptor: r.Descriptor,
	}
	for _, c := range r.Diagnostics {
		data.Conditions = append(data.Conditions, buildConditionData(c))
	}
	return data
}

func buildConditionData(c binding.Condition) conditionData {
	data := conditionData{
		Kind:  c.Kind.String(),
		Type:  nameStr(c.Type),
		Name:  nameStr(c.Name),
		Field: c.Field,
	}
	if c.Pos.IsValid() {
		data.Pos = c.Pos.String()
	}
	for _, n := range c.Expected {
		data.Expected = append(data.Expected, nameStr(n))
	}
	if c.Err != nil {
		data.Error = c.Err.Error()
	}
	return data
}

// nameStr drops the javaee namespace, which every descriptor element
// shares.
func nameStr(n xml.Name) string {
	if n.Space == jee.Namespace {
		return n.Local
	}
	return xmlcursor.FormatName(n)
}
