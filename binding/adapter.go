package binding

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Adapter converts between the text of an element or attribute and a typed
// scalar. Marshal reports ok=false when the value is absent and nothing
// should be written.
type Adapter[V any] interface {
	Unmarshal(text string) (V, error)
	Marshal(v V) (text string, ok bool, err error)
	String() string
}

var (
	// CollapsedString implements xs:token: runs of XML whitespace become one
	// space and leading and trailing whitespace is dropped.
	CollapsedString Adapter[string] = collapsedString{}
	// String keeps the text verbatim.
	String Adapter[string] = verbatimString{}
	// Boolean accepts "1" and "true" as true; any other literal is false.
	Boolean Adapter[*bool] = boolean{}
	Int     Adapter[*int]  = integer{}
)

func isXMLSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Collapse applies xs:token whitespace collapsing to s.
func Collapse(s string) string {
	return strings.Join(strings.FieldsFunc(s, isXMLSpace), " ")
}

type collapsedString struct{}

func (collapsedString) Unmarshal(text string) (string, error) {
	return Collapse(text), nil
}

func (collapsedString) Marshal(v string) (string, bool, error) {
	if v == "" {
		return "", false, nil
	}
	return Collapse(v), true, nil
}

func (collapsedString) String() string { return "CollapsedString" }

type verbatimString struct{}

func (verbatimString) Unmarshal(text string) (string, error) {
	return text, nil
}

func (verbatimString) Marshal(v string) (string, bool, error) {
	return v, v != "", nil
}

func (verbatimString) String() string { return "String" }

type boolean struct{}

func (boolean) Unmarshal(text string) (*bool, error) {
	text = Collapse(text)
	b := text == "1" || text == "true"
	return &b, nil
}

func (boolean) Marshal(v *bool) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	return strconv.FormatBool(*v), true, nil
}

func (boolean) String() string { return "Boolean" }

type integer struct{}

func (integer) Unmarshal(text string) (*int, error) {
	n, err := strconv.Atoi(Collapse(text))
	if err != nil {
		return nil, fmt.Errorf("parse int: %w", err)
	}
	return &n, nil
}

func (integer) Marshal(v *int) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	return strconv.Itoa(*v), true, nil
}

func (integer) String() string { return "Int" }

// Enum returns an adapter accepting exactly the given literals. The empty
// value is treated as absent.
func Enum[E ~string](name string, values ...E) Adapter[E] {
	return enum[E]{name: name, values: values}
}

type enum[E ~string] struct {
	name   string
	values []E
}

func (a enum[E]) Unmarshal(text string) (E, error) {
	v := E(Collapse(text))
	if !slices.Contains(a.values, v) {
		return "", fmt.Errorf("%q is not a valid %s", string(v), a.name)
	}
	return v, nil
}

func (a enum[E]) Marshal(v E) (string, bool, error) {
	if v == "" {
		return "", false, nil
	}
	if !slices.Contains(a.values, v) {
		return "", false, fmt.Errorf("%q is not a valid %s", string(v), a.name)
	}
	return string(v), true, nil
}

func (a enum[E]) String() string { return a.name }

// Bool returns a pointer to b, for populating optional boolean fields.
func Bool(b bool) *bool {
	return &b
}

// IntPtr returns a pointer to n, for populating optional integer fields.
func IntPtr(n int) *int {
	return &n
}
