package binding

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/dhamidi/jeedd/xmlcursor"
)

type Kind int

const (
	UnexpectedElement Kind = iota + 1
	UnexpectedAttribute
	UnexpectedXsiType
	UnexpectedSubclass
	UnexpectedElementType
	AdapterError
	UnexpectedNullValue
	MissingRequired
	DuplicateID
)

func (k Kind) String() string {
	switch k {
	case UnexpectedElement:
		return "unexpected element"
	case UnexpectedAttribute:
		return "unexpected attribute"
	case UnexpectedXsiType:
		return "unexpected xsi:type"
	case UnexpectedSubclass:
		return "unexpected subclass"
	case UnexpectedElementType:
		return "unexpected element type"
	case AdapterError:
		return "adapter error"
	case UnexpectedNullValue:
		return "unexpected null value"
	case MissingRequired:
		return "missing required value"
	case DuplicateID:
		return "duplicate id"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Condition is one anomaly met while decoding or encoding. Conditions never
// stop the walk.
type Condition struct {
	Kind Kind
	// Type is the schema type being decoded or encoded.
	Type xml.Name
	// Name is the offending element, attribute or xsi:type.
	Name     xml.Name
	Field    string
	Expected []xml.Name
	Pos      xmlcursor.Position
	Err      error
}

func (c Condition) Error() string {
	return c.String()
}

func (c Condition) String() string {
	var sb strings.Builder
	if c.Pos.IsValid() || c.Pos.File != "" {
		sb.WriteString(c.Pos.String())
		sb.WriteString(": ")
	}
	sb.WriteString(c.Kind.String())
	if c.Name.Local != "" {
		fmt.Fprintf(&sb, " %s", c.Name.Local)
	}
	if c.Type.Local != "" {
		fmt.Fprintf(&sb, " in %s", c.Type.Local)
	}
	if c.Field != "" {
		fmt.Fprintf(&sb, " (field %s)", c.Field)
	}
	if c.Err != nil {
		fmt.Fprintf(&sb, ": %v", c.Err)
	}
	return sb.String()
}

func (c Condition) Unwrap() error {
	return c.Err
}

// Diagnostics is the list of conditions collected by one decode or encode.
type Diagnostics []Condition

func (d Diagnostics) Count(kind Kind) int {
	n := 0
	for _, c := range d {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (d Diagnostics) Error() string {
	lines := make([]string, len(d))
	for i, c := range d {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// Err returns d as an error, or nil when no condition was recorded.
func (d Diagnostics) Err() error {
	if len(d) == 0 {
		return nil
	}
	return d
}
