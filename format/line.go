package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/jeedd/binding"
)

// LineEncoder writes one tab separated line for the descriptor followed by
// one line per condition. Empty columns are written as "-".
type LineEncoder struct {
	w      io.Writer
	result *Result
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(r *Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.result

	fmt.Fprintf(&sb, "descriptor\t%s\t%s\t%d\n", r.Kind(), dash(r.Path), len(r.Diagnostics))
	for _, c := range r.Diagnostics {
		sb.WriteString(ConditionLine(c))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// ConditionLine formats c as position, kind, type, name, field and error.
func ConditionLine(c binding.Condition) string {
	d := buildConditionData(c)
	if d.Pos == "" && c.Pos.File != "" {
		d.Pos = c.Pos.File
	}
	return strings.Join([]string{
		"condition",
		dash(d.Pos),
		dash(d.Kind),
		dash(d.Type),
		dash(d.Name),
		dash(d.Field),
		dash(d.Error),
	}, "\t")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
