package format

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// SpewEncoder dumps the Go values of a result, for debugging bindings.
type SpewEncoder struct {
	w      io.Writer
	result *Result
}

func NewSpewEncoder(w io.Writer) *SpewEncoder {
	return &SpewEncoder{w: w}
}

func (e *SpewEncoder) Encode(r *Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SpewEncoder) MarshalText() ([]byte, error) {
	r := e.result
	return []byte(spewConfig.Sdump(r.Descriptor, r.Diagnostics)), nil
}
