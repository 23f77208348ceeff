package format

import (
	"io"

	"sigs.k8s.io/yaml"
)

// YAMLEncoder writes the same document as JSONEncoder, as YAML.
type YAMLEncoder struct {
	w      io.Writer
	result *Result
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(r *Result) error {
	e.result = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildResultData(e.result))
}
