package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes records as a YAML sequence. Infinite ratios use the
// native .inf scalar.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(structured(records)); err != nil {
		return err
	}
	return enc.Close()
}
