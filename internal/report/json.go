package report

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes records as an indented JSON array. A ratio of +Inf
// is written as the string "+Inf".
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(structured(records))
}
