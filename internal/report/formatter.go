// Package report renders analysis results for the CLI.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/EZ-Api/concreteness"
)

// Record is one named result. Err marks inputs that could not be analysed.
type Record struct {
	Name   string
	Result concreteness.Result
	Err    error
}

// Formatter writes records to w.
type Formatter interface {
	Format(w io.Writer, records []Record) error
}

// New returns the formatter for name: text, json or yaml.
func New(name string, color bool) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml", "yml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (supported: text, json, yaml)", name)
	}
}

// FormatValue renders a metric with two decimals; +Inf stays "+Inf".
func FormatValue(v float64) string {
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Float is a float64 whose JSON form survives +Inf.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"+Inf"`), nil
	}
	if math.IsInf(v, -1) || math.IsNaN(v) {
		return nil, fmt.Errorf("unsupported value %v", v)
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

type tokenRecord struct {
	Token  string   `json:"token" yaml:"token"`
	Rating *float64 `json:"rating" yaml:"rating"`
}

type thresholdRecord struct {
	VeryConcrete float64 `json:"very_concrete" yaml:"very_concrete"`
	VeryAbstract float64 `json:"very_abstract" yaml:"very_abstract"`
}

// Summary is the serialisable form of a Record shared by the JSON and YAML
// formatters and the HTTP API.
type Summary struct {
	Name        string          `json:"name,omitempty" yaml:"name,omitempty"`
	Error       string          `json:"error,omitempty" yaml:"error,omitempty"`
	Tokens      int             `json:"tokens" yaml:"tokens"`
	Rated       int             `json:"rated" yaml:"rated"`
	Unrated     int             `json:"unrated" yaml:"unrated"`
	Concrete    int             `json:"concrete" yaml:"concrete"`
	Abstract    int             `json:"abstract" yaml:"abstract"`
	Average     Float           `json:"average" yaml:"average"`
	Ratio       Float           `json:"ratio" yaml:"ratio"`
	Denominator string          `json:"denominator" yaml:"denominator"`
	Thresholds  thresholdRecord `json:"thresholds" yaml:"thresholds"`
	Breakdown   []tokenRecord   `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
}

// Summarize converts r into its serialisable form.
func Summarize(r Record) Summary {
	out := Summary{Name: r.Name}
	if r.Err != nil {
		out.Error = r.Err.Error()
		return out
	}
	res := r.Result
	out.Tokens = res.Tokens
	out.Rated = res.Rated
	out.Unrated = res.Unrated
	out.Concrete = res.Concrete
	out.Abstract = res.Abstract
	out.Average = Float(res.Average)
	out.Ratio = Float(res.Ratio)
	out.Denominator = res.Denominator.String()
	out.Thresholds = thresholdRecord{
		VeryConcrete: res.Thresholds.VeryConcrete,
		VeryAbstract: res.Thresholds.VeryAbstract,
	}
	for _, tr := range res.Breakdown {
		item := tokenRecord{Token: tr.Token}
		if v, ok := tr.Rating.Get(); ok {
			item.Rating = &v
		}
		out.Breakdown = append(out.Breakdown, item)
	}
	return out
}

func structured(records []Record) []Summary {
	items := make([]Summary, 0, len(records))
	for _, r := range records {
		items = append(items, Summarize(r))
	}
	return items
}
