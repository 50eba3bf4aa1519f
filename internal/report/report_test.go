package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/EZ-Api/concreteness"
	"gopkg.in/yaml.v3"
)

func sampleRecords(t *testing.T) []Record {
	t.Helper()
	table, err := concreteness.NewTable(map[string]float64{"stone": 4.9, "idea": 1.6})
	if err != nil {
		t.Fatal(err)
	}
	analyzer := concreteness.New(table)
	return []Record{
		{Name: "concrete.txt", Result: analyzer.Analyze("stone stone", concreteness.Options{Explain: true})},
		{Name: "mixed.txt", Result: analyzer.Analyze("stone idea zebra", concreteness.Options{})},
		{Name: "missing.txt", Err: errors.New("not found")},
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", "text", "JSON", "yaml", "yml"} {
		if _, err := New(name, false); err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
	}
	if _, err := New("xml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sampleRecords(t)); err != nil {
		t.Fatalf("Format: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0]["ratio"] != "+Inf" {
		t.Fatalf("expected +Inf ratio, got %v", got[0]["ratio"])
	}
	if got[1]["ratio"] != 1.0 || got[1]["unrated"] != 1.0 {
		t.Fatalf("unexpected mixed record %v", got[1])
	}
	breakdown, ok := got[0]["breakdown"].([]any)
	if !ok || len(breakdown) != 2 {
		t.Fatalf("expected breakdown for explained record, got %v", got[0]["breakdown"])
	}
	if _, ok := got[1]["breakdown"]; ok {
		t.Fatalf("expected no breakdown for plain record")
	}
	if got[2]["error"] != "not found" {
		t.Fatalf("expected error field, got %v", got[2])
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLFormatter{}).Format(&buf, sampleRecords(t)); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(buf.String(), "ratio: .inf") {
		t.Fatalf("expected .inf ratio in %q", buf.String())
	}

	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if ratio, ok := got[0]["ratio"].(float64); !ok || !math.IsInf(ratio, 1) {
		t.Fatalf("expected +Inf after round trip, got %v", got[0]["ratio"])
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, sampleRecords(t)); err != nil {
		t.Fatalf("Format: %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Fatalf("expected header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "+Inf") || !strings.Contains(lines[1], "4.90") {
		t.Fatalf("unexpected concrete row %q", lines[1])
	}
	if !strings.Contains(lines[3], "error: not found") {
		t.Fatalf("unexpected error row %q", lines[3])
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes without color")
	}
	if !strings.Contains(out, "stone  4.90") {
		t.Fatalf("expected breakdown in %q", out)
	}
}

func TestTextFormatterWideNames(t *testing.T) {
	records := []Record{
		{Name: "文書.txt", Result: concreteness.Result{}},
		{Name: "a.txt", Result: concreteness.Result{}},
	}
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, records); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// "文書.txt" is 8 columns wide, so "a.txt" is padded to match.
	if !strings.HasPrefix(lines[2], "a.txt     ") {
		t.Fatalf("expected width-aware padding, got %q", lines[2])
	}
}

func TestFormatValue(t *testing.T) {
	if FormatValue(math.Inf(1)) != "+Inf" || FormatValue(2.5) != "2.50" || FormatValue(0) != "0.00" {
		t.Fatalf("unexpected formatting")
	}
}

func TestFloatMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Float(0.5))
	if err != nil || string(b) != "0.5" {
		t.Fatalf("got %s %v", b, err)
	}
	if _, err := json.Marshal(Float(math.NaN())); err == nil {
		t.Fatalf("expected error for NaN")
	}
}
