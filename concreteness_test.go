package concreteness

import (
	"math"
	"testing"
)

func fixtureAnalyzer(t *testing.T, ratings map[string]float64) Analyzer {
	t.Helper()
	table, err := NewTable(ratings)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return NewWithStopwords(table, NewStopwordSet("stopword"))
}

func TestAvgTextConcreteness(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{
		"concrete": 5.0,
		"abstract": 2.0,
		"mixed":    3.5,
		"stopword": 3.0,
	})

	tests := []struct {
		text             string
		includeStopwords bool
		onlyRated        bool
		want             float64
	}{
		{"concrete word", false, true, 5.0},
		{"abstract concept", false, true, 2.0},
		{"mixed concrete abstract", false, true, 3.5},
		{"", false, true, 0.0},
		{"unrated word", false, true, 0.0},
		{"concrete stopword abstract", true, true, 3.33},
		{"concrete stopword abstract", false, false, 3.5},
		{"concrete word", false, false, 2.5},
	}

	for _, tt := range tests {
		opts := Options{IncludeStopwords: tt.includeStopwords, Denominator: DenominatorFor(tt.onlyRated)}
		got := analyzer.AvgTextConcreteness(tt.text, opts)
		if math.Round(got*100)/100 != tt.want {
			t.Errorf("AvgTextConcreteness(%q, %+v) = %v, want %v", tt.text, opts, got, tt.want)
		}
	}
}

func TestAvgTextConcretenessEmptyForAllFlags(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"concrete": 5.0})
	for _, include := range []bool{false, true} {
		for _, d := range []Denominator{DenominatorAuto, DenominatorRated, DenominatorAll} {
			if got := analyzer.AvgTextConcreteness("", Options{IncludeStopwords: include, Denominator: d}); got != 0 {
				t.Fatalf("expected 0 for empty text (stopwords=%v, denominator=%v), got %v", include, d, got)
			}
		}
	}
}

func TestAvgTextConcretenessOnlyStopwords(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"stopword": 3.0})
	if got := analyzer.AvgTextConcreteness("stopword stopword", Options{Denominator: DenominatorAll}); got != 0 {
		t.Fatalf("expected 0 when every token is filtered, got %v", got)
	}
}

func TestAvgDenominatorsAgreeWhenAllRated(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"apple": 5.0, "idea": 1.5, "story": 3.1})
	text := "Apple idea, story apple."
	rated := analyzer.AvgTextConcreteness(text, Options{Denominator: DenominatorRated})
	all := analyzer.AvgTextConcreteness(text, Options{Denominator: DenominatorAll})
	if rated != all {
		t.Fatalf("expected equal averages, got rated=%v all=%v", rated, all)
	}
	if rated < MinRating || rated > MaxRating {
		t.Fatalf("expected average within rating bounds, got %v", rated)
	}
}

func TestAvgDilutionNeverIncreases(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"apple": 5.0, "idea": 1.5})
	texts := []string{
		"apple unknown",
		"idea unknown unknown apple",
		"unknown",
		"apple idea idea zebra",
	}
	for _, text := range texts {
		rated := analyzer.AvgTextConcreteness(text, Options{Denominator: DenominatorRated})
		all := analyzer.AvgTextConcreteness(text, Options{Denominator: DenominatorAll})
		if all > rated {
			t.Errorf("%q: diluted average %v exceeds rated average %v", text, all, rated)
		}
	}
}

func TestConcreteAbstractRatio(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{
		"pebble":   5.0,
		"lantern":  4.0,
		"moment":   3.0,
		"notion":   2.0,
		"essence":  1.0,
		"concrete": 4.5,
		"abstract": 1.5,
		"stopword": 3.0,
	})

	tests := []struct {
		text             string
		includeStopwords bool
		concrete         float64
		abstract         float64
		want             float64
	}{
		{"concrete abstract", false, 4.0, 2.0, 1.0},
		{"pebble lantern moment notion essence", false, 4.0, 2.0, 1.0},
		{"pebble pebble moment essence", false, 4.0, 2.0, 2.0},
		{"moment moment moment", false, 4.0, 2.0, 0.0},
		{"pebble pebble", false, 4.0, 2.0, math.Inf(1)},
		{"", false, 4.0, 2.0, 0.0},
		{"unrated", false, 4.0, 2.0, 0.0},
		{"concrete stopword abstract", true, 4.0, 2.0, 1.0},
		{"concrete stopword abstract", false, 4.0, 2.0, 1.0},
		{"lantern notion", false, 3.5, 2.5, 1.0},
		{"essence essence pebble", false, 4.0, 2.0, 0.5},
		{"essence", false, 4.0, 2.0, 0.0},
	}

	for _, tt := range tests {
		opts := Options{
			IncludeStopwords: tt.includeStopwords,
			Thresholds:       &Thresholds{VeryConcrete: tt.concrete, VeryAbstract: tt.abstract},
		}
		got := analyzer.ConcreteAbstractRatio(tt.text, opts)
		if got != tt.want {
			t.Errorf("ConcreteAbstractRatio(%q, %v/%v) = %v, want %v", tt.text, tt.concrete, tt.abstract, got, tt.want)
		}
	}
}

func TestConcreteAbstractRatioDefaultThresholds(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"pebble": 5.0, "moment": 3.0})
	res := analyzer.Analyze("pebble pebble", Options{})
	if res.Thresholds != DefaultThresholds() {
		t.Fatalf("expected default thresholds, got %+v", res.Thresholds)
	}
	if !math.IsInf(res.Ratio, 1) || res.Concrete != 2 || res.Abstract != 0 {
		t.Fatalf("expected +Inf with concrete=2 abstract=0, got %+v", res)
	}

	res = analyzer.Analyze("moment moment moment", Options{})
	if res.Ratio != 0 || res.Concrete != 0 || res.Abstract != 0 {
		t.Fatalf("expected neutral band to yield 0, got %+v", res)
	}
}

// Overlapping bands are accepted as-is: the concrete comparison runs first.
func TestConcreteAbstractRatioOverlappingThresholds(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"moment": 3.0, "notion": 2.0, "pebble": 5.0})

	inverted := &Thresholds{VeryConcrete: 2.0, VeryAbstract: 4.0}
	res := analyzer.Analyze("moment notion pebble", Options{Thresholds: inverted})
	if res.Concrete != 3 || res.Abstract != 0 || !math.IsInf(res.Ratio, 1) {
		t.Fatalf("inverted thresholds: got concrete=%d abstract=%d ratio=%v", res.Concrete, res.Abstract, res.Ratio)
	}

	equal := &Thresholds{VeryConcrete: 3.0, VeryAbstract: 3.0}
	res = analyzer.Analyze("moment notion", Options{Thresholds: equal})
	if res.Concrete != 1 || res.Abstract != 1 || res.Ratio != 1 {
		t.Fatalf("equal thresholds: got concrete=%d abstract=%d ratio=%v", res.Concrete, res.Abstract, res.Ratio)
	}
}

func TestAnalyzeExplainBreakdown(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"apple": 5.0, "idea": 1.5})
	res := analyzer.Analyze("Apple, idea and zebra apple", Options{Explain: true})

	want := []TokenRating{
		{Token: "apple", Rating: KnownRating(5.0)},
		{Token: "idea", Rating: KnownRating(1.5)},
		{Token: "and", Rating: Unknown()},
		{Token: "zebra", Rating: Unknown()},
		{Token: "apple", Rating: KnownRating(5.0)},
	}
	if len(res.Breakdown) != len(want) {
		t.Fatalf("expected %d breakdown items, got %d: %+v", len(want), len(res.Breakdown), res.Breakdown)
	}
	for i := range want {
		if res.Breakdown[i] != want[i] {
			t.Fatalf("breakdown[%d] = %+v, want %+v", i, res.Breakdown[i], want[i])
		}
	}
	if res.Tokens != 5 || res.Rated != 3 || res.Unrated != 2 {
		t.Fatalf("unexpected counts %+v", res)
	}
	if res.Sum != 11.5 {
		t.Fatalf("expected sum 11.5, got %v", res.Sum)
	}
}

func TestAnalyzeWithoutExplainHasNoBreakdown(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"apple": 5.0})
	if res := analyzer.Analyze("apple", Options{}); res.Breakdown != nil {
		t.Fatalf("expected no breakdown, got %+v", res.Breakdown)
	}
}

func TestResolveDenominatorAuto(t *testing.T) {
	analyzer := fixtureAnalyzer(t, map[string]float64{"apple": 5.0})
	res := analyzer.Analyze("apple zebra", Options{})
	if res.Denominator != DenominatorRated {
		t.Fatalf("expected DenominatorRated, got %v", res.Denominator)
	}
	if res.Average != 5.0 {
		t.Fatalf("expected 5.0, got %v", res.Average)
	}
}

func TestParseDenominator(t *testing.T) {
	tests := map[string]Denominator{
		"":            DenominatorAuto,
		"rated":       DenominatorRated,
		"Only-Rated":  DenominatorRated,
		"all":         DenominatorAll,
		" all_words ": DenominatorAll,
	}
	for raw, want := range tests {
		got, err := ParseDenominator(raw)
		if err != nil {
			t.Fatalf("ParseDenominator(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseDenominator(%q) = %v, want %v", raw, got, want)
		}
	}
	if _, err := ParseDenominator("median"); err == nil {
		t.Fatalf("expected error for unknown denominator")
	}
}

func TestDefaultTableFunctions(t *testing.T) {
	if r := WordConcreteness("chair"); !r.Known || r.Value != 4.58 {
		t.Fatalf("expected chair=4.58, got %v", r)
	}
	if r := WordConcreteness("xyzzy"); r.Known {
		t.Fatalf("expected xyzzy to be unknown, got %v", r)
	}

	avg := AvgTextConcreteness("The dog sat on the chair.", Options{})
	if math.Abs(avg-(4.85+4.58)/2) > 1e-9 {
		t.Fatalf("unexpected average %v", avg)
	}

	if got := ConcreteAbstractRatio("Freedom and justice.", Options{}); got != 0 {
		t.Fatalf("expected 0 for purely abstract text, got %v", got)
	}
	if got := ConcreteAbstractRatio("An apple on a table.", Options{}); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for purely concrete text, got %v", got)
	}
	if got := Analyze("apple justice", Options{}).Ratio; got != 1 {
		t.Fatalf("expected ratio 1, got %v", got)
	}
}

func TestDefaultAnalyzerMatchesPackageFunctions(t *testing.T) {
	text := "The old bridge crossed a river of memory and hope."
	analyzer := DefaultAnalyzer()
	if got, want := analyzer.AvgTextConcreteness(text, Options{}), AvgTextConcreteness(text, Options{}); got != want {
		t.Fatalf("average mismatch: %v != %v", got, want)
	}
	if got, want := analyzer.ConcreteAbstractRatio(text, Options{}), ConcreteAbstractRatio(text, Options{}); got != want {
		t.Fatalf("ratio mismatch: %v != %v", got, want)
	}
}
