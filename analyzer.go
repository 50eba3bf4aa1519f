package concreteness

// Analyzer defines the concreteness analysis interface for optional
// wrapping (e.g., caching).
type Analyzer interface {
	WordConcreteness(word string) Rating
	AvgTextConcreteness(text string, opts Options) float64
	ConcreteAbstractRatio(text string, opts Options) float64
	Analyze(text string, opts Options) Result
}

type tableAnalyzer struct {
	table *Table
	stops StopwordSet
}

// New returns an analyzer backed by table and the English stopword set.
// A nil table selects the embedded default table.
func New(table *Table) Analyzer {
	return NewWithStopwords(table, nil)
}

// NewWithStopwords is like New but removes stops instead of the English
// stopword set. A nil set selects the English set.
func NewWithStopwords(table *Table, stops StopwordSet) Analyzer {
	if table == nil {
		table = MustDefaultTable()
	}
	if stops == nil {
		stops = englishStopwords
	}
	return &tableAnalyzer{table: table, stops: stops}
}

// DefaultAnalyzer returns an analyzer backed by the embedded table.
func DefaultAnalyzer() Analyzer {
	return New(nil)
}

func (a *tableAnalyzer) WordConcreteness(word string) Rating {
	return a.table.Lookup(word)
}

func (a *tableAnalyzer) AvgTextConcreteness(text string, opts Options) float64 {
	return a.Analyze(text, opts).Average
}

func (a *tableAnalyzer) ConcreteAbstractRatio(text string, opts Options) float64 {
	return a.Analyze(text, opts).Ratio
}

func (a *tableAnalyzer) Analyze(text string, opts Options) Result {
	return analyze(a.table, a.stops, text, opts)
}
