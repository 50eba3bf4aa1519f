package concreteness

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Dataset column names.
const (
	ColumnWord         = "Word"
	ColumnConcreteness = "Concreteness"
)

var (
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing column")

	// ErrMalformedRow is returned for rows that cannot be parsed.
	ErrMalformedRow = errors.New("malformed row")

	// ErrInvalidRating is returned for ratings outside [MinRating, MaxRating].
	ErrInvalidRating = errors.New("invalid rating")
)

// ParseError reports the dataset line that failed to load.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ratings line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Entry is one word/rating pair.
type Entry struct {
	Word   string
	Rating float64
}

// Table is an immutable word to concreteness mapping. A nil *Table behaves
// as an empty table.
type Table struct {
	ratings map[string]float64
}

//go:embed data/concreteness_ratings.csv
var embeddedRatings []byte

var defaultTable = sync.OnceValues(func() (*Table, error) {
	table, err := LoadTable(bytes.NewReader(embeddedRatings))
	if err != nil {
		return nil, fmt.Errorf("loading embedded ratings: %w", err)
	}
	return table, nil
})

// DefaultTable returns the embedded ratings table. The dataset is parsed on
// the first call only; later calls return the same table or error.
func DefaultTable() (*Table, error) {
	return defaultTable()
}

// MustDefaultTable is like DefaultTable but panics if the embedded dataset
// cannot be loaded.
func MustDefaultTable() *Table {
	table, err := defaultTable()
	if err != nil {
		panic(err)
	}
	return table
}

// EmbeddedDataset returns the raw bytes of the embedded CSV.
func EmbeddedDataset() []byte {
	return embeddedRatings
}

// NewTable builds a table from an in-memory mapping. The map is copied.
func NewTable(ratings map[string]float64) (*Table, error) {
	copied := make(map[string]float64, len(ratings))
	for word, rating := range ratings {
		if word == "" {
			return nil, fmt.Errorf("%w: empty word", ErrMalformedRow)
		}
		if err := checkRating(rating); err != nil {
			return nil, fmt.Errorf("word %q: %w", word, err)
		}
		copied[word] = rating
	}
	return &Table{ratings: copied}, nil
}

// LoadTableFile reads a CSV dataset from path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ratings file: %w", err)
	}
	defer f.Close()
	return LoadTable(f)
}

// LoadTable parses a CSV dataset whose header names a Word and a
// Concreteness column. Any malformed row fails the whole load. When a word
// appears more than once the last row wins.
func LoadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("%w: empty dataset", ErrMissingColumn)}
	}
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	wordCol, ratingCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case ColumnWord:
			wordCol = i
		case ColumnConcreteness:
			ratingCol = i
		}
	}
	if wordCol < 0 {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("%w: %s", ErrMissingColumn, ColumnWord)}
	}
	if ratingCol < 0 {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("%w: %s", ErrMissingColumn, ColumnConcreteness)}
	}
	width := max(wordCol, ratingCol) + 1

	ratings := make(map[string]float64)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				line = csvErr.StartLine
			}
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %v", ErrMalformedRow, err)}
		}
		line, _ := reader.FieldPos(0)
		if len(record) < width {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: expected at least %d fields, got %d", ErrMalformedRow, width, len(record))}
		}

		word := record[wordCol]
		if word == "" {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: empty word", ErrMalformedRow)}
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(record[ratingCol]), 64)
		if err != nil {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: rating %q is not a number", ErrMalformedRow, record[ratingCol])}
		}
		if err := checkRating(rating); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		ratings[word] = rating
	}

	return &Table{ratings: ratings}, nil
}

func checkRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: %v outside [%v, %v]", ErrInvalidRating, rating, MinRating, MaxRating)
	}
	return nil
}

// Lookup returns the rating stored for word, or Unknown when absent.
// The word is matched exactly; callers pass lowercase tokens.
func (t *Table) Lookup(word string) Rating {
	if t == nil {
		return Unknown()
	}
	if v, ok := t.ratings[word]; ok {
		return KnownRating(v)
	}
	return Unknown()
}

// Len returns the number of rated words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ratings)
}

// Entries returns every entry sorted by word.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.ratings))
	for word, rating := range t.ratings {
		entries = append(entries, Entry{Word: word, Rating: rating})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}
