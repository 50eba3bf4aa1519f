package concreteness

import "math"

// Denominator selects which tokens count toward the average's denominator.
type Denominator int

const (
	// DenominatorAuto resolves to DenominatorRated.
	DenominatorAuto Denominator = iota

	// DenominatorRated divides by the number of rated tokens only.
	// Unrated tokens are excluded from the computation entirely.
	DenominatorRated

	// DenominatorAll divides by the total token count, so unrated tokens
	// pull the average toward zero without adding to the numerator.
	DenominatorAll
)

func (d Denominator) String() string {
	switch d {
	case DenominatorAuto:
		return "auto"
	case DenominatorRated:
		return "rated"
	case DenominatorAll:
		return "all"
	default:
		return "unknown"
	}
}

// Thresholds bound the "very concrete" and "very abstract" bands.
// Ordering is not validated: a concrete threshold at or below the abstract
// one is allowed and behaves as the comparisons imply.
type Thresholds struct {
	// VeryConcrete is the minimum rating counted as very concrete.
	VeryConcrete float64

	// VeryAbstract is the maximum rating counted as very abstract.
	VeryAbstract float64
}

// Default threshold values.
const (
	DefaultVeryConcrete = 4.0
	DefaultVeryAbstract = 2.0
)

// DefaultThresholds returns the 4.0 / 2.0 bands.
func DefaultThresholds() Thresholds {
	return Thresholds{VeryConcrete: DefaultVeryConcrete, VeryAbstract: DefaultVeryAbstract}
}

// Options configures an analysis.
type Options struct {
	// IncludeStopwords keeps English stopwords in the token stream. Default: false.
	IncludeStopwords bool

	// Denominator selects the averaging policy. Default: DenominatorAuto (rated only).
	Denominator Denominator

	// Thresholds overrides the concrete/abstract bands. Default: nil (DefaultThresholds).
	Thresholds *Thresholds

	// Explain includes the per-token breakdown in the result.
	Explain bool
}

// TokenRating pairs a token with its looked-up rating.
type TokenRating struct {
	Token  string
	Rating Rating
}

// Result contains every aggregate computed for one text.
type Result struct {
	// Tokens is the number of tokens after filtering.
	Tokens int

	// Rated and Unrated partition Tokens by table membership.
	Rated   int
	Unrated int

	// Concrete and Abstract count rated tokens inside each threshold band.
	Concrete int
	Abstract int

	// Sum is the total of all known ratings.
	Sum float64

	// Average is the mean rating under the resolved denominator policy.
	Average float64

	// Ratio is Concrete/Abstract, +Inf when only concrete words were seen.
	Ratio float64

	// Denominator is the policy that was used.
	Denominator Denominator

	// Thresholds are the bands that were used.
	Thresholds Thresholds

	// Breakdown lists every token in order when Explain is enabled.
	Breakdown []TokenRating
}

// WordConcreteness returns the rating of word in the default table.
func WordConcreteness(word string) Rating {
	return MustDefaultTable().Lookup(word)
}

// AvgTextConcreteness returns the average concreteness of text using the
// default table. It returns 0 for empty text or a zero denominator.
func AvgTextConcreteness(text string, opts Options) float64 {
	return analyze(MustDefaultTable(), englishStopwords, text, opts).Average
}

// ConcreteAbstractRatio returns the ratio of very concrete to very abstract
// words in text using the default table. It returns +Inf when concrete words
// appear without abstract ones, and 0 when neither band is hit.
func ConcreteAbstractRatio(text string, opts Options) float64 {
	return analyze(MustDefaultTable(), englishStopwords, text, opts).Ratio
}

// Analyze computes every aggregate for text using the default table.
func Analyze(text string, opts Options) Result {
	return analyze(MustDefaultTable(), englishStopwords, text, opts)
}

func analyze(table *Table, stops StopwordSet, text string, opts Options) Result {
	denominator := resolveDenominator(opts.Denominator)
	thresholds := resolveThresholds(opts.Thresholds)

	result := Result{
		Denominator: denominator,
		Thresholds:  thresholds,
	}

	tokens := tokenize(text, opts.IncludeStopwords, stops)
	result.Tokens = len(tokens)
	if opts.Explain {
		result.Breakdown = make([]TokenRating, 0, len(tokens))
	}

	for _, token := range tokens {
		rating := table.Lookup(token)
		if opts.Explain {
			result.Breakdown = append(result.Breakdown, TokenRating{Token: token, Rating: rating})
		}
		value, ok := rating.Get()
		if !ok {
			result.Unrated++
			continue
		}
		result.Rated++
		result.Sum += value
		if value >= thresholds.VeryConcrete {
			result.Concrete++
		} else if value <= thresholds.VeryAbstract {
			result.Abstract++
		}
	}

	result.Average = average(result.Sum, denominatorCount(result, denominator))
	result.Ratio = ratio(result.Concrete, result.Abstract)
	return result
}

func denominatorCount(result Result, denominator Denominator) int {
	if denominator == DenominatorAll {
		return result.Tokens
	}
	return result.Rated
}

func average(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func ratio(concrete, abstract int) float64 {
	if abstract == 0 {
		if concrete > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(concrete) / float64(abstract)
}
