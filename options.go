package concreteness

import (
	"fmt"
	"strings"
)

func resolveDenominator(d Denominator) Denominator {
	switch d {
	case DenominatorRated, DenominatorAll:
		return d
	default:
		return DenominatorRated
	}
}

func resolveThresholds(t *Thresholds) Thresholds {
	if t == nil {
		return DefaultThresholds()
	}
	return *t
}

// ParseDenominator resolves a user-provided policy name.
// "rated" and "only-rated" select DenominatorRated; "all" and "all-words"
// select DenominatorAll; an empty string yields DenominatorAuto.
func ParseDenominator(raw string) (Denominator, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return DenominatorAuto, nil
	case "rated", "only-rated", "only_rated":
		return DenominatorRated, nil
	case "all", "all-words", "all_words":
		return DenominatorAll, nil
	default:
		return DenominatorAuto, fmt.Errorf("unknown denominator %q (supported: rated, all)", raw)
	}
}

// DenominatorFor maps the only-rated-words flag to a policy.
func DenominatorFor(onlyRatedWords bool) Denominator {
	if onlyRatedWords {
		return DenominatorRated
	}
	return DenominatorAll
}
