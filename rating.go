package concreteness

import "strconv"

// Rating bounds.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Rating is a looked-up concreteness score. Known is false when the word has
// no entry in the table; Value is meaningless in that case.
type Rating struct {
	Value float64
	Known bool
}

// KnownRating constructs a present rating.
func KnownRating(v float64) Rating {
	return Rating{Value: v, Known: true}
}

// Unknown constructs an absent rating.
func Unknown() Rating {
	return Rating{}
}

// Get returns the value and whether it is present.
func (r Rating) Get() (float64, bool) {
	return r.Value, r.Known
}

func (r Rating) String() string {
	if !r.Known {
		return "unknown"
	}
	return strconv.FormatFloat(r.Value, 'f', 2, 64)
}
