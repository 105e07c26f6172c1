package scoring

import (
	"fmt"
	"math"
	"strconv"
)

// Band is a qualitative strength label for a score's magnitude.
type Band string

const (
	BandStrong   Band = "Strong"
	BandModerate Band = "Moderate"
	BandSlight   Band = "Slight"
	BandBalanced Band = "Balanced"
)

// Banding thresholds encode a fixed, externally defined rubric.
// They are domain constants, not configuration.
const (
	strongMin   = 20
	moderateMin = 10
	slightMin   = 5
)

// Dimension is the metadata the formatter needs to describe a score.
type Dimension struct {
	ID            string
	Name          string
	PositiveLabel string
	NegativeLabel string
}

// BandFor maps a score magnitude to its band, with inclusive lower bounds.
func BandFor(abs float64) Band {
	switch {
	case abs >= strongMin:
		return BandStrong
	case abs >= moderateMin:
		return BandModerate
	case abs >= slightMin:
		return BandSlight
	default:
		return BandBalanced
	}
}

// Describe renders one (dimension, score) pair as a sentence. Balanced scores
// name both poles; otherwise the band is combined with the pole matching the
// score's sign, where zero resolves to the negative pole, consistent with the
// classifier tie-break. A zero-valued Dimension (metadata the caller could
// not find) yields "".
func Describe(dim Dimension, score float64) string {
	if dim == (Dimension{}) {
		return ""
	}
	band := BandFor(math.Abs(score))
	if band == BandBalanced {
		return fmt.Sprintf("Balanced between %s and %s", dim.PositiveLabel, dim.NegativeLabel)
	}
	label := dim.NegativeLabel
	if score > 0 {
		label = dim.PositiveLabel
	}
	return fmt.Sprintf("%s preference for %s", band, label)
}

// FormatSigned renders a score with an explicit leading "+" for positive
// values. Zero renders as "0", not "+0".
func FormatSigned(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if score > 0 {
		return "+" + s
	}
	return s
}
