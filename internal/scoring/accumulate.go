package scoring

// Kind discriminates how a question contributes weights. A question is
// exactly one kind; anything else contributes nothing at accumulation time.
type Kind string

const (
	// KindDirect questions carry one weight mapping that is applied once
	// when any answer references the question.
	KindDirect Kind = "direct"
	// KindChoice questions carry per-option weight mappings; the answer's
	// option index selects which one applies.
	KindChoice Kind = "choice"
)

// Weights maps a dimension id to a signed contribution.
type Weights map[string]float64

// Option is the minimal view of a selectable choice needed for scoring.
type Option struct {
	Weights Weights
}

// Question is a minimal view of a question needed for scoring.
// Keep this in sync with whatever fields your store uses.
type Question struct {
	ID      string
	Kind    Kind
	Weights Weights  // KindDirect
	Options []Option // KindChoice
}

// Answer references a question plus the selected option index.
// The index is meaningful only for choice questions.
type Answer struct {
	QuestionID  string
	OptionIndex int
}

// ScoreVector maps every declared dimension id to its accumulated total.
type ScoreVector map[string]float64

// Accumulate folds answers against a question bank into a ScoreVector.
// Every declared dimension is present in the result, seeded at zero.
// Stale answers (unknown question id), out-of-range option indexes, options
// without weights and weights for undeclared dimensions are skipped silently:
// a stray answer must never take down a user-facing flow. The final vector
// does not depend on answer order. Duplicate question ids in the bank are
// last-wins; repeated answers for one question are summed as given, so
// callers that want one contribution per question must dedupe first.
func Accumulate(declared []string, bank []Question, answers []Answer) ScoreVector {
	scores := make(ScoreVector, len(declared))
	for _, id := range declared {
		scores[id] = 0
	}

	byID := make(map[string]Question, len(bank))
	for _, q := range bank {
		byID[q.ID] = q
	}

	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		var w Weights
		switch q.Kind {
		case KindDirect:
			w = q.Weights
		case KindChoice:
			if a.OptionIndex < 0 || a.OptionIndex >= len(q.Options) {
				continue
			}
			w = q.Options[a.OptionIndex].Weights
		default:
			continue
		}
		for dim, delta := range w {
			if _, ok := scores[dim]; !ok {
				continue
			}
			scores[dim] += delta
		}
	}
	return scores
}
