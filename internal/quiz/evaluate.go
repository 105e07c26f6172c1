package quiz

import (
	"time"

	"github.com/traitscope/traitscope/internal/scoring"
)

// Evaluate runs the scoring engine over a quiz and a set of answers and
// freezes the outcome as a Result. Pure apart from the completion timestamp.
func Evaluate(q Quiz, answers []Answer) Result {
	declared := make([]string, len(q.Dimensions))
	for i, d := range q.Dimensions {
		declared[i] = d.ID
	}

	bank := make([]scoring.Question, len(q.Questions))
	for i, question := range q.Questions {
		sq := scoring.Question{
			ID:      question.ID,
			Kind:    scoring.Kind(question.Kind),
			Weights: question.Weights,
		}
		if len(question.Options) > 0 {
			sq.Options = make([]scoring.Option, len(question.Options))
			for j, o := range question.Options {
				sq.Options[j] = scoring.Option{Weights: o.Weights}
			}
		}
		bank[i] = sq
	}

	sheet := make([]scoring.Answer, len(answers))
	for i, a := range answers {
		sheet[i] = scoring.Answer{QuestionID: a.QuestionID, OptionIndex: a.OptionIndex}
	}

	scores := scoring.Accumulate(declared, bank, sheet)
	code := scoring.Classify(q.ID, q.Types, scores)

	return Result{
		QuizID:      q.ID,
		Scores:      scores,
		TypeCode:    code,
		CompletedAt: time.Now().Unix(),
	}
}

// FormatterDimension adapts quiz dimension metadata to the formatter's view.
func FormatterDimension(d Dimension) scoring.Dimension {
	return scoring.Dimension{
		ID:            d.ID,
		Name:          d.Name,
		PositiveLabel: d.PositiveLabel,
		NegativeLabel: d.NegativeLabel,
	}
}
