package http

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/traitscope/traitscope/internal/quiz"
	"github.com/traitscope/traitscope/internal/scoring"

	"github.com/go-chi/chi/v5"
)

type dimensionView struct {
	DimensionID string  `json:"dimension_id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Display     string  `json:"display"` // signed, e.g. "+7"
	Band        string  `json:"band"`
	Description string  `json:"description"`
}

type resultView struct {
	QuizID          string          `json:"quiz_id"`
	TypeCode        string          `json:"type_code,omitempty"`
	TypeDescription string          `json:"type_description,omitempty"`
	CompletedAt     int64           `json:"completed_at"`
	Dimensions      []dimensionView `json:"dimensions"`
}

// GET /attempts/{attemptID}/result — the frozen result rendered for display:
// one row per declared dimension in quiz order, plus the derived type when
// the quiz is categorical.
func GetResultHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		a, err := store.GetAttempt(id)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		if a.Status != "submitted" || a.Result == nil {
			http.Error(w, "attempt not submitted", 409)
			return
		}
		q, err := store.GetQuiz(a.QuizID)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}

		view := resultView{
			QuizID:      a.Result.QuizID,
			TypeCode:    a.Result.TypeCode,
			CompletedAt: a.Result.CompletedAt,
			Dimensions:  make([]dimensionView, 0, len(q.Dimensions)),
		}
		if view.TypeCode != "" {
			view.TypeDescription = q.Types[view.TypeCode]
		}
		for _, d := range q.Dimensions {
			score := a.Result.Scores[d.ID]
			view.Dimensions = append(view.Dimensions, dimensionView{
				DimensionID: d.ID,
				Name:        d.Name,
				Score:       score,
				Display:     scoring.FormatSigned(score),
				Band:        string(scoring.BandFor(math.Abs(score))),
				Description: scoring.Describe(quiz.FormatterDimension(d), score),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}
