package quiz

import (
	"context"
	"testing"
)

func twoScaleQuiz() Quiz {
	return Quiz{
		ID:    "two-scale",
		Title: "Two Scale Quiz",
		Dimensions: []Dimension{
			{ID: "A", Name: "Scale A", PositiveLabel: "A-positive", NegativeLabel: "A-negative"},
			{ID: "B", Name: "Scale B", PositiveLabel: "B-positive", NegativeLabel: "B-negative"},
		},
		Questions: []Question{
			{
				ID:     "q1",
				Kind:   KindChoice,
				Prompt: "Pick one.",
				Options: []Option{
					{Label: "first", Weights: map[string]float64{"A": 10}},
					{Label: "second", Weights: map[string]float64{"B": 10}},
				},
			},
		},
	}
}

func TestAttemptFlow(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.PutQuiz(twoScaleQuiz()); err != nil {
		t.Fatalf("PutQuiz: %v", err)
	}

	a, err := store.NewAttempt("two-scale")
	if err != nil {
		t.Fatalf("NewAttempt: %v", err)
	}
	if a.Status != "in_progress" {
		t.Fatalf("status = %q, want in_progress", a.Status)
	}

	a, err = store.SaveAnswers(a.ID, []Answer{{QuestionID: "q1", OptionIndex: 0}})
	if err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}
	if len(a.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(a.Answers))
	}

	// re-answering replaces, never double counts
	a, err = store.SaveAnswers(a.ID, []Answer{{QuestionID: "q1", OptionIndex: 0}})
	if err != nil {
		t.Fatalf("SaveAnswers again: %v", err)
	}
	if len(a.Answers) != 1 {
		t.Fatalf("answers after re-save = %d, want 1", len(a.Answers))
	}

	a, err = store.Submit(a.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if a.Status != "submitted" || a.Result == nil {
		t.Fatalf("submit did not freeze a result: %+v", a)
	}
	if got := a.Result.Scores["A"]; got != 10 {
		t.Errorf("score A = %v, want 10", got)
	}
	if got := a.Result.Scores["B"]; got != 0 {
		t.Errorf("score B = %v, want 0", got)
	}
	if a.Result.TypeCode != "" {
		t.Errorf("type code = %q, want empty for non-categorical quiz", a.Result.TypeCode)
	}
	if a.Result.CompletedAt == 0 {
		t.Error("completed_at not set")
	}

	// saving after submission is rejected
	if _, err := store.SaveAnswers(a.ID, []Answer{{QuestionID: "q1", OptionIndex: 1}}); err == nil {
		t.Error("SaveAnswers after submit succeeded, want error")
	}

	// submit is idempotent: the frozen result comes back unchanged
	first := *a.Result
	a, err = store.Submit(a.ID)
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}
	if a.Result.CompletedAt != first.CompletedAt || a.Result.Scores["A"] != first.Scores["A"] {
		t.Errorf("second submit changed the result: %+v vs %+v", a.Result, first)
	}
}

func TestGetQuizStripsWeights(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.PutQuiz(twoScaleQuiz()); err != nil {
		t.Fatalf("PutQuiz: %v", err)
	}

	q, err := store.GetQuiz("two-scale")
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	for _, question := range q.Questions {
		if question.Weights != nil {
			t.Errorf("question %s still carries weights", question.ID)
		}
		for i, o := range question.Options {
			if o.Weights != nil {
				t.Errorf("question %s option %d still carries weights", question.ID, i)
			}
			if o.Label == "" {
				t.Errorf("question %s option %d lost its label", question.ID, i)
			}
		}
	}

	// the stored copy must keep its weights for scoring
	full, err := store.GetQuizFull("two-scale")
	if err != nil {
		t.Fatalf("GetQuizFull: %v", err)
	}
	if full.Questions[0].Options[0].Weights == nil {
		t.Fatal("stripping the served copy reached the stored quiz")
	}
}

func TestListQuizzes(t *testing.T) {
	store := NewInMemoryStore()
	if err := Seed(store); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	list, err := store.ListQuizzes(context.Background(), ListOpts{})
	if err != nil {
		t.Fatalf("ListQuizzes: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("quizzes = %d, want 2", len(list))
	}
	byID := map[string]QuizSummary{}
	for _, s := range list {
		byID[s.ID] = s
	}
	if !byID["mbti-personality"].Categorical {
		t.Error("mbti-personality should be categorical")
	}
	if byID["work-style"].Categorical {
		t.Error("work-style should not be categorical")
	}

	filtered, err := store.ListQuizzes(context.Background(), ListOpts{Q: "work"})
	if err != nil {
		t.Fatalf("ListQuizzes filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != "work-style" {
		t.Fatalf("filtered = %+v, want only work-style", filtered)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	if err := Seed(store); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(store); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	list, err := store.ListQuizzes(context.Background(), ListOpts{})
	if err != nil {
		t.Fatalf("ListQuizzes: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("quizzes after double seed = %d, want 2", len(list))
	}
}
