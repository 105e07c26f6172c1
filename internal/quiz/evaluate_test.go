package quiz

import "testing"

// A deterministic answer sheet for the seeded quiz: option indexes follow the
// likert order (0 strongly agree ... 4 strongly disagree).
func TestEvaluateSeededMBTI(t *testing.T) {
	q := MBTIQuiz()
	answers := []Answer{
		{QuestionID: "mbti-q1", OptionIndex: 0}, // EI +10
		{QuestionID: "mbti-q2", OptionIndex: 3}, // EI -5
		{QuestionID: "mbti-q3", OptionIndex: 3}, // SN -5
		{QuestionID: "mbti-q4", OptionIndex: 2}, // SN +0
		{QuestionID: "mbti-q5", OptionIndex: 2}, // TF +0
		{QuestionID: "mbti-q6", OptionIndex: 2}, // TF +0
		{QuestionID: "mbti-q7", OptionIndex: 4}, // JP -10
		{QuestionID: "mbti-q8", OptionIndex: 1}, // JP +5
	}

	res := Evaluate(q, answers)

	want := map[string]float64{"EI": 5, "SN": -5, "TF": 0, "JP": -5}
	for dim, score := range want {
		if got := res.Scores[dim]; got != score {
			t.Errorf("score %s = %v, want %v", dim, got, score)
		}
	}
	// EI>0 -> E; the rest are zero or negative -> second letters
	if res.TypeCode != "ENFP" {
		t.Errorf("type code = %q, want ENFP", res.TypeCode)
	}
	if _, ok := q.Types[res.TypeCode]; !ok {
		t.Errorf("type table has no entry for %q", res.TypeCode)
	}
	if res.QuizID != q.ID {
		t.Errorf("quiz id = %q, want %q", res.QuizID, q.ID)
	}
	if res.CompletedAt == 0 {
		t.Error("completed_at not set")
	}
}

func TestEvaluateUnansweredDimensionsStayZero(t *testing.T) {
	q := WorkStyleQuiz()
	res := Evaluate(q, nil)

	if len(res.Scores) != len(q.Dimensions) {
		t.Fatalf("scores has %d keys, want %d", len(res.Scores), len(q.Dimensions))
	}
	for _, d := range q.Dimensions {
		if got, ok := res.Scores[d.ID]; !ok || got != 0 {
			t.Errorf("score %s = %v (present=%v), want 0", d.ID, got, ok)
		}
	}
	if res.TypeCode != "" {
		t.Errorf("type code = %q, want empty", res.TypeCode)
	}
}

func TestEvaluateDirectQuestions(t *testing.T) {
	q := WorkStyleQuiz()
	answers := []Answer{
		{QuestionID: "ws-q3"}, // direct: FOCUS +5
		{QuestionID: "ws-q4"}, // direct: PACE -5, FOCUS +2
	}
	res := Evaluate(q, answers)
	if got := res.Scores["FOCUS"]; got != 7 {
		t.Errorf("FOCUS = %v, want 7", got)
	}
	if got := res.Scores["PACE"]; got != -5 {
		t.Errorf("PACE = %v, want -5", got)
	}
}
