package quiz

// Built-in quizzes. Seeded at gateway startup when absent from the store so a
// fresh deployment has a working catalog without any import step.

func likert(dim string) []Option {
	return []Option{
		{Label: "Strongly agree", Weights: map[string]float64{dim: 10}},
		{Label: "Agree", Weights: map[string]float64{dim: 5}},
		{Label: "Neutral", Weights: map[string]float64{dim: 0}},
		{Label: "Disagree", Weights: map[string]float64{dim: -5}},
		{Label: "Strongly disagree", Weights: map[string]float64{dim: -10}},
	}
}

// MBTIQuiz is the one built-in categorical quiz. Its identity matches the
// registered four-letter classification scheme; positive totals resolve to
// the first letter of each pair.
func MBTIQuiz() Quiz {
	return Quiz{
		ID:          "mbti-personality",
		Title:       "Personality Type Indicator",
		Description: "A sixteen-type personality assessment across four trait pairs.",
		Dimensions: []Dimension{
			{ID: "EI", Name: "Extraversion / Introversion", PositiveLabel: "Extraversion", NegativeLabel: "Introversion",
				Description: "Where you direct your energy."},
			{ID: "SN", Name: "Sensing / Intuition", PositiveLabel: "Sensing", NegativeLabel: "Intuition",
				Description: "How you take in information."},
			{ID: "TF", Name: "Thinking / Feeling", PositiveLabel: "Thinking", NegativeLabel: "Feeling",
				Description: "How you make decisions."},
			{ID: "JP", Name: "Judging / Perceiving", PositiveLabel: "Judging", NegativeLabel: "Perceiving",
				Description: "How you approach structure."},
		},
		Questions: []Question{
			{ID: "mbti-q1", Kind: KindChoice, Prompt: "Being around groups of people energizes me.", Options: likert("EI")},
			{ID: "mbti-q2", Kind: KindChoice, Prompt: "I prefer to think out loud rather than reflect privately.", Options: likert("EI")},
			{ID: "mbti-q3", Kind: KindChoice, Prompt: "I trust concrete facts over hunches and patterns.", Options: likert("SN")},
			{ID: "mbti-q4", Kind: KindChoice, Prompt: "I focus on present realities more than future possibilities.", Options: likert("SN")},
			{ID: "mbti-q5", Kind: KindChoice, Prompt: "When deciding, logic matters more to me than harmony.", Options: likert("TF")},
			{ID: "mbti-q6", Kind: KindChoice, Prompt: "I value being right over being tactful.", Options: likert("TF")},
			{ID: "mbti-q7", Kind: KindChoice, Prompt: "I like plans settled well in advance.", Options: likert("JP")},
			{ID: "mbti-q8", Kind: KindChoice, Prompt: "Unfinished tasks bother me until they are closed out.", Options: likert("JP")},
		},
		Types: map[string]string{
			"ISTJ": "The Inspector: practical, orderly, dependable.",
			"ISFJ": "The Protector: warm, conscientious, devoted.",
			"INFJ": "The Counselor: insightful, principled, quietly forceful.",
			"INTJ": "The Mastermind: independent, strategic, demanding of self.",
			"ISTP": "The Craftsman: tolerant, flexible, quick to find workable solutions.",
			"ISFP": "The Composer: gentle, sensitive, living in the present.",
			"INFP": "The Healer: idealistic, loyal to their values.",
			"INTP": "The Architect: theoretical, analytical, abstract.",
			"ESTP": "The Dynamo: energetic, pragmatic, spontaneous.",
			"ESFP": "The Performer: outgoing, accepting, loving life.",
			"ENFP": "The Champion: enthusiastic, imaginative, sees possibility everywhere.",
			"ENTP": "The Visionary: quick, ingenious, stimulating company.",
			"ESTJ": "The Supervisor: decisive, organized, focused on results.",
			"ESFJ": "The Provider: warmhearted, cooperative, eager to help.",
			"ENFJ": "The Teacher: empathetic, responsible, a natural leader.",
			"ENTJ": "The Commander: frank, decisive, a builder of systems.",
		},
	}
}

// WorkStyleQuiz is a non-categorical quiz; it also exercises direct-weighted
// questions, which apply their weights once when answered.
func WorkStyleQuiz() Quiz {
	return Quiz{
		ID:          "work-style",
		Title:       "Work Style Profile",
		Description: "A two-axis profile of how you structure your working day.",
		Dimensions: []Dimension{
			{ID: "FOCUS", Name: "Deep Focus / Multitasking", PositiveLabel: "Deep Focus", NegativeLabel: "Multitasking",
				Description: "Whether you work in long uninterrupted blocks or juggle threads."},
			{ID: "PACE", Name: "Sprint / Steady", PositiveLabel: "Sprinting", NegativeLabel: "Steady Pace",
				Description: "Whether you work in intense bursts or an even rhythm."},
		},
		Questions: []Question{
			{ID: "ws-q1", Kind: KindChoice, Prompt: "Interruptions derail me badly.", Options: likert("FOCUS")},
			{ID: "ws-q2", Kind: KindChoice, Prompt: "I do my best work right before a deadline.", Options: likert("PACE")},
			{ID: "ws-q3", Kind: KindDirect, Prompt: "I keep a single task open at a time.",
				Weights: map[string]float64{"FOCUS": 5}},
			{ID: "ws-q4", Kind: KindDirect, Prompt: "I plan my week hour by hour.",
				Weights: map[string]float64{"PACE": -5, "FOCUS": 2}},
		},
	}
}

// Seed inserts the built-in quizzes when they are not already in the store.
// Existing rows are left untouched so operator edits survive restarts.
func Seed(store Store) error {
	for _, q := range []Quiz{MBTIQuiz(), WorkStyleQuiz()} {
		if _, err := store.GetQuizFull(q.ID); err == nil {
			continue
		}
		if err := store.PutQuiz(q); err != nil {
			return err
		}
	}
	return nil
}
