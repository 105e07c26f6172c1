package quiz

// Dimension is one axis of measurement with two opposing labeled poles.
// Dimensions are declared statically per quiz and immutable for its lifetime.
type Dimension struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	PositiveLabel string `json:"positive_label"`
	NegativeLabel string `json:"negative_label"`
}

// Kind discriminates how a question carries its weights.
type Kind string

const (
	KindDirect Kind = "direct" // weights on the question itself
	KindChoice Kind = "choice" // weights per option
)

type Option struct {
	Label   string             `json:"label"`
	Weights map[string]float64 `json:"weights,omitempty"`
}

type Question struct {
	ID      string             `json:"id"`
	Prompt  string             `json:"prompt"`
	Kind    Kind               `json:"kind"`
	Weights map[string]float64 `json:"weights,omitempty"` // KindDirect
	Options []Option           `json:"options,omitempty"` // KindChoice
}

// Answer references a question plus the selected option index. The index is
// meaningful only for choice questions; direct questions apply their weights
// once when any answer references them.
type Answer struct {
	QuestionID  string `json:"question_id"`
	OptionIndex int    `json:"option_index"`
}

type Quiz struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Dimensions  []Dimension `json:"dimensions"`
	Questions   []Question  `json:"questions"`

	// Types maps category code -> description. Non-empty only for quizzes
	// with a categorical classification scheme.
	Types map[string]string `json:"types,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
}

// Result is the frozen outcome of one submitted attempt.
type Result struct {
	QuizID      string             `json:"quiz_id"`
	Scores      map[string]float64 `json:"scores"`
	TypeCode    string             `json:"type_code,omitempty"`
	CompletedAt int64              `json:"completed_at"`
}

type Attempt struct {
	ID     string `json:"id"`
	QuizID string `json:"quiz_id"`
	Status string `json:"status"` // in_progress|submitted

	// Answers is keyed by question id: saving an answer for a question the
	// taker already answered replaces it, so a question contributes once.
	Answers map[string]Answer `json:"answers"`

	Result      *Result `json:"result,omitempty"`
	StartedAt   int64   `json:"started_at"`
	SubmittedAt int64   `json:"submitted_at,omitempty"`
}

// QuizSummary is the catalog view of a quiz.
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"question_count"`
	Categorical   bool   `json:"categorical"`
}

// StripWeights removes all scoring weights from a quiz before it is served
// to takers. Prompt, options and dimension metadata stay intact.
func StripWeights(q *Quiz) {
	for i := range q.Questions {
		q.Questions[i].Weights = nil
		for j := range q.Questions[i].Options {
			q.Questions[i].Options[j].Weights = nil
		}
	}
}
