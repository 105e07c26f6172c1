package quiz

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu       sync.RWMutex
	quizzes  map[string]Quiz
	attempts map[string]Attempt
}

// NewInMemoryStore returns a Store backed by process memory. Used in tests
// and single-shot tooling; the gateway runs on the SQL store.
func NewInMemoryStore() Store {
	return &memoryStore{
		quizzes:  map[string]Quiz{},
		attempts: map[string]Attempt{},
	}
}

func (m *memoryStore) PutQuiz(q Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	m.quizzes[q.ID] = q
	return nil
}

func (m *memoryStore) GetQuiz(id string) (Quiz, error) {
	q, err := m.GetQuizFull(id)
	if err != nil {
		return Quiz{}, err
	}
	StripWeights(&q)
	return q, nil
}

func (m *memoryStore) GetQuizFull(id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, errors.New("quiz not found")
	}
	// copy the question slice so StripWeights on the caller's copy cannot
	// reach the stored quiz
	qs := make([]Question, len(q.Questions))
	copy(qs, q.Questions)
	for i := range qs {
		if len(qs[i].Options) > 0 {
			opts := make([]Option, len(qs[i].Options))
			copy(opts, qs[i].Options)
			qs[i].Options = opts
		}
	}
	q.Questions = qs
	return q, nil
}

func (m *memoryStore) ListQuizzes(_ context.Context, opts ListOpts) ([]QuizSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]QuizSummary, 0, len(m.quizzes))
	needle := strings.ToLower(strings.TrimSpace(opts.Q))
	for _, q := range m.quizzes {
		if needle != "" && !strings.Contains(strings.ToLower(q.Title), needle) {
			continue
		}
		out = append(out, QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			QuestionCount: len(q.Questions),
			Categorical:   len(q.Types) > 0,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []QuizSummary{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *memoryStore) NewAttempt(quizID string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quizzes[quizID]; !ok {
		return Attempt{}, errors.New("quiz not found")
	}
	a := Attempt{
		ID:        uuid.NewString(),
		QuizID:    quizID,
		Status:    "in_progress",
		Answers:   map[string]Answer{},
		StartedAt: time.Now().Unix(),
	}
	m.attempts[a.ID] = a
	return a, nil
}

func (m *memoryStore) SaveAnswers(attemptID string, answers []Answer) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[attemptID]
	if !ok {
		return Attempt{}, errors.New("attempt not found")
	}
	if a.Status == "submitted" {
		return Attempt{}, errors.New("attempt already submitted")
	}
	for _, ans := range answers {
		if ans.QuestionID == "" {
			continue
		}
		a.Answers[ans.QuestionID] = ans
	}
	m.attempts[attemptID] = a
	return a, nil
}

func (m *memoryStore) Submit(attemptID string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[attemptID]
	if !ok {
		return Attempt{}, errors.New("attempt not found")
	}
	if a.Status == "submitted" {
		return a, nil
	}
	q := m.quizzes[a.QuizID]
	res := Evaluate(q, answerSheet(a.Answers))
	a.Result = &res
	a.Status = "submitted"
	a.SubmittedAt = res.CompletedAt
	m.attempts[attemptID] = a
	return a, nil
}

func (m *memoryStore) GetAttempt(id string) (Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.attempts[id]
	if !ok {
		return Attempt{}, errors.New("attempt not found")
	}
	return a, nil
}

// answerSheet flattens the per-question answer map into the list the engine
// takes. The map already guarantees one entry per question.
func answerSheet(answers map[string]Answer) []Answer {
	out := make([]Answer, 0, len(answers))
	for _, a := range answers {
		out = append(out, a)
	}
	return out
}
