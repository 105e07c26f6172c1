package quiz

import "context"

type ListOpts struct {
	Q      string
	Limit  int
	Offset int
}

type Store interface {
	PutQuiz(q Quiz) error
	GetQuiz(id string) (Quiz, error)     // taker-safe (weights stripped)
	GetQuizFull(id string) (Quiz, error) // weights intact, for scoring/seeding
	ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error)

	NewAttempt(quizID string) (Attempt, error)
	SaveAnswers(attemptID string, answers []Answer) (Attempt, error)
	Submit(attemptID string) (Attempt, error)
	GetAttempt(id string) (Attempt, error)
}
