package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutQuiz(q Quiz) error {
	dj, err := json.Marshal(q.Dimensions)
	if err != nil {
		return err
	}
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	tj, err := json.Marshal(q.Types)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO quizzes (id,title,description,dimensions_json,questions_json,types_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, description=EXCLUDED.description,
			dimensions_json=EXCLUDED.dimensions_json, questions_json=EXCLUDED.questions_json, types_json=EXCLUDED.types_json`,
		q.ID, q.Title, q.Description, string(dj), string(qj), string(tj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetQuiz(id string) (Quiz, error) {
	q, err := s.GetQuizFull(id)
	if err != nil {
		return Quiz{}, err
	}
	// Strip scoring weights when serving to takers
	StripWeights(&q)
	return q, nil
}

func (s *SQLStore) GetQuizFull(id string) (Quiz, error) {
	row := s.db.QueryRow(`SELECT id,title,description,dimensions_json,questions_json,types_json,created_at FROM quizzes WHERE id=$1`, id)
	var q Quiz
	var dj, qj, tj string
	if err := row.Scan(&q.ID, &q.Title, &q.Description, &dj, &qj, &tj, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, errors.New("quiz not found")
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(dj), &q.Dimensions); err != nil {
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qj), &q.Questions); err != nil {
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(tj), &q.Types); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	q := "%" + opts.Q + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,title,description,questions_json,types_json FROM quizzes
		 WHERE ($1 = '%%' OR title LIKE $1)
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []QuizSummary{}
	for rows.Next() {
		var sum QuizSummary
		var qj, tj string
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Description, &qj, &tj); err != nil {
			return nil, err
		}
		var questions []Question
		if err := json.Unmarshal([]byte(qj), &questions); err == nil {
			sum.QuestionCount = len(questions)
		}
		var types map[string]string
		if err := json.Unmarshal([]byte(tj), &types); err == nil {
			sum.Categorical = len(types) > 0
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLStore) NewAttempt(quizID string) (Attempt, error) {
	var exist int
	if err := s.db.QueryRow(`SELECT 1 FROM quizzes WHERE id=$1`, quizID).Scan(&exist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, errors.New("quiz not found")
		}
		return Attempt{}, err
	}
	a := Attempt{
		ID:        uuid.NewString(),
		QuizID:    quizID,
		Status:    "in_progress",
		Answers:   map[string]Answer{},
		StartedAt: time.Now().Unix(),
	}
	aj, _ := json.Marshal(a.Answers)
	_, err := s.db.Exec(`INSERT INTO attempts (id,quiz_id,status,answers_json,started_at)
		VALUES ($1,$2,'in_progress',$3,$4)`,
		a.ID, a.QuizID, string(aj), a.StartedAt)
	if err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func (s *SQLStore) SaveAnswers(attemptID string, answers []Answer) (Attempt, error) {
	a, err := s.GetAttempt(attemptID)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status == "submitted" {
		return Attempt{}, errors.New("attempt already submitted")
	}
	if a.Answers == nil {
		a.Answers = map[string]Answer{}
	}
	for _, ans := range answers {
		if ans.QuestionID == "" {
			continue
		}
		a.Answers[ans.QuestionID] = ans
	}
	buf, _ := json.Marshal(a.Answers)
	if _, err := s.db.Exec(`UPDATE attempts SET answers_json=$1 WHERE id=$2`, string(buf), attemptID); err != nil {
		return Attempt{}, err
	}
	return s.GetAttempt(attemptID)
}

func (s *SQLStore) Submit(attemptID string) (Attempt, error) {
	a, err := s.GetAttempt(attemptID)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status == "submitted" {
		return a, nil
	}

	// load the quiz WITH weights for scoring
	q, err := s.GetQuizFull(a.QuizID)
	if err != nil {
		return Attempt{}, err
	}
	res := Evaluate(q, answerSheet(a.Answers))

	rj, _ := json.Marshal(res)
	_, err = s.db.Exec(`UPDATE attempts SET status='submitted', result_json=$1, submitted_at=$2 WHERE id=$3`,
		string(rj), res.CompletedAt, attemptID)
	if err != nil {
		return Attempt{}, err
	}
	return s.GetAttempt(attemptID)
}

func (s *SQLStore) GetAttempt(id string) (Attempt, error) {
	row := s.db.QueryRow(`SELECT id,quiz_id,status,answers_json,result_json,started_at,submitted_at FROM attempts WHERE id=$1`, id)
	var a Attempt
	var aj string
	var rj sql.NullString
	var submitted sql.NullInt64
	if err := row.Scan(&a.ID, &a.QuizID, &a.Status, &aj, &rj, &a.StartedAt, &submitted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, errors.New("attempt not found")
		}
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(aj), &a.Answers); err != nil {
		a.Answers = map[string]Answer{}
	}
	if rj.Valid && rj.String != "" {
		var res Result
		if err := json.Unmarshal([]byte(rj.String), &res); err == nil {
			a.Result = &res
		}
	}
	if submitted.Valid {
		a.SubmittedAt = submitted.Int64
	}
	return a, nil
}
