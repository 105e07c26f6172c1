package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/traitscope/traitscope/internal/eventlog"
	"github.com/traitscope/traitscope/internal/quiz"
	"github.com/traitscope/traitscope/internal/session"

	"github.com/go-chi/chi/v5"
)

// POST /attempts {"quiz_id": "..."} → attempt plus a session token scoped to it.
func CreateAttemptHandler(store quiz.Store, sessions *session.Service) http.HandlerFunc {
	type out struct {
		Attempt      quiz.Attempt `json:"attempt"`
		SessionToken string       `json:"session_token"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QuizID string `json:"quiz_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.QuizID == "" {
			http.Error(w, "quiz_id required", 400)
			return
		}
		a, err := store.NewAttempt(req.QuizID)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		tok, err := sessions.Issue(a.ID)
		if err != nil {
			http.Error(w, "issue token", 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{Attempt: a, SessionToken: tok})
	}
}

// POST /attempts/{attemptID}/answers — body is a list of answers, merged by
// question id so re-answering a question replaces the earlier selection.
func SaveAnswersHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		var answers []quiz.Answer
		if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		a, err := store.SaveAnswers(id, answers)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a)
	}
}

// POST /attempts/{attemptID}/submit — scores the attempt and freezes the
// result. Submitting again returns the frozen attempt unchanged.
func SubmitAttemptHandler(store quiz.Store, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		before, _ := store.GetAttempt(id)
		a, err := store.Submit(id)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if events != nil && a.Result != nil && before.Status != "submitted" {
			if buf, err := json.Marshal(a.Result); err == nil {
				if err := events.Append(context.Background(), eventlog.Event{
					Type:     eventlog.TypeResultComputed,
					Key:      a.ID,
					DataJSON: string(buf),
				}); err != nil {
					log.Printf("event append failed: %v", err)
				}
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a)
	}
}

// GET /attempts/{attemptID}
func GetAttemptHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		a, err := store.GetAttempt(id)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a)
	}
}
