package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/traitscope/traitscope/internal/api/http"
	"github.com/traitscope/traitscope/internal/config"
	"github.com/traitscope/traitscope/internal/db"
	"github.com/traitscope/traitscope/internal/eventlog"
	"github.com/traitscope/traitscope/internal/quiz"
	"github.com/traitscope/traitscope/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := quiz.NewSQLStore(dbh, cfg.DBDriver)
	events := eventlog.NewRepo(dbh)

	if cfg.SeedBuiltins {
		if err := quiz.Seed(store); err != nil {
			log.Fatalf("seed quizzes: %v", err)
		}
	}

	// --- Attempt session tokens ---
	sessions := session.NewService(cfg.SessionSecret, cfg.SessionTTL)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public catalog + attempt creation
	r.Get("/quizzes", api.ListQuizzesHandler(store))
	r.Get("/quizzes/{quizID}", api.GetQuizHandler(store))
	r.Post("/attempts", api.CreateAttemptHandler(store, sessions))

	// Attempt routes require the session token minted at creation
	r.Route("/attempts/{attemptID}", func(ar chi.Router) {
		ar.Use(session.Middleware(sessions))
		ar.Get("/", api.GetAttemptHandler(store))
		ar.Post("/answers", api.SaveAnswersHandler(store))
		ar.Post("/submit", api.SubmitAttemptHandler(store, events))
		ar.Get("/result", api.GetResultHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
