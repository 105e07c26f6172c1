package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func newRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/attempts/{attemptID}", func(ar chi.Router) {
		ar.Use(Middleware(svc))
		ar.Get("/", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	})
	return r
}

func TestIssueAndParse(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	tok, err := svc.Issue("attempt-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.AttemptID != "attempt-1" {
		t.Errorf("attempt id = %q, want attempt-1", claims.AttemptID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewService("secret-a", time.Hour).Issue("attempt-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewService("secret-b", time.Hour).Parse(tok); err == nil {
		t.Error("Parse accepted a token signed with another secret")
	}
}

func TestMiddleware(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	router := newRouter(svc)

	tok, err := svc.Issue("attempt-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{"matching attempt", "/attempts/attempt-1", "Bearer " + tok, 200},
		{"other attempt", "/attempts/attempt-2", "Bearer " + tok, 403},
		{"missing header", "/attempts/attempt-1", "", 401},
		{"garbage token", "/attempts/attempt-1", "Bearer not-a-jwt", 401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)
	tok, err := svc.Issue("attempt-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req := httptest.NewRequest("GET", "/attempts/attempt-1", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)
	if rec.Code != 401 {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
