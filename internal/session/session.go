// Package session scopes in-flight attempts to the browser session that
// created them. Tokens carry an attempt id, not a user identity: there are no
// accounts and no credentials here.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

type Service struct {
	hmac []byte
	ttl  time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{hmac: []byte(secret), ttl: ttl}
}

type Claims struct {
	AttemptID string `json:"att"`
	jwt.RegisteredClaims
}

// Issue mints a token bound to one attempt.
func (s *Service) Issue(attemptID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		AttemptID: attemptID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "traitscope",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.hmac)
}

func (s *Service) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.hmac, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	c, _ := token.Claims.(*Claims)
	return c, nil
}

// Middleware requires a bearer token minted for the attempt named in the
// route. A valid token for some other attempt is rejected the same way as a
// bad one.
func Middleware(s *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer", http.StatusUnauthorized)
				return
			}
			claims, err := s.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil || claims == nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			if id := chi.URLParam(r, "attemptID"); id == "" || id != claims.AttemptID {
				http.Error(w, "token not valid for this attempt", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
