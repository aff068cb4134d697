// Package auth issues and verifies access/refresh token pairs and resolves
// the viewer identity for incoming requests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ErrInvalidToken ...
var ErrInvalidToken = errors.New("invalid token")

// AccessTokenCookie is a fallback location of the access token for browser
// clients which can not set the Authorization header.
const AccessTokenCookie = "accessToken"

// RefreshTokenCookie ...
const RefreshTokenCookie = "refreshToken"

type viewerKey struct{}

// Pair is an issued token pair.
type Pair struct {
	Access  string
	Refresh string
}

// Tokens issues and verifies token pairs. Access and refresh tokens are
// signed with separate secrets so one can never pass for the other.
type Tokens struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// New creates new instance of Tokens.
func New(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Tokens {
	return &Tokens{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssuePair issues an access/refresh pair for the given user.
func (t *Tokens) IssuePair(userID uuid.UUID) (Pair, error) {
	access, err := t.issue(userID, t.accessSecret, t.accessTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := t.issue(userID, t.refreshSecret, t.refreshTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return Pair{Access: access, Refresh: refresh}, nil
}

func (t *Tokens) issue(userID uuid.UUID, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}).SignedString(secret)
}

// VerifyAccess returns the user id carried by a valid access token.
func (t *Tokens) VerifyAccess(token string) (uuid.UUID, error) {
	return verify(token, t.accessSecret)
}

// VerifyRefresh returns the user id carried by a valid refresh token.
func (t *Tokens) VerifyRefresh(token string) (uuid.UUID, error) {
	return verify(token, t.refreshSecret)
}

func verify(token string, secret []byte) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	if _, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}); err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}

// WithViewer returns a copy of ctx carrying the viewer id.
func WithViewer(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, viewerKey{}, id)
}

// Viewer returns the resolved viewer id, or nil for anonymous contexts.
func Viewer(ctx context.Context) *uuid.UUID {
	if id, ok := ctx.Value(viewerKey{}).(uuid.UUID); ok {
		return &id
	}

	return nil
}

// Required resolves the viewer and rejects the request with 401 when there
// is no valid access token.
func (t *Tokens) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := t.resolve(r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`)) // nolint:errcheck
			return
		}

		next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), id)))
	})
}

// Optional resolves the viewer when a valid access token is present and
// leaves the context anonymous otherwise.
func (t *Tokens) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, err := t.resolve(r); err == nil {
			r = r.WithContext(WithViewer(r.Context(), id))
		}

		next.ServeHTTP(w, r)
	})
}

func (t *Tokens) resolve(r *http.Request) (uuid.UUID, error) {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return t.VerifyAccess(strings.TrimPrefix(h, "Bearer "))
	}

	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return t.VerifyAccess(c.Value)
	}

	return uuid.Nil, ErrInvalidToken
}
