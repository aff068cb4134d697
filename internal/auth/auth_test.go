package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_IssuePair(t *testing.T) {
	tokens := New("access", "refresh", time.Minute, time.Hour)
	id := uuid.New()

	pair, err := tokens.IssuePair(id)
	require.NoError(t, err)

	got, err := tokens.VerifyAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = tokens.VerifyRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokens_separateSecrets(t *testing.T) {
	tokens := New("access", "refresh", time.Minute, time.Hour)

	pair, err := tokens.IssuePair(uuid.New())
	require.NoError(t, err)

	_, err = tokens.VerifyAccess(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.VerifyRefresh(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_expired(t *testing.T) {
	tokens := New("access", "refresh", -time.Minute, -time.Minute)

	pair, err := tokens.IssuePair(uuid.New())
	require.NoError(t, err)

	_, err = tokens.VerifyAccess(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_garbage(t *testing.T) {
	tokens := New("access", "refresh", time.Minute, time.Hour)

	_, err := tokens.VerifyAccess("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestViewer(t *testing.T) {
	assert.Nil(t, Viewer(context.Background()))

	id := uuid.New()
	got := Viewer(WithViewer(context.Background(), id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
}

func TestTokens_Optional(t *testing.T) {
	tokens := New("access", "refresh", time.Minute, time.Hour)
	id := uuid.New()

	pair, err := tokens.IssuePair(id)
	require.NoError(t, err)

	var seen *uuid.UUID
	h := tokens.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = Viewer(r.Context())
	}))

	t.Run("anonymous", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		h.ServeHTTP(httptest.NewRecorder(), r)
		assert.Nil(t, seen)
	})

	t.Run("bearer", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+pair.Access)
		h.ServeHTTP(httptest.NewRecorder(), r)
		require.NotNil(t, seen)
		assert.Equal(t, id, *seen)
	})

	t.Run("cookie", func(t *testing.T) {
		seen = nil
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.Access})
		h.ServeHTTP(httptest.NewRecorder(), r)
		require.NotNil(t, seen)
		assert.Equal(t, id, *seen)
	})
}
