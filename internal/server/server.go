// Package server Vconnect
//
// Vconnect is a social-networking backend: accounts, profiles, posts, likes
// and a follow graph, exposed as a JSON REST API.
//
//     Schemes: https
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/Naveenmanral1/Vconnect-backend/internal/api"
	"github.com/Naveenmanral1/Vconnect-backend/internal/auth"
	"github.com/Naveenmanral1/Vconnect-backend/internal/media"
	"github.com/Naveenmanral1/Vconnect-backend/internal/service"
	"github.com/Naveenmanral1/Vconnect-backend/internal/storage"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

type server struct {
	s service.Service
	t *auth.Tokens
	m media.Store
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, t *auth.Tokens, m media.Store, r chi.Router, timeout time.Duration) {
	r.Use(
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		api.RecovererMiddleware,
		middleware.Timeout(timeout),
		api.BodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s: s,
		t: t,
		m: m,
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", srv.registerUser)
			r.Post("/login", srv.loginUser)
			r.Post("/refresh-token", srv.refreshToken)

			r.Group(func(r chi.Router) {
				r.Use(t.Required)
				r.Post("/logout", srv.logoutUser)
				r.Get("/current-user", srv.getCurrentUser)
				r.Patch("/update-password", srv.updatePassword)
			})
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Use(t.Required)
			r.Post("/", srv.createProfile)
			r.Get("/{userId}", srv.getProfile)
			r.Patch("/{profileId}", srv.updateProfile)
		})

		r.Route("/posts", func(r chi.Router) {
			// The global feed is viewable anonymously; per-viewer
			// fields default to false then.
			r.With(t.Optional).Get("/", srv.listPosts)

			r.Group(func(r chi.Router) {
				r.Use(t.Required)
				r.Post("/", srv.createPost)
				r.Get("/following-posts", srv.listFollowedPosts)
				r.Get("/{postId}", srv.getPost)
				r.Patch("/{postId}", srv.updatePost)
				r.Delete("/{postId}", srv.deletePost)
			})
		})

		r.Route("/follows", func(r chi.Router) {
			r.Use(t.Required)
			r.Post("/{pageId}", srv.toggleFollow)
			r.Get("/{pageId}", srv.listFollowers)
			r.Get("/{followerId}/following", srv.listFollowing)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Use(t.Required)
			r.Post("/toggle/{postId}", srv.toggleLike)
			r.Get("/{postId}/likes", srv.listPostLikes)
		})
	})
}

// writeError maps service/storage sentinels to HTTP statuses; everything
// else becomes a logged 500.
func writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, op+": not found")
	case errors.Is(err, storage.ErrAlreadyExists):
		api.WriteError(w, http.StatusConflict, op+": already exists")
	case errors.Is(err, service.ErrForbidden):
		api.WriteError(w, http.StatusForbidden, op+": forbidden")
	case errors.Is(err, service.ErrInvalidCredentials):
		api.WriteError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		api.WriteError(w, http.StatusUnauthorized, "invalid refresh token")
	default:
		api.WriteInternalErrorf(ctx, w, "failed to %s: %s", op, err.Error())
	}
}

// viewer returns the authenticated caller. Handlers behind the Required
// middleware may assume it is set.
func viewer(r *http.Request) uuid.UUID {
	if id := auth.Viewer(r.Context()); id != nil {
		return *id
	}

	return uuid.Nil
}
