// Package api contains helpers for writing JSON responses and common HTTP
// middlewares.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// WriteOK writes v as a JSON response with the given status.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) // nolint:errcheck
}

// WriteError writes an error response with the given status and message.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteOK(w, status, Error{Error: message})
}

// WriteInternalError logs the error with the request id and writes an opaque
// 500 response.
func WriteInternalError(ctx context.Context, w http.ResponseWriter, message string) {
	logrus.WithField("request_id", middleware.GetReqID(ctx)).Error(message)
	WriteError(w, http.StatusInternalServerError, "internal error")
}

// WriteInternalErrorf ...
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logrus.WithField("request_id", middleware.GetReqID(ctx)).Errorf(format, args...)
	WriteError(w, http.StatusInternalServerError, "internal error")
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// LoggerMiddleware logs every request with its real IP, status and duration.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(&sw, r)

		logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"ip":         realip.FromRequest(r),
			"status":     sw.status,
			"duration":   time.Since(start).String(),
		}).Info("request processed")
	})
}

// RecovererMiddleware writes 500 instead of crashing the request goroutine.
func RecovererMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.WithField("request_id", middleware.GetReqID(r.Context())).
					Errorf("panic recovered: %+v", rec)
				WriteError(w, http.StatusInternalServerError, "internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// BodyLimiterMiddleware rejects bodies larger than n bytes.
func BodyLimiterMiddleware(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
