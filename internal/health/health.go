// Package health contains code for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// Pinger pings external service.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

func (p subjectPinger) Ping(ctx context.Context) error { return p.f(ctx) }
func (p subjectPinger) Name() string                   { return p.s }

// SubjectPinger wraps an external ping function, e.g. (sql.DB).PingContext.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{f: f, s: s}
}

// Handler pings every pinger concurrently and reports the results.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		gr, ctx := errgroup.WithContext(ctx)

		var mu sync.Mutex
		resp := struct {
			Version string            `json:"version"`
			Commit  string            `json:"commit"`
			Errors  map[string]string `json:"errors"`
		}{
			Version: version,
			Commit:  commit,
			Errors:  map[string]string{},
		}

		failed := false

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				err := v.Ping(ctx)
				if err != nil {
					logrus.WithError(err).Error("health check failed")
				}

				mu.Lock()
				if err != nil {
					resp.Errors[v.Name()] = err.Error()
					failed = true
				}
				mu.Unlock()

				return nil
			})
		}

		gr.Wait() // nolint:errcheck

		if failed {
			w.WriteHeader(http.StatusInternalServerError)
		}

		data, _ := json.Marshal(resp) // nolint:errcheck
		w.Write(data)                 // nolint:errcheck
	}
}
