// Package sentry contains a logrus hook which forwards high-severity entries
// to Sentry.
package sentry

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Hook is a logrus hook backed by sentry-go.
type Hook struct {
	levels []logrus.Level
}

// NewHook initializes the sentry client and returns a hook for the given
// levels.
func NewHook(opts sentry.ClientOptions, levels ...logrus.Level) (*Hook, error) {
	if err := sentry.Init(opts); err != nil {
		return nil, err
	}

	return &Hook{levels: levels}, nil
}

// Levels ...
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire ...
func (h *Hook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = toSentryLevel(entry.Level)
	event.Message = entry.Message

	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			event.Extra[k] = err.Error()
			continue
		}
		event.Extra[k] = v
	}

	sentry.CaptureEvent(event)

	// Fatal and panic entries terminate the process, flush synchronously.
	if entry.Level <= logrus.FatalLevel {
		sentry.Flush(2 * time.Second)
	}

	return nil
}

func toSentryLevel(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	default:
		return sentry.LevelInfo
	}
}
