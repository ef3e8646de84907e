// Package handler exposes the mood history, chat replies and tips over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/easeaico/wellness/internal/types"
	"github.com/easeaico/wellness/internal/utils"
)

// MoodStore is the subset of *mood.Store the handlers use.
type MoodStore interface {
	Record(ctx context.Context, m types.Mood) (types.MoodEntry, error)
	History() []types.MoodEntry
	Today() (types.MoodEntry, bool)
	Recent(n int) []types.MoodEntry
	Latest() (types.MoodEntry, bool)
}

// Replier produces a chat reply for a message.
type Replier interface {
	Reply(message string) string
}

// TipPicker produces a tip for a mood key.
type TipPicker interface {
	Pick(mood string) string
}

// Options tune handler behaviour.
type Options struct {
	// RecentLimit is the default size of /moods/recent.
	RecentLimit int
	// ThinkingDelay adds a short random pause before chat replies and tips.
	ThinkingDelay bool
	// Rand drives the delay length. Nil uses utils.DefaultRand.
	Rand   utils.RandFunc
	Logger *slog.Logger
}

// Handler serves the JSON API.
type Handler struct {
	moods   MoodStore
	replies Replier
	tips    TipPicker
	opts    Options
	logger  *slog.Logger
}

// New returns a Handler.
func New(moods MoodStore, replies Replier, tips TipPicker, opts Options) *Handler {
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 7
	}
	if opts.Rand == nil {
		opts.Rand = utils.DefaultRand
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{moods: moods, replies: replies, tips: tips, opts: opts, logger: logger}
}

// Routes builds the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/moods", func(r chi.Router) {
			r.Get("/", h.handleListMoods)
			r.Post("/", h.handleRecordMood)
			r.Get("/options", h.handleMoodOptions)
			r.Get("/today", h.handleToday)
			r.Get("/recent", h.handleRecent)
		})
		r.Route("/chat", func(r chi.Router) {
			r.Get("/greeting", h.handleGreeting)
			r.Post("/", h.handleChat)
		})
		r.Route("/tips", func(r chi.Router) {
			r.Get("/", h.handleTip)
			r.Get("/resources", h.handleResources)
		})
	})
	return r
}

// think pauses for a random duration in [lo, hi) when ThinkingDelay is on.
func (h *Handler) think(ctx context.Context, lo, hi time.Duration) error {
	if !h.opts.ThinkingDelay || hi <= lo {
		return nil
	}
	spread := int((hi - lo) / time.Millisecond)
	d := lo + time.Duration(h.opts.Rand(spread))*time.Millisecond

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
