package handler

import (
	"net/http"
	"time"

	"github.com/easeaico/wellness/internal/tips"
	"github.com/easeaico/wellness/internal/types"
)

type tipResponse struct {
	Tip   string     `json:"tip"`
	Mood  types.Mood `json:"mood"`
	Emoji string     `json:"emoji"`
	Label string     `json:"label"`
}

func (h *Handler) handleTip(w http.ResponseWriter, r *http.Request) {
	requested := r.URL.Query().Get("mood")
	if requested == "" {
		if latest, ok := h.moods.Latest(); ok {
			requested = string(latest.Mood)
		}
	}

	if err := h.think(r.Context(), time.Second, 2500*time.Millisecond); err != nil {
		return
	}

	resolved := tips.Resolve(requested)
	writeJSON(w, http.StatusOK, tipResponse{
		Tip:   h.tips.Pick(requested),
		Mood:  resolved,
		Emoji: resolved.Emoji(),
		Label: resolved.Label(),
	})
}

func (h *Handler) handleResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"data": tips.SupportResources()})
}
