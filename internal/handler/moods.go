package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/easeaico/wellness/internal/mood"
	"github.com/easeaico/wellness/internal/types"
)

type recordMoodRequest struct {
	Mood string `json:"mood"`
}

type listResponse struct {
	Data []types.MoodEntry `json:"data"`
	Meta listMeta          `json:"meta"`
}

type listMeta struct {
	Count int `json:"count"`
}

type todayResponse struct {
	Data   *types.MoodEntry `json:"data,omitempty"`
	Logged bool             `json:"logged"`
}

func (h *Handler) handleMoodOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"data": types.MoodOptions()})
}

func (h *Handler) handleListMoods(w http.ResponseWriter, r *http.Request) {
	items := h.moods.History()
	writeJSON(w, http.StatusOK, listResponse{Data: items, Meta: listMeta{Count: len(items)}})
}

func (h *Handler) handleRecordMood(w http.ResponseWriter, r *http.Request) {
	var payload recordMoodRequest
	if err := decodeBody(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	m, ok := types.ParseMood(payload.Mood)
	if !ok {
		writeError(w, http.StatusBadRequest, "mood must be one of very-happy, happy, neutral, sad, very-sad")
		return
	}

	entry, err := h.moods.Record(r.Context(), m)
	if err != nil {
		var persistErr *mood.PersistenceError
		switch {
		case errors.Is(err, mood.ErrInvalidMood):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &persistErr):
			h.logger.Error("failed to save mood", "mood", m, "error", err.Error())
			writeError(w, http.StatusServiceUnavailable, "could not save your mood, please try again")
		default:
			h.logger.Error("failed to record mood", "mood", m, "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.logger.Info("mood recorded", "id", entry.ID, "mood", entry.Mood)
	writeJSON(w, http.StatusCreated, map[string]any{"data": entry})
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.moods.Today()
	if !ok {
		writeJSON(w, http.StatusOK, todayResponse{Logged: false})
		return
	}
	writeJSON(w, http.StatusOK, todayResponse{Data: &entry, Logged: true})
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	n := h.opts.RecentLimit
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	items := h.moods.Recent(n)
	writeJSON(w, http.StatusOK, listResponse{Data: items, Meta: listMeta{Count: len(items)}})
}
