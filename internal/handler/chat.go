package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/easeaico/wellness/internal/chat"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply  string `json:"reply"`
	Crisis bool   `json:"crisis"`
}

func (h *Handler) handleGreeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chatResponse{Reply: chat.Greeting})
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := decodeBody(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	if err := h.think(r.Context(), time.Second, 3*time.Second); err != nil {
		return
	}

	crisis := chat.IsCrisis(payload.Message)
	if crisis {
		// never log the message text
		h.logger.Warn("crisis keywords detected in chat message")
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Reply:  h.replies.Reply(payload.Message),
		Crisis: crisis,
	})
}
