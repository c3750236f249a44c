package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"millet-market/internal/middleware"
	"millet-market/internal/model"

	"github.com/rs/zerolog"
)

// ContactHandler handles the contact-form endpoint. The message is echoed
// back, not persisted; the endpoint exists behind the session guard only.
type ContactHandler struct {
	logger zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		logger: logger.With().Str("handler", "contact").Logger(),
	}
}

// ContactRequest is the payload for the contact form.
type ContactRequest struct {
	Message string `json:"message"`
}

// ContactUs handles POST /api/contactus requests.
func (h *ContactHandler) ContactUs(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserID(r); !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	h.logger.Info().Int("message_len", len(req.Message)).Msg("contact form received")

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Contact us with message: %s", req.Message),
	})
}
