package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"millet-market/internal/middleware"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestContactHandler_ContactUs(t *testing.T) {
	h := NewContactHandler(zerolog.Nop())

	t.Run("Echoes the message", func(t *testing.T) {
		body := `{"message":"Do you ship to Chennai?"}`
		req := middleware.WithUserID(
			httptest.NewRequest(http.MethodPost, "/api/contactus", bytes.NewBufferString(body)), uuid.New())
		w := httptest.NewRecorder()

		h.ContactUs(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Contact us with message: Do you ship to Chennai?"}`, w.Body.String())
	})

	t.Run("No session in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contactus", bytes.NewBufferString(`{"message":"hi"}`))
		w := httptest.NewRecorder()

		h.ContactUs(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := middleware.WithUserID(
			httptest.NewRequest(http.MethodPost, "/api/contactus", bytes.NewBufferString(`{`)), uuid.New())
		w := httptest.NewRecorder()

		h.ContactUs(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
