package handler

import (
	"encoding/json"
	"net/http"

	"millet-market/internal/auth"
	"millet-market/internal/middleware"
	"millet-market/internal/model"
	"millet-market/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles account-related HTTP requests.
type UserHandler struct {
	service service.UserService
	tokens  *auth.Tokens
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, tokens *auth.Tokens, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		tokens:  tokens,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// issueSession signs a session token for the user and attaches the cookie.
func (h *UserHandler) issueSession(w http.ResponseWriter, user *model.User) (string, bool) {
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to create session", h.logger)
		return "", false
	}
	auth.SetSessionCookie(w, token)
	return token, true
}

// Register handles POST /api/users/register requests.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	token, ok := h.issueSession(w, user)
	if !ok {
		return
	}

	writeJSON(w, http.StatusCreated, model.AuthResponse{
		Profile: user.PublicProfile(),
		Token:   token,
	})
}

// Login handles POST /api/users/login requests.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	token, ok := h.issueSession(w, user)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, model.AuthResponse{
		Profile: user.PublicProfile(),
		Token:   token,
	})
}

// Logout handles GET /api/users/logout requests. It always succeeds: the
// session cookie is overwritten with an already-expired value.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// GetUser handles GET /api/users/getuser requests.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user.PublicProfile())
}

// LoginStatus handles GET /api/users/loginstatus requests. It answers with a
// bare boolean and never fails, whatever state the cookie is in.
func (h *UserHandler) LoginStatus(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.SessionToken(r)
	if !ok {
		writeJSON(w, http.StatusOK, false)
		return
	}

	_, err := h.tokens.Verify(token)
	writeJSON(w, http.StatusOK, err == nil)
}

// UpdateProfile handles PATCH /api/users/updateuser requests.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user.PublicProfile())
}

// ChangePassword handles PATCH /api/users/changepassword requests.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

// GetShops handles GET /api/users/getshops?city= requests.
func (h *UserHandler) GetShops(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	shops, err := h.service.GetShopsByCity(r.Context(), city)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ShopsResponse{ShopsList: shops})
}

// ForgotPassword handles GET /api/users/forgotpassword requests.
// TODO: wire a mailer and reset-token flow; the route is a placeholder for now.
func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "forgot password"})
}
