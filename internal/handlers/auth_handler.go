package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bmaBack/internal/models"
	"bmaBack/internal/services"
)

type AuthHandler struct {
	Service *services.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyLogin checks credentials with the identity provider and returns the
// user together with an agent token.
func (h *AuthHandler) VerifyLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLoginError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeLoginError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.Service.VerifyLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeLoginError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeLoginError(w, http.StatusInternalServerError, "Login verification failed")
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

func writeLoginError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   msg,
	})
}
