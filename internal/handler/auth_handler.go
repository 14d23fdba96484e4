package handler

import (
	"net/http"

	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles signup and the two login endpoints.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid signup", details)
		return
	}

	result, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, result)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid phone", details)
		return
	}

	result, err := h.service.Login(r.Context(), req.Phone)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, result)
}

// AdminLogin handles POST /admin/login.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLoginRequest
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "username & password required", details)
		return
	}

	token, err := h.service.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"token": token})
}
