package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-profiler/internal/config"
)

// TokenRequest is the payload for the token endpoint.
type TokenRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// AuthHandler handles authentication-related HTTP requests.
// Credentials come from the API_USERNAME and API_PASSWORD_HASH environment
// variables rather than a user table; there is a single API client identity.
type AuthHandler struct {
	jwtService     *JWTService
	passwordConfig *config.PasswordConfig
	validator      *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService *JWTService, passwordConfig *config.PasswordConfig) *AuthHandler {
	return &AuthHandler{
		jwtService:     jwtService,
		passwordConfig: passwordConfig,
		validator:      validator.New(),
	}
}

// Token handles token issuance requests.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	expectedUser := os.Getenv("API_USERNAME")
	expectedHash := os.Getenv("API_PASSWORD_HASH")
	if expectedUser == "" || expectedHash == "" {
		http.Error(w, "authentication is not configured", http.StatusServiceUnavailable)
		return
	}

	if req.Username != expectedUser || !h.passwordConfig.VerifyPassword(req.Password, expectedHash) {
		authErr := &ErrInvalidCredentials{}
		http.Error(w, authErr.Error(), HTTPStatus(authErr))
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: h.jwtService.config.ExpirationHours * 3600,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
