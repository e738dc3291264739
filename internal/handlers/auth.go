package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tastebud-app/tastebud-backend/internal/auth"
	"github.com/tastebud-app/tastebud-backend/internal/dto"
	"github.com/tastebud-app/tastebud-backend/internal/middleware"
	"github.com/tastebud-app/tastebud-backend/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	service *auth.Service
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(service *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 200 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or user already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.service.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, auth.ErrDuplicateUser):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "User already exists")
		default:
			h.logger.Error("register failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    session.User,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation), errors.Is(err, auth.ErrInvalidCredentials):
			// One message for unknown email and wrong password alike.
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		default:
			h.logger.Error("login failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    session.User,
	})
}

// GetProfile returns the current user's profile
// @Summary Get user profile
// @Description Get the current authenticated user's profile information
// @Tags authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse "User profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Missing bearer token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
		default:
			h.logger.Error("profile fetch failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch profile")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{
		Success: true,
		User:    *user,
	})
}
