package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tastebud-app/tastebud-backend/internal/auth"
	"github.com/tastebud-app/tastebud-backend/internal/utils"
)

type contextKey string

// userIDKey is the request-context key under which the gate stores the
// verified user id.
const userIDKey contextKey = "user_id"

// UserIDFromContext returns the user id attached by Authenticate.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// Authenticate gates protected routes behind a bearer token. A missing or
// malformed Authorization header yields 401; a token that fails verification
// yields 403. On success the resolved user id is attached to the request
// context.
func Authenticate(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
				return
			}

			// Extract token from "Bearer <token>"
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access denied")
				return
			}

			userID, err := tokens.Verify(tokenParts[1])
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
