package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/pkg/jwt"
)

// LoggerHTTP makes logger available to handlers through config.KeyLogger.
func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthHTTP admits requests carrying a valid admin bearer token and stores its subject under
// config.KeyAdmin.
func AuthHTTP(validator TokenValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logger_lib.FromContext(r.Context(), config.KeyLogger)

			token := bearerToken(r)
			if token == "" {
				writeError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateAdminToken(token)
			if errors.Is(err, jwt.ErrForbidden) {
				logger.Warn(fmt.Sprintf("rejected token without admin role: %v", err))
				writeError(w, "forbidden", http.StatusForbidden)
				return
			}
			if err != nil {
				logger.Warn(fmt.Sprintf("rejected admin token: %v", err))
				writeError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), config.KeyAdmin, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
