package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/auth"
	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/rs/zerolog"
)

type contextKey string

const (
	userPhoneKey   contextKey = "userPhone"
	adminClaimsKey contextKey = "adminClaims"
)

// UserPhone returns the authenticated user's phone from the request context.
// Empty when the request did not pass RequireUser.
func UserPhone(ctx context.Context) string {
	phone, _ := ctx.Value(userPhoneKey).(string)
	return phone
}

// WithUserPhone stores the authenticated phone in the context.
func WithUserPhone(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, userPhoneKey, phone)
}

// AdminFromContext returns the authenticated admin claims, or nil.
func AdminFromContext(ctx context.Context) *auth.AdminClaims {
	claims, _ := ctx.Value(adminClaimsKey).(*auth.AdminClaims)
	return claims
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[len("Bearer "):]
	}
	return ""
}

func writeUnauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		OK:    false,
		Error: &model.APIError{Code: model.ErrCodeUnauthenticated, Message: message},
	})
}

// RequireUser verifies the user bearer token and stores the phone claim in
// the request context.
func RequireUser(tokens *auth.TokenManager, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing user token")
				writeUnauthenticated(w, "User token missing")
				return
			}

			claims, err := tokens.VerifyUser(token)
			if err != nil {
				logger.Warn().Str("path", r.URL.Path).Err(err).Msg("invalid user token")
				writeUnauthenticated(w, "Invalid user token")
				return
			}

			ctx := WithUserPhone(r.Context(), claims.Phone)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin verifies the admin bearer token and stores the claims in the
// request context.
func RequireAdmin(tokens *auth.TokenManager, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing admin token")
				writeUnauthenticated(w, "Admin token missing")
				return
			}

			claims, err := tokens.VerifyAdmin(token)
			if err != nil {
				logger.Warn().Str("path", r.URL.Path).Err(err).Msg("invalid admin token")
				writeUnauthenticated(w, "Invalid admin token")
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(model.APIResponse{
						OK:    false,
						Error: &model.APIError{Code: model.ErrCodeServerError, Message: "Something went wrong"},
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
