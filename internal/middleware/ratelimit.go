package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Auth endpoints allow 50 requests per client IP per 15 minutes.
const (
	authLimitWindow = 15 * time.Minute
	authLimitMax    = 50
)

// ipLimiter hands out one token bucket per client IP.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPLimiter(window time.Duration, max int) *ipLimiter {
	return &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter.Allow()
}

// AuthRateLimit throttles the signup/login endpoints per client IP.
func AuthRateLimit(logger zerolog.Logger) func(http.Handler) http.Handler {
	limiter := newIPLimiter(authLimitWindow, authLimitMax)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.allow(ip) {
				logger.Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Msg("auth rate limit exceeded")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(model.APIResponse{
					OK:    false,
					Error: &model.APIError{Code: model.ErrCodeValidation, Message: "Too many requests"},
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
