package middleware

import (
	"crypto/subtle"
	"net"
	"net/http"

	rl "github.com/rogerio-castellano/lims-tracker/internal/http/rate_limiter"
	"github.com/rs/zerolog"
)

// InternalKeyHeader carries the key that exempts in-process callers, such as
// the dashboard, from rate limiting.
const InternalKeyHeader = "X-Lims-Internal-Key"

// RateLimit rejects clients that exhausted their token bucket. A nil limiter
// disables it. Requests presenting internalKey in InternalKeyHeader are not
// counted; an empty internalKey exempts nobody.
func RateLimit(limiter *rl.Limiter, internalKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isInternal(r, internalKey) {
				next.ServeHTTP(w, r)
				return
			}
			ip := clientIP(r)
			if !limiter.Allow(ip) {
				zerolog.Ctx(r.Context()).Warn().Str("ip", ip).Msg("rate limit exceeded")
				w.Header().Set("Retry-After", "1")
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isInternal(r *http.Request, key string) bool {
	if key == "" {
		return false
	}
	got := r.Header.Get(InternalKeyHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
