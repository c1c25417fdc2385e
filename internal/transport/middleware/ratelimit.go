package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

// keyedLimiter is satisfied by *ratelimit.Keyed.
type keyedLimiter interface {
	Allow(key string) bool
	RetryAfter() time.Duration
}

// RateLimit rejects requests over the limiter's budget with 429. Signed-in
// users are keyed by user id, anonymous callers by client IP.
func RateLimit(limiter keyedLimiter) Middleware {
	retryAfter := strconv.Itoa(int(math.Max(1, math.Ceil(limiter.RetryAfter().Seconds()))))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(limitKey(r)) {
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limitKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
		return "ip:" + ip
	}
	return "addr:" + r.RemoteAddr
}
