package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// KeyFunc extracts the bucket key from a request. An empty key skips the
// limit.
type KeyFunc func(r *http.Request) string

// Middleware limits requests per key. Denied requests are passed to
// onLimited, or answered with a plain 429 when it is nil.
func Middleware(b *Bucket, key KeyFunc, onLimited http.Handler) func(http.Handler) http.Handler {
	if onLimited == nil {
		onLimited = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res := b.Allow(k)
			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				secs := int(math.Ceil(res.RetryAfter(time.Now()).Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				onLimited.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
