// Package ratelimiter implements an in-memory token bucket keyed by an
// arbitrary string, plus HTTP middleware that answers 429 with Retry-After
// and X-RateLimit-* headers once a key runs dry.
package ratelimiter
