package ratelimiter

import (
	"fmt"
	"sync"
	"time"
)

// Config describes one bucket. Every key starts full.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_BURST" envDefault:"30"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"2s"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the state of a key after a check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is zero for allowed results.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

type state struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
}

// Bucket holds per-key token buckets in memory.
type Bucket struct {
	cfg   Config
	now   func() time.Time
	mu    sync.Mutex
	state map[string]*state
}

// BucketOption configures a Bucket.
type BucketOption func(*Bucket)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) BucketOption {
	return func(b *Bucket) {
		if now != nil {
			b.now = now
		}
	}
}

func NewBucket(cfg Config, opts ...BucketOption) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	b := &Bucket{cfg: cfg, now: time.Now, state: make(map[string]*state)}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *Bucket) Allow(key string) Result {
	res, _ := b.AllowN(key, 1)
	return res
}

// AllowN takes n tokens from key. Denied calls consume nothing.
func (b *Bucket) AllowN(key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	s, ok := b.state[key]
	if !ok {
		s = &state{tokens: b.cfg.Capacity, lastRefill: now}
		b.state[key] = s
	}

	// Cap the interval count so a long idle key cannot overflow.
	maxIntervals := int64(b.cfg.Capacity/b.cfg.RefillRate + 1)
	if elapsed := min(int64(now.Sub(s.lastRefill)/b.cfg.RefillInterval), maxIntervals); elapsed > 0 {
		s.tokens = min(s.tokens+int(elapsed)*b.cfg.RefillRate, b.cfg.Capacity)
		s.lastRefill = now
	}

	s.lastSeen = now
	remaining := s.tokens - n
	if remaining >= 0 {
		s.tokens = remaining
	}

	return Result{
		Limit:     b.cfg.Capacity,
		Remaining: remaining,
		ResetAt:   s.lastRefill.Add(b.cfg.RefillInterval),
	}, nil
}

// Prune drops keys not seen for idle and returns how many were removed.
func (b *Bucket) Prune(idle time.Duration) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := b.now().Add(-idle)
	n := 0
	for key, s := range b.state {
		if s.lastSeen.Before(cutoff) {
			delete(b.state, key)
			n++
		}
	}
	return n
}
