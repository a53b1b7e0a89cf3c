package countdown

import (
	"context"
	"time"
)

// Outcome reports how a task ended.
type Outcome int

const (
	Pending Outcome = iota
	Fired
	Canceled
)

func (o Outcome) String() string {
	switch o {
	case Fired:
		return "fired"
	case Canceled:
		return "canceled"
	default:
		return "pending"
	}
}

// DefaultInterval is the time between two ticks.
const DefaultInterval = time.Second

// Option configures a task.
type Option func(*config)

type config struct {
	interval time.Duration
	onTick   []func(remaining int)
}

// WithInterval overrides the tick interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithTick registers an observer called after every tick with the ticks left.
func WithTick(fn func(remaining int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onTick = append(c.onTick, fn)
		}
	}
}

// Task is a running countdown.
type Task struct {
	cancel  context.CancelFunc
	done    chan struct{}
	outcome Outcome
	err     error
}

// Start begins a countdown of steps ticks and calls fire once it reaches zero.
// A non-positive steps value fires on the next scheduler pass.
func Start(ctx context.Context, steps int, fire func(context.Context) error, opts ...Option) *Task {
	cfg := &config{interval: DefaultInterval}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go t.run(ctx, max(steps, 0), fire, cfg)
	return t
}

func (t *Task) run(ctx context.Context, steps int, fire func(context.Context) error, cfg *config) {
	defer close(t.done)
	defer t.cancel()

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	for remaining := steps; remaining > 0; {
		select {
		case <-ctx.Done():
			t.outcome, t.err = Canceled, ErrCanceled
			return
		case <-ticker.C:
			remaining--
			for _, fn := range cfg.onTick {
				fn(remaining)
			}
		}
	}

	// A cancel racing the last tick wins.
	if ctx.Err() != nil {
		t.outcome, t.err = Canceled, ErrCanceled
		return
	}

	t.outcome = Fired
	if fire != nil {
		t.err = fire(ctx)
	}
}

// Cancel aborts the countdown. It is a no-op once the task has completed.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed when the task has either fired or been canceled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes and reports its outcome. For a fired
// task the error is whatever fire returned.
func (t *Task) Wait() (Outcome, error) {
	<-t.done
	return t.outcome, t.err
}

// WaitTimeout is Wait bounded by timeout.
func (t *Task) WaitTimeout(timeout time.Duration) (Outcome, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-t.done:
		return t.outcome, t.err
	case <-timer.C:
		return Pending, ErrTimeout
	}
}
