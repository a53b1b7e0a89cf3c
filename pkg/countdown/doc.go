// Package countdown provides a cancellable delayed task: a callback that runs
// exactly once after a fixed number of ticks, unless it is cancelled first.
//
// It replaces "do X after N seconds" callbacks with an explicit handle that
// the caller owns:
//
//	task := countdown.Start(ctx, 5, func(ctx context.Context) error {
//	    return launch(ctx, uri)
//	}, countdown.WithTick(func(left int) {
//	    fmt.Fprintf(os.Stderr, "\ropening in %d...", left)
//	}))
//
//	// a user action aborts it
//	task.Cancel()
//
//	outcome, err := task.Wait()
//
// The task runs in its own goroutine. Tick observers are called from that
// goroutine, in order, once per interval with the number of ticks left. The
// fire callback is never called after Cancel or after the parent context is
// done.
package countdown
