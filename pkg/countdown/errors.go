package countdown

import "errors"

var (
	// ErrCanceled is returned by Wait when the countdown was aborted before firing.
	ErrCanceled = errors.New("countdown: canceled before completion")
	// ErrTimeout is returned by WaitTimeout when the task is still running.
	ErrTimeout = errors.New("countdown: timed out waiting for completion")
)
