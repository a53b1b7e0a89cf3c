// Package statemachine provides a small finite-state machine with guarded
// transitions, side-effect actions and transition hooks.
//
// States and events are anything with a Name method, so domain packages can
// use their own string types:
//
//	type State string
//	func (s State) Name() string { return string(s) }
//
// Several transitions may share the same (from, event) pair. They are tried in
// registration order and the first one whose guards all pass wins, which is
// how a single "resolve" event can branch to either a success or a failure
// state:
//
//	sm := statemachine.MustNew(Idle,
//	    statemachine.WithTransition(Idle, Validating, Submit,
//	        statemachine.WithAction(runChecks)),
//	    statemachine.WithTransition(Validating, Failed, Resolve,
//	        statemachine.WithGuard(hasError)),
//	    statemachine.WithTransition(Validating, Ready, Resolve),
//	)
//
// Actions run before the state changes; an action error aborts the transition
// and leaves the machine where it was. Hooks run after the state changes and
// cannot veto it.
//
// Machines are safe for concurrent use, but they are cheap enough to build one
// per unit of work, which keeps callers free of shared mutable state.
package statemachine
