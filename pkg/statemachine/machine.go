package statemachine

import (
	"context"
	"fmt"
	"sync"
)

type transitionKey struct {
	from  string
	event string
}

// Machine is the in-memory StateMachine implementation.
type Machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[transitionKey][]Transition
	hooks       []Hook
}

func newMachine(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[transitionKey][]Transition),
	}
}

func (m *Machine) add(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}
	key := transitionKey{from: t.From.Name(), event: t.Event.Name()}
	m.transitions[key] = append(m.transitions[key], t)
	return nil
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire triggers event. The first registered transition whose guards pass is taken.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	t, err := m.match(ctx, from, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event, data); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("%w: %s -> %s on %s: %w", ErrActionFailed, from.Name(), t.To.Name(), event.Name(), err)
		}
	}

	m.current = t.To
	hooks := m.hooks
	m.mu.Unlock()

	for _, hook := range hooks {
		hook(ctx, from, t.To, event)
	}
	return nil
}

func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.match(ctx, m.current, event, data)
	return err == nil
}

func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// match must be called with the lock held.
func (m *Machine) match(ctx context.Context, from State, event Event, data any) (*Transition, error) {
	candidates := m.transitions[transitionKey{from: from.Name(), event: event.Name()}]
	if len(candidates) == 0 {
		return nil, &NoTransitionError{State: from.Name(), Event: event.Name()}
	}

	for i := range candidates {
		if guardsPass(ctx, candidates[i].Guards, from, event, data) {
			return &candidates[i], nil
		}
	}
	return nil, &RejectedError{State: from.Name(), Event: event.Name()}
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, guard := range guards {
		if !guard(ctx, from, event, data) {
			return false
		}
	}
	return true
}
