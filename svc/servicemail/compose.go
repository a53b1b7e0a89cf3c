package servicemail

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/servicemail/pkg/statemachine"
)

// State is a step of a submission attempt.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateFailed     State = "failed"
	StateReady      State = "ready"
)

func (s State) Name() string { return string(s) }

const (
	eventSubmit  = statemachine.StringEvent("submit")
	eventResolve = statemachine.StringEvent("resolve")
)

// Result is the outcome of one attempt. Exactly one of Err and Message is set.
type Result struct {
	State   State
	Err     *FieldError
	Message *ComposedMessage
}

func (r Result) OK() bool {
	return r.State == StateReady && r.Message != nil
}

// Composer runs submission attempts.
type Composer struct {
	logger *slog.Logger
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithLogger sets the logger used for transition and outcome records.
func WithLogger(l *slog.Logger) ComposerOption {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultComposer = NewComposer()

// Compose runs one attempt with a discard logger.
func Compose(ctx context.Context, in Input) Result {
	return defaultComposer.Compose(ctx, in)
}

// attempt carries data between the transitions of one submission.
type attempt struct {
	input Input
	err   *FieldError
	msg   *ComposedMessage
}

// Compose normalizes and validates in, stopping at the first failing field
// (email, store, order), and composes the message for in.Template.
func (c *Composer) Compose(ctx context.Context, in Input) Result {
	att := &attempt{input: in}

	sm := statemachine.MustNew(StateIdle,
		statemachine.WithTransition(StateIdle, StateValidating, eventSubmit,
			statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
				att.msg, att.err = run(att.input)
				return nil
			}),
		),
		statemachine.WithTransition(StateValidating, StateFailed, eventResolve,
			statemachine.WithGuard(func(context.Context, statemachine.State, statemachine.Event, any) bool {
				return att.err != nil
			}),
		),
		statemachine.WithTransition(StateValidating, StateReady, eventResolve),
		statemachine.WithHook(func(ctx context.Context, from, to statemachine.State, event statemachine.Event) {
			c.logger.DebugContext(ctx, "submission transition",
				slog.String("from", from.Name()),
				slog.String("to", to.Name()),
				slog.String("event", event.Name()),
			)
		}),
	)

	for _, ev := range []statemachine.Event{eventSubmit, eventResolve} {
		if err := sm.Fire(ctx, ev, nil); err != nil {
			// Transitions above are total; reaching this is a programming error.
			panic("servicemail: " + err.Error())
		}
	}

	state, _ := sm.Current().(State)
	if state == StateFailed {
		c.logger.DebugContext(ctx, "submission rejected",
			slog.String("field", string(att.err.Field)),
			slog.String("kind", string(att.err.Kind)),
		)
		return Result{State: state, Err: att.err}
	}

	c.logger.DebugContext(ctx, "submission ready",
		slog.String("template", string(att.input.Template)),
	)
	return Result{State: state, Message: att.msg}
}

func run(in Input) (*ComposedMessage, *FieldError) {
	in = Normalize(in)

	if err := ValidateEmail(in.Email); err != nil {
		return nil, fieldErr(err)
	}

	store, err := ValidateStoreNumber(in.StoreNumber)
	if err != nil {
		return nil, fieldErr(err)
	}

	if err := ValidateOrderNumber(in.OrderNumber, store); err != nil {
		return nil, fieldErr(err)
	}

	if !in.Template.Valid() {
		return nil, &FieldError{Field: FieldTemplate, Kind: KindUnknownTemplate, Message: msgUnknownTemplate}
	}

	subject, _ := Subject(in.Template, in.OrderNumber)
	body, _ := Body(in.Template, store, in.OrderNumber, in.CustomerName, in.Brand, in.Model)

	return &ComposedMessage{
		To:      in.Email,
		CC:      GenerateCCEmails(store),
		Subject: subject,
		Body:    body,
	}, nil
}

func fieldErr(err error) *FieldError {
	if ferr, ok := AsFieldError(err); ok {
		return ferr
	}
	return &FieldError{Message: err.Error()}
}
