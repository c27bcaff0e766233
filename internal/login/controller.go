// Package login implements the login-form controller: a small state
// machine mediating between field-change events, field validation, the
// asynchronous credential authentication call, and UI feedback.
//
// The controller owns its form state exclusively. All events (field
// changes, submit requests, authentication completions) are delivered
// through one channel and processed by a single goroutine in strict
// arrival order, so no state is ever touched concurrently.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/nfrund/gatehouse/internal/domain"
	"github.com/nfrund/gatehouse/internal/pubsub"
)

type eventKind int

const (
	eventFieldChange eventKind = iota
	eventSubmit
	eventAuthDone
)

type event struct {
	kind  eventKind
	field domain.Field
	value string
	token string
	err   error
	done  chan struct{}
}

// Controller orchestrates the login form. It has two states, Idle and
// Submitting, discriminated by State.Loading. While Submitting the form is
// frozen: field changes are dropped and further submits are no-ops, which
// is what guarantees at most one authentication call in flight.
type Controller struct {
	validator domain.FieldValidator
	auth      domain.Authenticator
	presenter domain.Presenter

	publisher pubsub.Publisher
	screenID  string
	onSuccess func(token string)
	logger    *slog.Logger

	events chan event
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.RWMutex
	state State
}

// Option configures a Controller.
type Option func(*Controller)

// WithPublisher announces every state change and sign-in outcome on the bus.
func WithPublisher(p pubsub.Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithScreenID tags published messages with the owning screen.
func WithScreenID(id string) Option {
	return func(c *Controller) { c.screenID = id }
}

// WithOnSuccess registers the navigation/session collaborator that receives
// the identity token when authentication succeeds.
func WithOnSuccess(fn func(token string)) Option {
	return func(c *Controller) { c.onSuccess = fn }
}

// WithLogger overrides the controller's scoped logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a controller seeded with empty values and no errors, and
// starts its event loop. Call Shutdown when the screen unmounts.
func New(validator domain.FieldValidator, auth domain.Authenticator, presenter domain.Presenter, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		validator: validator,
		auth:      auth,
		presenter: presenter,
		events:    make(chan event, 16),
		ctx:       ctx,
		cancel:    cancel,
		state:     newState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default().With("component", "login", "screen_id", c.screenID)
	}

	go c.run()
	return c
}

// State returns a snapshot of the current form state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.clone()
}

// OnFieldChange delivers a field-change event and returns once it has been
// processed, so error and validity state are up to date before the next
// render. Changes arriving while Submitting are dropped.
func (c *Controller) OnFieldChange(field domain.Field, value string) {
	if !field.Known() {
		c.logger.Warn("change for unknown field ignored", "field", string(field))
		return
	}
	c.dispatch(event{kind: eventFieldChange, field: field, value: value})
}

// OnSubmit delivers a submit request and returns once the transition has
// been processed. If the form is invalid or a submission is already in
// flight the request is a no-op; otherwise the controller enters
// Submitting and starts the authentication call. Resolution is
// asynchronous: observe it through State, the Presenter, or the bus.
func (c *Controller) OnSubmit() {
	c.dispatch(event{kind: eventSubmit})
}

// Shutdown stops the event loop and cancels any in-flight authentication
// context. Safe to call more than once.
func (c *Controller) Shutdown() {
	c.cancel()
}

func (c *Controller) dispatch(ev event) {
	ev.done = make(chan struct{})
	select {
	case c.events <- ev:
	case <-c.ctx.Done():
		return
	}
	select {
	case <-ev.done:
	case <-c.ctx.Done():
	}
}

func (c *Controller) run() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.events:
			switch ev.kind {
			case eventFieldChange:
				c.handleFieldChange(ev.field, ev.value)
			case eventSubmit:
				c.handleSubmit()
			case eventAuthDone:
				c.handleAuthDone(ev.token, ev.err)
			}
			if ev.done != nil {
				close(ev.done)
			}
		}
	}
}

func (c *Controller) handleFieldChange(field domain.Field, value string) {
	st := c.State()
	if st.Loading {
		// The form is frozen while a submission is in flight.
		c.logger.Debug("field change dropped while submitting", "field", string(field))
		return
	}

	st.Values = st.Values.With(field, value)
	st.Errors = st.Errors.with(field, c.validator.Validate(field, st.Values))
	c.setState(st)
}

func (c *Controller) handleSubmit() {
	st := c.State()
	if !st.CanSubmit() {
		c.logger.Debug("submit ignored", "loading", st.Loading, "valid", st.Valid())
		return
	}

	st.Loading = true
	c.setState(st)

	creds := st.Values
	go func() {
		token, err := c.auth.Authenticate(c.ctx, creds)
		select {
		case c.events <- event{kind: eventAuthDone, token: token, err: err}:
		case <-c.ctx.Done():
		}
	}()
}

func (c *Controller) handleAuthDone(token string, err error) {
	if err != nil {
		// Loading must be off before the dialog is shown: the spinner and
		// the failure dialog are never visible at the same time. Values and
		// errors are left untouched so the user does not retype.
		st := c.State()
		st.Loading = false
		c.setState(st)

		c.logger.Warn("sign-in failed", "email", st.Values.Email, "error", err)
		c.publish(TopicSignInFailed, map[string]string{
			"email":  st.Values.Email,
			"reason": domain.FailureMessage(err),
		})
		c.presenter.Show(domain.DialogTitle, domain.FailureMessage(err))
		return
	}

	// The screen is torn down by the collaborator, so the controller stays
	// in Submitting rather than flipping back to Idle.
	st := c.State()
	c.logger.Info("sign-in succeeded", "email", st.Values.Email)
	c.publish(TopicSignInSucceeded, map[string]string{"email": st.Values.Email})
	if c.onSuccess != nil {
		c.onSuccess(token)
	}
}

func (c *Controller) setState(st State) {
	c.mu.Lock()
	c.state = st
	c.mu.Unlock()

	c.publish(TopicFormState, st)
}

func (c *Controller) publish(topic string, payload any) {
	if c.publisher == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("failed to marshal bus payload", "topic", topic, "error", err)
		return
	}
	msg := pubsub.Message{Topic: topic, ScreenID: c.screenID, Payload: data}
	if err := c.publisher.Publish(c.ctx, msg); err != nil {
		c.logger.Error("failed to publish", "topic", topic, "error", err)
	}
}
