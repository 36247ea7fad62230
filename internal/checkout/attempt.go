// Package checkout models one purchase attempt as an explicit state machine.
// Widget callbacks and user actions post events onto a channel; a single run
// loop applies transitions, so the flow stays auditable and testable with a
// fake widget instead of a real hosted one.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"yuno-storefront-demo/internal/model"
)

type State string

const (
	StateUninitialized        State = "UNINITIALIZED"
	StateSessionCreating      State = "SESSION_CREATING"
	StateSessionReady         State = "SESSION_READY"
	StateWidgetMounting       State = "WIDGET_MOUNTING"
	StateWidgetReady          State = "WIDGET_READY"
	StatePaymentSubmitting    State = "PAYMENT_SUBMITTING"
	StateSucceeded            State = "SUCCEEDED"
	StatePending              State = "PENDING"
	StateFailed               State = "FAILED"
	StateContinuationRequired State = "CONTINUATION_REQUIRED"
)

// Terminal reports whether the attempt has reached an end state. Failed is
// terminal for the attempt only; Restart builds a fresh attempt.
func (s State) Terminal() bool {
	switch s {
	case StateSucceeded, StatePending, StateFailed, StateContinuationRequired:
		return true
	}
	return false
}

// Backend is the server side of the flow: session creation and payment
// submission. Implemented by the checkout service; stubbed in tests.
type Backend interface {
	CreateSession(ctx context.Context, items []model.CartItem, amount int64) (*model.CheckoutSession, error)
	SubmitPayment(ctx context.Context, sessionID, oneTimeToken string, amount int64) (*model.PaymentResult, error)
}

// WidgetHooks are the three callbacks the hosted widget must honor.
type WidgetHooks struct {
	OnTokenCreated func(oneTimeToken string)
	OnError        func(err error)
	OnRendered     func()
}

// Widget is the externally-supplied payment widget. Its rendering,
// tokenization, and challenge UI are opaque; this is the documented entry
// point surface only.
type Widget interface {
	Init(ctx context.Context, sessionID, countryCode string, hooks WidgetHooks) error
	RequestToken()
	ContinuePayment()
	Unmount()
}

type eventKind int

const (
	evStart eventKind = iota
	evSessionCreated
	evSessionFailed
	evRendered
	evWidgetError
	evPay
	evToken
	evResult
	evSubmitFailed
	evClose
)

type event struct {
	kind    eventKind
	session *model.CheckoutSession
	token   string
	result  *model.PaymentResult
	err     error
}

// Attempt is one checkout attempt. All state transitions happen on the run
// loop goroutine; public methods only post events or read snapshots.
type Attempt struct {
	backend Backend
	widget  Widget
	country string
	items   []model.CartItem
	amount  int64

	events chan event
	done   chan struct{}

	started        atomic.Bool // one-shot session-creation latch
	tokenSubmitted atomic.Bool // widget may fire the token hook twice

	mu        sync.RWMutex
	state     State
	sessionID string
	message   string
	result    *model.PaymentResult
}

func NewAttempt(backend Backend, widget Widget, country string, items []model.CartItem, amount int64) *Attempt {
	return &Attempt{
		backend: backend,
		widget:  widget,
		country: country,
		items:   items,
		amount:  amount,
		events:  make(chan event, 16),
		done:    make(chan struct{}),
		state:   StateUninitialized,
	}
}

func (a *Attempt) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *Attempt) SessionID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sessionID
}

// Message is the user-visible outcome text for the current state.
func (a *Attempt) Message() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.message
}

func (a *Attempt) Result() *model.PaymentResult {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.result
}

// Done closes when the attempt reaches a terminal state or is abandoned.
func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

func (a *Attempt) setState(state State, message string) {
	a.mu.Lock()
	a.state = state
	if message != "" {
		a.message = message
	}
	a.mu.Unlock()
}

// Start kicks off session creation. Safe against concurrent triggers such as
// rapid re-renders: only the first call wins, the rest are no-ops.
func (a *Attempt) Start(ctx context.Context) error {
	if len(a.items) == 0 {
		return &model.StateError{Op: "start checkout", State: "empty cart"}
	}
	if !a.started.CompareAndSwap(false, true) {
		return nil
	}
	go a.run(ctx)
	a.events <- event{kind: evStart}
	return nil
}

// Pay is the explicit user action that begins payment submission. Only valid
// once the widget has reported readiness.
func (a *Attempt) Pay() error {
	if state := a.State(); state != StateWidgetReady {
		return &model.StateError{Op: "start payment", State: string(state)}
	}
	a.events <- event{kind: evPay}
	return nil
}

// SubmitToken is the token-creation hook target. Exactly one submission per
// attempt: a duplicate invocation by the widget is dropped, and a token with
// no session behind it never reaches the network.
func (a *Attempt) SubmitToken(oneTimeToken string) error {
	if a.SessionID() == "" {
		return &model.StateError{Op: "submit payment token", State: string(a.State())}
	}
	if a.tokenSubmitted.Swap(true) {
		return nil
	}
	a.events <- event{kind: evToken, token: oneTimeToken}
	return nil
}

// Close abandons the attempt: the widget is unmounted and no cancellation is
// sent to the provider for the orphaned session.
func (a *Attempt) Close() {
	if !a.started.Load() {
		return
	}
	select {
	case a.events <- event{kind: evClose}:
	case <-a.done:
	}
}

// Restart builds a brand-new attempt (new merchant order, new session) with
// the same collaborators.
func (a *Attempt) Restart() *Attempt {
	return NewAttempt(a.backend, a.widget, a.country, a.items, a.amount)
}

func (a *Attempt) run(ctx context.Context) {
	defer close(a.done)

	for {
		var ev event
		select {
		case ev = <-a.events:
		case <-ctx.Done():
			a.widget.Unmount()
			a.setState(StateFailed, "Checkout cancelled.")
			return
		}

		switch ev.kind {
		case evStart:
			a.setState(StateSessionCreating, "")
			go a.createSession(ctx)

		case evSessionCreated:
			a.mu.Lock()
			a.state = StateSessionReady
			a.sessionID = ev.session.ID
			a.mu.Unlock()
			a.mountWidget(ctx)

		case evSessionFailed:
			a.setState(StateFailed, fmt.Sprintf("Failed to initialize payment: %s", userMessage(ev.err)))
			return

		case evRendered:
			if a.State() == StateWidgetMounting {
				a.setState(StateWidgetReady, "")
			}

		case evWidgetError:
			a.widget.Unmount()
			a.setState(StateFailed, "Payment failed. Please try again.")
			return

		case evPay:
			a.setState(StatePaymentSubmitting, "")
			a.widget.RequestToken()

		case evToken:
			// The widget may produce a token without an explicit Pay (e.g.
			// wallet flows); either way submission happens here, once.
			a.setState(StatePaymentSubmitting, "")
			go a.submitPayment(ctx, ev.token)

		case evResult:
			a.finish(ev.result)
			return

		case evSubmitFailed:
			a.setState(StateFailed, fmt.Sprintf("Payment failed: %s", userMessage(ev.err)))
			return

		case evClose:
			a.widget.Unmount()
			if !a.State().Terminal() {
				a.setState(StateFailed, "Checkout closed.")
			}
			return
		}
	}
}

func (a *Attempt) createSession(ctx context.Context) {
	session, err := a.backend.CreateSession(ctx, a.items, a.amount)
	if err != nil {
		a.events <- event{kind: evSessionFailed, err: err}
		return
	}
	a.events <- event{kind: evSessionCreated, session: session}
}

func (a *Attempt) mountWidget(ctx context.Context) {
	a.setState(StateWidgetMounting, "")
	err := a.widget.Init(ctx, a.SessionID(), a.country, WidgetHooks{
		OnTokenCreated: func(oneTimeToken string) {
			_ = a.SubmitToken(oneTimeToken)
		},
		OnError: func(err error) {
			a.events <- event{kind: evWidgetError, err: err}
		},
		OnRendered: func() {
			a.events <- event{kind: evRendered}
		},
	})
	if err != nil {
		a.events <- event{kind: evWidgetError, err: err}
	}
}

func (a *Attempt) submitPayment(ctx context.Context, oneTimeToken string) {
	result, err := a.backend.SubmitPayment(ctx, a.SessionID(), oneTimeToken, a.amount)
	if err != nil {
		a.events <- event{kind: evSubmitFailed, err: err}
		return
	}
	a.events <- event{kind: evResult, result: result}
}

// finish interprets the provider's result. PENDING is terminal for this
// attempt: there is no polling or webhook reconciliation here.
func (a *Attempt) finish(result *model.PaymentResult) {
	a.mu.Lock()
	a.result = result
	a.mu.Unlock()

	switch {
	case result.Approved():
		a.setState(StateSucceeded, "Payment successful! Thank you for your purchase.")
	case result.Processing():
		a.setState(StatePending, "Payment is being processed. Please wait...")
	case result.RequiresAction:
		// Step-up authentication is the widget's problem; we only hand over.
		a.widget.ContinuePayment()
		a.setState(StateContinuationRequired, "Additional authentication required.")
	default:
		a.setState(StateFailed, "Payment failed. Please try again.")
	}
}

func userMessage(err error) string {
	var gatewayErr *model.GatewayError
	if errors.As(err, &gatewayErr) {
		return fmt.Sprintf("the payment provider rejected the request (%d)", gatewayErr.StatusCode)
	}
	var netErr *model.NetworkError
	if errors.As(err, &netErr) {
		return "could not reach the payment provider"
	}
	return err.Error()
}
