// Package banner implements the banner notification lifecycle: style
// resolution, throttling, presentation, auto-dismissal and tap handling for
// a single banner slot.
package banner

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/banners/internal/core/logging"
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running if it has not run yet.
	Stop()
}

// Scheduler runs callbacks on the engine's event loop.
type Scheduler interface {
	Now() time.Time
	// After schedules fn to run on the event loop once d has elapsed.
	After(d time.Duration, fn func()) Timer
}

// Surface hosts the visible banner.
type Surface interface {
	Attach(b *Banner)
	// Detach removes b and calls done once the banner is gone, possibly
	// after an animation. done must be called on the event loop.
	Detach(b *Banner, done func())
}

// Banner is a request that was admitted and attached to the surface.
type Banner struct {
	// ID increases with every banner the engine presents.
	ID      uint64
	Request Request
	Visual  Visual
	ShownAt time.Time
}

// State is the state of the banner slot.
type State int

const (
	StateIdle State = iota
	StateThrottled
	StatePresenting
	StateDismissing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateThrottled:
		return "throttled"
	case StatePresenting:
		return "presenting"
	case StateDismissing:
		return "dismissing"
	default:
		return "unknown"
	}
}

// Reason is why a banner was dismissed.
type Reason string

const (
	ReasonTimeout    Reason = "timeout"
	ReasonTap        Reason = "tap"
	ReasonSuperseded Reason = "superseded"
	ReasonCancelled  Reason = "cancelled"
)

// EventKind classifies an engine Event.
type EventKind string

const (
	EventAdmitted  EventKind = "admitted"
	EventDeferred  EventKind = "deferred"
	EventPresented EventKind = "presented"
	EventDismissed EventKind = "dismissed"
	EventDetached  EventKind = "detached"
	EventDropped   EventKind = "dropped"
	EventAction    EventKind = "action"
)

// Event reports a transition of the engine. BannerID is zero for requests
// that were never presented.
type Event struct {
	Kind     EventKind
	BannerID uint64
	Text     string
	Reason   Reason
	Wait     time.Duration
	At       time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for transition logs.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithObserver registers fn to receive every Event. fn runs synchronously on
// the event loop.
func WithObserver(fn func(Event)) Option {
	return func(e *Engine) { e.observer = fn }
}

// Engine drives a single banner slot through Idle, Throttled, Presenting and
// Dismissing. It is not safe for concurrent use: every method and every
// scheduled callback must run on the same event loop.
type Engine struct {
	surface  Surface
	sched    Scheduler
	log      zerolog.Logger
	observer func(Event)

	gate  Gate
	state State

	current *Banner
	nextID  uint64
	timeout Timer

	pending  *Request
	retry    Timer
	retrySeq uint64
}

// NewEngine returns an idle engine presenting banners on surface.
func NewEngine(surface Surface, sched Scheduler, opts ...Option) *Engine {
	e := &Engine{
		surface: surface,
		sched:   sched,
		log:     logging.Component("banner"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current state of the slot.
func (e *Engine) State() State {
	return e.state
}

// Current returns the presented or dismissing banner, or nil.
func (e *Engine) Current() *Banner {
	return e.current
}

// Pending returns the request waiting for admission, if any.
func (e *Engine) Pending() (Request, bool) {
	if e.pending == nil {
		return Request{}, false
	}
	return *e.pending, true
}

// Show requests a banner. The newest request always wins: a presented
// banner is dismissed without its action and a waiting request is dropped.
func (e *Engine) Show(r Request) {
	switch e.state {
	case StateIdle:
		e.admit(r)
	case StateThrottled:
		e.cancelRetry()
		e.drop()
		e.admit(r)
	case StatePresenting:
		e.pending = &r
		e.dismiss(ReasonSuperseded)
	case StateDismissing:
		e.drop()
		e.pending = &r
	}
}

// Tap dismisses the presented banner and runs its action. Tapping in any
// other state does nothing.
func (e *Engine) Tap() {
	if e.state != StatePresenting {
		return
	}
	e.dismiss(ReasonTap)
}

// Dismiss clears the slot: the presented banner is dismissed without its
// action and any waiting request is discarded.
func (e *Engine) Dismiss() {
	switch e.state {
	case StateThrottled:
		e.cancelRetry()
		e.drop()
		e.setState(StateIdle)
	case StatePresenting:
		e.dismiss(ReasonCancelled)
	case StateDismissing:
		e.drop()
	}
}

func (e *Engine) admit(r Request) {
	now := e.sched.Now()

	adm := e.gate.Admit(now, r.ThrottleDelay)
	if !adm.Admitted {
		e.pending = &r
		e.setState(StateThrottled)
		e.emit(Event{Kind: EventDeferred, Text: r.Text, Wait: adm.Wait})

		e.retrySeq++
		seq := e.retrySeq
		e.retry = e.sched.After(adm.Wait, func() { e.onRetry(seq) })
		return
	}

	e.emit(Event{Kind: EventAdmitted, Text: r.Text})
	e.present(r, now)
}

func (e *Engine) onRetry(seq uint64) {
	if seq != e.retrySeq || e.state != StateThrottled || e.pending == nil {
		return
	}

	r := *e.pending
	e.pending = nil
	e.retry = nil
	e.admit(r)
}

func (e *Engine) present(r Request, now time.Time) {
	e.nextID++
	b := &Banner{
		ID:      e.nextID,
		Request: r,
		Visual:  Resolve(r.Style),
		ShownAt: now,
	}

	e.current = b
	e.setState(StatePresenting)
	e.surface.Attach(b)
	e.emit(Event{Kind: EventPresented, BannerID: b.ID, Text: r.Text})

	if r.HasTimeout() {
		id := b.ID
		e.timeout = e.sched.After(r.Timeout, func() { e.onTimeout(id) })
	}
}

func (e *Engine) onTimeout(id uint64) {
	if e.state != StatePresenting || e.current == nil || e.current.ID != id {
		return
	}
	e.timeout = nil
	e.dismiss(ReasonTimeout)
}

// dismiss moves the presented banner to Dismissing. The action runs before
// detaching so a Show issued from the action waits for the slot to clear.
func (e *Engine) dismiss(reason Reason) {
	b := e.current
	if b == nil {
		return
	}

	if e.timeout != nil {
		e.timeout.Stop()
		e.timeout = nil
	}

	e.setState(StateDismissing)
	e.emit(Event{Kind: EventDismissed, BannerID: b.ID, Text: b.Request.Text, Reason: reason})

	if reason == ReasonTap && b.Request.Action != nil {
		e.emit(Event{Kind: EventAction, BannerID: b.ID, Text: b.Request.Text})
		b.Request.Action()
	}

	id := b.ID
	e.surface.Detach(b, func() { e.onDetached(id) })
}

func (e *Engine) onDetached(id uint64) {
	if e.state != StateDismissing || e.current == nil || e.current.ID != id {
		return
	}

	e.current = nil
	e.setState(StateIdle)
	e.emit(Event{Kind: EventDetached, BannerID: id})

	if e.pending != nil {
		r := *e.pending
		e.pending = nil
		e.admit(r)
	}
}

func (e *Engine) cancelRetry() {
	if e.retry != nil {
		e.retry.Stop()
		e.retry = nil
	}
	e.retrySeq++
}

func (e *Engine) drop() {
	if e.pending == nil {
		return
	}
	e.emit(Event{Kind: EventDropped, Text: e.pending.Text})
	e.pending = nil
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.log.Debug().
		Str("from", e.state.String()).
		Str("to", s.String()).
		Msg("banner state")
	e.state = s
}

func (e *Engine) emit(ev Event) {
	if ev.At.IsZero() {
		ev.At = e.sched.Now()
	}
	if e.observer != nil {
		e.observer(ev)
	}
}
