package banner

import "time"

// DefaultThrottleDelay is the minimum spacing between two admitted requests
// when the caller does not choose one.
const DefaultThrottleDelay = 500 * time.Millisecond

// Request describes one banner notification. It is a value type; build it
// with NewRequest to get the defaults.
type Request struct {
	Text  string
	Style Style

	// Timeout is how long the banner stays visible. Zero or negative means
	// the banner stays until it is tapped, dismissed or superseded.
	Timeout time.Duration

	// ShowGlyph renders the resolved glyph next to the text.
	ShowGlyph bool

	// ThrottleDelay is measured from the previous admitted request.
	ThrottleDelay time.Duration

	// Action runs once when the banner is tapped. It never runs on timeout,
	// cancellation or supersession.
	Action func()
}

// RequestOption configures a Request built by NewRequest.
type RequestOption func(*Request)

// NewRequest returns a request with the default negative style, no timeout,
// no glyph and a DefaultThrottleDelay throttle.
func NewRequest(text string, opts ...RequestOption) Request {
	r := Request{
		Text:          text,
		Style:         Negative{},
		ThrottleDelay: DefaultThrottleDelay,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func WithStyle(s Style) RequestOption {
	return func(r *Request) { r.Style = s }
}

func WithTimeout(d time.Duration) RequestOption {
	return func(r *Request) { r.Timeout = d }
}

func WithGlyph(show bool) RequestOption {
	return func(r *Request) { r.ShowGlyph = show }
}

func WithThrottleDelay(d time.Duration) RequestOption {
	return func(r *Request) { r.ThrottleDelay = d }
}

func WithAction(fn func()) RequestOption {
	return func(r *Request) { r.Action = fn }
}

// HasTimeout reports whether the banner auto-dismisses.
func (r Request) HasTimeout() bool {
	return r.Timeout > 0
}

// Visual resolves the request's style.
func (r Request) Visual() Visual {
	return Resolve(r.Style)
}
