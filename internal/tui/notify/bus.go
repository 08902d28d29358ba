// Package notify fans banner requests out to subscribers inside the TUI.
package notify

import (
	"fmt"
	"sync"

	"github.com/hay-kot/banners/internal/core/banner"
)

// Subscriber is a callback invoked when a request is published.
type Subscriber func(banner.Request)

// Bus is a synchronous in-process request bus. It dispatches requests to
// subscribers inline, so publishing from the Bubble Tea Update loop keeps
// the engine on that loop.
type Bus struct {
	mu          sync.Mutex
	subscribers []Subscriber
	defaults    []banner.RequestOption
}

// NewBus creates a bus whose helper methods apply defaults before their
// own style options.
func NewBus(defaults ...banner.RequestOption) *Bus {
	return &Bus{defaults: defaults}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// SetDefaults replaces the options applied by the helper methods.
func (b *Bus) SetDefaults(opts ...banner.RequestOption) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaults = opts
}

// Publish dispatches r to all subscribers.
func (b *Bus) Publish(r banner.Request) {
	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(r)
	}
}

// Errorf publishes a negative banner.
func (b *Bus) Errorf(format string, args ...any) {
	b.publish(fmt.Sprintf(format, args...), banner.WithStyle(banner.Negative{}))
}

// Warnf publishes a neutral banner with the warning glyph.
func (b *Bus) Warnf(format string, args ...any) {
	b.publish(fmt.Sprintf(format, args...), banner.WithStyle(banner.Neutral{}))
}

// Infof publishes a neutral banner without a glyph.
func (b *Bus) Infof(format string, args ...any) {
	b.publish(fmt.Sprintf(format, args...), banner.WithStyle(banner.Neutral{}), banner.WithGlyph(false))
}

// Successf publishes a positive banner.
func (b *Bus) Successf(format string, args ...any) {
	b.publish(fmt.Sprintf(format, args...), banner.WithStyle(banner.Positive{}))
}

// publish builds a request from the bus defaults followed by opts.
func (b *Bus) publish(text string, opts ...banner.RequestOption) {
	b.mu.Lock()
	all := make([]banner.RequestOption, 0, len(b.defaults)+len(opts))
	all = append(all, b.defaults...)
	b.mu.Unlock()

	b.Publish(banner.NewRequest(text, append(all, opts...)...))
}
