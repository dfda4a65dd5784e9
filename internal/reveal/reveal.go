// Package reveal tracks scroll-triggered reveal registrations. The animation
// itself belongs to an Engine provided by the host; this package only decides
// when a selector is revealed and when it is cleaned up.
package reveal

import (
	"sort"
	"sync"
	"time"
)

// Origin is the side an element slides in from.
type Origin string

const (
	OriginTop    Origin = "top"
	OriginRight  Origin = "right"
	OriginBottom Origin = "bottom"
	OriginLeft   Origin = "left"
)

// Options configures a reveal animation.
type Options struct {
	Delay    time.Duration
	Distance string
	Duration time.Duration
	Easing   string
	Origin   Origin
	Reset    bool
	Scale    float64
	Opacity  float64
	Interval time.Duration
}

// DefaultOptions returns the options every registration starts from.
func DefaultOptions() Options {
	return Options{
		Delay:    200 * time.Millisecond,
		Distance: "50px",
		Duration: 1000 * time.Millisecond,
		Easing:   "cubic-bezier(0.5, 0, 0, 1)",
		Origin:   OriginBottom,
		Reset:    true,
		Scale:    1,
		Opacity:  0,
	}
}

// Option overrides one field of the defaults.
type Option func(*Options)

func WithDelay(d time.Duration) Option    { return func(o *Options) { o.Delay = d } }
func WithDistance(s string) Option        { return func(o *Options) { o.Distance = s } }
func WithDuration(d time.Duration) Option { return func(o *Options) { o.Duration = d } }
func WithEasing(s string) Option          { return func(o *Options) { o.Easing = s } }
func WithOrigin(origin Origin) Option     { return func(o *Options) { o.Origin = origin } }
func WithReset(reset bool) Option         { return func(o *Options) { o.Reset = reset } }
func WithScale(f float64) Option          { return func(o *Options) { o.Scale = f } }
func WithOpacity(f float64) Option        { return func(o *Options) { o.Opacity = f } }
func WithInterval(d time.Duration) Option { return func(o *Options) { o.Interval = d } }

// Target pairs a selector with its overrides, for declaring a section's reveals as data.
type Target struct {
	Selector string
	Options  []Option
}

// Engine performs the actual animation.
type Engine interface {
	Reveal(selector string, opts Options)
	Clean(selector string)
}

// Registry hands out disposable reveal registrations over an Engine.
// A selector registered more than once is cleaned when its last registration is disposed.
type Registry struct {
	mu     sync.Mutex
	engine Engine
	active map[string]int
}

// NewRegistry creates a Registry driving engine.
func NewRegistry(engine Engine) *Registry {
	return &Registry{engine: engine, active: make(map[string]int)}
}

// Register reveals selector with the defaults merged with opts and returns a
// function that disposes the registration. Dispose is idempotent.
func (r *Registry) Register(selector string, opts ...Option) (dispose func()) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.Lock()
	r.active[selector]++
	r.mu.Unlock()
	r.engine.Reveal(selector, o)

	var once sync.Once
	return func() {
		once.Do(func() { r.release(selector) })
	}
}

// RegisterAll registers every target and returns one dispose for all of them.
func (r *Registry) RegisterAll(targets []Target) (dispose func()) {
	disposers := make([]func(), 0, len(targets))
	for _, t := range targets {
		disposers = append(disposers, r.Register(t.Selector, t.Options...))
	}
	return func() {
		for i := len(disposers) - 1; i >= 0; i-- {
			disposers[i]()
		}
	}
}

func (r *Registry) release(selector string) {
	r.mu.Lock()
	r.active[selector]--
	last := r.active[selector] <= 0
	if last {
		delete(r.active, selector)
	}
	r.mu.Unlock()

	if last {
		r.engine.Clean(selector)
	}
}

// Active returns the currently registered selectors, sorted.
func (r *Registry) Active() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.active))
	for s := range r.active {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
