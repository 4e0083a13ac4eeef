package scwidgets

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ValueAnimator drives one tracked scalar from its current value toward a
// target over time. Call Update(dt) each frame; the tracked value advances
// along the easing curve and OnUpdate fires once per tick.
//
// The default duration is zero, which means "jump": the target is applied in
// full on the very next tick with no intermediate frames. Set a positive
// duration for smooth transitions. Starting a new transition while one is in
// flight replaces it; the new transition departs from the current interpolated
// value, not from the original source.
//
// There is no global animation manager — the Gauge pumps its two animators
// from Update, mirroring how tween groups are driven by their owner.
type ValueAnimator struct {
	current  float64
	target   float64
	duration float32
	easing   ease.TweenFunc
	tween    *gween.Tween
	active   bool

	// OnUpdate fires once per tick while a transition is active, after the
	// tracked value has advanced.
	OnUpdate func(value float64)
}

// NewValueAnimator creates an animator holding the given initial value, with
// zero duration and a decelerating easing curve.
func NewValueAnimator(initial float64) *ValueAnimator {
	return &ValueAnimator{
		current: initial,
		easing:  ease.OutQuad,
	}
}

// Value returns the tracked value, mid-transition values included.
func (a *ValueAnimator) Value() float64 {
	return a.current
}

// Animating reports whether a transition is in flight.
func (a *ValueAnimator) Animating() bool {
	return a.active
}

// SetDuration sets the transition length in seconds. Zero or negative means
// targets are applied instantly on the next tick.
func (a *ValueAnimator) SetDuration(seconds float32) {
	a.duration = seconds
}

// Duration returns the configured transition length in seconds.
func (a *ValueAnimator) Duration() float32 {
	return a.duration
}

// SetEasing sets the easing curve for subsequent transitions.
func (a *ValueAnimator) SetEasing(fn ease.TweenFunc) {
	a.easing = fn
}

// Start begins a transition from from to to, replacing any transition already
// in flight.
func (a *ValueAnimator) Start(from, to float64) {
	a.current = from
	a.target = to
	a.active = true
	if a.duration <= 0 {
		a.tween = nil
		return
	}
	a.tween = gween.New(float32(from), float32(to), a.duration, a.easing)
}

// Set stores a value directly without a transition and without firing
// OnUpdate. Used by atomic state restoration.
func (a *ValueAnimator) Set(value float64) {
	a.current = value
	a.target = value
	a.active = false
	a.tween = nil
}

// Update advances an active transition by dt seconds. The terminal tick lands
// exactly on the target, so no residual drift remains from the float32
// interpolation underneath.
func (a *ValueAnimator) Update(dt float32) {
	if !a.active {
		return
	}

	if a.tween == nil {
		// Zero duration: jump straight to the target.
		a.current = a.target
		a.active = false
	} else {
		v, finished := a.tween.Update(dt)
		a.current = float64(v)
		if finished {
			a.current = a.target
			a.active = false
			a.tween = nil
		}
	}

	if a.OnUpdate != nil {
		a.OnUpdate(a.current)
	}
}
