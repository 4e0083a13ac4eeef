package scwidgets

import "math"

// RangeModel holds the low and high gauge values as percentages in [0, 100]
// and owns their two animators. The invariant low <= high is enforced on
// every mutation against the counterpart's live value, so it holds even while
// a transition is in flight.
//
// Values are never written directly: SetValue clamps, snaps, and orders the
// target, then hands it to the matching animator. The animators write the
// live values back per tick and fire the model's change callback.
type RangeModel struct {
	low  float64
	high float64

	snap  bool
	steps int

	path Path

	lowAnim  *ValueAnimator
	highAnim *ValueAnimator

	// onChange fires once per animator tick with the current pair.
	onChange func(low, high float64)
}

// NewRangeModel creates a model at low=0, high=0 measuring step geometry
// against the given path. The path may be nil when snapping is unused.
func NewRangeModel(path Path) *RangeModel {
	m := &RangeModel{path: path}
	m.lowAnim = NewValueAnimator(0)
	m.highAnim = NewValueAnimator(0)
	m.lowAnim.OnUpdate = func(v float64) {
		m.low = v
		m.notify()
	}
	m.highAnim.OnUpdate = func(v float64) {
		m.high = v
		m.notify()
	}
	return m
}

func (m *RangeModel) notify() {
	if m.onChange != nil {
		m.onChange(m.low, m.high)
	}
}

// Low returns the live low value, mid-transition values included.
func (m *RangeModel) Low() float64 { return m.low }

// High returns the live high value, mid-transition values included.
func (m *RangeModel) High() float64 { return m.high }

// LowAnimator returns the animator driving the low value. The initial
// duration is zero, equal to "no animation".
func (m *RangeModel) LowAnimator() *ValueAnimator { return m.lowAnim }

// HighAnimator returns the animator driving the high value. The initial
// duration is zero, equal to "no animation".
func (m *RangeModel) HighAnimator() *ValueAnimator { return m.highAnim }

// SetSteps sets the number of equal path subdivisions used for snapping.
// Zero disables step geometry entirely.
func (m *RangeModel) SetSteps(count int) {
	if count < 0 {
		count = 0
	}
	m.steps = count
}

// Steps returns the snap subdivision count.
func (m *RangeModel) Steps() int { return m.steps }

// SetSnap enables or disables snap-to-step quantization for subsequent
// SetValue calls.
func (m *RangeModel) SetSnap(enabled bool) { m.snap = enabled }

// SnapEnabled reports whether snap quantization is active.
func (m *RangeModel) SnapEnabled() bool { return m.snap }

// Snap rounds a percentage to the nearest step multiple, half away from zero.
// With no steps configured the value passes through untouched; when the path
// length has collapsed to zero the result is always 0.
func (m *RangeModel) Snap(percentage float64) float64 {
	if m.steps == 0 {
		return percentage
	}
	if m.path != nil && m.path.Length() == 0 {
		return 0
	}
	step := 100 / float64(m.steps)
	return math.Round(percentage/step) * step
}

// SetValue moves the low or high value toward target. The target is clamped
// to [0, 100], snapped when snapping is enabled, then ordered against the
// counterpart's instantaneous value: a low target is capped at the live high,
// a high target floored at the live low. If the result equals the value's
// current live value nothing happens — no transition, no notification.
func (m *RangeModel) SetValue(target float64, low bool) {
	target = clamp(target, 0, 100)
	if m.snap {
		target = m.Snap(target)
	}

	cur := m.high
	anim := m.highAnim
	if low {
		cur = m.low
		anim = m.lowAnim
	}

	// Order against the live counterpart, not a post-transition value.
	if low && target > m.high {
		target = m.high
	}
	if !low && target < m.low {
		target = m.low
	}

	if cur == target {
		return
	}
	anim.Start(cur, target)
}

// Update advances both animators by dt seconds.
func (m *RangeModel) Update(dt float32) {
	m.lowAnim.Update(dt)
	m.highAnim.Update(dt)
}

// restore applies both values directly, without transitions or notification.
// Used by atomic state restoration before the first draw.
func (m *RangeModel) restore(low, high float64) {
	m.low = clamp(low, 0, 100)
	m.high = clamp(high, 0, 100)
	if m.low > m.high {
		m.low = m.high
	}
	m.lowAnim.Set(m.low)
	m.highAnim.Set(m.high)
}

// scaled converts a stored percentage onto [start, end]. A zero percentage
// yields zero regardless of the range; this conflation of "percentage is 0"
// with "value is 0" is a documented quirk kept for compatibility.
func scaled(percentage, start, end float64) float64 {
	if percentage == 0 {
		return 0
	}
	return (end - start) * percentage / 100
}
