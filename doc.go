// Package scwidgets provides an interactive gauge control for [Ebitengine]:
// one or two values shown as positions along an arbitrary path, draggable
// pointer handles, snap-to-notch quantization, and animated value
// transitions.
//
// # Quick start
//
// Build a path, create a gauge on it, and pump it from an [ebiten.Game]:
//
//	path := scwidgets.NewArc(160, 160, 120, 135, 270)
//	gauge := scwidgets.NewGauge(path)
//	gauge.PointerRadius = 14
//	gauge.InputEnabled = true
//	gauge.SetHighValue(60)
//
//	type Game struct{ gauge *scwidgets.Gauge }
//
//	func (g *Game) Update() error              { g.gauge.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.gauge.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Values
//
// A gauge tracks two percentages in [0, 100]: the low and the high value,
// always ordered low <= high. Use the high value alone for a plain gauge, or
// both for a range band. [Gauge.SetHighValueIn] and friends convert to and
// from arbitrary numeric ranges.
//
// Value changes animate through a per-value [ValueAnimator] (backed by
// [gween]); the default duration is zero, meaning changes apply instantly.
// Raise it for smooth transitions:
//
//	gauge.HighValueAnimator().SetDuration(0.3)
//
// # Features
//
// Everything drawn is a [Feature] recognized by its tag: the base stroke
// ([Copier]), tick marks ([Notches]), text tokens ([Writer]), the progress
// stroke, and the two value pointers ([Pointer]). The standard set is created
// by [NewGauge]; styling flows from the gauge's public fields to the features
// on every draw. Before-draw hooks (OnBeforeDrawCopy and friends) expose each
// feature's mutable draw record for per-frame overrides, including
// substituting a custom pointer bitmap.
//
// # Input
//
// With InputEnabled set, Update polls the mouse and the first touch. A press
// near the path selects the nearest pointer and starts a drag; moves track
// the finger even off the path; untagged pointers move without affecting the
// values. Synthetic input ([Gauge.InjectDrag] and friends) and a
// JSON-scripted [TestRunner] drive the same machinery for tests.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package scwidgets
