package scwidgets

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Gauge composes a path, a value model, and a set of tagged features into an
// interactive control. One or two values (high, or low and high as a band)
// are shown as positions along the path; draggable pointers change them and
// value transitions animate through the per-value animators.
//
// The host pumps Update once per tick and Draw once per frame, the same
// contract as an [ebiten.Game]. All mutation happens on that single
// goroutine: pointer events, animator ticks, and direct API calls never
// race because nothing here blocks or spawns.
//
// Style is plain public fields. Every Draw re-applies the current style to
// every registered feature, so restyling is just assignment; the fan-out is
// idempotent. Style that affects value processing (notch count, snap) goes
// through setters instead, because it must reach the value model immediately
// rather than on the next frame.
type Gauge struct {
	path     Path
	model    *RangeModel
	features featureList

	// Base stroke style.
	StrokeSize  float64
	StrokeColor Color

	// Progress stroke style.
	ProgressSize  float64
	ProgressColor Color

	// Notch style. The count is a setter, see SetNotchCount.
	NotchSize   float64
	NotchColor  Color
	NotchLength float64

	// Text token style.
	TextTokens []string
	TextSize   float64
	TextColor  Color

	// Pointer style, applied to the high and low pointers.
	PointerRadius    float64
	PointerColor     Color
	PointerHaloWidth float64

	// InputEnabled gates all pointer processing. While false every pointer
	// event is ignored and reported as not captured.
	InputEnabled bool

	// Offset and AreaScale describe the host transform between raw pointer
	// coordinates and the path's local space: local = (raw - Offset) / AreaScale.
	Offset    Vec2
	AreaScale Vec2

	notchCount int

	touched  bool
	selected *Pointer

	// OnValueChange fires once per animator tick and once on instantaneous
	// changes, with the current pair.
	OnValueChange func(low, high float64)

	// Before-draw hooks, forwarded to the matching hook of every feature the
	// gauge registers. A hook may restyle the record or substitute visuals
	// before the feature draws. Hooks run synchronously during Draw and must
	// not mutate the gauge.
	OnBeforeDrawCopy    func(info *CopyInfo)
	OnBeforeDrawNotch   func(info *NotchInfo)
	OnBeforeDrawPointer func(info *PointerInfo)
	OnBeforeDrawToken   func(info *TokenInfo)

	dirty bool
	debug bool

	// Input polling and injection state.
	prevDown    bool
	lastX       float64
	lastY       float64
	touchIDs    []ebiten.TouchID
	activeTouch ebiten.TouchID
	touchActive bool
	inject      []syntheticPointerEvent
	runner      *TestRunner
}

// NewGauge creates a gauge on the given path with the standard configuration:
// a base stroke, a notch set, a text writer, a progress stroke, and the high
// and low pointers, in that draw order.
func NewGauge(path Path) *Gauge {
	g := &Gauge{
		path:             path,
		StrokeSize:       DefaultStrokeSize,
		StrokeColor:      ColorBlack,
		ProgressSize:     DefaultProgressSize,
		ProgressColor:    ColorGray,
		NotchSize:        DefaultStrokeSize,
		NotchColor:       ColorBlack,
		NotchLength:      DefaultStrokeSize * 2,
		TextSize:         DefaultTextSize,
		TextColor:        ColorBlack,
		PointerColor:     ColorBlack,
		PointerHaloWidth: DefaultHaloSize,
		AreaScale:        Vec2{X: 1, Y: 1},
		dirty:            true,
	}

	g.model = NewRangeModel(path)
	g.model.onChange = func(low, high float64) {
		g.MarkDirty()
		g.debugValue(low, high)
		if g.OnValueChange != nil {
			g.OnValueChange(low, high)
		}
	}

	base := NewCopier()
	base.SetTag(TagBase)
	g.AddFeature(base)

	notches := NewNotches()
	notches.SetTag(TagNotches)
	g.AddFeature(notches)

	writer := NewWriter()
	writer.SetTag(TagWriter)
	g.AddFeature(writer)

	progress := NewCopier()
	progress.SetTag(TagProgress)
	g.AddFeature(progress)

	g.AddFeature(NewPointer(TagHigh))
	g.AddFeature(NewPointer(TagLow))

	return g
}

// Path returns the path the gauge draws along.
func (g *Gauge) Path() Path { return g.path }

// Model returns the value model for advanced use. The model is owned by the
// gauge; external features must treat it as read-only during draw callbacks.
func (g *Gauge) Model() *RangeModel { return g.model }

// AddFeature registers a feature, applies the current style to it, and links
// its before-draw hook to the matching gauge-level hook.
func (g *Gauge) AddFeature(f Feature) {
	g.features.add(f)
	g.featureSetter(f)

	switch v := f.(type) {
	case *Copier:
		v.OnBeforeDraw = func(info *CopyInfo) {
			if g.OnBeforeDrawCopy != nil {
				g.OnBeforeDrawCopy(info)
			}
		}
	case *Notches:
		v.OnBeforeDraw = func(info *NotchInfo) {
			if g.OnBeforeDrawNotch != nil {
				g.OnBeforeDrawNotch(info)
			}
		}
	case *Pointer:
		v.OnBeforeDraw = func(info *PointerInfo) {
			if g.OnBeforeDrawPointer != nil {
				g.OnBeforeDrawPointer(info)
			}
		}
	case *Writer:
		v.OnBeforeDraw = func(info *TokenInfo) {
			if g.OnBeforeDrawToken != nil {
				g.OnBeforeDrawToken(info)
			}
		}
	}
	g.MarkDirty()
}

// FindFeature returns the first feature registered under tag, or nil.
func (g *Gauge) FindFeature(tag string) Feature {
	return g.features.byTag(tag)
}

// Features returns every registered feature matching the predicate, in
// registration order. A nil predicate matches everything. The returned slice
// is a copy; the features themselves are shared.
func (g *Gauge) Features(match func(Feature) bool) []Feature {
	return g.features.all(match)
}

// featureSetter pushes the gauge's current style into one feature, selected
// by tag. Unrecognized tags are left alone. Safe to call every frame.
func (g *Gauge) featureSetter(f Feature) {
	switch f.Tag() {
	case TagBase:
		if c, ok := f.(*Copier); ok {
			c.Color = g.StrokeColor
			c.StrokeWidth = g.StrokeSize
		}
	case TagProgress:
		if c, ok := f.(*Copier); ok {
			c.SetLimits(g.model.Low(), g.model.High())
			c.Color = g.ProgressColor
			c.StrokeWidth = g.ProgressSize
		}
	case TagNotches:
		if n, ok := f.(*Notches); ok {
			n.Count = g.notchCount
			n.Length = g.NotchLength
			n.Size = g.NotchSize
			n.Color = g.NotchColor
		}
	case TagWriter:
		if w, ok := f.(*Writer); ok {
			w.Tokens = g.TextTokens
			w.Size = g.TextSize
			w.Color = g.TextColor
		}
	case TagHigh, TagLow:
		if p, ok := f.(*Pointer); ok {
			p.Radius = g.PointerRadius
			p.HaloWidth = g.PointerHaloWidth
			p.Color = g.PointerColor
			// Bound pointers track the live value, mid-transition included.
			if f.Tag() == TagHigh {
				p.Position = g.model.High()
			} else {
				p.Position = g.model.Low()
			}
		}
	}
}

// Update processes pending input and advances both value animators by one
// tick. Call once per [ebiten.Game] Update. The style fan-out runs here too,
// so pointer radii and positions are current when hits are resolved.
func (g *Gauge) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.syncFeatures()
	if g.runner != nil {
		g.runner.step(g)
	}
	if !g.processInjectedInput() {
		g.pollInput()
	}
	g.advance(dt)
}

// advance moves the animators forward by dt seconds. Split from Update so
// headless callers can drive time without ebiten input polling.
func (g *Gauge) advance(dt float32) {
	g.model.Update(dt)
}

// syncFeatures re-applies the current style to every feature and propagates
// the press status to the selected pointer only.
func (g *Gauge) syncFeatures() {
	for _, f := range g.features.features {
		g.featureSetter(f)
	}
	if g.selected != nil {
		if g.touched {
			g.selected.setStatus(StatusPressed)
		} else {
			g.selected.setStatus(StatusReleased)
		}
	}
}

// Draw re-applies the current style to every feature and draws the features
// in registration order against the path.
func (g *Gauge) Draw(dst *ebiten.Image) {
	g.syncFeatures()
	for _, f := range g.features.features {
		f.Draw(dst, g.path)
	}
	g.dirty = false
}

// MarkDirty flags the gauge as needing a redraw. Hosts that render on demand
// rather than every frame can poll Dirty to skip idle frames.
func (g *Gauge) MarkDirty() { g.dirty = true }

// Dirty reports whether the gauge changed since the last Draw.
func (g *Gauge) Dirty() bool { return g.dirty }

// --- Value API ---

// HighValue returns the current high value as a percentage.
func (g *Gauge) HighValue() float64 { return g.model.High() }

// SetHighValue moves the high value toward the given percentage. The target
// is clamped to [0, 100], snapped when snapping is enabled, and floored at
// the current low value.
func (g *Gauge) SetHighValue(percentage float64) {
	g.model.SetValue(percentage, false)
}

// LowValue returns the current low value as a percentage.
func (g *Gauge) LowValue() float64 { return g.model.Low() }

// SetLowValue moves the low value toward the given percentage. The target is
// clamped to [0, 100], snapped when snapping is enabled, and capped at the
// current high value.
func (g *Gauge) SetLowValue(percentage float64) {
	g.model.SetValue(percentage, true)
}

// HighValueIn returns the high value scaled onto [start, end].
// A zero percentage yields zero regardless of the range.
func (g *Gauge) HighValueIn(start, end float64) float64 {
	return scaled(g.model.High(), start, end)
}

// SetHighValueIn sets the high value from a number in [start, end].
func (g *Gauge) SetHighValueIn(value, start, end float64) {
	g.model.SetValue(Percentage(value, start, end), false)
}

// LowValueIn returns the low value scaled onto [start, end].
// A zero percentage yields zero regardless of the range.
func (g *Gauge) LowValueIn(start, end float64) float64 {
	return scaled(g.model.Low(), start, end)
}

// SetLowValueIn sets the low value from a number in [start, end].
func (g *Gauge) SetLowValueIn(value, start, end float64) {
	g.model.SetValue(Percentage(value, start, end), true)
}

// HighValueAnimator returns the animator driving the high value. The initial
// duration is zero, equal to "no animation".
func (g *Gauge) HighValueAnimator() *ValueAnimator { return g.model.HighAnimator() }

// LowValueAnimator returns the animator driving the low value. The initial
// duration is zero, equal to "no animation".
func (g *Gauge) LowValueAnimator() *ValueAnimator { return g.model.LowAnimator() }

// --- Snap configuration ---

// NotchCount returns the number of notch subdivisions.
func (g *Gauge) NotchCount() int { return g.notchCount }

// SetNotchCount sets the number of notch subdivisions. The count feeds both
// the notch feature and the snap step geometry.
func (g *Gauge) SetNotchCount(count int) {
	if count < 0 {
		count = 0
	}
	if g.notchCount == count {
		return
	}
	g.notchCount = count
	g.model.SetSteps(count)
	g.MarkDirty()
}

// SnapToNotches reports whether values snap to the nearest notch.
func (g *Gauge) SnapToNotches() bool { return g.model.SnapEnabled() }

// SetSnapToNotches enables or disables snapping and re-applies the current
// values so they land on the new grid.
func (g *Gauge) SetSnapToNotches(enabled bool) {
	g.model.SetSnap(enabled)
	g.SetHighValue(g.HighValue())
	g.SetLowValue(g.LowValue())
}

// --- Selection ---

// SelectedPointer returns the pointer chosen by the last pointer-down, or nil.
// The selection persists after release until the next pointer-down replaces it.
func (g *Gauge) SelectedPointer() *Pointer { return g.selected }

// Touched reports whether a drag gesture is in progress.
func (g *Gauge) Touched() bool { return g.touched }
