package scwidgets

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Feature is one renderable decoration of a gauge: a stroke along the path,
// tick marks, text tokens, or a draggable pointer. Features consume computed
// values but own no value-model state. The set of variants is closed — the
// engine recognizes each by its concrete type and tag rather than by runtime
// casts up a common base.
type Feature interface {
	// Tag is the string identity used by the style fan-out and by touch
	// routing. The standard configuration uses the Tag* constants.
	Tag() string
	SetTag(tag string)

	// Visible features take part in drawing; pointers additionally take part
	// in hit resolution only while visible.
	Visible() bool
	SetVisible(visible bool)

	// Draw renders the feature against the shared path.
	Draw(dst *ebiten.Image, path Path)
}

// feature carries the identity and visibility shared by every variant.
type feature struct {
	tag     string
	visible bool
}

func (f *feature) Tag() string             { return f.tag }
func (f *feature) SetTag(tag string)       { f.tag = tag }
func (f *feature) Visible() bool           { return f.visible }
func (f *feature) SetVisible(visible bool) { f.visible = visible }

// featureList is an ordered feature registry. Iteration order is registration
// order, which makes nearest-pointer ties deterministic.
type featureList struct {
	features []Feature
}

// add appends a feature. Features are never removed in the standard
// configuration; custom setups replace them wholesale.
func (l *featureList) add(f Feature) {
	l.features = append(l.features, f)
}

// byTag returns the first feature registered under tag, or nil.
func (l *featureList) byTag(tag string) Feature {
	for _, f := range l.features {
		if f.Tag() == tag {
			return f
		}
	}
	return nil
}

// all returns every feature matching the predicate, in registration order.
// A nil predicate matches everything.
func (l *featureList) all(match func(Feature) bool) []Feature {
	var out []Feature
	for _, f := range l.features {
		if match == nil || match(f) {
			out = append(out, f)
		}
	}
	return out
}

// copierSampleStep is the arc-length sampling interval, in path units, used
// when stroking a path span segment by segment.
const copierSampleStep = 2.0

// CopyInfo is the mutable record handed to the before-draw hook of a Copier.
// Hooks may restyle the stroke or adjust the span before drawing proceeds.
type CopyInfo struct {
	Source      *Copier
	Color       Color
	StrokeWidth float64
	Start, End  float64 // span limits as percentages of the path length
}

// Copier strokes the span of the path between two percentage limits. The
// standard configuration uses one copier for the base stroke (full span) and
// one for the progress stroke (low..high span).
type Copier struct {
	feature

	Color       Color
	StrokeWidth float64

	start, end float64

	// OnBeforeDraw runs once per draw pass with the mutable draw record.
	OnBeforeDraw func(info *CopyInfo)
}

// NewCopier creates a visible copier spanning the whole path.
func NewCopier() *Copier {
	return &Copier{
		feature: feature{visible: true},
		end:     100,
	}
}

// SetLimits sets the stroked span as percentages of the path length.
func (c *Copier) SetLimits(start, end float64) {
	c.start = clamp(start, 0, 100)
	c.end = clamp(end, 0, 100)
}

// Limits returns the stroked span as percentages of the path length.
func (c *Copier) Limits() (start, end float64) {
	return c.start, c.end
}

// Draw strokes the configured span by sampling the path at a fixed arc-length
// interval.
func (c *Copier) Draw(dst *ebiten.Image, path Path) {
	if !c.visible || path.Length() == 0 {
		return
	}

	info := CopyInfo{
		Source:      c,
		Color:       c.Color,
		StrokeWidth: c.StrokeWidth,
		Start:       c.start,
		End:         c.end,
	}
	if c.OnBeforeDraw != nil {
		c.OnBeforeDraw(&info)
	}
	if info.StrokeWidth <= 0 || info.End <= info.Start {
		return
	}

	length := path.Length()
	from := length * info.Start / 100
	to := length * info.End / 100
	clr := info.Color.nrgba()

	px, py, _ := path.PointAt(from)
	for d := from + copierSampleStep; ; d += copierSampleStep {
		if d > to {
			d = to
		}
		x, y, _ := path.PointAt(d)
		vector.StrokeLine(dst,
			float32(px), float32(py), float32(x), float32(y),
			float32(info.StrokeWidth), clr, true)
		px, py = x, y
		if d >= to {
			break
		}
	}
}

// NotchInfo is the mutable record handed to the before-draw hook of a Notches
// feature, once per notch. Hooks may restyle or hide individual notches.
type NotchInfo struct {
	Source   *Notches
	Index    int
	Distance float64 // along the path, in path units
	Length   float64
	Size     float64
	Color    Color
	Visible  bool
}

// Notches draws Count+1 tick marks at equal path subdivisions, each
// perpendicular to the path tangent.
type Notches struct {
	feature

	Count  int
	Length float64
	Size   float64
	Color  Color

	// OnBeforeDraw runs once per notch with the mutable draw record.
	OnBeforeDraw func(info *NotchInfo)
}

// NewNotches creates a visible notch feature with no notches configured.
func NewNotches() *Notches {
	return &Notches{feature: feature{visible: true}}
}

// Draw renders the tick marks.
func (n *Notches) Draw(dst *ebiten.Image, path Path) {
	if !n.visible || n.Count <= 0 || path.Length() == 0 {
		return
	}

	length := path.Length()
	for i := 0; i <= n.Count; i++ {
		info := NotchInfo{
			Source:   n,
			Index:    i,
			Distance: length * float64(i) / float64(n.Count),
			Length:   n.Length,
			Size:     n.Size,
			Color:    n.Color,
			Visible:  true,
		}
		if n.OnBeforeDraw != nil {
			n.OnBeforeDraw(&info)
		}
		if !info.Visible || info.Size <= 0 || info.Length == 0 {
			continue
		}

		x, y, angle := path.PointAt(info.Distance)
		// Perpendicular to the tangent, centered on the path.
		nx, ny := perpendicular(angle, info.Length/2)
		vector.StrokeLine(dst,
			float32(x-nx), float32(y-ny), float32(x+nx), float32(y+ny),
			float32(info.Size), info.Color.nrgba(), true)
	}
}

// TokenInfo is the mutable record handed to the before-draw hook of a Writer,
// once per token. Hooks may reword, restyle, or hide individual tokens.
type TokenInfo struct {
	Source   *Writer
	Index    int
	Text     string
	Distance float64 // along the path, in path units
	Offset   Vec2    // shift applied to the rendered position
	Color    Color
	Size     float64
	Visible  bool
}

// Writer places text tokens at equal divisions along the path. The default
// rendering uses the ebitenutil debug face, which ignores Size and Color;
// consumers wanting styled text draw it themselves from the before-draw hook
// and clear Visible.
type Writer struct {
	feature

	Tokens []string
	Size   float64
	Color  Color

	// OnBeforeDraw runs once per token with the mutable draw record.
	OnBeforeDraw func(info *TokenInfo)
}

// NewWriter creates a visible writer with no tokens.
func NewWriter() *Writer {
	return &Writer{feature: feature{visible: true}}
}

// Draw renders the tokens.
func (w *Writer) Draw(dst *ebiten.Image, path Path) {
	if !w.visible || len(w.Tokens) == 0 || path.Length() == 0 {
		return
	}

	length := path.Length()
	divisor := len(w.Tokens) - 1
	if divisor < 1 {
		divisor = 1
	}
	for i, token := range w.Tokens {
		info := TokenInfo{
			Source:   w,
			Index:    i,
			Text:     token,
			Distance: length * float64(i) / float64(divisor),
			Color:    w.Color,
			Size:     w.Size,
			Visible:  true,
		}
		if w.OnBeforeDraw != nil {
			w.OnBeforeDraw(&info)
		}
		if !info.Visible || info.Text == "" {
			continue
		}

		x, y, _ := path.PointAt(info.Distance)
		ebitenutil.DebugPrintAt(dst, info.Text,
			int(x+info.Offset.X), int(y+info.Offset.Y))
	}
}
