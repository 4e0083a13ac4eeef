package scwidgets

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PointerInfo is the mutable record handed to the before-draw hook of a
// Pointer. Setting Image substitutes a custom bitmap for the default circle;
// it is drawn centered on the pointer position.
type PointerInfo struct {
	Source    *Pointer
	X, Y      float64
	Angle     float64 // path tangent at the pointer position, radians
	Radius    float64
	HaloWidth float64
	Color     Color
	Pressed   bool
	Image     *ebiten.Image
	Visible   bool
}

// Pointer is a draggable indicator on the path. Pointers tagged TagHigh and
// TagLow are bound to the corresponding gauge values: their Position is
// derived from the live value on every draw pass, never set independently.
// Pointers under any other tag are purely positional — dragging them moves
// Position but touches no value.
type Pointer struct {
	feature

	// Position is the pointer's place on the path as a percentage.
	Position float64

	Radius    float64
	HaloWidth float64
	Color     Color

	status Status

	// OnBeforeDraw runs once per draw pass with the mutable draw record.
	OnBeforeDraw func(info *PointerInfo)
}

// NewPointer creates a visible, released pointer with the given tag.
func NewPointer(tag string) *Pointer {
	return &Pointer{
		feature:   feature{tag: tag, visible: true},
		HaloWidth: DefaultHaloSize,
	}
}

// Status returns the pointer's press state.
func (p *Pointer) Status() Status { return p.status }

// setStatus is driven by the engine's draw pass for the selected pointer.
func (p *Pointer) setStatus(s Status) { p.status = s }

// Draw renders the halo and body, or a substituted bitmap.
func (p *Pointer) Draw(dst *ebiten.Image, path Path) {
	if !p.visible || path.Length() == 0 {
		return
	}

	distance := path.Length() * p.Position / 100
	x, y, angle := path.PointAt(distance)

	info := PointerInfo{
		Source:    p,
		X:         x,
		Y:         y,
		Angle:     angle,
		Radius:    p.Radius,
		HaloWidth: p.HaloWidth,
		Color:     p.Color,
		Pressed:   p.status == StatusPressed,
		Visible:   true,
	}
	if p.OnBeforeDraw != nil {
		p.OnBeforeDraw(&info)
	}
	if !info.Visible {
		return
	}

	if info.Image != nil {
		b := info.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(info.X-float64(b.Dx())/2, info.Y-float64(b.Dy())/2)
		dst.DrawImage(info.Image, op)
		return
	}

	if info.Radius <= 0 {
		return
	}

	// Halo first, dimmed further while released.
	if info.HaloWidth > 0 {
		haloAlpha := 0.25
		if info.Pressed {
			haloAlpha = 0.5
		}
		vector.StrokeCircle(dst,
			float32(info.X), float32(info.Y),
			float32(info.Radius+info.HaloWidth/2),
			float32(info.HaloWidth),
			info.Color.WithAlpha(haloAlpha).nrgba(), true)
	}
	vector.FillCircle(dst,
		float32(info.X), float32(info.Y),
		float32(info.Radius), info.Color.nrgba(), true)
}

// nearestPointer returns the visible, non-zero-radius pointer whose Position
// is closest to the given percentage. Ties keep the first-registered pointer;
// nil when no pointer is eligible.
func (l *featureList) nearestPointer(percentage float64) *Pointer {
	var nearest *Pointer
	for _, f := range l.features {
		p, ok := f.(*Pointer)
		if !ok {
			continue
		}
		if !p.Visible() || p.Radius == 0 {
			continue
		}
		if nearest == nil ||
			math.Abs(percentage-nearest.Position) > math.Abs(percentage-p.Position) {
			nearest = p
		}
	}
	return nearest
}
