package scwidgets

import "math"

// Path is the curve a gauge draws its features along. The engine only needs
// the total length and a nearest-point query; features additionally sample
// concrete points to place themselves.
//
// Distance is measured along the path from its start, in the same unit as
// Length. Implementations with zero length must report ok=false from every
// Nearest query.
type Path interface {
	// Length returns the total path length.
	Length() float64

	// Nearest returns the distance along the path of the path point closest
	// to (x, y), if that point lies within tolerance. Pass math.Inf(1) to
	// always find the nearest point.
	Nearest(x, y, tolerance float64) (distance float64, ok bool)

	// PointAt returns the point at the given distance from the path start and
	// the tangent angle there in radians. The distance is clamped to
	// [0, Length].
	PointAt(distance float64) (x, y, angle float64)
}

// perpendicular returns the components of a vector of the given length normal
// to a tangent angle.
func perpendicular(angle, length float64) (float64, float64) {
	return -math.Sin(angle) * length, math.Cos(angle) * length
}

// Polyline is a Path made of straight segments. Build one with NewPolyline
// and LineTo, or use the NewLine and NewArc constructors.
type Polyline struct {
	points  []Vec2
	lengths []float64 // cumulative length at each point; lengths[0] == 0
}

// NewPolyline starts a polyline at (x, y).
func NewPolyline(x, y float64) *Polyline {
	return &Polyline{
		points:  []Vec2{{X: x, Y: y}},
		lengths: []float64{0},
	}
}

// LineTo appends a straight segment to (x, y) and returns the polyline for
// chaining.
func (p *Polyline) LineTo(x, y float64) *Polyline {
	last := p.points[len(p.points)-1]
	dx := x - last.X
	dy := y - last.Y
	p.points = append(p.points, Vec2{X: x, Y: y})
	p.lengths = append(p.lengths, p.lengths[len(p.lengths)-1]+math.Hypot(dx, dy))
	return p
}

// NewLine creates a single-segment path from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1 float64) *Polyline {
	return NewPolyline(x0, y0).LineTo(x1, y1)
}

// arcSegmentDegrees is the flattening resolution for NewArc: one segment per this
// many degrees of sweep.
const arcSegmentDegrees = 4.0

// NewArc creates a circular arc centered at (cx, cy) with the given radius,
// starting at startAngle and sweeping sweepAngle (both in degrees, clockwise
// positive to match the screen coordinate system).
func NewArc(cx, cy, radius, startAngle, sweepAngle float64) *Polyline {
	segments := int(math.Ceil(math.Abs(sweepAngle) / arcSegmentDegrees))
	if segments < 1 {
		segments = 1
	}
	start := startAngle * math.Pi / 180
	sweep := sweepAngle * math.Pi / 180

	p := NewPolyline(
		cx+radius*math.Cos(start),
		cy+radius*math.Sin(start),
	)
	for i := 1; i <= segments; i++ {
		a := start + sweep*float64(i)/float64(segments)
		p.LineTo(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
	return p
}

// Length returns the total polyline length.
func (p *Polyline) Length() float64 {
	return p.lengths[len(p.lengths)-1]
}

// Nearest projects (x, y) onto every segment and returns the distance along
// the path of the closest path point, when it lies within tolerance.
// A degenerate polyline (single point or zero total length) never matches.
func (p *Polyline) Nearest(x, y, tolerance float64) (float64, bool) {
	if len(p.points) < 2 || p.Length() == 0 {
		return 0, false
	}

	best := math.Inf(1)
	bestDist := 0.0

	for i := 0; i < len(p.points)-1; i++ {
		a := p.points[i]
		b := p.points[i+1]
		dx := b.X - a.X
		dy := b.Y - a.Y
		segLen2 := dx*dx + dy*dy
		if segLen2 == 0 {
			continue
		}

		// Parametric position of the projection, clamped to the segment.
		t := ((x-a.X)*dx + (y-a.Y)*dy) / segLen2
		t = clamp(t, 0, 1)

		px := a.X + dx*t
		py := a.Y + dy*t
		d := math.Hypot(x-px, y-py)
		if d < best {
			best = d
			bestDist = p.lengths[i] + math.Sqrt(segLen2)*t
		}
	}

	if best > tolerance {
		return 0, false
	}
	return bestDist, true
}

// PointAt returns the point and tangent angle at the given distance from the
// path start. The distance is clamped to [0, Length].
func (p *Polyline) PointAt(distance float64) (float64, float64, float64) {
	if len(p.points) == 0 {
		return 0, 0, 0
	}
	if len(p.points) == 1 || p.Length() == 0 {
		return p.points[0].X, p.points[0].Y, 0
	}

	distance = clamp(distance, 0, p.Length())

	// Find the segment containing the distance.
	i := 0
	for i < len(p.lengths)-2 && p.lengths[i+1] < distance {
		i++
	}

	a := p.points[i]
	b := p.points[i+1]
	segLen := p.lengths[i+1] - p.lengths[i]
	t := 0.0
	if segLen > 0 {
		t = (distance - p.lengths[i]) / segLen
	}
	return a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		math.Atan2(b.Y-a.Y, b.X-a.X)
}
