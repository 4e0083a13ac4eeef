package scwidgets

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	p := NewLine(0, 0, 100, 0)
	if p.Length() != 100 {
		t.Errorf("length = %f, want 100", p.Length())
	}

	diag := NewLine(0, 0, 3, 4)
	if math.Abs(diag.Length()-5) > 1e-9 {
		t.Errorf("length = %f, want 5", diag.Length())
	}
}

func TestPolylineCumulativeLength(t *testing.T) {
	p := NewPolyline(0, 0).LineTo(10, 0).LineTo(10, 10)
	if p.Length() != 20 {
		t.Errorf("length = %f, want 20", p.Length())
	}
}

func TestNearestOnSegment(t *testing.T) {
	p := NewLine(0, 0, 100, 0)

	d, ok := p.Nearest(40, 3, 5)
	if !ok {
		t.Fatal("expected a hit within tolerance")
	}
	if math.Abs(d-40) > 1e-9 {
		t.Errorf("distance = %f, want 40", d)
	}
}

func TestNearestOutsideToleranceMisses(t *testing.T) {
	p := NewLine(0, 0, 100, 0)

	if _, ok := p.Nearest(40, 5, 3); ok {
		t.Error("point 5 units away with tolerance 3 should miss")
	}
}

func TestNearestInfiniteToleranceAlwaysHits(t *testing.T) {
	p := NewLine(0, 0, 100, 0)

	d, ok := p.Nearest(70, 500, math.Inf(1))
	if !ok {
		t.Fatal("infinite tolerance should always find the nearest point")
	}
	if math.Abs(d-70) > 1e-9 {
		t.Errorf("distance = %f, want 70", d)
	}
}

func TestNearestClampsToEndpoints(t *testing.T) {
	p := NewLine(0, 0, 100, 0)

	d, ok := p.Nearest(-30, 0, math.Inf(1))
	if !ok || d != 0 {
		t.Errorf("nearest before start = (%f, %v), want (0, true)", d, ok)
	}

	d, ok = p.Nearest(130, 0, math.Inf(1))
	if !ok || d != 100 {
		t.Errorf("nearest past end = (%f, %v), want (100, true)", d, ok)
	}
}

func TestNearestPicksClosestSegment(t *testing.T) {
	// An L shape: the query point sits nearer the vertical leg.
	p := NewPolyline(0, 0).LineTo(100, 0).LineTo(100, 100)

	d, ok := p.Nearest(98, 50, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(d-150) > 1e-9 {
		t.Errorf("distance = %f, want 150 (50 units up the second leg)", d)
	}
}

func TestZeroLengthPathNeverHits(t *testing.T) {
	p := NewPolyline(5, 5)
	if _, ok := p.Nearest(5, 5, math.Inf(1)); ok {
		t.Error("zero-length path must miss every query")
	}
}

func TestPointAtInterpolates(t *testing.T) {
	p := NewPolyline(0, 0).LineTo(10, 0).LineTo(10, 10)

	x, y, angle := p.PointAt(5)
	if x != 5 || y != 0 {
		t.Errorf("PointAt(5) = (%f, %f), want (5, 0)", x, y)
	}
	if angle != 0 {
		t.Errorf("angle = %f, want 0", angle)
	}

	x, y, angle = p.PointAt(15)
	if x != 10 || y != 5 {
		t.Errorf("PointAt(15) = (%f, %f), want (10, 5)", x, y)
	}
	if math.Abs(angle-math.Pi/2) > 1e-9 {
		t.Errorf("angle = %f, want pi/2", angle)
	}
}

func TestPointAtClampsDistance(t *testing.T) {
	p := NewLine(0, 0, 10, 0)

	x, _, _ := p.PointAt(-5)
	if x != 0 {
		t.Errorf("PointAt(-5) x = %f, want 0", x)
	}
	x, _, _ = p.PointAt(99)
	if x != 10 {
		t.Errorf("PointAt(99) x = %f, want 10", x)
	}
}

func TestArcLengthApproximatesCircumference(t *testing.T) {
	// Full circle, radius 100: flattened length should be close to 2*pi*r.
	p := NewArc(0, 0, 100, 0, 360)
	want := 2 * math.Pi * 100
	if math.Abs(p.Length()-want) > want*0.01 {
		t.Errorf("arc length = %f, want within 1%% of %f", p.Length(), want)
	}
}

func TestArcStartAndEndPoints(t *testing.T) {
	p := NewArc(50, 50, 10, 0, 90)

	x, y, _ := p.PointAt(0)
	if math.Abs(x-60) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("arc start = (%f, %f), want (60, 50)", x, y)
	}

	x, y, _ = p.PointAt(p.Length())
	if math.Abs(x-50) > 1e-6 || math.Abs(y-60) > 1e-6 {
		t.Errorf("arc end = (%f, %f), want (50, 60)", x, y)
	}
}
