package scwidgets

import "testing"

func TestNearestPointerPicksClosest(t *testing.T) {
	var l featureList
	a := NewPointer(TagHigh)
	a.Position = 20
	a.Radius = 5
	b := NewPointer(TagLow)
	b.Position = 80
	b.Radius = 5
	l.add(a)
	l.add(b)

	if got := l.nearestPointer(30); got != a {
		t.Error("query at 30 should pick the pointer at 20")
	}
	if got := l.nearestPointer(70); got != b {
		t.Error("query at 70 should pick the pointer at 80")
	}
}

func TestNearestPointerTieKeepsFirstRegistered(t *testing.T) {
	var l featureList
	first := NewPointer(TagHigh)
	first.Position = 40
	first.Radius = 5
	second := NewPointer(TagLow)
	second.Position = 60
	second.Radius = 5
	l.add(first)
	l.add(second)

	// Exactly between the two: the first-registered pointer wins.
	if got := l.nearestPointer(50); got != first {
		t.Error("equidistant query should keep the first-registered pointer")
	}
}

func TestNearestPointerSkipsIneligible(t *testing.T) {
	var l featureList

	invisible := NewPointer(TagHigh)
	invisible.Position = 50
	invisible.Radius = 5
	invisible.SetVisible(false)

	zeroRadius := NewPointer(TagLow)
	zeroRadius.Position = 50

	eligible := NewPointer("marker")
	eligible.Position = 90
	eligible.Radius = 3

	l.add(invisible)
	l.add(zeroRadius)
	l.add(eligible)

	if got := l.nearestPointer(50); got != eligible {
		t.Error("invisible and zero-radius pointers must not be selected")
	}
}

func TestNearestPointerNoneEligible(t *testing.T) {
	var l featureList
	p := NewPointer(TagHigh)
	p.Position = 50 // zero radius
	l.add(p)

	if got := l.nearestPointer(50); got != nil {
		t.Error("expected nil when no pointer is eligible")
	}
}

func TestFeatureListByTag(t *testing.T) {
	var l featureList
	c := NewCopier()
	c.SetTag(TagBase)
	n := NewNotches()
	n.SetTag(TagNotches)
	l.add(c)
	l.add(n)

	if l.byTag(TagBase) != c {
		t.Error("byTag(base) should return the copier")
	}
	if l.byTag("missing") != nil {
		t.Error("byTag of an unknown tag should return nil")
	}
}

func TestFeatureListAllFiltersInOrder(t *testing.T) {
	var l featureList
	a := NewPointer("a")
	b := NewCopier()
	c := NewPointer("c")
	l.add(a)
	l.add(b)
	l.add(c)

	pointers := l.all(func(f Feature) bool {
		_, ok := f.(*Pointer)
		return ok
	})
	if len(pointers) != 2 || pointers[0] != Feature(a) || pointers[1] != Feature(c) {
		t.Errorf("expected pointers [a c] in registration order, got %v", pointers)
	}

	everything := l.all(nil)
	if len(everything) != 3 {
		t.Errorf("nil predicate should match all 3 features, got %d", len(everything))
	}
}
