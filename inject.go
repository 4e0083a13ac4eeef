package scwidgets

// syntheticPointerEvent is a single queued pointer event. Raw host
// coordinates are used, identical to real input, so injected gestures pass
// through the same local-space translation and hit testing.
type syntheticPointerEvent struct {
	x, y   float64
	action pointerAction
}

type pointerAction uint8

const (
	actionPress pointerAction = iota
	actionMove
	actionRelease
	actionCancel
)

// InjectPress queues a pointer press at the given raw coordinates. The event
// is consumed on the next Update tick.
func (g *Gauge) InjectPress(x, y float64) {
	g.inject = append(g.inject, syntheticPointerEvent{x: x, y: y, action: actionPress})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (g *Gauge) InjectMove(x, y float64) {
	g.inject = append(g.inject, syntheticPointerEvent{x: x, y: y, action: actionMove})
}

// InjectRelease queues a pointer release at the given raw coordinates.
func (g *Gauge) InjectRelease(x, y float64) {
	g.inject = append(g.inject, syntheticPointerEvent{x: x, y: y, action: actionRelease})
}

// InjectCancel queues a gesture cancellation. Unlike a release it is
// guaranteed to write no value.
func (g *Gauge) InjectCancel() {
	g.inject = append(g.inject, syntheticPointerEvent{action: actionCancel})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two ticks.
func (g *Gauge) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// `frames` ticks; the minimum is 2 (press + release).
func (g *Gauge) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event and feeds it through the pointer
// state machine. Returns true if an event was consumed, in which case real
// input polling is skipped for this tick.
func (g *Gauge) processInjectedInput() bool {
	if len(g.inject) == 0 {
		return false
	}
	evt := g.inject[0]
	copy(g.inject, g.inject[1:])
	g.inject = g.inject[:len(g.inject)-1]

	switch evt.action {
	case actionPress:
		g.PointerDown(evt.x, evt.y)
	case actionMove:
		g.PointerMove(evt.x, evt.y)
	case actionRelease:
		g.PointerUp(evt.x, evt.y)
	case actionCancel:
		g.PointerCancel()
	}
	return true
}
