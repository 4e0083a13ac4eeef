package scwidgets

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pointer interaction is a two-state machine: idle, and pressed while a
// gesture is in progress. Exactly one gesture is live at a time — touch input
// is serialized to a single tracked finger, so a second finger neither starts
// a second gesture nor steals the first.
//
// Every entry point reports whether the event was captured. Once a gesture
// has begun the gauge captures all subsequent move/up events; with input
// disabled nothing is captured.

// PointerDown feeds a press at raw host coordinates. If the press lands
// within tolerance of the path (pointer radius plus half the halo), the
// nearest eligible pointer is selected, the gesture begins, and the value is
// routed through the selection. A miss consumes the event but changes
// nothing.
func (g *Gauge) PointerDown(x, y float64) bool {
	if !g.InputEnabled {
		return false
	}

	lx, ly := g.toLocal(x, y)
	distance, ok := g.path.Nearest(lx, ly, g.searchTolerance())
	if ok {
		percentage := Percentage(distance, 0, g.path.Length())
		g.selected = g.features.nearestPointer(percentage)
		g.touched = true
		g.debugTouch("down", percentage)
		g.setValueByPointer(percentage, g.selected)
		g.MarkDirty()
	}
	return true
}

// PointerMove feeds a move at raw host coordinates. Outside a gesture it is
// captured but inert. Within a gesture the path is re-queried with infinite
// tolerance — the finger is never lost mid-drag — and the new percentage is
// routed through the selection made at press time; selection is sticky for
// the whole gesture.
func (g *Gauge) PointerMove(x, y float64) bool {
	if !g.InputEnabled {
		return false
	}
	if !g.touched {
		return true
	}

	lx, ly := g.toLocal(x, y)
	distance, ok := g.path.Nearest(lx, ly, g.searchTolerance())
	if ok {
		percentage := Percentage(distance, 0, g.path.Length())
		g.debugTouch("move", percentage)
		g.setValueByPointer(percentage, g.selected)
	}
	return true
}

// PointerUp ends the gesture. The selection is kept until the next press
// replaces it, so the released pointer can still be styled as the active one.
func (g *Gauge) PointerUp(x, y float64) bool {
	if !g.InputEnabled {
		return false
	}
	g.touched = false
	g.debugTouch("up", 0)
	g.MarkDirty()
	return true
}

// PointerCancel ends the gesture like PointerUp but is guaranteed to write no
// value: only the status transition and a redraw occur.
func (g *Gauge) PointerCancel() bool {
	if !g.InputEnabled {
		return false
	}
	g.touched = false
	g.debugTouch("cancel", 0)
	g.MarkDirty()
	return true
}

// toLocal undoes the host transform: local = (raw - Offset) / AreaScale.
func (g *Gauge) toLocal(x, y float64) (float64, float64) {
	sx := g.AreaScale.X
	sy := g.AreaScale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return (x - g.Offset.X) / sx, (y - g.Offset.Y) / sy
}

// searchTolerance returns the nearest-point tolerance: the pointer radius
// plus half the halo, or infinite once a gesture is in progress so a drag
// that strays off the visual path keeps tracking.
func (g *Gauge) searchTolerance() float64 {
	if g.touched {
		return math.Inf(1)
	}
	halo := g.PointerHaloWidth
	if halo < 0 {
		halo = 0
	}
	return g.PointerRadius + halo/2
}

// setValueByPointer routes a target percentage through the pointer selection:
// the low-tagged pointer drives the low value, no selection or the
// high-tagged pointer drives the high value, and any other pointer is moved
// positionally without touching the value model.
func (g *Gauge) setValueByPointer(percentage float64, p *Pointer) {
	if p != nil && p.Tag() == TagLow {
		g.model.SetValue(percentage, true)
		return
	}
	if p == nil || p.Tag() == TagHigh {
		g.model.SetValue(percentage, false)
		return
	}
	p.Position = percentage
	g.MarkDirty()
}

// pollInput reads ebiten mouse and touch state and feeds the state machine.
// The mouse is the tracked pointer by default; the first touch takes over
// while it is held. Called once per Update when no synthetic events are
// queued.
func (g *Gauge) pollInput() {
	if !g.InputEnabled {
		return
	}

	x, y, down := g.readPointer()

	switch {
	case down && !g.prevDown:
		g.PointerDown(x, y)
	case down && g.prevDown:
		if x != g.lastX || y != g.lastY {
			g.PointerMove(x, y)
		}
	case !down && g.prevDown:
		g.PointerUp(x, y)
	}
	g.prevDown = down
	g.lastX = x
	g.lastY = y
}

// readPointer returns the tracked pointer position and press state, touch
// first, mouse as fallback.
func (g *Gauge) readPointer() (x, y float64, down bool) {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])

	if g.touchActive {
		// Stay with the touch we started tracking until it lifts.
		for _, id := range g.touchIDs {
			if id == g.activeTouch {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true
			}
		}
		g.touchActive = false
		return g.lastX, g.lastY, false
	}

	if len(g.touchIDs) > 0 && !g.prevDown {
		g.activeTouch = g.touchIDs[0]
		g.touchActive = true
		tx, ty := ebiten.TouchPosition(g.activeTouch)
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
