package scwidgets

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SetDebugMode enables or disables debug mode. When enabled, pointer state
// transitions and per-tick value updates are traced to stderr.
func (g *Gauge) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// debugTouch traces a pointer state transition.
func (g *Gauge) debugTouch(action string, percentage float64) {
	if !g.debug {
		return
	}
	tag := "<none>"
	if g.selected != nil {
		tag = g.selected.Tag()
		if tag == "" {
			tag = "<untagged>"
		}
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scwidgets] pointer %s | selected: %s | percentage: %.2f\n",
		action, tag, percentage)
}

// debugValue traces a value tick.
func (g *Gauge) debugValue(low, high float64) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scwidgets] value tick | low: %.2f | high: %.2f\n", low, high)
}

// DrawDebugOverlay prints the live values and gesture state onto dst.
// Intended for development builds; call after Draw.
func (g *Gauge) DrawDebugOverlay(dst *ebiten.Image) {
	state := "idle"
	if g.touched {
		state = "pressed"
	}
	ebitenutil.DebugPrint(dst, fmt.Sprintf(
		"low: %.1f\nhigh: %.1f\nstate: %s", g.LowValue(), g.HighValue(), state))
}
