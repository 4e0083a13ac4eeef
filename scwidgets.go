package scwidgets

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default stroke, notch, text, and pointer color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorGray is the default progress color.
var ColorGray = Color{0.5, 0.5, 0.5, 1}

// nrgba converts to the stdlib color type used by the ebiten vector helpers.
func (c Color) nrgba() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1) * 255),
		G: uint8(clamp(c.G, 0, 1) * 255),
		B: uint8(clamp(c.B, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// WithAlpha returns the color with its alpha multiplied by a.
// Used for halo rendering.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Default style values applied when a Gauge is created.
const (
	DefaultStrokeSize   = 3.0
	DefaultProgressSize = 1.0
	DefaultTextSize     = 16.0
	DefaultHaloSize     = 10.0
)

// Well-known feature tags. The standard configuration created by NewGauge
// registers one feature per tag; the style fan-out recognizes features by tag,
// so replacing or adding features under these tags restyles them automatically.
// Custom features under other tags are left to the caller.
const (
	TagBase     = "base"
	TagNotches  = "notches"
	TagWriter   = "writer"
	TagProgress = "progress"
	TagHigh     = "high"
	TagLow      = "low"
)

// Status is the press state of a pointer feature.
type Status uint8

const (
	StatusReleased Status = iota // pointer is not being dragged
	StatusPressed                // pointer is the active drag target
)

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Percentage maps value from [start, end] onto [0, 100]. The value is clamped
// into the range first. A zero-width range yields 0 rather than an error.
func Percentage(value, start, end float64) float64 {
	if start <= end {
		value = clamp(value, start, end)
	} else {
		value = clamp(value, end, start)
	}
	if end-start == 0 {
		return 0
	}
	return (value - start) / (end - start) * 100
}
