package scwidgets

import "encoding/json"

// InstanceState is a flat, order-independent record of every persistable
// gauge scalar: the full style surface plus both values and the snap flag.
// Fields map 1:1 to JSON keys, so a serialized state survives schema-ignorant
// storage (preference files, session bundles) unchanged.
type InstanceState struct {
	StrokeSize  float64 `json:"strokeSize"`
	StrokeColor Color   `json:"strokeColor"`

	HighValue float64 `json:"highValue"`
	LowValue  float64 `json:"lowValue"`

	ProgressSize  float64 `json:"progressSize"`
	ProgressColor Color   `json:"progressColor"`

	NotchSize     float64 `json:"notchSize"`
	NotchColor    Color   `json:"notchColor"`
	NotchCount    int     `json:"notchCount"`
	NotchLength   float64 `json:"notchLength"`
	SnapToNotches bool    `json:"snapToNotches"`

	TextTokens []string `json:"textTokens,omitempty"`
	TextSize   float64  `json:"textSize"`
	TextColor  Color    `json:"textColor"`

	PointerRadius    float64 `json:"pointerRadius"`
	PointerColor     Color   `json:"pointerColor"`
	PointerHaloWidth float64 `json:"pointerHaloWidth"`
}

// SaveState captures the current style scalars and values.
func (g *Gauge) SaveState() InstanceState {
	return InstanceState{
		StrokeSize:       g.StrokeSize,
		StrokeColor:      g.StrokeColor,
		HighValue:        g.HighValue(),
		LowValue:         g.LowValue(),
		ProgressSize:     g.ProgressSize,
		ProgressColor:    g.ProgressColor,
		NotchSize:        g.NotchSize,
		NotchColor:       g.NotchColor,
		NotchCount:       g.notchCount,
		NotchLength:      g.NotchLength,
		SnapToNotches:    g.SnapToNotches(),
		TextTokens:       g.TextTokens,
		TextSize:         g.TextSize,
		TextColor:        g.TextColor,
		PointerRadius:    g.PointerRadius,
		PointerColor:     g.PointerColor,
		PointerHaloWidth: g.PointerHaloWidth,
	}
}

// RestoreState applies a saved state as a single atomic operation. Values are
// written directly — no transition, no change notification — so restoration
// must happen before the first draw or touch processing, not mid-gesture.
func (g *Gauge) RestoreState(st InstanceState) {
	g.StrokeSize = st.StrokeSize
	g.StrokeColor = st.StrokeColor
	g.ProgressSize = st.ProgressSize
	g.ProgressColor = st.ProgressColor
	g.NotchSize = st.NotchSize
	g.NotchColor = st.NotchColor
	g.NotchLength = st.NotchLength
	g.TextTokens = st.TextTokens
	g.TextSize = st.TextSize
	g.TextColor = st.TextColor
	g.PointerRadius = st.PointerRadius
	g.PointerColor = st.PointerColor
	g.PointerHaloWidth = st.PointerHaloWidth

	g.notchCount = st.NotchCount
	g.model.SetSteps(st.NotchCount)
	g.model.SetSnap(st.SnapToNotches)
	g.model.restore(st.LowValue, st.HighValue)
	g.MarkDirty()
}

// SaveStateJSON serializes the current state to JSON.
func (g *Gauge) SaveStateJSON() ([]byte, error) {
	return json.Marshal(g.SaveState())
}

// RestoreStateJSON applies a JSON state produced by SaveStateJSON.
func (g *Gauge) RestoreStateJSON(data []byte) error {
	var st InstanceState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	g.RestoreState(st)
	return nil
}
