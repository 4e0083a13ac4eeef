package scwidgets

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Low    bool    `json:"low,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences scripted pointer gestures and value writes across
// ticks for automated interaction testing. Attach to a Gauge via
// SetTestRunner; the runner advances one step per Update, waiting for queued
// synthetic events to drain between steps.
//
// Supported actions: "press", "move", "release", "cancel", "click", "drag"
// (fromX/fromY/toX/toY/frames), "set" (value, low), and "wait" (frames).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// be attached via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. The runner's step method is called
// from Update before input processing each tick.
func (g *Gauge) SetTestRunner(runner *TestRunner) {
	g.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Gauge.Update.
func (r *TestRunner) step(g *Gauge) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.inject) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		g.InjectPress(st.X, st.Y)
	case "move":
		g.InjectMove(st.X, st.Y)
	case "release":
		g.InjectRelease(st.X, st.Y)
	case "cancel":
		g.InjectCancel()
	case "click":
		g.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "set":
		if st.Low {
			g.SetLowValue(st.Value)
		} else {
			g.SetHighValue(st.Value)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.inject) == 0 {
		r.done = true
	}
}
