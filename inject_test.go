package scwidgets

import "testing"

func TestInjectClickQueuesTwoEvents(t *testing.T) {
	g := testGauge()

	g.InjectClick(30, 0)
	if len(g.inject) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(g.inject))
	}

	// One event per tick.
	g.processInjectedInput()
	g.advance(tick)
	if len(g.inject) != 1 {
		t.Errorf("expected 1 event left after one tick, got %d", len(g.inject))
	}
	if g.HighValue() != 30 {
		t.Errorf("high = %f, want 30 after the press", g.HighValue())
	}
	if !g.Touched() {
		t.Error("gauge should be touched between press and release")
	}

	g.processInjectedInput()
	g.advance(tick)
	if len(g.inject) != 0 {
		t.Error("queue should be empty after the click finished")
	}
	if g.Touched() {
		t.Error("gauge should not be touched after the release")
	}
}

func TestInjectDragInterpolatesMoves(t *testing.T) {
	g := testGauge()

	g.InjectDrag(0, 0, 90, 0, 5)
	if len(g.inject) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(g.inject))
	}
	if g.inject[0].action != actionPress {
		t.Error("first event should be a press")
	}
	if g.inject[4].action != actionRelease {
		t.Error("last event should be a release")
	}
	// Moves are spread evenly between the endpoints.
	if g.inject[1].x != 22.5 || g.inject[2].x != 45 || g.inject[3].x != 67.5 {
		t.Errorf("move positions = %f, %f, %f; want 22.5, 45, 67.5",
			g.inject[1].x, g.inject[2].x, g.inject[3].x)
	}
}

func TestInjectDragClampsToMinimumFrames(t *testing.T) {
	g := testGauge()

	g.InjectDrag(10, 0, 50, 0, 0)
	if len(g.inject) != 2 {
		t.Fatalf("expected press+release for degenerate frame count, got %d events", len(g.inject))
	}
}

func TestInjectCancelWritesNoValue(t *testing.T) {
	g := testGauge()

	g.InjectPress(40, 0)
	g.InjectCancel()
	for len(g.inject) > 0 {
		g.processInjectedInput()
		g.advance(tick)
	}

	if g.HighValue() != 40 {
		t.Errorf("high = %f, want 40 from the press", g.HighValue())
	}
	if g.Touched() {
		t.Error("cancel should end the gesture")
	}

	// A later move must be inert: the gesture is over.
	g.InjectMove(90, 0)
	g.processInjectedInput()
	g.advance(tick)
	if g.HighValue() != 40 {
		t.Errorf("high = %f, want 40 after a move outside a gesture", g.HighValue())
	}
}

func TestProcessInjectedInputEmptyQueue(t *testing.T) {
	g := testGauge()

	if g.processInjectedInput() {
		t.Error("empty queue should report no event consumed")
	}
}
