package scrollhero

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// newMountedController returns a controller over a section of the given
// geometry, mounted, with a recording sink and no editor.
func newMountedController(t *testing.T, g Geometry) (*fakeHost, *Controller, *recordingSink) {
	t.Helper()
	host := newFakeHost()
	host.elements[DefaultSection] = g
	c := NewController(host, DefaultConfig())
	sink := &recordingSink{}
	c.SetEventSink(sink)
	if !c.Mount() {
		t.Fatal("Mount failed on an attached section")
	}
	t.Cleanup(c.Close)
	return host, c, sink
}

func TestControllerMountGating(t *testing.T) {
	host := newFakeHost()
	host.elements[DefaultSection] = Geometry{Top: 0, Height: 3000}
	host.y = 500
	c := NewController(host, DefaultConfig())
	defer c.Close()

	snap := c.Snapshot()
	if snap.Visible() || c.Mounted() {
		t.Fatal("section visible before measurement")
	}
	if snap.Values.Progress() != 0 || snap.Values.Opacity() != 1 ||
		snap.Values.RotateDeg() != -90 || snap.Values.FakeScale() != 2.08 {
		t.Errorf("unmounted values = %v, want fallbacks", snap.Values)
	}

	c.Mount()
	snap = c.Snapshot()
	if !snap.Visible() || !c.Mounted() {
		t.Fatal("section not visible after measurement")
	}
	assertNear(t, "span", snap.Span, 1000)
	assertNear(t, "progress", snap.Values.Progress(), 0.5)
	assertNear(t, "opacity", snap.Values.Opacity(), 1)
	assertNear(t, "rotateDeg", snap.Values.RotateDeg(), -90)
}

func TestControllerMountRetriesOnResize(t *testing.T) {
	host := newFakeHost()
	c := NewController(host, DefaultConfig())
	defer c.Close()
	sink := &recordingSink{}
	c.SetEventSink(sink)

	if c.Mount() {
		t.Fatal("Mount succeeded with no section attached")
	}
	if c.Mounted() {
		t.Fatal("mounted without a measurement")
	}

	host.resize(Geometry{Top: 40, Height: 1200})
	if !c.Mounted() {
		t.Fatal("resize did not retry the measurement")
	}
	if g := c.Geometry(); g.Top != 40 || g.Height != 1200 {
		t.Errorf("Geometry = %+v", g)
	}
	if sink.count(EventMounted) != 1 {
		t.Errorf("EventMounted emitted %d times, want 1", sink.count(EventMounted))
	}

	host.resize(Geometry{Top: 40, Height: 1500})
	if sink.count(EventMounted) != 1 || sink.count(EventMeasured) != 1 {
		t.Errorf("events = %+v, want one mounted and one measured", sink.events)
	}
}

func TestControllerMountedLatchSurvivesDetach(t *testing.T) {
	host, c, _ := newMountedController(t, Geometry{Height: 3000})
	delete(host.elements, DefaultSection)
	host.handlers.fireResize()
	if !c.Mounted() {
		t.Error("mounted latch reset by a failed measurement")
	}
	if c.Geometry().Height != 3000 {
		t.Errorf("geometry changed by a failed measurement: %+v", c.Geometry())
	}
}

func TestControllerNegativeHeightClamped(t *testing.T) {
	_, c, _ := newMountedController(t, Geometry{Top: 10, Height: -50})
	if c.Geometry().Height != 0 {
		t.Errorf("Height = %v, want 0", c.Geometry().Height)
	}
}

func TestControllerCompletionThreshold(t *testing.T) {
	host, c, sink := newMountedController(t, Geometry{Top: 100, Height: 3000})
	const threshold = 100 + 1000*1.2 + 2
	assertNear(t, "threshold", c.Threshold(), threshold)

	steps := []struct {
		y    float64
		want bool
	}{
		{threshold - 1e-6, false},
		{threshold, true},
		{threshold + 1e-6, true},
		{threshold - 1e-6, false}, // no hysteresis
		{threshold + 500, true},
		{0, false},
	}
	for _, s := range steps {
		host.scroll(s.y)
		if c.Complete() != s.want {
			t.Errorf("at %v Complete = %v, want %v", s.y, c.Complete(), s.want)
		}
		if got := c.Snapshot().Interactive(); got != s.want {
			t.Errorf("at %v Interactive = %v, want %v", s.y, got, s.want)
		}
	}
	if sink.count(EventComplete) != 2 || sink.count(EventIncomplete) != 2 {
		t.Errorf("complete/incomplete events = %d/%d, want 2/2",
			sink.count(EventComplete), sink.count(EventIncomplete))
	}
}

func TestControllerResizeRecomputesCompletion(t *testing.T) {
	host, c, _ := newMountedController(t, Geometry{Height: 3000})
	host.scroll(1300)
	if !c.Complete() {
		t.Fatal("expected complete at 1300 with threshold 1202")
	}
	// A taller section moves the threshold past the current position.
	host.resize(Geometry{Height: 6000})
	assertNear(t, "threshold", c.Threshold(), 2402)
	if c.Complete() {
		t.Error("completion not recomputed after resize")
	}
}

func TestControllerFocusOncePerTransition(t *testing.T) {
	host, c, sink := newMountedController(t, Geometry{Height: 3000})
	ed := &fakeEditor{}
	c.SetEditor(ed)

	host.scroll(1202)
	want := []string{"Focus", "SetCaret(322)"}
	if strings.Join(ed.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", ed.calls, want)
	}

	// Staying complete does not refocus, even after the user blurs.
	host.scroll(1500)
	ed.focused = false
	host.scroll(1600)
	if len(ed.calls) != 2 {
		t.Fatalf("calls = %v, want a single focus", ed.calls)
	}

	// A new transition focuses again.
	host.scroll(100)
	host.scroll(1300)
	if len(ed.calls) != 4 || ed.caret != DefaultCaretOffset {
		t.Errorf("calls = %v caret = %d after second transition", ed.calls, ed.caret)
	}
	if sink.count(EventFocused) != 2 {
		t.Errorf("EventFocused emitted %d times, want 2", sink.count(EventFocused))
	}
}

func TestControllerFocusSkippedWhenAlreadyFocused(t *testing.T) {
	host, c, _ := newMountedController(t, Geometry{Height: 3000})
	ed := &fakeEditor{focused: true}
	c.SetEditor(ed)

	host.scroll(1300)
	if len(ed.calls) != 0 {
		t.Errorf("calls = %v, want none for a focused editor", ed.calls)
	}
	// The transition was consumed; a later blur does not trigger a focus.
	ed.focused = false
	host.scroll(1400)
	if len(ed.calls) != 0 {
		t.Errorf("calls = %v after blur within the same transition", ed.calls)
	}
}

func TestControllerFocusPendingUntilEditor(t *testing.T) {
	host, c, sink := newMountedController(t, Geometry{Height: 3000})
	host.scroll(1500)
	if sink.count(EventFocused) != 0 {
		t.Fatal("focused without an editor")
	}

	ed := &fakeEditor{}
	c.SetEditor(ed)
	if len(ed.calls) != 2 || ed.caret != 322 {
		t.Errorf("calls = %v, want pending focus served on attach", ed.calls)
	}
}

func TestControllerPendingFocusDroppedWhenIncomplete(t *testing.T) {
	host, c, _ := newMountedController(t, Geometry{Height: 3000})
	host.scroll(1500)
	host.scroll(0)

	ed := &fakeEditor{}
	c.SetEditor(ed)
	if len(ed.calls) != 0 {
		t.Errorf("calls = %v, want none once the page went back up", ed.calls)
	}
}

func TestControllerResetOnEveryIncompleteEvaluation(t *testing.T) {
	host, c, sink := newMountedController(t, Geometry{Height: 3000})
	ed := &fakeEditor{}
	c.SetEditor(ed)
	if ed.resets != 1 {
		t.Fatalf("resets = %d after attach, want 1", ed.resets)
	}

	for _, y := range []float64{10, 20, 30} {
		host.scroll(y)
	}
	if ed.resets != 4 {
		t.Errorf("resets = %d, want one per incomplete evaluation", ed.resets)
	}

	host.scroll(1300)
	host.scroll(1250)
	if ed.resets != 4 {
		t.Errorf("resets = %d, want none while complete", ed.resets)
	}

	host.scroll(100)
	if ed.resets != 5 {
		t.Errorf("resets = %d after scrolling back up, want 5", ed.resets)
	}
	host.scroll(1201.9)
	if ed.resets != 6 {
		t.Errorf("resets = %d just below threshold, want 6", ed.resets)
	}
	if sink.count(EventReset) != 1 {
		t.Errorf("EventReset emitted %d times, want once per downward edge", sink.count(EventReset))
	}
}

func TestControllerSnapOnContentFocus(t *testing.T) {
	host, c, sink := newMountedController(t, Geometry{Height: 3000})
	ed := &fakeEditor{}
	c.SetEditor(ed)

	ed.click()
	if len(host.scrollTos) != 1 {
		t.Fatalf("scrollTos = %v, want one", host.scrollTos)
	}
	if got := host.scrollTos[0]; got.y != 1202 || !got.animated {
		t.Errorf("scrollTo = %+v, want animated to 1202", got)
	}
	if sink.count(EventSnap) != 1 {
		t.Errorf("EventSnap emitted %d times", sink.count(EventSnap))
	}

	// The target follows geometry changes made after subscribing.
	host.resize(Geometry{Top: 50, Height: 6000})
	ed.click()
	if got := host.scrollTos[1].y; got != 50+2000*1.2+2 {
		t.Errorf("scrollTo after resize = %v, want %v", got, 50+2000*1.2+2)
	}

	// Snapping happens wherever the page is, including past the threshold.
	host.scroll(5000)
	ed.click()
	if len(host.scrollTos) != 3 {
		t.Errorf("scrollTos = %v, want a snap while complete too", host.scrollTos)
	}
}

func TestControllerSetEditorReplacesSubscription(t *testing.T) {
	_, c, _ := newMountedController(t, Geometry{Height: 3000})
	first, second := &fakeEditor{}, &fakeEditor{}

	c.SetEditor(first)
	c.SetEditor(second)
	if len(first.handlers.focus) != 0 {
		t.Error("first editor still subscribed")
	}
	if len(second.handlers.focus) != 1 {
		t.Errorf("second editor has %d subscriptions, want 1", len(second.handlers.focus))
	}

	c.SetEditor(nil)
	if len(second.handlers.focus) != 0 {
		t.Error("detaching did not unsubscribe")
	}
}

func TestControllerClose(t *testing.T) {
	host, c, _ := newMountedController(t, Geometry{Height: 3000})
	ed := &fakeEditor{}
	c.SetEditor(ed)
	var updates int
	c.OnUpdate(func(Snapshot) { updates++ })

	c.Close()
	if len(host.handlers.scroll) != 0 || len(host.handlers.resize) != 0 {
		t.Errorf("host still has %d scroll and %d resize handlers",
			len(host.handlers.scroll), len(host.handlers.resize))
	}
	if len(ed.handlers.focus) != 0 {
		t.Error("editor still subscribed after Close")
	}

	host.scroll(5000)
	ed.click()
	if c.Complete() || len(ed.calls) != 0 || len(host.scrollTos) != 0 || updates != 0 {
		t.Error("controller reacted after Close")
	}
	c.Close() // second Close is a no-op
	if c.Mount() {
		t.Error("Mount succeeded after Close")
	}
}

func TestControllerOnUpdateSnapshotsAreConsistent(t *testing.T) {
	host, c, _ := newMountedController(t, Geometry{Top: 200, Height: 2400})
	channels := DefaultChannels()

	var snaps []Snapshot
	h := c.OnUpdate(func(s Snapshot) { snaps = append(snaps, s) })
	for y := 0.0; y < 2000; y += 97 {
		host.scroll(y)
	}
	if len(snaps) == 0 {
		t.Fatal("no updates delivered")
	}
	for _, s := range snaps {
		want := Evaluate(&channels, s.Position, s.Geometry.Top, s.Span)
		if s.Values != want {
			t.Fatalf("snapshot at %v has values %v, want %v", s.Position, s.Values, want)
		}
		if s.Complete != (s.Position >= s.Threshold) {
			t.Fatalf("snapshot at %v: Complete = %v with threshold %v", s.Position, s.Complete, s.Threshold)
		}
	}

	n := len(snaps)
	h.Remove()
	host.scroll(5)
	if len(snaps) != n {
		t.Error("update delivered after Remove")
	}
}

func TestControllerLogsEffects(t *testing.T) {
	host, c, _ := newMountedController(t, Geometry{Height: 3000})
	var buf bytes.Buffer
	c.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	c.SetEditor(&fakeEditor{})

	host.scroll(1300)
	host.scroll(0)
	out := buf.String()
	for _, msg := range []string{"animation complete", "editor focused", "animation incomplete", "editor reset"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log missing %q:\n%s", msg, out)
		}
	}
}

func TestControllerCustomConfig(t *testing.T) {
	host := newFakeHost()
	host.elements["intro"] = Geometry{Top: 0, Height: 2000}
	c := NewController(host, Config{Section: "intro", SpanDivisor: 2, CaretOffset: 7})
	defer c.Close()
	c.Mount()
	ed := &fakeEditor{}
	c.SetEditor(ed)

	// span 1000, default fraction and offset.
	assertNear(t, "threshold", c.Threshold(), 1202)
	host.scroll(1202)
	if ed.caret != 7 {
		t.Errorf("caret = %d, want 7", ed.caret)
	}
}
