package scrollhero

import "fmt"

// fakeHost is a Host with fixed geometry per handle and a recorded ScrollTo.
type fakeHost struct {
	y        float64
	elements map[Handle]Geometry
	handlers handlerRegistry

	scrollTos []scrollToCall
}

type scrollToCall struct {
	y        float64
	animated bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{elements: make(map[Handle]Geometry)}
}

func (h *fakeHost) ScrollY() float64 { return h.y }

func (h *fakeHost) OnScroll(fn func(y float64)) CallbackHandle { return h.handlers.onScroll(fn) }

func (h *fakeHost) OnResize(fn func()) CallbackHandle { return h.handlers.onResize(fn) }

func (h *fakeHost) ScrollTo(y float64, animated bool) {
	h.scrollTos = append(h.scrollTos, scrollToCall{y: y, animated: animated})
}

func (h *fakeHost) Measure(handle Handle) (Geometry, bool) {
	g, ok := h.elements[handle]
	return g, ok
}

// scroll moves the offset and notifies, as a user scroll would.
func (h *fakeHost) scroll(y float64) {
	h.y = y
	h.handlers.fireScroll(y)
}

// resize changes the section geometry and notifies.
func (h *fakeHost) resize(g Geometry) {
	h.elements[DefaultSection] = g
	h.handlers.fireResize()
}

// fakeEditor records every call the controller makes.
type fakeEditor struct {
	focused  bool
	caret    int
	resets   int
	calls    []string
	handlers handlerRegistry
}

func (e *fakeEditor) HasFocus() bool { return e.focused }

func (e *fakeEditor) Focus() {
	e.focused = true
	e.calls = append(e.calls, "Focus")
}

func (e *fakeEditor) SetCaret(offset int) {
	e.caret = offset
	e.calls = append(e.calls, fmt.Sprintf("SetCaret(%d)", offset))
}

func (e *fakeEditor) ResetAllFiles() { e.resets++ }

func (e *fakeEditor) OnContentFocus(fn func()) CallbackHandle { return e.handlers.onFocus(fn) }

// click simulates the user focusing the content surface.
func (e *fakeEditor) click() {
	e.focused = true
	e.handlers.fireFocus()
}

// recordingSink collects emitted events.
type recordingSink struct {
	events []Event
}

func (s *recordingSink) EmitEvent(e Event) { s.events = append(s.events, e) }

func (s *recordingSink) count(t EventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
