package scrollhero

// syntheticKind identifies an injected input event.
type syntheticKind uint8

const (
	syntheticWheel syntheticKind = iota
	syntheticScrollTo
	syntheticResize
	syntheticClick
	syntheticType
	syntheticBackspace
)

// syntheticEvent is a single injected input event. Coordinates are screen
// coordinates, matching what real pointer input delivers.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
	text string
}

// InjectWheel queues a wheel scroll of dy pixels. Each injected event is
// consumed by one Update call.
func (s *Stage) InjectWheel(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticWheel, y: dy})
}

// InjectScrollTo queues an immediate jump to offset y.
func (s *Stage) InjectScrollTo(y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticScrollTo, y: y})
}

// InjectResize queues a viewport resize.
func (s *Stage) InjectResize(width, height float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticResize, x: width, y: height})
}

// InjectClick queues a primary click at screen coordinates.
func (s *Stage) InjectClick(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// InjectType queues typed text.
func (s *Stage) InjectType(text string) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticType, text: text})
}

// InjectBackspace queues a backspace key press.
func (s *Stage) InjectBackspace() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticBackspace})
}

// InjectScrollGesture queues a scroll of total pixels spread evenly over
// frames wheel events, the way a trackpad gesture arrives. Minimum frames
// is 1.
func (s *Stage) InjectScrollGesture(total float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	step := total / float64(frames)
	for i := 0; i < frames; i++ {
		s.InjectWheel(step)
	}
}

// Pending returns the number of queued synthetic events.
func (s *Stage) Pending() int {
	return len(s.injectQueue)
}

// processInjected pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (s *Stage) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticWheel:
		s.Wheel(evt.y)
	case syntheticScrollTo:
		s.Viewport.ScrollTo(evt.y, false)
	case syntheticResize:
		s.Resize(evt.x, evt.y)
	case syntheticClick:
		s.Click(evt.x, evt.y)
	case syntheticType:
		s.Type(evt.text)
	case syntheticBackspace:
		s.Backspace()
	}
	return true
}
