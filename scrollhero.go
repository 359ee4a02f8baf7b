package scrollhero

// Geometry is the measured placement of the hero section. Top is the distance
// from the document origin; Height is the rendered height and is never
// negative.
type Geometry struct {
	Top, Height float64
}

// Span returns the scroll distance over which the animation plays. The
// section is divisor times taller than the span, leaving dwell room after
// the animation finishes. A non-positive divisor yields a zero span.
func (g Geometry) Span(divisor float64) float64 {
	if divisor <= 0 || g.Height <= 0 {
		return 0
	}
	return g.Height / divisor
}

// Handle identifies an element placed on a host surface.
type Handle string

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// EventType identifies a controller event forwarded to an EventSink.
type EventType uint8

const (
	EventMounted    EventType = iota // first successful measurement
	EventMeasured                    // geometry re-measured after a resize
	EventComplete                    // completion flag became true
	EventIncomplete                  // completion flag became false
	EventFocused                     // editor focused and caret placed
	EventSnap                        // scroll to the threshold requested
	EventReset                       // editor files reset to seed content
)

var eventNames = [...]string{
	EventMounted:    "mounted",
	EventMeasured:   "measured",
	EventComplete:   "complete",
	EventIncomplete: "incomplete",
	EventFocused:    "focused",
	EventSnap:       "snap",
	EventReset:      "reset",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Event carries controller state at the moment an effect fired.
type Event struct {
	Type      EventType
	Position  float64
	Threshold float64
	Geometry  Geometry
}

// EventSink is the interface for optional event forwarding, such as an ECS
// bridge. When set on a Controller, every effect that fires is emitted.
type EventSink interface {
	EmitEvent(event Event)
}
