package scrollhero

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default animated-scroll parameters.
const (
	DefaultSnapDuration float32 = 0.45
)

// DefaultSnapEase is the curve used for animated scrolls.
var DefaultSnapEase ease.TweenFunc = ease.OutCubic

// scrollAnim holds an active scroll-to tween.
type scrollAnim struct {
	tween  *gween.Tween
	target float64
}

// Viewport is a scrollable document surface: a window of Width x Height over
// a document laid out by a layout callback. It implements Host and is what
// the ebiten and terminal hosts drive from real input.
type Viewport struct {
	// Width and Height are the visible size.
	Width, Height float64

	// BoundsEnabled clamps the scroll offset to [0, ContentHeight-Height].
	BoundsEnabled bool
	// ContentHeight is the document height used when BoundsEnabled is true.
	ContentHeight float64

	// SnapDuration is the length in seconds of animated scrolls.
	SnapDuration float32
	// SnapEase shapes animated scrolls.
	SnapEase ease.TweenFunc

	y        float64
	elements map[Handle]Rect
	layout   func(v *Viewport)
	handlers handlerRegistry

	scrollTween *scrollAnim
}

// NewViewport creates a Viewport of the given size scrolled to the top.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		Width:        width,
		Height:       height,
		SnapDuration: DefaultSnapDuration,
		SnapEase:     DefaultSnapEase,
		elements:     make(map[Handle]Rect),
	}
}

// ScrollY returns the current scroll offset.
func (v *Viewport) ScrollY() float64 {
	return v.y
}

// OnScroll registers a callback fired with the new offset each time it changes.
func (v *Viewport) OnScroll(fn func(y float64)) CallbackHandle {
	return v.handlers.onScroll(fn)
}

// OnResize registers a callback fired after SetSize has re-run the layout.
func (v *Viewport) OnResize(fn func()) CallbackHandle {
	return v.handlers.onResize(fn)
}

// SetLayout installs the layout callback and runs it once immediately.
func (v *Viewport) SetLayout(fn func(v *Viewport)) {
	v.layout = fn
	if fn != nil {
		fn(v)
	}
	v.clampAndNotify()
}

// SetSize resizes the visible area, re-runs the layout and clamps the
// offset, then notifies resize handlers followed by scroll handlers if the
// clamp moved the offset. Resize handlers see the new layout and the
// clamped offset together.
func (v *Viewport) SetSize(width, height float64) {
	v.Width = width
	v.Height = height
	if v.layout != nil {
		v.layout(v)
	}
	prev := v.y
	v.y = v.clamp(v.y)
	if v.scrollTween != nil {
		v.scrollTween.target = v.clamp(v.scrollTween.target)
	}
	v.handlers.fireResize()
	if v.y != prev {
		v.handlers.fireScroll(v.y)
	}
}

// SetBounds enables clamping against the given document height.
func (v *Viewport) SetBounds(contentHeight float64) {
	v.BoundsEnabled = true
	v.ContentHeight = contentHeight
}

// ClearBounds disables scroll clamping.
func (v *Viewport) ClearBounds() {
	v.BoundsEnabled = false
}

// MaxScroll returns the largest reachable offset, or +Inf when unbounded.
func (v *Viewport) MaxScroll() float64 {
	if !v.BoundsEnabled {
		return math.Inf(1)
	}
	return math.Max(0, v.ContentHeight-v.Height)
}

// Place attaches or moves an element.
func (v *Viewport) Place(h Handle, r Rect) {
	v.elements[h] = r
}

// Detach removes an element. Later measurements of h report not attached.
func (v *Viewport) Detach(h Handle) {
	delete(v.elements, h)
}

// Element returns the document-space rectangle of an attached element.
func (v *Viewport) Element(h Handle) (Rect, bool) {
	r, ok := v.elements[h]
	return r, ok
}

// Measure reports the offset from the document top and the height of the
// element identified by h.
func (v *Viewport) Measure(h Handle) (Geometry, bool) {
	r, ok := v.elements[h]
	if !ok {
		return Geometry{}, false
	}
	return Geometry{Top: r.Y, Height: math.Max(0, r.Height)}, true
}

// ScrollTo moves to y. Animated scrolls tween from the current offset over
// SnapDuration and are advanced by Update; a new call replaces any
// running tween.
func (v *Viewport) ScrollTo(y float64, animated bool) {
	y = v.clamp(y)
	if !animated || v.SnapDuration <= 0 {
		v.scrollTween = nil
		v.setY(y)
		return
	}
	fn := v.SnapEase
	if fn == nil {
		fn = ease.Linear
	}
	v.scrollTween = &scrollAnim{
		tween:  gween.New(float32(v.y), float32(y), v.SnapDuration, fn),
		target: y,
	}
}

// ScrollBy moves the offset by dy, as a wheel or key press would. User
// scrolling cancels any running animated scroll.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.setY(v.clamp(v.y + dy))
}

// Scrolling reports whether an animated scroll is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Update advances an animated scroll by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	val, done := v.scrollTween.tween.Update(dt)
	if done {
		// Land exactly on the target; float32 tweening drifts on long pages.
		target := v.scrollTween.target
		v.scrollTween = nil
		v.setY(target)
		return
	}
	v.setY(float64(val))
}

// clamp restricts y to the reachable range when bounds are enabled.
func (v *Viewport) clamp(y float64) float64 {
	if !v.BoundsEnabled {
		return y
	}
	return math.Max(0, math.Min(y, v.MaxScroll()))
}

func (v *Viewport) clampAndNotify() {
	v.setY(v.clamp(v.y))
}

func (v *Viewport) setY(y float64) {
	if y == v.y {
		return
	}
	v.y = y
	v.handlers.fireScroll(y)
}

// HeroLayout returns a layout callback placing the hero section handle at
// offset lead with twice the viewport height, followed by trail pixels of
// further content, and bounding the document accordingly.
func HeroLayout(h Handle, lead, trail float64) func(v *Viewport) {
	return func(v *Viewport) {
		height := 2 * v.Height
		v.Place(h, Rect{X: 0, Y: lead, Width: v.Width, Height: height})
		v.SetBounds(lead + height + trail)
	}
}
