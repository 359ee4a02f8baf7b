package scrollhero

// ScrollSource is a stream of the host surface's vertical scroll offset.
// Handlers fire synchronously whenever the offset changes.
type ScrollSource interface {
	ScrollY() float64
	OnScroll(fn func(y float64)) CallbackHandle
}

// Host is the surface a Controller runs on. It owns scrolling, layout and
// resize notification; the controller only reads from it and asks it to
// scroll.
type Host interface {
	ScrollSource

	// OnResize registers fn to run after the surface has been resized and
	// laid out again.
	OnResize(fn func()) CallbackHandle

	// ScrollTo moves the scroll offset to y, animated or at once. A later
	// call replaces the target of an earlier one.
	ScrollTo(y float64, animated bool)

	// Measure reports the geometry of the element identified by h. ok is
	// false while the element is not attached.
	Measure(h Handle) (g Geometry, ok bool)
}

// Editor is the embedded code editor the hero hands control to once the
// animation completes. Implementations must tolerate calls before they are
// ready.
type Editor interface {
	HasFocus() bool
	Focus()
	SetCaret(offset int)
	ResetAllFiles()

	// OnContentFocus registers fn to run when the editable content surface
	// gains focus from user interaction.
	OnContentFocus(fn func()) CallbackHandle
}
