package scrollhero

// focusEnterRule hands input focus to the editor when the animation
// completes. It fires once per Incomplete -> Complete transition. When the
// transition happens with no editor attached it stays pending until an
// editor appears or the flag drops again.
type focusEnterRule struct {
	pending bool
}

func (r *focusEnterRule) observe(c *Controller, ch change) {
	if !ch.cur.Complete {
		r.pending = false
		return
	}
	if ch.entered() {
		r.pending = true
	}
	if !r.pending || c.editor == nil {
		return
	}
	r.pending = false
	if c.editor.HasFocus() {
		return
	}
	c.editor.Focus()
	c.editor.SetCaret(c.cfg.CaretOffset)
	c.logger.Debug("editor focused", "caret", c.cfg.CaretOffset, "position", ch.cur.Position)
	c.emit(EventFocused, ch.cur)
}

// focusSnapRule scrolls the page to the completion threshold when the user
// focuses the editor's content surface, wherever the page currently is.
type focusSnapRule struct {
	handle CallbackHandle
}

// attach subscribes to e, dropping any earlier subscription.
func (r *focusSnapRule) attach(c *Controller, e Editor) {
	r.detach()
	if e == nil {
		return
	}
	r.handle = e.OnContentFocus(func() { r.snap(c) })
}

func (r *focusSnapRule) detach() {
	r.handle.Remove()
	r.handle = CallbackHandle{}
}

// snap reads the threshold at event time so a resize since subscribing is
// honoured.
func (r *focusSnapRule) snap(c *Controller) {
	if c.closed {
		return
	}
	y := c.Threshold()
	c.host.ScrollTo(y, true)
	c.logger.Debug("snap to threshold", "target", y, "from", c.position)
	snap := c.snap
	snap.Threshold = y
	c.emit(EventSnap, snap)
}
