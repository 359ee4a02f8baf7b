package scrollhero

// resetRule discards editor edits on every evaluation that finds the
// animation incomplete. Editors treat a reset of pristine content as a
// no-op, so firing on each evaluation rather than only on the edge is safe.
type resetRule struct{}

func (resetRule) observe(c *Controller, ch change) {
	if ch.cur.Complete || c.editor == nil {
		return
	}
	c.editor.ResetAllFiles()
	if ch.left() {
		c.logger.Debug("editor reset", "position", ch.cur.Position)
		c.emit(EventReset, ch.cur)
	}
}
