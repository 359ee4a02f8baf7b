package scrollhero

// CompletionThreshold is the scroll offset at which the animation counts as
// complete: top + span*fraction + offset.
func CompletionThreshold(top, span, fraction, offset float64) float64 {
	return top + span*fraction + offset
}

// Snapshot is one evaluation of the controller. Every field is derived from
// the same position and geometry.
type Snapshot struct {
	Position  float64
	Geometry  Geometry
	Span      float64
	Threshold float64

	// Mounted latches true after the first successful measurement.
	Mounted bool
	// Complete is true iff Position >= Threshold. It is recomputed on every
	// evaluation with no hysteresis, so it flips back and forth as the
	// position crosses the threshold.
	Complete bool

	Values Values
}

// Visible reports whether the section should be shown at all. It stays
// false until geometry is known.
func (s Snapshot) Visible() bool {
	return s.Mounted
}

// Interactive reports whether the editor pane is in the foreground and
// receives pointer input.
func (s Snapshot) Interactive() bool {
	return s.Complete
}

// change is what each observer is handed: the previous and the current
// evaluation. first is set for the very first evaluation, when prev is the
// zero Snapshot.
type change struct {
	prev, cur Snapshot
	first     bool
}

// entered reports an Incomplete -> Complete transition.
func (c change) entered() bool {
	return c.cur.Complete && (c.first || !c.prev.Complete)
}

// left reports a Complete -> Incomplete transition, or a first evaluation
// that starts Incomplete.
func (c change) left() bool {
	return !c.cur.Complete && (c.first || c.prev.Complete)
}

// observer is one independent effect driven by controller evaluations.
type observer interface {
	observe(c *Controller, ch change)
}
