package scrollhero

// geometryTracker measures the section on mount and on every host resize.
// It holds exactly one resize registration for its lifetime.
type geometryTracker struct {
	host      Host
	handle    Handle
	hasHandle bool

	geometry Geometry
	mounted  bool

	resize   CallbackHandle
	onChange func(first bool)
}

func newGeometryTracker(host Host, onChange func(first bool)) *geometryTracker {
	t := &geometryTracker{host: host, onChange: onChange}
	t.resize = host.OnResize(func() { t.measure() })
	return t
}

// mount records the handle to measure and measures it right away.
func (t *geometryTracker) mount(h Handle) bool {
	t.handle = h
	t.hasHandle = true
	return t.measure()
}

// measure re-reads the section geometry. It does nothing while the section
// is not attached; the next resize or mount retries. Equal measurements are
// still published.
func (t *geometryTracker) measure() bool {
	if !t.hasHandle {
		return false
	}
	g, ok := t.host.Measure(t.handle)
	if !ok {
		return false
	}
	if g.Height < 0 {
		g.Height = 0
	}
	first := !t.mounted
	t.geometry = g
	t.mounted = true
	if t.onChange != nil {
		t.onChange(first)
	}
	return true
}

func (t *geometryTracker) close() {
	t.resize.Remove()
	t.resize = CallbackHandle{}
}
