package scrollhero

import (
	"io"
	"log/slog"
	"os"
)

// Controller turns a host's scroll offset into the hero's animation
// channels and completion flag, and keeps the embedded editor in step with
// that flag.
//
// All work happens synchronously inside host and editor callbacks, so every
// Snapshot is computed from a single position and geometry. A Controller is
// not safe for concurrent use; drive it from the goroutine that owns the
// host.
type Controller struct {
	host     Host
	cfg      Config
	channels [channelCount]Channel

	tracker  *geometryTracker
	position float64

	editor Editor

	snap      Snapshot
	evaluated bool

	observers []observer
	snapRule  focusSnapRule
	scroll    CallbackHandle
	handlers  handlerRegistry

	sink   EventSink
	logger *slog.Logger
	closed bool
}

// NewController subscribes to host and evaluates the initial state. The
// section is not measured until Mount is called.
func NewController(host Host, cfg Config) *Controller {
	c := &Controller{
		host:     host,
		cfg:      cfg.withDefaults(),
		channels: DefaultChannels(),
		position: host.ScrollY(),
		logger:   slog.Default(),
	}
	c.observers = []observer{
		&focusEnterRule{},
		resetRule{},
	}
	if c.cfg.Debug {
		c.SetDebugMode(true)
	}

	c.tracker = newGeometryTracker(host, c.onMeasure)
	c.scroll = host.OnScroll(c.onScroll)
	c.evaluate()
	return c
}

// Mount measures the configured section. Until a measurement succeeds the
// controller reports fallback channel values and an invisible section. If
// the section is not yet attached, the next host resize retries.
func (c *Controller) Mount() bool {
	if c.closed {
		return false
	}
	return c.tracker.mount(c.cfg.Section)
}

// SetEditor attaches the embedded editor, or detaches it when e is nil, and
// re-evaluates so effects that waited for an editor catch up.
func (c *Controller) SetEditor(e Editor) {
	if c.closed {
		return
	}
	c.editor = e
	c.snapRule.attach(c, e)
	c.evaluate()
}

// SetEventSink forwards every fired effect to sink. Pass nil to stop.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// SetLogger replaces the logger effects are reported to.
func (c *Controller) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.logger = logger
}

// SetDebugMode logs every effect to stderr at debug level when enabled and
// goes back to the default logger otherwise.
func (c *Controller) SetDebugMode(enabled bool) {
	c.cfg.Debug = enabled
	if !enabled {
		c.logger = slog.Default()
		return
	}
	c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With("component", "scrollhero")
}

// OnUpdate registers a callback fired after every evaluation with the new
// snapshot. Presentation layers bind to this.
func (c *Controller) OnUpdate(fn func(Snapshot)) CallbackHandle {
	return c.handlers.onUpdate(fn)
}

// Snapshot returns the latest evaluation.
func (c *Controller) Snapshot() Snapshot {
	return c.snap
}

// Values returns the latest channel values.
func (c *Controller) Values() Values {
	return c.snap.Values
}

// Mounted reports whether the section has been measured at least once.
func (c *Controller) Mounted() bool {
	return c.tracker.mounted
}

// Complete reports the latest completion flag.
func (c *Controller) Complete() bool {
	return c.snap.Complete
}

// Geometry returns the latest measurement.
func (c *Controller) Geometry() Geometry {
	return c.tracker.geometry
}

// Threshold returns the completion offset for the current geometry.
func (c *Controller) Threshold() float64 {
	g := c.tracker.geometry
	return CompletionThreshold(g.Top, g.Span(c.cfg.SpanDivisor), c.cfg.CompleteFraction, c.cfg.CompleteOffset)
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Close removes every subscription the controller holds on the host and the
// editor. The last snapshot stays readable.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.scroll.Remove()
	c.tracker.close()
	c.snapRule.detach()
	c.handlers.clear()
	c.editor = nil
}

func (c *Controller) onScroll(y float64) {
	if c.closed {
		return
	}
	c.position = y
	c.evaluate()
}

func (c *Controller) onMeasure(first bool) {
	if c.closed {
		return
	}
	// The host may have moved the offset as part of the same resize.
	c.position = c.host.ScrollY()
	g := c.tracker.geometry
	if first {
		c.logger.Debug("section mounted", "top", g.Top, "height", g.Height)
	} else {
		c.logger.Debug("section measured", "top", g.Top, "height", g.Height)
	}
	c.evaluate()
	if first {
		c.emit(EventMounted, c.snap)
	} else {
		c.emit(EventMeasured, c.snap)
	}
}

// evaluate derives a new snapshot and hands it to every observer.
func (c *Controller) evaluate() {
	g := c.tracker.geometry
	span := g.Span(c.cfg.SpanDivisor)
	cur := Snapshot{
		Position:  c.position,
		Geometry:  g,
		Span:      span,
		Threshold: CompletionThreshold(g.Top, span, c.cfg.CompleteFraction, c.cfg.CompleteOffset),
		Mounted:   c.tracker.mounted,
	}
	cur.Complete = cur.Position >= cur.Threshold
	if cur.Mounted {
		cur.Values = Evaluate(&c.channels, cur.Position, g.Top, span)
	} else {
		cur.Values = FallbackValues(&c.channels)
	}

	ch := change{prev: c.snap, cur: cur, first: !c.evaluated}
	c.snap = cur
	c.evaluated = true

	switch {
	case ch.entered():
		c.logger.Debug("animation complete", "position", cur.Position, "threshold", cur.Threshold)
		c.emit(EventComplete, cur)
	case !ch.first && ch.left():
		c.logger.Debug("animation incomplete", "position", cur.Position, "threshold", cur.Threshold)
		c.emit(EventIncomplete, cur)
	}

	for _, o := range c.observers {
		o.observe(c, ch)
	}
	c.handlers.fireUpdate(cur)
}

func (c *Controller) emit(t EventType, snap Snapshot) {
	if c.sink == nil {
		return
	}
	c.sink.EmitEvent(Event{
		Type:      t,
		Position:  snap.Position,
		Threshold: snap.Threshold,
		Geometry:  snap.Geometry,
	})
}
