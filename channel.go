package scrollhero

import (
	"github.com/tanema/gween/ease"
)

// ChannelID names one of the seven interpolated outputs.
type ChannelID uint8

const (
	ChannelProgress        ChannelID = iota // slides the editor in, rounds the container
	ChannelOpacity                          // subtitle opacity
	ChannelProgressInverse                  // pushes the logo bars together
	ChannelRotateDeg                        // logo rotation in degrees
	ChannelFakeScale                        // scale of the fake preview chrome
	ChannelContainerScale                   // scale of the whole container
	ChannelPreviewOpacity                   // live preview opacity

	channelCount
)

var channelNames = [channelCount]string{
	ChannelProgress:        "progress",
	ChannelOpacity:         "opacity",
	ChannelProgressInverse: "progressInverse",
	ChannelRotateDeg:       "rotateDeg",
	ChannelFakeScale:       "fakeScale",
	ChannelContainerScale:  "containerScale",
	ChannelPreviewOpacity:  "previewOpacity",
}

func (id ChannelID) String() string {
	if id < channelCount {
		return channelNames[id]
	}
	return "unknown"
}

// Breakpoint is a scroll offset expressed relative to the section top:
// top + span*Fraction + Offset.
type Breakpoint struct {
	Fraction float64
	Offset   float64
}

// At resolves the breakpoint for the given geometry.
func (b Breakpoint) At(top, span float64) float64 {
	return top + span*b.Fraction + b.Offset
}

// Channel maps a scroll position onto an output range between two
// breakpoints. Outside the breakpoints the value is clamped to From or To.
// Ease shapes the curve between the breakpoints; nil means linear.
type Channel struct {
	ID       ChannelID
	Low      Breakpoint
	High     Breakpoint
	From, To float64
	Ease     ease.TweenFunc
}

// Fallback is the value reported while geometry is unknown: the collapsed
// end of the channel's range.
func (c Channel) Fallback() float64 {
	return c.From
}

// Value evaluates the channel at position for a section at top with the
// given span.
func (c Channel) Value(position, top, span float64) float64 {
	return interpolate(position, c.Low.At(top, span), c.High.At(top, span), c.From, c.To, c.Ease)
}

// interpolate maps position from [lo, hi] onto [from, to], clamped outside
// the breakpoints. When lo >= hi the mapping degenerates to a step at lo so
// a collapsed span never divides by zero.
func interpolate(position, lo, hi, from, to float64, fn ease.TweenFunc) float64 {
	if position < lo || (position == lo && hi > lo) {
		return from
	}
	if position >= hi {
		return to
	}
	t := (position - lo) / (hi - lo)
	if fn != nil {
		// gween curves take (elapsed, begin, change, duration).
		t = float64(fn(float32(t), 0, 1, 1))
	}
	v := from + (to-from)*t
	lower, upper := from, to
	if lower > upper {
		lower, upper = upper, lower
	}
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

// DefaultChannels returns the seven channels of the hero animation.
func DefaultChannels() [channelCount]Channel {
	start := Breakpoint{}
	end := Breakpoint{Fraction: 1}
	return [channelCount]Channel{
		ChannelProgress: {ID: ChannelProgress, Low: start, High: end, From: 0, To: 1},
		ChannelOpacity: {ID: ChannelOpacity,
			Low: Breakpoint{Fraction: 0.6}, High: Breakpoint{Fraction: 0.8}, From: 1, To: 0},
		ChannelProgressInverse: {ID: ChannelProgressInverse, Low: start, High: end, From: 1, To: 0},
		ChannelRotateDeg: {ID: ChannelRotateDeg,
			Low: Breakpoint{Fraction: 0.9}, High: Breakpoint{Fraction: 1.1}, From: -90, To: 0},
		ChannelFakeScale:      {ID: ChannelFakeScale, Low: start, High: end, From: 2.08, To: 1},
		ChannelContainerScale: {ID: ChannelContainerScale, Low: start, High: end, From: 1, To: 0.94},
		ChannelPreviewOpacity: {ID: ChannelPreviewOpacity,
			Low:  Breakpoint{Fraction: 1.2, Offset: 1},
			High: Breakpoint{Fraction: 1.2, Offset: 2},
			From: 0, To: 1},
	}
}

// Values holds one evaluation of every channel, all computed from the same
// position and geometry.
type Values [channelCount]float64

// Get returns the value of a single channel.
func (v Values) Get(id ChannelID) float64 {
	if id >= channelCount {
		return 0
	}
	return v[id]
}

// Named accessors for the presentation layer.

func (v Values) Progress() float64        { return v[ChannelProgress] }
func (v Values) Opacity() float64         { return v[ChannelOpacity] }
func (v Values) ProgressInverse() float64 { return v[ChannelProgressInverse] }
func (v Values) RotateDeg() float64       { return v[ChannelRotateDeg] }
func (v Values) FakeScale() float64       { return v[ChannelFakeScale] }
func (v Values) ContainerScale() float64  { return v[ChannelContainerScale] }
func (v Values) PreviewOpacity() float64  { return v[ChannelPreviewOpacity] }

// Evaluate computes every channel at position. No channel reads another's
// output.
func Evaluate(channels *[channelCount]Channel, position, top, span float64) Values {
	var v Values
	for i := range channels {
		v[i] = channels[i].Value(position, top, span)
	}
	return v
}

// FallbackValues returns the collapsed value of every channel.
func FallbackValues(channels *[channelCount]Channel) Values {
	var v Values
	for i := range channels {
		v[i] = channels[i].Fallback()
	}
	return v
}
