package scrollhero

import (
	"fmt"
	"strings"
)

// DebugText formats a snapshot for on-screen overlays, one line per field.
func DebugText(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scroll: %.0f / %.0f\n", s.Position, s.Threshold)
	fmt.Fprintf(&b, "section: top %.0f height %.0f span %.0f\n", s.Geometry.Top, s.Geometry.Height, s.Span)
	fmt.Fprintf(&b, "mounted: %t complete: %t\n", s.Mounted, s.Complete)
	for id := ChannelID(0); id < channelCount; id++ {
		fmt.Fprintf(&b, "%s: %.3f\n", id, s.Values.Get(id))
	}
	return b.String()
}

// StatusLine is the single-line form of DebugText for narrow surfaces.
func StatusLine(s Snapshot) string {
	state := "scrolling"
	if s.Complete {
		state = "editing"
	}
	return fmt.Sprintf("%s  y=%.0f/%.0f  progress=%.2f  rotate=%.0f",
		state, s.Position, s.Threshold, s.Values.Progress(), s.Values.RotateDeg())
}
