package scrollhero

import "math"

// Reference design width. Lengths in the hero are expressed in em where one
// em is width/designWidth*10, so the layout scales with the viewport.
const designWidth = 1920

// Layout constants, in em unless noted.
const (
	logoBarWidth  = 9 + 2*2.4  // bar interior plus border
	logoBarHeight = 18 + 2*2.4 // bar interior plus border
	logoBarShift  = 5 / 2.0    // vertical stagger between the bars
	logoOverlap   = 1.1        // horizontal overlap between the bars
	chromeHeight  = 6          // fake toolbar and title strips
	editorTabs    = 4.5        // tab strip above the editor content

	maxCornerRadius = 16 // pixels
)

// Pane is one screen-space region of the hero.
type Pane struct {
	Rect        Rect // container-local rectangle
	Alpha       float64
	Z           int
	Interactive bool
}

// Logo is the two-bar mark, rotated and scaled about Center.
type Logo struct {
	Center   Vec2
	Rotation float64 // radians
	Scale    float64
	Bars     [2]Rect // logo-local rectangles
	matrix   [6]float64
}

// Bar returns the container-local corners of bar i.
func (l Logo) Bar(i int) [4]Vec2 {
	return transformRect(l.matrix, l.Bars[i])
}

// Frame is the presentation of one Snapshot on a surface of the given size.
// Pane rectangles are in container-local coordinates; Screen converts them.
type Frame struct {
	Width, Height float64

	// Visible is false until the section has been measured.
	Visible bool
	// Interactive mirrors the completion flag: the editor column is on top
	// and receives pointer input.
	Interactive bool

	ContainerScale float64
	CornerRadius   float64

	Editor  Pane // code editor column
	Preview Pane // live preview, inside the editor column's stacking context
	Content Pane // logo, subtitle and fake chrome column

	Logo            Logo
	SubtitleAlpha   float64
	SubtitleCenter  Vec2
	ChromeTop       Rect
	ChromeBottom    Rect
	EditorContent   Rect // editable area below the tab strip
	containerMatrix [6]float64
}

// ComputeFrame lays out the hero for a surface of width x height.
func ComputeFrame(s Snapshot, width, height float64) Frame {
	v := s.Values
	em := width / designWidth * 10
	half := width / 2

	f := Frame{
		Width:          width,
		Height:         height,
		Visible:        s.Visible(),
		Interactive:    s.Interactive(),
		ContainerScale: v.ContainerScale(),
		CornerRadius:   v.Progress() * maxCornerRadius,
	}

	// Scale the whole container about its centre.
	f.containerMatrix = Pose{
		X: half, Y: height / 2,
		ScaleX: f.ContainerScale, ScaleY: f.ContainerScale,
		PivotX: half, PivotY: height / 2,
	}.Matrix()

	editorZ, contentZ := 0, 1
	if f.Interactive {
		editorZ, contentZ = 1, 0
	}

	// The editor starts one column width off-screen and slides in.
	f.Editor = Pane{
		Rect:        Rect{X: -half + v.Progress()*half, Width: half, Height: height},
		Alpha:       1,
		Z:           editorZ,
		Interactive: f.Interactive,
	}
	f.EditorContent = Rect{
		X:      f.Editor.Rect.X,
		Y:      editorTabs * em,
		Width:  half,
		Height: math.Max(0, height-editorTabs*em),
	}
	f.Preview = Pane{
		Rect:        Rect{X: half, Width: half, Height: height},
		Alpha:       v.PreviewOpacity(),
		Z:           editorZ,
		Interactive: f.Interactive,
	}
	f.Content = Pane{
		Rect:  Rect{X: half, Width: half, Height: height},
		Alpha: 1,
		Z:     contentZ,
	}
	if !f.Visible {
		f.Editor.Alpha, f.Preview.Alpha, f.Content.Alpha = 0, 0, 0
	}

	// Fake chrome strips scale towards their right-hand corners.
	chromeW := half - 7*em
	top := Rect{X: half + 3.5*em, Y: 1.8 * em, Width: chromeW, Height: chromeHeight * em}
	bottom := Rect{X: top.X, Y: height - 1.8*em - chromeHeight*em, Width: chromeW, Height: chromeHeight * em}
	f.ChromeTop = scaleAbout(top, v.FakeScale(), top.X+top.Width, top.Y)
	f.ChromeBottom = scaleAbout(bottom, v.FakeScale(), bottom.X+bottom.Width, bottom.Y+bottom.Height)

	// Logo bars start pushed apart by half the width and meet as
	// progressInverse reaches zero.
	center := Vec2{X: half + half/2, Y: height / 2}
	shift := v.ProgressInverse() * width / 2
	barW, barH := logoBarWidth*em, logoBarHeight*em
	dx := barW/2 - logoOverlap*em/2
	f.Logo = Logo{
		Center:   center,
		Rotation: v.RotateDeg() * math.Pi / 180,
		Scale:    v.FakeScale(),
		Bars: [2]Rect{
			{X: -dx - barW/2, Y: -logoBarShift*em - shift - barH/2, Width: barW, Height: barH},
			{X: dx - barW/2, Y: logoBarShift*em + shift - barH/2, Width: barW, Height: barH},
		},
	}
	f.Logo.matrix = Pose{
		X: center.X, Y: center.Y,
		ScaleX: f.Logo.Scale, ScaleY: f.Logo.Scale,
		Rotation: f.Logo.Rotation,
	}.Matrix()

	f.SubtitleAlpha = v.Opacity()
	f.SubtitleCenter = center
	return f
}

// scaleAbout scales r by s keeping the point (ox, oy) fixed.
func scaleAbout(r Rect, s, ox, oy float64) Rect {
	return Rect{
		X:      ox + (r.X-ox)*s,
		Y:      oy + (r.Y-oy)*s,
		Width:  r.Width * s,
		Height: r.Height * s,
	}
}

// Screen maps a container-local point to screen coordinates.
func (f Frame) Screen(x, y float64) (float64, float64) {
	return transformPoint(f.containerMatrix, x, y)
}

// ScreenRect maps a container-local rectangle to its screen bounds.
func (f Frame) ScreenRect(r Rect) Rect {
	return boundsOf(transformRect(f.containerMatrix, r))
}

// ScreenQuad maps container-local corners to screen coordinates.
func (f Frame) ScreenQuad(q [4]Vec2) [4]Vec2 {
	for i := range q {
		q[i].X, q[i].Y = transformPoint(f.containerMatrix, q[i].X, q[i].Y)
	}
	return q
}

// Local maps a screen point into container-local coordinates.
func (f Frame) Local(sx, sy float64) (float64, float64) {
	return transformPoint(invertAffine(f.containerMatrix), sx, sy)
}

// HitEditorContent reports whether a screen point lands on the visible part
// of the editable area. The editor column never overlaps the content
// column, so this holds before completion too; a click there is what snaps
// the page to the threshold.
func (f Frame) HitEditorContent(sx, sy float64) bool {
	if !f.Visible {
		return false
	}
	lx, ly := f.Local(sx, sy)
	if lx < 0 || lx > f.Width || ly < 0 || ly > f.Height {
		return false
	}
	return f.EditorContent.Contains(lx, ly)
}
