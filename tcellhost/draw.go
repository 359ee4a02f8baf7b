package tcellhost

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/scrollhero"
)

var (
	pageColor    = scrollhero.Color{R: 0.05, G: 0.05, B: 0.05, A: 1}
	surfaceColor = scrollhero.Color{R: 0.08, G: 0.08, B: 0.08, A: 1}
	inkColor     = scrollhero.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	dimColor     = scrollhero.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	accentColor  = scrollhero.Color{R: 0.9, G: 1, B: 0.47, A: 1}
	previewColor = scrollhero.Color{R: 0.97, G: 0.97, B: 0.97, A: 1}
	previewInk   = scrollhero.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
)

var subtitle = []string{
	"Run any JavaScript and Node.js app",
	"in any browser,",
	"powered by CodeSandbox.",
}

// canvas paints a Frame into terminal cells. Cell (cx, cy) covers stage
// pixels [cx*CellWidth, (cx+1)*CellWidth) horizontally and likewise
// vertically; a shape covers a cell when it contains the cell's centre.
type canvas struct {
	screen      tcell.Screen
	highlighter *scrollhero.Highlighter

	cols, rows int // drawable area, status row excluded

	cachedName    string
	cachedContent string
	cachedLines   []scrollhero.Line
}

func newCanvas(screen tcell.Screen, style string) *canvas {
	return &canvas{screen: screen, highlighter: scrollhero.NewHighlighter(style)}
}

func (c *canvas) draw(stage *scrollhero.Stage) {
	cols, rows := c.screen.Size()
	c.cols, c.rows = cols, max(rows-1, 0)

	c.screen.HideCursor()
	c.fillCells(0, 0, cols, rows, pageColor)

	f := stage.Frame()
	if f.Visible {
		c.fillRect(f.ScreenRect(scrollhero.Rect{Width: f.Width, Height: f.Height}), surfaceColor)
		if f.Interactive {
			c.drawContent(f)
			c.drawEditor(f, stage.Editor)
			c.drawPreview(f)
		} else {
			c.drawEditor(f, stage.Editor)
			c.drawPreview(f)
			c.drawContent(f)
		}
	}
	c.drawStatus(stage.Controller.Snapshot(), rows-1)
}

func (c *canvas) drawContent(f scrollhero.Frame) {
	c.fillRect(f.ScreenRect(f.ChromeTop), dimColor)
	c.fillRect(f.ScreenRect(f.ChromeBottom), dimColor)
	for i := range f.Logo.Bars {
		c.fillQuad(f.ScreenQuad(f.Logo.Bar(i)), inkColor)
	}

	if f.SubtitleAlpha <= 0 {
		return
	}
	sx, sy := f.Screen(f.SubtitleCenter.X, f.SubtitleCenter.Y)
	row := int(sy/CellHeight) - len(subtitle)/2
	for i, line := range subtitle {
		col := int(sx/CellWidth) - runewidth.StringWidth(line)/2
		c.putString(col, row+i, c.cols, line, blend(surfaceColor, inkColor, f.SubtitleAlpha), nil, false)
	}
}

func (c *canvas) drawEditor(f scrollhero.Frame, sb *scrollhero.Sandbox) {
	bg := c.highlighter.Background()
	pane := f.ScreenRect(f.Editor.Rect)
	c.fillRect(pane, bg)

	clipX := min(c.cols, int(math.Ceil((pane.X+pane.Width)/CellWidth)))
	tabRow := int(pane.Y/CellHeight) + 1
	col := int(pane.X/CellWidth) + 2
	for _, name := range sb.Files() {
		fg := blend(bg, inkColor, 0.5)
		if sb.Active() != nil && sb.Active().Name == name {
			fg = accentColor
		}
		col = c.putString(col, tabRow, clipX, name, fg, &bg, false) + 3
	}

	file := sb.Active()
	if file == nil {
		return
	}
	content := f.ScreenRect(f.EditorContent)
	left := int(content.X/CellWidth) + 2
	top := int(math.Ceil(content.Y / CellHeight))
	bottom := min(c.rows, int((content.Y+content.Height)/CellHeight))

	for i, line := range c.lines(file) {
		row := top + i
		if row >= bottom {
			break
		}
		x := left
		for _, seg := range line {
			x = c.putString(x, row, clipX, seg.Text, seg.Color, &bg, seg.Bold)
		}
	}

	if sb.HasFocus() && f.Interactive {
		before := file.Content[:sb.Caret()]
		row := top + strings.Count(before, "\n")
		x := left + runewidth.StringWidth(strings.ReplaceAll(before[strings.LastIndexByte(before, '\n')+1:], "\t", "  "))
		if row < bottom && x >= 0 && x < clipX {
			c.screen.ShowCursor(x, row)
		}
	}
}

func (c *canvas) drawPreview(f scrollhero.Frame) {
	a := f.Preview.Alpha
	if a <= 0 {
		return
	}
	bg := blend(surfaceColor, previewColor, a)
	r := f.ScreenRect(f.Preview.Rect)
	c.fillRect(r, bg)
	msg := "Hello world"
	col := int((r.X+r.Width/2)/CellWidth) - runewidth.StringWidth(msg)/2
	row := int((r.Y + r.Height/2) / CellHeight)
	c.putString(col, row, c.cols, msg, blend(bg, previewInk, a), &bg, true)
}

func (c *canvas) drawStatus(s scrollhero.Snapshot, row int) {
	if row < 0 {
		return
	}
	line := " " + scrollhero.StatusLine(s)
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		if x >= c.cols {
			return
		}
		c.screen.SetContent(x, row, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	for ; x < c.cols; x++ {
		c.screen.SetContent(x, row, ' ', nil, style)
	}
}

// lines returns the highlighted active file, re-tokenizing only on change.
func (c *canvas) lines(file *scrollhero.File) []scrollhero.Line {
	if file.Name != c.cachedName || file.Content != c.cachedContent || c.cachedLines == nil {
		c.cachedName = file.Name
		c.cachedContent = file.Content
		c.cachedLines = c.highlighter.Highlight(file.Name, file.Content)
	}
	return c.cachedLines
}

// putString writes s from (x, y) up to column clip and returns the column
// after the last cell written. A nil bg keeps each cell's background.
func (c *canvas) putString(x, y, clip int, s string, fg scrollhero.Color, bg *scrollhero.Color, bold bool) int {
	if y < 0 || y >= c.rows {
		return x + runewidth.StringWidth(s)
	}
	for _, r := range s {
		if r == '\t' {
			x = c.putString(x, y, clip, "  ", fg, bg, bold)
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= clip {
			style := tcell.StyleDefault.Foreground(toTcell(fg)).Bold(bold)
			if bg != nil {
				style = style.Background(toTcell(*bg))
			} else {
				_, _, cur, _ := c.screen.GetContent(x, y)
				_, curBg, _ := cur.Decompose()
				style = style.Background(curBg)
			}
			c.screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
	return x
}

// fillRect paints every cell whose centre lies in r.
func (c *canvas) fillRect(r scrollhero.Rect, col scrollhero.Color) {
	x0 := int(math.Ceil(r.X/CellWidth - 0.5))
	y0 := int(math.Ceil(r.Y/CellHeight - 0.5))
	x1 := int(math.Ceil((r.X+r.Width)/CellWidth - 0.5))
	y1 := int(math.Ceil((r.Y+r.Height)/CellHeight - 0.5))
	c.fillCells(x0, y0, x1, min(y1, c.rows), col)
}

func (c *canvas) fillCells(x0, y0, x1, y1 int, col scrollhero.Color) {
	style := tcell.StyleDefault.Background(toTcell(col))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1 = min(x1, c.cols)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// fillQuad paints every cell whose centre lies inside the convex quad q.
func (c *canvas) fillQuad(q [4]scrollhero.Vec2, col scrollhero.Color) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range q {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	style := tcell.StyleDefault.Background(toTcell(col))
	x0, x1 := max(int(minX/CellWidth), 0), min(int(maxX/CellWidth)+1, c.cols)
	y0, y1 := max(int(minY/CellHeight), 0), min(int(maxY/CellHeight)+1, c.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := (float64(x)+0.5)*CellWidth, (float64(y)+0.5)*CellHeight
			if insideQuad(q, px, py) {
				c.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// insideQuad reports whether (x, y) is inside the convex quad q, in either
// winding order.
func insideQuad(q [4]scrollhero.Vec2, x, y float64) bool {
	var pos, neg bool
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// blend mixes over onto base by t in [0, 1].
func blend(base, over scrollhero.Color, t float64) scrollhero.Color {
	t = math.Max(0, math.Min(1, t*over.A))
	return scrollhero.Color{
		R: base.R + (over.R-base.R)*t,
		G: base.G + (over.G-base.G)*t,
		B: base.B + (over.B-base.B)*t,
		A: 1,
	}
}

func toTcell(c scrollhero.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(math.Round(c.R*255)),
		int32(math.Round(c.G*255)),
		int32(math.Round(c.B*255)),
	)
}
