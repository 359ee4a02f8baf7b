package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/scrollhero"
)

var (
	pageColor    = scrollhero.Color{R: 0.05, G: 0.05, B: 0.05, A: 1}
	surfaceColor = scrollhero.Color{R: 0.08, G: 0.08, B: 0.08, A: 1}
	inkColor     = scrollhero.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	dimColor     = scrollhero.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	accentColor  = scrollhero.Color{R: 0.9, G: 1, B: 0.47, A: 1}
	previewColor = scrollhero.Color{R: 0.97, G: 0.97, B: 0.97, A: 1}
)

const subtitle = "Run any JavaScript and Node.js app\nin any browser,\npowered by CodeSandbox."

// --- White pixel singleton (single-threaded, no sync.Once) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source for untextured quads.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// painter draws a Stage frame. It caches highlighted lines until the active
// file's content changes.
type painter struct {
	mono, sans  *text.GoTextFaceSource
	fontSize    float64
	highlighter *scrollhero.Highlighter

	cachedName    string
	cachedContent string
	cachedLines   []scrollhero.Line

	vertices [4]ebiten.Vertex
	indices  [6]uint16
}

func newPainter(fontSize float64, style string) (*painter, error) {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse sans font: %w", err)
	}
	return &painter{
		mono:        mono,
		sans:        sans,
		fontSize:    fontSize,
		highlighter: scrollhero.NewHighlighter(style),
		indices:     [6]uint16{0, 1, 2, 0, 2, 3},
	}, nil
}

// pane pairs a draw function with its stacking order.
type pane struct {
	z    int
	draw func()
}

func (p *painter) draw(screen *ebiten.Image, stage *scrollhero.Stage) {
	p.fill(screen, pageColor)
	f := stage.Frame()
	if !f.Visible {
		return
	}

	p.fillQuad(screen, f.ScreenQuad(corners(scrollhero.Rect{Width: f.Width, Height: f.Height})), surfaceColor)

	panes := []pane{
		{z: f.Content.Z, draw: func() { p.drawContent(screen, f) }},
		{z: f.Editor.Z, draw: func() {
			p.drawEditor(screen, f, stage.Editor)
			p.drawPreview(screen, f)
		}},
	}
	sort.SliceStable(panes, func(i, j int) bool { return panes[i].z < panes[j].z })
	for _, pn := range panes {
		pn.draw()
	}
}

func (p *painter) drawEditor(screen *ebiten.Image, f scrollhero.Frame, sb *scrollhero.Sandbox) {
	bg := p.highlighter.Background()
	p.fillQuad(screen, f.ScreenQuad(corners(f.Editor.Rect)), bg)

	scale := f.ContainerScale
	face := &text.GoTextFace{Source: p.mono, Size: p.fontSize * scale}
	lineH := face.Size * 1.5
	advance := text.Advance("M", face)

	// Tab strip.
	tx, ty := f.Screen(f.Editor.Rect.X+16, 16)
	for _, name := range sb.Files() {
		c := inkColor.WithAlpha(0.5)
		if sb.Active() != nil && sb.Active().Name == name {
			c = accentColor
		}
		p.drawText(screen, name, face, tx, ty, c)
		tx += text.Advance(name, face) + 24*scale
	}

	file := sb.Active()
	if file == nil {
		return
	}
	lines := p.lines(file)
	ox, oy := f.Screen(f.EditorContent.X+16, f.EditorContent.Y)
	clip := f.ScreenRect(f.EditorContent)
	for i, line := range lines {
		y := oy + float64(i)*lineH
		if y > clip.Y+clip.Height {
			break
		}
		x := ox
		for _, seg := range line {
			p.drawText(screen, seg.Text, face, x, y, seg.Color)
			x += text.Advance(seg.Text, face)
		}
	}

	if sb.HasFocus() {
		before := file.Content[:sb.Caret()]
		row := strings.Count(before, "\n")
		col := len([]rune(before[strings.LastIndexByte(before, '\n')+1:]))
		cx := ox + float64(col)*advance
		cy := oy + float64(row)*lineH
		p.fillQuad(screen, corners(scrollhero.Rect{X: cx, Y: cy, Width: 2 * scale, Height: face.Size * 1.2}), accentColor)
	}
}

func (p *painter) drawPreview(screen *ebiten.Image, f scrollhero.Frame) {
	if f.Preview.Alpha <= 0 {
		return
	}
	p.fillQuad(screen, f.ScreenQuad(corners(f.Preview.Rect)), previewColor.WithAlpha(f.Preview.Alpha))
	face := &text.GoTextFace{Source: p.sans, Size: 32 * f.ContainerScale}
	cx, cy := f.Screen(f.Preview.Rect.X+f.Preview.Rect.Width/2, f.Preview.Rect.Height/2)
	p.drawCentered(screen, "Hello world", face, cx, cy, scrollhero.Color{A: f.Preview.Alpha})
}

func (p *painter) drawContent(screen *ebiten.Image, f scrollhero.Frame) {
	p.fillQuad(screen, f.ScreenQuad(corners(f.ChromeTop)), dimColor)
	p.fillQuad(screen, f.ScreenQuad(corners(f.ChromeBottom)), dimColor)

	for i := range f.Logo.Bars {
		p.fillQuad(screen, f.ScreenQuad(f.Logo.Bar(i)), inkColor)
	}

	if f.SubtitleAlpha > 0 {
		size := f.Width / 1920 * 10 * 1.2 * f.Logo.Scale * f.ContainerScale
		face := &text.GoTextFace{Source: p.sans, Size: max(size, 6)}
		cx, cy := f.Screen(f.SubtitleCenter.X, f.SubtitleCenter.Y)
		p.drawCentered(screen, subtitle, face, cx, cy, inkColor.WithAlpha(f.SubtitleAlpha))
	}
}

// lines returns the highlighted active file, re-tokenizing only on change.
func (p *painter) lines(file *scrollhero.File) []scrollhero.Line {
	if file.Name != p.cachedName || file.Content != p.cachedContent || p.cachedLines == nil {
		p.cachedName = file.Name
		p.cachedContent = file.Content
		p.cachedLines = p.highlighter.Highlight(file.Name, file.Content)
	}
	return p.cachedLines
}

func (p *painter) drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c scrollhero.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(dst, s, face, op)
}

func (p *painter) drawCentered(dst *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, c scrollhero.Color) {
	lineH := face.Size * 1.4
	_, h := text.Measure(s, face, lineH)
	op := &text.DrawOptions{}
	op.LineSpacing = lineH
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy-h/2)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(dst, s, face, op)
}

func (p *painter) fill(dst *ebiten.Image, c scrollhero.Color) {
	dst.Fill(toRGBA(c))
}

// fillQuad draws a solid quad with corners in clockwise order.
func (p *painter) fillQuad(dst *ebiten.Image, q [4]scrollhero.Vec2, c scrollhero.Color) {
	if c.A <= 0 {
		return
	}
	// Premultiplied vertex colours.
	r, g, b, a := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	for i, pt := range q {
		p.vertices[i] = ebiten.Vertex{
			DstX: float32(pt.X), DstY: float32(pt.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	dst.DrawTriangles(p.vertices[:], p.indices[:], ensureWhitePixel(), nil)
}

func corners(r scrollhero.Rect) [4]scrollhero.Vec2 {
	return [4]scrollhero.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

func toRGBA(c scrollhero.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
