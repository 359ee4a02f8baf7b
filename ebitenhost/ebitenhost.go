// Package ebitenhost runs a scrollhero Stage in an Ebitengine window.
//
// The window is the host surface: the mouse wheel and the page keys scroll
// it, resizing the window re-lays out the page, and clicks on the editor's
// content area hand focus to the editor. Drawing follows the Stage's
// [scrollhero.Frame].
//
//	stage := scrollhero.NewStage(scrollhero.StageConfig{Width: 1280, Height: 720})
//	if err := ebitenhost.Run(stage, ebitenhost.RunConfig{Title: "Hero"}); err != nil {
//		log.Fatal(err)
//	}
package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scrollhero"
)

// Defaults applied to zero RunConfig fields.
const (
	defaultWidth      = 1280
	defaultHeight     = 720
	defaultWheelSpeed = 40.0
	defaultFontSize   = 14.0
)

// RunConfig configures the window.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws the FPS and channel overlay.
	ShowFPS bool
	// WheelSpeed is the scroll distance in pixels per wheel notch.
	WheelSpeed float64
	// FontSize is the editor font size in points.
	FontSize float64
	// Style names the chroma style for the editor.
	Style string
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.WheelSpeed == 0 {
		c.WheelSpeed = defaultWheelSpeed
	}
	if c.FontSize == 0 {
		c.FontSize = defaultFontSize
	}
	return c
}

// Game implements ebiten.Game for a Stage.
type Game struct {
	stage   *scrollhero.Stage
	cfg     RunConfig
	input   inputState
	painter *painter
	overlay *overlay
}

// NewGame prepares a Game. Fonts are parsed here so Run fails early on bad
// font data.
func NewGame(stage *scrollhero.Stage, cfg RunConfig) (*Game, error) {
	cfg = cfg.withDefaults()
	p, err := newPainter(cfg.FontSize, cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: %w", err)
	}
	g := &Game{stage: stage, cfg: cfg, painter: p}
	if cfg.ShowFPS {
		g.overlay = newOverlay()
	}
	return g, nil
}

// Update feeds window input into the stage and advances one frame.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.input.apply(g.stage, g.cfg.WheelSpeed)
	g.stage.Update(dt)
	if g.overlay != nil {
		g.overlay.update(float64(dt), g.stage.Controller.Snapshot())
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.draw(screen, g.stage)
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

// Layout reports the window size back unchanged and resizes the stage to it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.stage.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and blocks until it is closed.
func Run(stage *scrollhero.Stage, cfg RunConfig) error {
	g, err := NewGame(stage, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer stage.Close()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: run: %w", err)
	}
	return nil
}
