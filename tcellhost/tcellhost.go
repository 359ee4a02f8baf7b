// Package tcellhost runs a scrollhero Stage in a terminal.
//
// Each terminal cell stands for a CellWidth x CellHeight block of stage
// pixels, so the hero keeps its proportions at any terminal size. The mouse
// wheel and the page keys scroll the page, clicks on the editor area hand it
// focus, and once the animation completes the keyboard edits the sandbox.
// The bottom row is a status line.
package tcellhost

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/scrollhero"
)

// Cell size in stage pixels.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Defaults applied to zero RunConfig fields.
const (
	defaultTPS       = 60
	defaultWheelRows = 3
)

// RunConfig configures the terminal host.
type RunConfig struct {
	// TPS is the number of stage updates per second.
	TPS int
	// WheelRows is the scroll distance in terminal rows per wheel notch.
	WheelRows int
	// Style names the chroma style for the editor.
	Style string
}

func (c RunConfig) withDefaults() RunConfig {
	if c.TPS <= 0 {
		c.TPS = defaultTPS
	}
	if c.WheelRows <= 0 {
		c.WheelRows = defaultWheelRows
	}
	return c
}

// Terminal drives a Stage from a tcell.Screen.
type Terminal struct {
	screen tcell.Screen
	stage  *scrollhero.Stage
	cfg    RunConfig
	canvas *canvas

	buttons tcell.ButtonMask
}

// New wraps an initialised screen and sizes the stage to it.
func New(screen tcell.Screen, stage *scrollhero.Stage, cfg RunConfig) *Terminal {
	cfg = cfg.withDefaults()
	t := &Terminal{
		screen: screen,
		stage:  stage,
		cfg:    cfg,
		canvas: newCanvas(screen, cfg.Style),
	}
	t.resize()
	return t
}

// resize fits the stage to the screen minus the status row.
func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	rows = max(rows-1, 1)
	t.stage.Resize(float64(cols)*CellWidth, float64(rows)*CellHeight)
}

// Draw renders the current frame and shows it.
func (t *Terminal) Draw() {
	t.canvas.draw(t.stage)
	t.screen.Show()
}

// Loop polls events and advances the stage until the user quits. The
// caller owns the screen and finalises it afterwards.
func (t *Terminal) Loop() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.TPS))
	defer ticker.Stop()

	last := time.Now()
	t.Draw()
	for {
		select {
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			t.stage.Update(float32(dt))
			t.Draw()
		}
	}
}

// Run opens the terminal, runs the loop and restores the terminal on exit.
func Run(stage *scrollhero.Stage, cfg RunConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellhost: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellhost: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnablePaste()
	defer stage.Close()

	return New(screen, stage, cfg).Loop()
}
