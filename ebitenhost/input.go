package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/scrollhero"
)

// inputState keeps the buffers reused across frames.
type inputState struct {
	chars []rune
}

// editing reports whether keys go to the editor rather than the page.
func editing(stage *scrollhero.Stage) bool {
	return stage.Controller.Complete() && stage.Editor.HasFocus()
}

// apply reads this frame's mouse and keyboard input and forwards it to the
// stage.
func (in *inputState) apply(stage *scrollhero.Stage, wheelSpeed float64) {
	if _, wy := ebiten.Wheel(); wy != 0 {
		// Wheel up is positive in ebiten; scrolling the page down is positive
		// for the stage.
		stage.Wheel(-wy * wheelSpeed)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		stage.Click(float64(mx), float64(my))
	}

	if editing(stage) {
		in.applyEditing(stage)
		return
	}
	in.applyPaging(stage)
}

func (in *inputState) applyEditing(stage *scrollhero.Stage) {
	in.chars = ebiten.AppendInputChars(in.chars[:0])
	if len(in.chars) > 0 {
		stage.Type(string(in.chars))
	}
	switch {
	case repeating(ebiten.KeyBackspace):
		stage.Backspace()
	case repeating(ebiten.KeyEnter):
		stage.Type("\n")
	case repeating(ebiten.KeyTab):
		stage.Type("  ")
	case repeating(ebiten.KeyArrowLeft):
		stage.Editor.MoveCaret(-1)
	case repeating(ebiten.KeyArrowRight):
		stage.Editor.MoveCaret(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		stage.Editor.Blur()
	}
}

func (in *inputState) applyPaging(stage *scrollhero.Stage) {
	page := stage.Viewport.Height * 0.9
	switch {
	case repeating(ebiten.KeyArrowDown):
		stage.Wheel(defaultWheelSpeed)
	case repeating(ebiten.KeyArrowUp):
		stage.Wheel(-defaultWheelSpeed)
	case repeating(ebiten.KeyPageDown), repeating(ebiten.KeySpace):
		stage.Wheel(page)
	case repeating(ebiten.KeyPageUp):
		stage.Wheel(-page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		stage.Viewport.ScrollTo(0, true)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		stage.Viewport.ScrollTo(stage.Controller.Threshold(), true)
	}
}

// repeating reports a key press on its first frame and then at the usual
// key-repeat cadence while held.
func repeating(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}
