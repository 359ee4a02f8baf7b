package tcellhost

import (
	"github.com/gdamore/tcell/v2"
)

// HandleEvent applies one terminal event to the stage. It returns false
// when the user asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventKey:
		return t.handleKey(ev)
	}
	return true
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	wheel := float64(t.cfg.WheelRows) * CellHeight
	if btn&tcell.WheelUp != 0 {
		t.stage.Wheel(-wheel)
	}
	if btn&tcell.WheelDown != 0 {
		t.stage.Wheel(wheel)
	}
	// Click on the press edge only; tcell repeats the mask while held.
	if btn&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0 {
		x, y := ev.Position()
		t.stage.Click((float64(x)+0.5)*CellWidth, (float64(y)+0.5)*CellHeight)
	}
	t.buttons = btn
}

// editing reports whether keys go to the editor rather than the page.
func (t *Terminal) editing() bool {
	return t.stage.Controller.Complete() && t.stage.Editor.HasFocus()
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if t.editing() {
		t.editKey(ev)
		return true
	}
	return t.pageKey(ev)
}

func (t *Terminal) editKey(ev *tcell.EventKey) {
	ed := t.stage.Editor
	switch ev.Key() {
	case tcell.KeyRune:
		t.stage.Type(string(ev.Rune()))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.stage.Backspace()
	case tcell.KeyEnter:
		t.stage.Type("\n")
	case tcell.KeyTab:
		t.stage.Type("  ")
	case tcell.KeyLeft:
		ed.MoveCaret(-1)
	case tcell.KeyRight:
		ed.MoveCaret(1)
	case tcell.KeyEsc:
		ed.Blur()
	}
}

func (t *Terminal) pageKey(ev *tcell.EventKey) bool {
	line := CellHeight
	page := t.stage.Viewport.Height * 0.9
	switch ev.Key() {
	case tcell.KeyDown:
		t.stage.Wheel(line)
	case tcell.KeyUp:
		t.stage.Wheel(-line)
	case tcell.KeyPgDn:
		t.stage.Wheel(page)
	case tcell.KeyPgUp:
		t.stage.Wheel(-page)
	case tcell.KeyHome:
		t.stage.Viewport.ScrollTo(0, true)
	case tcell.KeyEnd:
		t.stage.Viewport.ScrollTo(t.stage.Controller.Threshold(), true)
	case tcell.KeyEsc:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ', 'f':
			t.stage.Wheel(page)
		case 'b':
			t.stage.Wheel(-page)
		case 'j':
			t.stage.Wheel(line)
		case 'k':
			t.stage.Wheel(-line)
		}
	}
	return true
}
