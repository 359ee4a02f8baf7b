package scrollhero

import (
	"strings"
	"testing"
)

func TestSandboxSeed(t *testing.T) {
	sb := NewSandbox(DemoFiles())
	if got := strings.Join(sb.Files(), ","); got != "App.js,styles.css" {
		t.Errorf("Files = %s", got)
	}
	if sb.Active() == nil || sb.Active().Name != "App.js" {
		t.Errorf("Active = %+v, want App.js", sb.Active())
	}
	if sb.Dirty() {
		t.Error("fresh sandbox is dirty")
	}
}

func TestSandboxCaretOffsetLandsInGreeting(t *testing.T) {
	sb := NewSandbox(DemoFiles())
	sb.SetCaret(DefaultCaretOffset)
	content := sb.Active().Content
	if !strings.HasPrefix(content[sb.Caret():], " world</h1>") {
		t.Errorf("caret at %d is before %q", sb.Caret(), content[sb.Caret():sb.Caret()+12])
	}
}

func TestSandboxFocus(t *testing.T) {
	sb := NewSandbox(DemoFiles())
	var clicks int
	sb.OnContentFocus(func() { clicks++ })

	sb.Focus()
	if !sb.HasFocus() || clicks != 0 {
		t.Errorf("Focus: focused=%v clicks=%d, want programmatic focus to stay silent", sb.HasFocus(), clicks)
	}
	sb.Blur()
	if sb.HasFocus() {
		t.Error("Blur did not drop focus")
	}
	sb.ClickContent()
	if !sb.HasFocus() || clicks != 1 {
		t.Errorf("ClickContent: focused=%v clicks=%d", sb.HasFocus(), clicks)
	}
}

func TestSandboxEditingNeedsFocus(t *testing.T) {
	sb := NewSandbox(map[string]string{"a.txt": "abc"})
	sb.SetCaret(3)
	sb.Insert("d")
	sb.Backspace()
	if sb.Active().Content != "abc" {
		t.Errorf("edited without focus: %q", sb.Active().Content)
	}

	sb.Focus()
	sb.Insert("d")
	if sb.Active().Content != "abcd" || sb.Caret() != 4 {
		t.Errorf("Insert: %q caret %d", sb.Active().Content, sb.Caret())
	}
	sb.MoveCaret(-2)
	sb.Backspace()
	if sb.Active().Content != "acd" || sb.Caret() != 1 {
		t.Errorf("Backspace: %q caret %d", sb.Active().Content, sb.Caret())
	}
}

func TestSandboxCaretClampsAndRespectsRunes(t *testing.T) {
	sb := NewSandbox(map[string]string{"a.txt": "héllo"})
	sb.SetCaret(-4)
	if sb.Caret() != 0 {
		t.Errorf("Caret = %d, want 0", sb.Caret())
	}
	sb.SetCaret(100)
	if sb.Caret() != len("héllo") {
		t.Errorf("Caret = %d, want %d", sb.Caret(), len("héllo"))
	}
	// Offset 2 is inside the two-byte é.
	sb.SetCaret(2)
	if sb.Caret() != 1 {
		t.Errorf("Caret = %d, want 1 at the rune start", sb.Caret())
	}

	sb.Focus()
	sb.SetCaret(3)
	sb.Backspace()
	if sb.Active().Content != "hllo" {
		t.Errorf("Backspace removed %q", sb.Active().Content)
	}
	sb.MoveCaret(10)
	if sb.Caret() != len("hllo") {
		t.Errorf("MoveCaret past end: %d", sb.Caret())
	}
}

func TestSandboxResetAllFiles(t *testing.T) {
	sb := NewSandbox(DemoFiles())
	sb.ResetAllFiles()
	if sb.Resets() != 0 {
		t.Errorf("pristine reset counted: %d", sb.Resets())
	}

	sb.Focus()
	sb.SetCaret(DefaultCaretOffset)
	sb.Insert(", wide")
	sb.SetActive("styles.css")
	sb.Insert("/* x */")
	if !sb.Dirty() {
		t.Fatal("edits not reported as dirty")
	}

	sb.ResetAllFiles()
	if sb.Dirty() || sb.Resets() != 1 {
		t.Errorf("after reset dirty=%v resets=%d", sb.Dirty(), sb.Resets())
	}
	if sb.File("App.js").Content != DemoFiles()["App.js"] {
		t.Error("App.js not restored")
	}

	// Idempotent.
	sb.ResetAllFiles()
	if sb.Resets() != 1 {
		t.Errorf("second reset counted: %d", sb.Resets())
	}
}

func TestSandboxSetActiveUnknown(t *testing.T) {
	sb := NewSandbox(DemoFiles())
	sb.SetActive("missing.go")
	if sb.Active().Name != "App.js" {
		t.Errorf("Active = %s after unknown SetActive", sb.Active().Name)
	}
}

func TestSandboxEmpty(t *testing.T) {
	sb := NewSandbox(nil)
	sb.Focus()
	sb.Insert("x")
	sb.Backspace()
	sb.MoveCaret(3)
	sb.ResetAllFiles()
	if sb.Active() != nil || sb.Caret() != 0 || sb.Dirty() {
		t.Error("empty sandbox changed state")
	}
}
