package scrollhero

import (
	"sort"
	"unicode/utf8"
)

// File is one document in a Sandbox.
type File struct {
	Name    string
	Content string
	seed    string
}

// Dirty reports whether the file differs from its seeded content.
func (f *File) Dirty() bool {
	return f.Content != f.seed
}

// Sandbox is an in-memory multi-file editor implementing Editor. Offsets
// are byte offsets clamped to the active file.
type Sandbox struct {
	files  map[string]*File
	order  []string
	active string

	caret   int
	focused bool

	handlers handlerRegistry
	resets   int
}

// NewSandbox creates a sandbox seeded with files. The first file in name
// order becomes active unless SetActive picks another.
func NewSandbox(seed map[string]string) *Sandbox {
	s := &Sandbox{files: make(map[string]*File, len(seed))}
	for name, content := range seed {
		s.files[name] = &File{Name: name, Content: content, seed: content}
		s.order = append(s.order, name)
	}
	sort.Strings(s.order)
	if len(s.order) > 0 {
		s.active = s.order[0]
	}
	return s
}

// Files returns file names in display order.
func (s *Sandbox) Files() []string {
	return s.order
}

// File returns the named file or nil.
func (s *Sandbox) File(name string) *File {
	return s.files[name]
}

// Active returns the file under edit, or nil for an empty sandbox.
func (s *Sandbox) Active() *File {
	return s.files[s.active]
}

// SetActive switches the file under edit. Unknown names are ignored.
func (s *Sandbox) SetActive(name string) {
	if _, ok := s.files[name]; !ok {
		return
	}
	s.active = name
	s.caret = s.clampCaret(s.caret)
}

// HasFocus reports whether the editor holds input focus.
func (s *Sandbox) HasFocus() bool {
	return s.focused
}

// Focus gives the editor input focus. Programmatic focus does not fire
// content-focus handlers.
func (s *Sandbox) Focus() {
	s.focused = true
}

// Blur drops input focus.
func (s *Sandbox) Blur() {
	s.focused = false
}

// ClickContent focuses the editor as a click on the editable surface does
// and fires content-focus handlers.
func (s *Sandbox) ClickContent() {
	s.focused = true
	s.handlers.fireFocus()
}

// OnContentFocus registers a callback for user-initiated content focus.
func (s *Sandbox) OnContentFocus(fn func()) CallbackHandle {
	return s.handlers.onFocus(fn)
}

// Caret returns the caret offset in the active file.
func (s *Sandbox) Caret() int {
	return s.caret
}

// SetCaret moves the caret, clamped to the active file.
func (s *Sandbox) SetCaret(offset int) {
	s.caret = s.clampCaret(offset)
}

func (s *Sandbox) clampCaret(offset int) int {
	f := s.Active()
	if f == nil || offset < 0 {
		return 0
	}
	if offset > len(f.Content) {
		return len(f.Content)
	}
	// Never split a multi-byte rune.
	for offset > 0 && offset < len(f.Content) && !utf8.RuneStart(f.Content[offset]) {
		offset--
	}
	return offset
}

// Insert types text at the caret and advances it. Ignored without focus.
func (s *Sandbox) Insert(text string) {
	f := s.Active()
	if f == nil || !s.focused || text == "" {
		return
	}
	f.Content = f.Content[:s.caret] + text + f.Content[s.caret:]
	s.caret += len(text)
}

// Backspace deletes the rune before the caret. Ignored without focus.
func (s *Sandbox) Backspace() {
	f := s.Active()
	if f == nil || !s.focused || s.caret == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.Content[:s.caret])
	f.Content = f.Content[:s.caret-size] + f.Content[s.caret:]
	s.caret -= size
}

// MoveCaret shifts the caret by delta runes.
func (s *Sandbox) MoveCaret(delta int) {
	f := s.Active()
	if f == nil {
		return
	}
	for ; delta < 0 && s.caret > 0; delta++ {
		_, size := utf8.DecodeLastRuneInString(f.Content[:s.caret])
		s.caret -= size
	}
	for ; delta > 0 && s.caret < len(f.Content); delta-- {
		_, size := utf8.DecodeRuneInString(f.Content[s.caret:])
		s.caret += size
	}
}

// Dirty reports whether any file differs from its seed.
func (s *Sandbox) Dirty() bool {
	for _, f := range s.files {
		if f.Dirty() {
			return true
		}
	}
	return false
}

// ResetAllFiles restores every file to its seeded content. Resetting
// pristine files changes nothing.
func (s *Sandbox) ResetAllFiles() {
	if !s.Dirty() {
		return
	}
	for _, f := range s.files {
		f.Content = f.seed
	}
	s.caret = s.clampCaret(s.caret)
	s.resets++
}

// Resets returns how many resets actually discarded edits.
func (s *Sandbox) Resets() int {
	return s.resets
}
