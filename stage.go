package scrollhero

// StageConfig describes a complete hero page.
type StageConfig struct {
	// Width and Height are the initial viewport size.
	Width, Height float64
	// Lead and Trail are page content above and below the hero section.
	Lead, Trail float64

	Config Config

	// Files seeds the editor; nil uses DemoFiles.
	Files map[string]string
	// ActiveFile is opened first; empty picks App.js when present.
	ActiveFile string

	// CaptureDir, when set, receives a JSON file per Capture.
	CaptureDir string
}

// Stage wires a Viewport, a Controller and a Sandbox into one page and is
// what hosts drive from real input. Like the Controller it is
// single-threaded.
type Stage struct {
	Viewport   *Viewport
	Controller *Controller
	Editor     *Sandbox

	// CaptureDir receives a JSON file per Capture when non-empty.
	CaptureDir string
	// OnCapture, when set, is called for every flushed capture.
	OnCapture func(Capture)

	updateFunc   func(dt float32)
	injectQueue  []syntheticEvent
	captureQueue []string
	captures     []Capture
	testRunner   *ScriptRunner
}

// NewStage lays out the page, mounts the controller and attaches the editor.
func NewStage(cfg StageConfig) *Stage {
	vp := NewViewport(cfg.Width, cfg.Height)
	ctrlCfg := cfg.Config.withDefaults()
	vp.SetLayout(HeroLayout(ctrlCfg.Section, cfg.Lead, cfg.Trail))

	files := cfg.Files
	if files == nil {
		files = DemoFiles()
	}
	sb := NewSandbox(files)
	active := cfg.ActiveFile
	if active == "" {
		active = "App.js"
	}
	sb.SetActive(active)

	ctrl := NewController(vp, ctrlCfg)
	ctrl.Mount()
	ctrl.SetEditor(sb)

	return &Stage{
		Viewport:   vp,
		Controller: ctrl,
		Editor:     sb,
		CaptureDir: cfg.CaptureDir,
	}
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (s *Stage) SetUpdateFunc(fn func(dt float32)) {
	s.updateFunc = fn
}

// Update runs one frame: the script runner, one injected event, the
// animated scroll, the user callback and pending captures, in that order.
func (s *Stage) Update(dt float32) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjected()
	s.Viewport.Update(dt)
	if s.updateFunc != nil {
		s.updateFunc(dt)
	}
	s.flushCaptures()
}

// Frame lays out the current snapshot for the viewport size.
func (s *Stage) Frame() Frame {
	return ComputeFrame(s.Controller.Snapshot(), s.Viewport.Width, s.Viewport.Height)
}

// Wheel scrolls by dy pixels.
func (s *Stage) Wheel(dy float64) {
	s.Viewport.ScrollBy(dy)
}

// Resize changes the viewport size and re-lays out the page.
func (s *Stage) Resize(width, height float64) {
	if width == s.Viewport.Width && height == s.Viewport.Height {
		return
	}
	s.Viewport.SetSize(width, height)
}

// Click handles a primary click at screen coordinates. A click on the
// editor's content area focuses it; anywhere else blurs it. Reports whether
// the editor was hit.
func (s *Stage) Click(x, y float64) bool {
	if s.Frame().HitEditorContent(x, y) {
		s.Editor.ClickContent()
		return true
	}
	s.Editor.Blur()
	return false
}

// Type inserts text into the focused editor while it is interactive.
func (s *Stage) Type(text string) {
	if !s.Controller.Complete() {
		return
	}
	s.Editor.Insert(text)
}

// Backspace deletes before the caret while the editor is interactive.
func (s *Stage) Backspace() {
	if !s.Controller.Complete() {
		return
	}
	s.Editor.Backspace()
}

// Close releases the controller's subscriptions.
func (s *Stage) Close() {
	s.Controller.Close()
}
