package scrollhero

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Text   string  `json:"text,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a scenario script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"capture":   true,
	"wheel":     true,
	"scroll":    true,
	"resize":    true,
	"click":     true,
	"type":      true,
	"backspace": true,
	"wait":      true,
}

// ScriptRunner sequences injected input and captures across frames for
// scripted scenarios. Attach to a Stage via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scenario script and returns a ScriptRunner ready
// to be attached to a Stage via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the stage. The runner's step
// method is called from Stage.Update before injected input is processed.
func (s *Stage) SetScriptRunner(runner *ScriptRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Stage.Update.
func (r *ScriptRunner) step(s *Stage) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "capture":
		s.Capture(st.Label)
	case "wheel":
		if st.Frames > 1 {
			s.InjectScrollGesture(st.DY, st.Frames)
		} else {
			s.InjectWheel(st.DY)
		}
	case "scroll":
		s.InjectScrollTo(st.Y)
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "type":
		s.InjectType(st.Text)
	case "backspace":
		s.InjectBackspace()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
