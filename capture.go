package scrollhero

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Capture is a labelled record of the stage state at the end of a frame.
type Capture struct {
	Label    string             `json:"label"`
	Time     time.Time          `json:"time"`
	Position float64            `json:"position"`
	Geometry Geometry           `json:"geometry"`
	Mounted  bool               `json:"mounted"`
	Complete bool               `json:"complete"`
	Channels map[string]float64 `json:"channels"`
	Focused  bool               `json:"focused"`
	Caret    int                `json:"caret"`
	Dirty    bool               `json:"dirty"`
}

// Capture queues a labelled capture taken at the end of the current
// Update. Safe to call from an update callback or a script.
func (s *Stage) Capture(label string) {
	s.captureQueue = append(s.captureQueue, label)
}

// Captures returns every capture flushed so far.
func (s *Stage) Captures() []Capture {
	return s.captures
}

// flushCaptures records every queued label and writes each as JSON when
// CaptureDir is set. Called at the end of Stage.Update.
func (s *Stage) flushCaptures() {
	if len(s.captureQueue) == 0 {
		return
	}

	snap := s.Controller.Snapshot()
	channels := make(map[string]float64, channelCount)
	for id := ChannelID(0); id < channelCount; id++ {
		channels[id.String()] = snap.Values.Get(id)
	}
	now := time.Now()

	for _, label := range s.captureQueue {
		c := Capture{
			Label:    label,
			Time:     now,
			Position: snap.Position,
			Geometry: snap.Geometry,
			Mounted:  snap.Mounted,
			Complete: snap.Complete,
			Channels: channels,
			Focused:  s.Editor.HasFocus(),
			Caret:    s.Editor.Caret(),
			Dirty:    s.Editor.Dirty(),
		}
		s.captures = append(s.captures, c)
		if s.OnCapture != nil {
			s.OnCapture(c)
		}
		if s.CaptureDir != "" {
			if err := writeCapture(s.CaptureDir, c); err != nil {
				s.Controller.logger.Warn("capture not written", "label", label, "err", err)
			}
		}
	}
	s.captureQueue = s.captureQueue[:0]
}

// writeCapture encodes a capture to a timestamped JSON file in dir.
func writeCapture(dir string, c Capture) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	stamp := c.Time.Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", stamp, sanitizeLabel(c.Label)))
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
