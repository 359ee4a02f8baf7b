package scrollhero

import "testing"

// --- Interpolation Benchmarks ---

func BenchmarkEvaluate(b *testing.B) {
	channels := DefaultChannels()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(&channels, float64(i%1500), 0, 400)
	}
}

func BenchmarkChannelValue(b *testing.B) {
	channels := DefaultChannels()
	ch := channels[ChannelRotateDeg]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ch.Value(float64(i%1500), 0, 400)
	}
}

// --- Controller Benchmarks ---

func BenchmarkController_Scroll(b *testing.B) {
	vp := NewViewport(800, 600)
	vp.SetLayout(HeroLayout(DefaultSection, 0, 0))
	c := NewController(vp, DefaultConfig())
	c.Mount()
	defer c.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Stays below the threshold so only the resetter runs.
		vp.ScrollTo(float64(i%400), false)
	}
}

func BenchmarkStage_ScrollAndFrame(b *testing.B) {
	s := NewStage(StageConfig{Width: 1280, Height: 720})
	defer s.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Viewport.ScrollTo(float64(i%720), false)
		_ = s.Frame()
	}
}

// --- Layout Benchmarks ---

func BenchmarkComputeFrame(b *testing.B) {
	s := NewStage(StageConfig{Width: 1280, Height: 720})
	defer s.Close()
	s.Viewport.ScrollTo(300, false)
	snap := s.Controller.Snapshot()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ComputeFrame(snap, 1280, 720)
	}
}

func BenchmarkHitEditorContent(b *testing.B) {
	f := ComputeFrame(snapshotAt(250), 800, 600)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.HitEditorContent(float64(i%800), 300)
	}
}
