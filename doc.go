// Package scrollhero drives a scroll-linked "hero" animation that turns a
// large decorative composition into a working code editor and live preview.
//
// The heart of the package is the [Controller]. It subscribes to a [Host]'s
// scroll offset, measures the hero section on mount and on every resize, and
// derives from those two inputs:
//
//   - seven independent animation channels ([Values]) by clamped piecewise
//     linear interpolation over breakpoints relative to the section,
//   - a completion flag that is true once the page has scrolled past
//     top + span*1.2 + 2, where span is a third of the section height,
//   - a mount latch that keeps every channel at its collapsed value until
//     the section has been measured.
//
// Independent effects observe each evaluation: focusing the embedded
// [Editor] when the animation completes, snapping the page to the threshold
// when the user clicks into the editor, and discarding editor edits whenever
// the page is above the threshold.
//
// # Quick start
//
// [NewStage] wires a [Viewport], a Controller and a [Sandbox] editor into a
// ready page:
//
//	stage := scrollhero.NewStage(scrollhero.StageConfig{Width: 1280, Height: 720})
//	stage.Wheel(400)
//	stage.Update(1.0 / 60)
//	frame := stage.Frame()
//
// For full control implement Host yourself and call [NewController],
// [Controller.Mount] and [Controller.SetEditor] directly.
//
// # Hosts
//
// Package ebitenhost runs a Stage in an Ebitengine window; package tcellhost
// runs one in a terminal. Both feed real wheel, resize, click and key input
// into the Stage and draw its [Frame].
//
// # Scripts
//
// A [ScriptRunner] loaded with [LoadScript] replays wheel, scroll, resize,
// click and typing steps one frame at a time and records [Capture]s, which
// makes scenarios reproducible without a window.
package scrollhero
