package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/scrollhero"
)

// overlay shows FPS, TPS and the controller's channels in the top-left
// corner. The text is refreshed every ~0.5 seconds.
type overlay struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
}

func newOverlay() *overlay {
	// 260x190 fits the FPS lines plus DebugText.
	return &overlay{img: ebiten.NewImage(260, 190), lastUpdate: 0.5}
}

func (o *overlay) update(dt float64, snap scrollhero.Snapshot) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 160})

	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s", fps, tps, scrollhero.DebugText(snap)))
	o.dirty = true
}

func (o *overlay) draw(screen *ebiten.Image) {
	if !o.dirty {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 8)
	screen.DrawImage(o.img, op)
}
