//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"gol3d/internal/render"
	"gol3d/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const overlayMargin = 12

// Overlay draws a flat view of one z-layer in the corner of the cube view.
// L toggles it, [ and ] move between layers.
type Overlay struct {
	cursor  sliceCursor
	scale   int
	painter *render.SlicePainter
}

// NewOverlay constructs an overlay for a cube of edge n drawn at scale pixels per cell.
func NewOverlay(n, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{cursor: newSliceCursor(n), scale: scale, painter: render.NewSlicePainter(n)}
}

// Update handles the overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.cursor.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		o.cursor.step(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		o.cursor.step(1)
	}
}

// Draw renders the selected layer of snap in the bottom-left corner of a
// viewport of the given height.
func (o *Overlay) Draw(screen *ebiten.Image, snap core.Snapshot, height int) {
	if !o.cursor.visible || snap.Size != o.painter.Size() {
		return
	}
	side := float32(snap.Size * o.scale)
	x := float32(overlayMargin)
	y := float32(height-overlayMargin) - side
	vector.DrawFilledRect(screen, x-2, y-18, side+4, side+20, color.RGBA{R: 16, G: 16, B: 20, A: 220}, false)
	o.painter.Blit(screen, snap, o.cursor.z, float64(x), float64(y), o.scale)
	label := fmt.Sprintf("z = %d/%d", o.cursor.z, snap.Size-1)
	text.Draw(screen, label, basicfont.Face7x13, int(x), int(y)-5, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
