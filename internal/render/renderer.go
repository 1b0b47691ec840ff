//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gol3d/pkg/core"
)

// DrawCubes paints the cubes of set back to front.
func DrawCubes(dst *ebiten.Image, set *CubeSet, cam Camera) {
	for _, q := range set.DrawList(cam) {
		x, y, s := float32(q.X), float32(q.Y), float32(q.Size)
		vector.DrawFilledRect(dst, x, y, s, s, q.Fill, false)
		vector.StrokeRect(dst, x, y, s, s, 1, q.Edge, false)
	}
}

// SlicePainter uploads one z-layer of a snapshot into an image.
type SlicePainter struct {
	n   int
	img *ebiten.Image
	buf []byte
}

// NewSlicePainter allocates a painter for a cube of edge n.
func NewSlicePainter(n int) *SlicePainter {
	return &SlicePainter{n: n, img: ebiten.NewImage(n, n), buf: make([]byte, 4*n*n)}
}

// Blit draws layer z of snap at (x, y) scaled by scale.
func (sp *SlicePainter) Blit(dst *ebiten.Image, snap core.Snapshot, z int, x, y float64, scale int) {
	if snap.Size != sp.n || len(snap.Ages) != sp.n*sp.n*sp.n {
		return
	}
	fillSliceRGBA(sp.buf, snap, z, AgePalette)
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(sp.img, op)
}

// Size returns the edge length of the painted layer.
func (sp *SlicePainter) Size() int { return sp.n }
