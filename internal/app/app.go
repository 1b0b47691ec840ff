//go:build ebiten

package app

import (
	"image/color"

	"gol3d/internal/render"
	"gol3d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	orbitStep  = 0.03
	zoomStep   = 1.04
	sliceScale = 6
)

// Game adapts the runner's snapshot stream to the ebiten.Game interface.
type Game struct {
	status  *Status
	cubes   *render.CubeSet
	scene   *render.Scene[*render.Cube]
	cam     render.Camera
	hud     *ui.HUD
	overlay *ui.Overlay

	width  int
	height int
}

// New constructs a Game for a window of the given size. The HUD takes
// hudWidth pixels on the right; the cube view gets the rest.
func New(status *Status, width, height, hudWidth int) *Game {
	snap := status.Snapshot()
	cubes := render.NewCubeSet()
	g := &Game{
		status:  status,
		cubes:   cubes,
		scene:   render.NewScene[*render.Cube](cubes),
		hud:     ui.NewHUD(status, hudWidth),
		overlay: ui.NewOverlay(snap.Size, sliceScale),
		width:   width,
		height:  height,
	}
	g.cam = render.NewCamera(snap.Size, g.viewWidth(), height)
	g.scene.Sync(snap)
	return g
}

func (g *Game) viewWidth() int {
	w := g.width - g.hud.Width()
	if w < 1 {
		return 1
	}
	return w
}

// Update handles input and picks up the newest generation, if any.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleCamera()
	g.overlay.Update()

	if g.status.Refresh() {
		g.scene.Sync(g.status.Snapshot())
	}
	g.hud.Update(g.viewWidth())
	return nil
}

func (g *Game) handleCamera() {
	var yaw, pitch float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		yaw -= orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		yaw += orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pitch += orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pitch -= orbitStep
	}
	if yaw != 0 || pitch != 0 {
		g.cam.Orbit(yaw, pitch)
	}

	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.cam.ZoomBy(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.cam.ZoomBy(1 / zoomStep)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.cam.ZoomBy(zoomStep)
		} else {
			g.cam.ZoomBy(1 / zoomStep)
		}
	}
}

// Draw renders the cube view, the slice overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 12, A: 255})
	render.DrawCubes(screen, g.cubes, g.cam)
	g.overlay.Draw(screen, g.status.Snapshot(), g.height)
	g.hud.Draw(screen, g.viewWidth(), g.height)
}

// Layout follows the window size and keeps the camera centred in the view.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.cam.Resize(g.viewWidth(), g.height)
	}
	return g.width, g.height
}
