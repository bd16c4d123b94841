//go:build ebiten

package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl *Controller
}

func NewGame(ctl *Controller) *Game {
	return &Game{ctl: ctl}
}

// Update handles input; each event reaches the board before the next.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset()
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctl.Primary(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.ctl.Secondary(x, y)
	}
	return nil
}

// Draw paints the cached panel states.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdropColor)

	for _, req := range g.ctl.Canvas().Panels() {
		x, y, w := float32(req.X), float32(req.Y), float32(req.Size)
		border := w / 10

		vector.DrawFilledRect(screen, x, y, w, w, borderColor, false)
		vector.DrawFilledRect(screen, x+border, y+border, w-2*border, w-2*border, Fill(req.Visual), false)

		if s := Symbol(req); s != "" {
			ebitenutil.DebugPrintAt(screen, s, req.X+req.Size/2-3, req.Y+req.Size/2-8)
		}
	}

	if banner := Banner(g.ctl.Status()); banner != "" {
		p := g.ctl.Params()
		ebitenutil.DebugPrintAt(screen, banner, p.Columns*p.PanelWidth/3, p.Rows*p.PanelWidth/3)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.ctl.Params())
}
