package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cavearena/pkg/engine/terminal"
	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/entities"
	"cavearena/pkg/game/state"
)

// statusBarHeight is the pixel strip reserved below the arena.
const statusBarHeight = 96

// Draw renders the current frame snapshot (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.mu.RLock()
	g := e.game
	e.mu.RUnlock()
	if g == nil || g.Grid == nil {
		ebitenutil.DebugPrintAt(screen, "generating arena...", 8, 8)
		return
	}

	e.drawArena(screen, g)
	e.drawStatus(screen, g)
}

// drawArena paints the grid window centered on the player as filled tiles.
func (e *EbitenRenderer) drawArena(screen *ebiten.Image, g *state.Game) {
	ts := e.tileSize
	cols := e.windowWidth / ts
	rows := (e.windowHeight - statusBarHeight) / ts
	if cols < 1 || rows < 1 {
		return
	}

	dim := g.Grid.Dim()
	pp := g.Player.Pos()
	view := terminal.CenterViewport(dim, dim, cols, rows, pp.X, pp.Y)

	vector.DrawFilledRect(screen, 0, 0,
		float32(view.Width*ts), float32(view.Height*ts), colorMapBackground, false)

	for y := view.Y; y < view.Y+view.Height; y++ {
		for x := view.X; x < view.X+view.Width; x++ {
			p := world.Position{X: x, Y: y}
			px := float32((x - view.X) * ts)
			py := float32((y - view.Y) * ts)
			vector.DrawFilledRect(screen, px+1, py+1,
				float32(ts-2), float32(ts-2), e.cellColor(g, p), false)
		}
	}
}

// cellColor picks the tile fill, occupants over terrain.
func (e *EbitenRenderer) cellColor(g *state.Game, p world.Position) color.RGBA {
	if occ, ok := g.Occupants.At(p); ok {
		switch occ.(type) {
		case *entities.Player:
			return colorPlayer
		case *entities.Enemy:
			return colorEnemy
		case *entities.ExitMarker:
			return colorExit
		}
	}

	if g.Spores != nil && g.Spores.Has(p) {
		return colorSpores
	}

	switch g.Grid.KindAt(p) {
	case world.Wall:
		return colorWall
	case world.Exit:
		return colorExit
	}
	return colorFloor
}

// drawStatus paints the status strip and recent messages.
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image, g *state.Game) {
	top := e.windowHeight - statusBarHeight
	vector.DrawFilledRect(screen, 0, float32(top),
		float32(e.windowWidth), statusBarHeight, colorBackground, false)

	status := fmt.Sprintf("cavern %d  hp %d/%d  enemies %d",
		g.Level, g.Player.HP(), g.Player.MaxHP(), len(g.Enemies))
	if effects := g.Player.Effects(); len(effects) > 0 {
		status += "  " + strings.Join(effects, ", ")
	}
	ebitenutil.DebugPrintAt(screen, status, 8, top+4)
	e.drawHealthBar(screen, g, top)

	for i, msg := range g.Messages {
		ebitenutil.DebugPrintAt(screen, msg, 8, top+36+i*14)
	}

	if line := overlayLine(g); line != "" {
		ebitenutil.DebugPrintAt(screen, line, 8, 8)
	}
}

// overlayLine is the end-of-run banner, empty while the run is live.
func overlayLine(g *state.Game) string {
	if !g.Over {
		return ""
	}
	if g.Won {
		return "you escaped the caves - press q to quit"
	}
	return "you have fallen - press q to quit"
}

// drawHealthBar paints the HP gauge under the status line.
func (e *EbitenRenderer) drawHealthBar(screen *ebiten.Image, g *state.Game, top int) {
	const barWidth, barHeight = 160, 8
	vector.DrawFilledRect(screen, 8, float32(top+22),
		barWidth, barHeight, colorHealthTrack, false)

	hp, maxHP := g.Player.HP(), g.Player.MaxHP()
	if hp <= 0 || maxHP <= 0 {
		return
	}
	fill := healthBarColor(hp, maxHP)
	vector.DrawFilledRect(screen, 8, float32(top+22),
		float32(barWidth*hp/maxHP), barHeight, fill, false)
}

// healthBarColor matches the terminal frontend's low-health threshold.
func healthBarColor(hp, maxHP int) color.RGBA {
	if hp <= maxHP/4 {
		return colorHealthLow
	}
	return colorHealthOK
}
