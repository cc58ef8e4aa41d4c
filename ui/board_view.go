package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pwiecz/tile_tactics/lib"
)

const TileSize = 32

// BoardView draws a battle's grid, its traversable marks and its units, and maps
// screen positions back to grid coordinates.
type BoardView struct {
	x, y int // top left corner on screen
}

func NewBoardView(x, y int) *BoardView {
	return &BoardView{x: x, y: y}
}

func (v *BoardView) Size(grid *lib.Grid) (int, int) {
	return grid.Width * TileSize, grid.Height * TileSize
}

func (v *BoardView) Bounds(grid *lib.Grid) image.Rectangle {
	width, height := v.Size(grid)
	return image.Rect(v.x, v.y, v.x+width, v.y+height)
}

// ScreenToGrid returns false for positions outside the board.
func (v *BoardView) ScreenToGrid(grid *lib.Grid, screenX, screenY int) (lib.GridCoords, bool) {
	if !image.Pt(screenX, screenY).In(v.Bounds(grid)) {
		return lib.GridCoords{}, false
	}
	return lib.GridCoords{X: (screenX - v.x) / TileSize, Y: (screenY - v.y) / TileSize}, true
}

func (v *BoardView) tileRect(xy lib.GridCoords) (float32, float32, float32, float32) {
	return float32(v.x + xy.X*TileSize), float32(v.y + xy.Y*TileSize), TileSize, TileSize
}

func (v *BoardView) Draw(screen *ebiten.Image, battle *lib.Battle) {
	grid := battle.Grid()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := grid.Tile(lib.GridCoords{X: x, Y: y})
			tx, ty, tw, th := v.tileRect(tile.GridPosition())
			vector.DrawFilledRect(screen, tx, ty, tw, th, tile.Terrain.Color(), false)
			if tile.Traversable {
				vector.DrawFilledRect(screen, tx, ty, tw, th, lib.TraversableColor, false)
			}
			vector.StrokeRect(screen, tx, ty, tw, th, 1, gridLineColor, false)
		}
	}
	for _, unit := range battle.Units() {
		v.drawUnit(screen, unit)
	}
}

func (v *BoardView) drawUnit(screen *ebiten.Image, unit *lib.Unit) {
	tx, ty, tw, th := v.tileRect(unit.GridPosition())
	const margin = 4
	vector.DrawFilledRect(screen, tx+margin, ty+margin, tw-2*margin, th-2*margin, lib.SideColor(unit.Side), false)
	switch unit.State {
	case lib.Selected:
		vector.StrokeRect(screen, tx+2, ty+2, tw-4, th-4, 2, selectedColor, false)
	case lib.Spent:
		vector.DrawFilledRect(screen, tx+margin, ty+margin, tw-2*margin, th-2*margin, spentColor, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", unit.HP), int(tx)+margin+2, int(ty)+margin)
}
