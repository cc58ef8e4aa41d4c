package lib

import "fmt"

// Grid is a fixed Width x Height board of tiles stored row-major.
type Grid struct {
	Width, Height int
	// World-space size of one cell, used to normalize step distances.
	CellSize float64
	tiles    []Tile
}

func NewGrid(width, height int, cellSize float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Invalid grid size %dx%d", width, height)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("Invalid cell size %v", cellSize)
	}
	g := &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		tiles:    make([]Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[y*width+x] = Tile{X: x, Y: y, Terrain: Plain}
		}
	}
	return g, nil
}

func (g *Grid) Contains(xy GridCoords) bool {
	return InRange(xy.X, 0, g.Width) && InRange(xy.Y, 0, g.Height)
}

// Tile returns nil for coordinates outside the grid.
func (g *Grid) Tile(xy GridCoords) *Tile {
	if !g.Contains(xy) {
		return nil
	}
	return &g.tiles[xy.Y*g.Width+xy.X]
}

func (g *Grid) SetTerrain(xy GridCoords, terrain TerrainType) {
	if tile := g.Tile(xy); tile != nil {
		tile.Terrain = terrain
	}
}

// Position maps grid coordinates to world space.
func (g *Grid) Position(xy GridCoords) Vec2 {
	return Vec2{float64(xy.X) * g.CellSize, float64(xy.Y) * g.CellSize}
}

func (g *Grid) ClearTraversable() {
	for i := range g.tiles {
		g.tiles[i].Traversable = false
	}
}

// TraversableTiles lists marked tiles in row-major order.
func (g *Grid) TraversableTiles() []GridCoords {
	var res []GridCoords
	for _, tile := range g.tiles {
		if tile.Traversable {
			res = append(res, tile.GridPosition())
		}
	}
	return res
}
