package lib

import (
	"fmt"
	"math"
)

// GridCoords addresses a tile by column (X) and row (Y).
type GridCoords struct {
	X, Y int
}

func (c GridCoords) Add(d GridCoords) GridCoords {
	return GridCoords{c.X + d.X, c.Y + d.Y}
}
func (c GridCoords) Sub(d GridCoords) GridCoords {
	return GridCoords{c.X - d.X, c.Y - d.Y}
}
func (c GridCoords) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance is the Euclidean distance between two grid positions, not scaled by cell size.
func (c GridCoords) Distance(d GridCoords) float64 {
	return math.Hypot(float64(c.X-d.X), float64(c.Y-d.Y))
}

// Vec2 is a position in world space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Distance(w Vec2) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Directions lists the eight neighbour offsets, dx outer and dy inner, skipping (0,0).
var Directions = func() [8]GridCoords {
	var dirs [8]GridCoords
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dirs[n] = GridCoords{dx, dy}
			n++
		}
	}
	return dirs
}()
