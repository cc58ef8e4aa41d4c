package lib

// FindTraversableTiles marks the tiles a unit standing at origin can reach with the
// given movement budget and returns them in scan order.
//
// Only the eight straight rays leaving origin are scanned. A ray accumulates the
// normalized step length plus each tile's movement modifier and stops once the total
// exceeds movement or the next step would leave the grid. Tiles that need a bend to
// reach are never marked. Occupied tiles are not marked but the ray continues past them.
func FindTraversableTiles(grid *Grid, origin GridCoords, movement int) []GridCoords {
	var marked []GridCoords
	budget := float64(movement)
	for _, dir := range Directions {
		current := origin.Add(dir)
		if !grid.Contains(current) {
			continue
		}
		totalCost := 0.
		for totalCost <= budget {
			tile := grid.Tile(current)
			previous := current.Sub(dir)
			totalCost += grid.Position(current).Distance(grid.Position(previous))/grid.CellSize + tile.MovementModifier()

			if totalCost <= budget && !tile.IsOccupied() {
				tile.SetTraversable()
				marked = append(marked, current)
			} else if totalCost > budget {
				break
			}

			next := current.Add(dir)
			if !grid.Contains(next) {
				break
			}
			current = next
		}
	}
	return marked
}
