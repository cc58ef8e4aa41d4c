package lib

// TerrainType describes what a tile costs to cross and what it gives its occupant.
type TerrainType struct {
	Name string `yaml:"name"`
	// Added to the step cost when a unit's movement scan crosses the tile.
	Movement float64 `yaml:"movement"`
	// Stat modifiers applied to the occupant while it stands on the tile.
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
}

var Plain = TerrainType{Name: "plain"}

type Tile struct {
	X, Y    int
	Terrain TerrainType
	// Zero when the tile is empty.
	Occupant    UnitID
	Traversable bool
}

func (t *Tile) GridPosition() GridCoords {
	return GridCoords{t.X, t.Y}
}
func (t *Tile) MovementModifier() float64 {
	return t.Terrain.Movement
}
func (t *Tile) IsOccupied() bool {
	return t.Occupant.Valid()
}
func (t *Tile) SetTraversable() {
	t.Traversable = true
}
