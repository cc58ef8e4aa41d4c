package lib

import "testing"

func TestNewGridErrors(t *testing.T) {
	for _, tc := range []struct {
		width, height int
		cellSize      float64
	}{
		{0, 3, 1},
		{3, -1, 1},
		{3, 3, 0},
		{3, 3, -2},
	} {
		if _, err := NewGrid(tc.width, tc.height, tc.cellSize); err == nil {
			t.Errorf("NewGrid(%d, %d, %v): expecting an error", tc.width, tc.height, tc.cellSize)
		}
	}
}

func TestGridTiles(t *testing.T) {
	grid := newTestGrid(t, 4, 3)
	for _, xy := range []GridCoords{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		if grid.Contains(xy) || grid.Tile(xy) != nil {
			t.Errorf("Expecting %v to be outside of the grid", xy)
		}
	}
	tile := grid.Tile(GridCoords{3, 2})
	if tile == nil || tile.X != 3 || tile.Y != 2 || tile.Terrain != Plain {
		t.Errorf("Unexpected tile %+v", tile)
	}
	grid.SetTerrain(GridCoords{3, 2}, TerrainType{Name: "hill"})
	grid.SetTerrain(GridCoords{9, 9}, TerrainType{Name: "hill"})
	if grid.Tile(GridCoords{3, 2}).Terrain.Name != "hill" {
		t.Errorf("Expecting hill at (3,2)")
	}
}

func TestGridPosition(t *testing.T) {
	grid, err := NewGrid(4, 4, 16)
	if err != nil {
		t.Fatal(err)
	}
	if pos := grid.Position(GridCoords{2, 3}); pos != (Vec2{32, 48}) {
		t.Errorf("Expecting (32,48), got %v", pos)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp out of bounds")
	}
	if !InRange(0, 0, 3) || InRange(3, 0, 3) {
		t.Error("InRange should include min and exclude max")
	}
	if Min(2.5, 1.5) != 1.5 || Max(2, 7) != 7 {
		t.Error("Min/Max")
	}
}

func TestMessageStrings(t *testing.T) {
	for _, tc := range []struct {
		message  Message
		expected string
	}{
		{UnitSelected{unit: 1, Traversable: make([]GridCoords, 4)}, "UNIT 1 SELECTED, 4 TILES IN REACH"},
		{UnitAttack{Attacker: 2, Defender: 1, Damage: 3, HP: 7, Counter: true}, "UNIT 2 COUNTERS UNIT 1 FOR 3 DAMAGE, HP LEFT 7"},
		{TurnEnded{Turn: 1}, "TURN 2 BEGINS"},
	} {
		if tc.message.String() != tc.expected {
			t.Errorf("Expecting %q, got %q", tc.expected, tc.message.String())
		}
	}
}

func TestSideColorWraps(t *testing.T) {
	if SideColor(1) != SideColor(5) || SideColor(-1) != SideColor(1) {
		t.Error("Expecting side colours to wrap around")
	}
	if Abs(-2.5) != 2.5 || Abs(3) != 3 {
		t.Error("Abs")
	}
}
