package lib

import (
	"io"
	"log/slog"
	"testing"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestGrid(t *testing.T, width, height int) *Grid {
	t.Helper()
	grid, err := NewGrid(width, height, 1)
	if err != nil {
		t.Fatalf("Cannot create grid (%v)", err)
	}
	return grid
}

func newTestBattle(t *testing.T, grid *Grid, options Options, units ...Unit) *Battle {
	t.Helper()
	battle, err := NewBattle(grid, units, options, testLogger)
	if err != nil {
		t.Fatalf("Cannot create battle (%v)", err)
	}
	return battle
}

func unitAt(name string, side, x, y int) Unit {
	unit := NewUnit(name, GridCoords{x, y})
	unit.Side = side
	return unit
}

func coordsSet(coords []GridCoords) map[GridCoords]bool {
	res := make(map[GridCoords]bool)
	for _, xy := range coords {
		res[xy] = true
	}
	return res
}
