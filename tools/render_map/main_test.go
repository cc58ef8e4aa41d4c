package main

import (
	"image/color"
	"testing"

	"github.com/pwiecz/tile_tactics/lib"
)

func testBattle(t *testing.T) *lib.Battle {
	t.Helper()
	scenario, err := lib.ParseScenario([]byte(`
name: Render
terrain:
  ".": {name: plain}
  "f": {name: forest, movement: 1}
map:
  - "...f"
  - "...."
units:
  - {name: Scout, x: 0, y: 0}
`))
	if err != nil {
		t.Fatal(err)
	}
	battle, err := scenario.NewBattle(nil)
	if err != nil {
		t.Fatal(err)
	}
	return battle
}

func TestRenderBattle(t *testing.T) {
	battle := testBattle(t)
	img := RenderBattle(battle)
	if img.Bounds().Dx() != 4*tileSize || img.Bounds().Dy() != 2*tileSize {
		t.Fatalf("Expecting %dx%d image, got %v", 4*tileSize, 2*tileSize, img.Bounds())
	}
	forest := lib.TerrainType{Name: "forest"}.Color()
	if c := img.NRGBAAt(3*tileSize, 0); c != color.NRGBAModel.Convert(forest) {
		t.Errorf("Expecting forest colour at (3,0), got %v", c)
	}
	side := lib.SideColor(0)
	if c := img.NRGBAAt(tileSize-3, 3); c != color.NRGBAModel.Convert(side) {
		t.Errorf("Expecting side colour inside the unit tile, got %v", c)
	}
}

func TestRenderTraversable(t *testing.T) {
	battle := testBattle(t)
	if _, err := battle.Activate(1); err != nil {
		t.Fatal(err)
	}
	img := RenderBattle(battle)
	plain := color.NRGBAModel.Convert(lib.TerrainType{Name: "plain"}.Color())
	if c := img.NRGBAAt(tileSize, tileSize); c == plain {
		t.Errorf("Expecting (1,1) to be marked")
	}
	if c := img.NRGBAAt(2*tileSize, tileSize); c != plain {
		t.Errorf("Expecting (2,1) to be left unmarked, got %v", c)
	}
}

func TestScale(t *testing.T) {
	img := Scale(RenderBattle(testBattle(t)), 3)
	if img.Bounds().Dx() != 12*tileSize {
		t.Errorf("Expecting width %d, got %d", 12*tileSize, img.Bounds().Dx())
	}
}

func TestUnitLabel(t *testing.T) {
	for name, expected := range map[string]string{
		"archer": "a",
		"Żubr":   "Ż",
		"":       "",
		"\xffx":  "",
	} {
		if label := unitLabel(name); label != expected {
			t.Errorf("unitLabel(%q): expecting %q, got %q", name, expected, label)
		}
	}
}
