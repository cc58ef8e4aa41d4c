// render_map draws a scenario board to a PNG file. With -unit it also marks the tiles
// the named unit can reach this turn.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pwiecz/tile_tactics/lib"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const tileSize = 16

var unitName = flag.String("unit", "", "mark tiles reachable by the unit with this name")
var scale = flag.Int("scale", 2, "scale factor of the output image")
var output = flag.String("o", "", "output file. Defaults to the scenario name with .png extension")

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Usage: %s [flags] <scenario.yaml>\n", os.Args[0])
	}
	filename := flag.Arg(0)
	scenario, err := lib.LoadScenario(os.DirFS(filepath.Dir(filename)), filepath.Base(filename))
	if err != nil {
		log.Fatal(err)
	}
	battle, err := scenario.NewBattle(nil)
	if err != nil {
		log.Fatal(err)
	}
	if *unitName != "" {
		unit := findUnit(battle, *unitName)
		if unit == nil {
			log.Fatalf("No unit named \"%s\" in %s", *unitName, filename)
		}
		if _, err := battle.Activate(unit.ID); err != nil {
			log.Fatal(err)
		}
	}

	img := RenderBattle(battle)
	if *scale > 1 {
		img = Scale(img, *scale)
	}
	outFile := *output
	if outFile == "" {
		outFile = filename[:len(filename)-len(filepath.Ext(filename))] + ".png"
	}
	if err := SaveImageToFile(img, outFile); err != nil {
		log.Fatal(err)
	}
}

func findUnit(battle *lib.Battle, name string) *lib.Unit {
	for _, unit := range battle.Units() {
		if unit.Name == name {
			return unit
		}
	}
	return nil
}

// RenderBattle draws one tileSize square per tile and an initial-letter marker per unit.
func RenderBattle(battle *lib.Battle) *image.NRGBA {
	grid := battle.Grid()
	img := image.NewNRGBA(image.Rect(0, 0, grid.Width*tileSize, grid.Height*tileSize))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := grid.Tile(lib.GridCoords{X: x, Y: y})
			rect := tileRect(tile.GridPosition())
			draw.Draw(img, rect, image.NewUniform(tile.Terrain.Color()), image.Point{}, draw.Src)
			if tile.Traversable {
				draw.Draw(img, rect, image.NewUniform(lib.TraversableColor), image.Point{}, draw.Over)
			}
		}
	}
	for _, unit := range battle.Units() {
		rect := tileRect(unit.GridPosition()).Inset(2)
		draw.Draw(img, rect, image.NewUniform(lib.SideColor(unit.Side)), image.Point{}, draw.Src)
		if label := unitLabel(unit.Name); label != "" {
			drawLabel(img, rect, label)
		}
	}
	return img
}

// unitLabel is the first letter of name.
func unitLabel(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

func tileRect(xy lib.GridCoords) image.Rectangle {
	return image.Rect(xy.X*tileSize, xy.Y*tileSize, (xy.X+1)*tileSize, (xy.Y+1)*tileSize)
}

func drawLabel(img draw.Image, rect image.Rectangle, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(rect.Min.X+2, rect.Max.Y-2),
	}
	d.DrawString(label)
}

func Scale(img image.Image, factor int) *image.NRGBA {
	bounds := img.Bounds()
	scaled := image.NewNRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
	return scaled
}

func SaveImageToFile(image image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create \"%s\" file (%v)", filename, err)
	}
	if err := png.Encode(f, image); err != nil {
		f.Close()
		return fmt.Errorf("error encoding image to \"%s\" (%v)", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing \"%s\" file (%v)", filename, err)
	}
	return nil
}
