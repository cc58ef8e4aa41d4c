package lib

import (
	"image/color"
)

// Colors shared by all the hosts and tools drawing a battle.

var terrainColors = map[string]color.RGBA{
	"plain":  {0x88, 0xb0, 0x58, 0xff},
	"forest": {0x2c, 0x6a, 0x2c, 0xff},
	"hill":   {0xa8, 0x90, 0x60, 0xff},
	"river":  {0x38, 0x68, 0xb8, 0xff},
}

var unknownTerrainColor = color.RGBA{0x70, 0x70, 0x70, 0xff}

var sideColors = []color.RGBA{
	{0xc8, 0x30, 0x30, 0xff},
	{0x30, 0x50, 0xd0, 0xff},
	{0xd0, 0xa0, 0x20, 0xff},
	{0x80, 0x30, 0xa0, 0xff},
}

var TraversableColor = color.NRGBA{0x40, 0x80, 0xff, 0x60}

// Color falls back to gray for terrain types without a colour of their own.
func (t TerrainType) Color() color.RGBA {
	if c, ok := terrainColors[t.Name]; ok {
		return c
	}
	return unknownTerrainColor
}

func SideColor(side int) color.RGBA {
	return sideColors[Abs(side)%len(sideColors)]
}
