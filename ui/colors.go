package ui

import (
	"image/color"
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	gridLineColor   = color.RGBA{0x20, 0x20, 0x20, 0xff}
	selectedColor   = color.RGBA{0xff, 0xe0, 0x40, 0xff}
	spentColor      = color.RGBA{0x60, 0x60, 0x60, 0xc0}
)
