package ui

import "image/color"

// Palette for the top-down view.
var (
	colorBackground = color.RGBA{0x0b, 0x0d, 0x0f, 0xff}
	colorGrid       = color.RGBA{0x17, 0x1a, 0x1c, 0xff}
	colorCenterDot  = color.RGBA{0x9c, 0xcf, 0x8a, 0xff}

	colorHMD             = color.RGBA{0xff, 0x55, 0x55, 0xff}
	colorLeftController  = color.RGBA{0x4d, 0xa6, 0xff, 0xff}
	colorRightController = color.RGBA{0x00, 0xff, 0xd1, 0xff}
	colorTracker         = color.RGBA{0xff, 0xd1, 0x66, 0xff}
	colorBaseStation     = color.RGBA{0x4c, 0xff, 0x4c, 0xff}
	colorDevice          = color.RGBA{0xff, 0xff, 0xff, 0xff}

	colorLabel         = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorFingers       = color.RGBA{0xcc, 0xcc, 0xee, 0xff}
	colorDebugText     = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	colorDebugBackdrop = color.RGBA{0x00, 0x00, 0x00, 0xc0}
	colorError         = color.RGBA{0xff, 0x44, 0x44, 0xff}
)
