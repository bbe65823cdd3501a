package ebiten

import (
	"image/color"

	"cagebreak/pkg/game/difficulty"
)

// Window layout
const (
	cellSize     = 12 // on-screen pixels per level tile
	hudHeight    = 32
	windowWidth  = 1280
	windowHeight = difficulty.LevelHeight*cellSize + hudHeight
	scrollSpeed  = 2 // columns per frame while an arrow key is held
	markerInset  = 2
)

// Color palette for the preview
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray sky
	colorHUD        = color.RGBA{15, 15, 26, 255}    // Darker strip under the map
	colorTileFlat   = color.RGBA{180, 180, 200, 255} // Tiles without a color
	colorEnemy      = color.RGBA{255, 80, 80, 255}   // Bright red
	colorBoss       = color.RGBA{255, 0, 255, 255}   // Magenta
	colorObject     = color.RGBA{0, 255, 255, 255}   // Cyan
	colorLadder     = color.RGBA{200, 170, 100, 255} // Tan
)
