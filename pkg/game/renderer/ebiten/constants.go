// Package ebiten provides an Ebiten-based 2D graphical renderer for the arena.
package ebiten

import "image/color"

// Color palette for the game - brighter colors for visibility
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall          = color.RGBA{60, 60, 80, 255}    // Dark gray-blue
	colorFloor         = color.RGBA{120, 110, 90, 255}  // Cave floor brown
	colorExit          = color.RGBA{100, 255, 100, 255} // Bright green
	colorEnemy         = color.RGBA{255, 80, 80, 255}   // Bright red
	colorSpores        = color.RGBA{200, 255, 80, 255}  // Sickly yellow-green
	colorHealthOK      = color.RGBA{0, 220, 0, 255}     // Bright green
	colorHealthLow     = color.RGBA{255, 100, 100, 255} // Bright red
	colorHealthTrack   = color.RGBA{50, 50, 70, 255}    // Empty gauge backing
)

// Window and tile defaults
const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
	defaultTileSize     = 16
	minTileSize         = 4
	maxTileSize         = 48
)
