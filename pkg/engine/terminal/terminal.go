// Package terminal wraps terminal size detection and viewport math for the
// text renderer.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Viewport is a rectangular window over a larger grid, in grid coordinates.
type Viewport struct {
	X, Y          int // top-left corner
	Width, Height int
}

// CenterViewport computes a window of at most viewW×viewH cells over a
// gridW×gridH grid, centered on (cx, cy) and clamped to the grid edges.
// Smaller grids are shown whole.
func CenterViewport(gridW, gridH, viewW, viewH, cx, cy int) Viewport {
	if viewW > gridW {
		viewW = gridW
	}
	if viewH > gridH {
		viewH = gridH
	}

	x := cx - viewW/2
	if x < 0 {
		x = 0
	}
	if x+viewW > gridW {
		x = gridW - viewW
	}

	y := cy - viewH/2
	if y < 0 {
		y = 0
	}
	if y+viewH > gridH {
		y = gridH - viewH
	}

	return Viewport{X: x, Y: y, Width: viewW, Height: viewH}
}

// Contains reports whether a grid coordinate falls inside the viewport.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Width && y >= v.Y && y < v.Y+v.Height
}
