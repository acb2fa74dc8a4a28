package generator

import "cavearena/pkg/engine/world"

// Surface is the tile grid a generated arena is projected onto. The scene
// collaborator supplies its own implementation; TileBuffer is the in-memory
// one used by the graphical frontend and tests.
type Surface interface {
	SetTile(x, y int, k world.CellKind)
}

// Project writes the logical grid onto dst, expanding each logical cell to a
// scale×scale block of the same kind, starting at offset.
func Project(grid *world.Grid, dst Surface, scale int, offset world.Position) {
	grid.ForEachCell(func(p world.Position, k world.CellKind) {
		baseX := offset.X + p.X*scale
		baseY := offset.Y + p.Y*scale
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				dst.SetTile(baseX+dx, baseY+dy, k)
			}
		}
	})
}

// TileBuffer is a fixed-size in-memory Surface.
type TileBuffer struct {
	width  int
	height int
	tiles  []world.CellKind
}

// NewTileBuffer creates a width×height buffer with every tile set to Wall.
func NewTileBuffer(width, height int) *TileBuffer {
	return &TileBuffer{
		width:  width,
		height: height,
		tiles:  make([]world.CellKind, width*height),
	}
}

// Size returns the buffer width and height.
func (b *TileBuffer) Size() (width, height int) {
	return b.width, b.height
}

// SetTile sets the tile at (x, y). Out-of-bounds writes are dropped.
func (b *TileBuffer) SetTile(x, y int, k world.CellKind) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.tiles[y*b.width+x] = k
}

// TileAt returns the tile at (x, y). Out-of-bounds reads return Wall.
func (b *TileBuffer) TileAt(x, y int) world.CellKind {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return world.Wall
	}
	return b.tiles[y*b.width+x]
}
