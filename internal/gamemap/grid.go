package gamemap

import "strings"

// Position is a grid coordinate. It is used as a map key throughout the
// engine, so it stays a small comparable value.
type Position struct {
	X, Y int
}

// Grid holds the dense row-major cell array for one dungeon.
type Grid struct {
	Width, Height int
	cells         [][]Cell
}

// NewGrid creates a Grid of the given dimensions filled with walls.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = CellWall
		}
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as wall,
// so callers never have to bounds-check before a lookup.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y][x]
}

// Set replaces the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// IsWall returns true when (x, y) is a wall or out of bounds.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == CellWall
}

// Find returns the position of the first cell equal to c in row-major
// order, or ok=false when no such cell exists.
func (g *Grid) Find(c Cell) (Position, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == c {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Count returns the number of cells equal to c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for y := range cells {
		cells[y] = make([]Cell, g.Width)
		copy(cells[y], g.cells[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// String renders the grid as newline-separated rows of cell symbols.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(rune(g.cells[y][x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
