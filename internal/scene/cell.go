package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// GridSize is the lattice edge length in cells.
	GridSize = 4
	// CellEdge is the rendered cube edge length; cells sit one unit apart.
	CellEdge = 0.5
)

// Coord addresses a lattice slot.
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

func (c Coord) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}

// Cell is one cube of the lattice.
//
// Color is the color derived from the cell's coordinates and never changes.
// Display is what gets drawn; hover highlighting writes it and Restore undoes it.
type Cell struct {
	Coord    Coord
	Position mgl32.Vec3
	Edge     float32
	Color    Color
	Display  Color
}

func NewCell(c Coord, size int) *Cell {
	col := LatticeColor(c, size)
	return &Cell{
		Coord:    c,
		Position: c.Vec3(),
		Edge:     CellEdge,
		Color:    col,
		Display:  col,
	}
}

// Restore puts the displayed color back to the original.
func (c *Cell) Restore() {
	c.Display = c.Color
}

// Bounds returns the axis-aligned box at the cell's current position.
func (c *Cell) Bounds() (lo, hi mgl32.Vec3) {
	h := c.Edge / 2
	half := mgl32.Vec3{h, h, h}
	return c.Position.Sub(half), c.Position.Add(half)
}

func (c *Cell) String() string {
	return "cell" + c.Coord.String()
}

// Populate adds one cell per slot of a size×size×size lattice to s and returns
// them in x, y, z nesting order.
func Populate(s *Scene, size int) []*Cell {
	cells := make([]*Cell, 0, size*size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				c := NewCell(Coord{x, y, z}, size)
				s.Add(c)
				cells = append(cells, c)
			}
		}
	}
	return cells
}
