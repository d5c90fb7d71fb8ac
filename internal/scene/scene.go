package scene

import "github.com/go-gl/mathgl/mgl32"

type AmbientLight struct {
	Color     Color
	Intensity float32
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Color     Color
	Intensity float32
	Position  mgl32.Vec3
}

// Direction returns the unit vector from a lit surface toward the light.
func (l DirectionalLight) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

// Scene is the set of cells that get drawn and hit-tested, plus its lighting.
type Scene struct {
	Ambient    AmbientLight
	Sun        DirectionalLight
	Background Color

	cells []*Cell
	index map[Coord]*Cell
}

func New() *Scene {
	return &Scene{
		Ambient:    AmbientLight{Color: White, Intensity: 0.8},
		Sun:        DirectionalLight{Color: White, Intensity: 0.8, Position: mgl32.Vec3{3, 4, 5}},
		Background: Black,
		index:      make(map[Coord]*Cell),
	}
}

// Add registers c. Adding a cell at an occupied coordinate replaces the old one.
func (s *Scene) Add(c *Cell) {
	if c == nil {
		return
	}
	if old, ok := s.index[c.Coord]; ok {
		s.Remove(old)
	}
	s.cells = append(s.cells, c)
	s.index[c.Coord] = c
}

func (s *Scene) Remove(c *Cell) bool {
	for i, have := range s.cells {
		if have != c {
			continue
		}
		s.cells = append(s.cells[:i], s.cells[i+1:]...)
		delete(s.index, c.Coord)
		return true
	}
	return false
}

func (s *Scene) Cells() []*Cell { return s.cells }

func (s *Scene) Len() int { return len(s.cells) }

func (s *Scene) Cell(c Coord) (*Cell, bool) {
	cell, ok := s.index[c]
	return cell, ok
}

// Hit is the nearest intersection of a ray with a cell.
type Hit struct {
	Cell     *Cell
	Distance float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
}

// Intersect returns the cell whose box the ray enters first.
func (s *Scene) Intersect(r Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, c := range s.cells {
		lo, hi := c.Bounds()
		t, axis, ok := r.box(lo, hi)
		if !ok || (found && t >= best.Distance) {
			continue
		}
		n := mgl32.Vec3{}
		if r.Dir[axis] > 0 {
			n[axis] = -1
		} else {
			n[axis] = 1
		}
		best = Hit{Cell: c, Distance: t, Point: r.At(t), Normal: n}
		found = true
	}
	return best, found
}
