package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const parallelEps = 1e-9

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// box is the slab test against an axis-aligned box. It returns the entry
// distance and the axis of the entry face. A ray starting inside enters at 0.
func (r Ray) box(lo, hi mgl32.Vec3) (t float32, axis int, ok bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Dir[i]
		if d > -parallelEps && d < parallelEps {
			if o < lo[i] || o > hi[i] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (lo[i] - o) * inv
		t2 := (hi[i] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			axis = i
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, 0, false
		}
	}

	if tmax < 0 {
		return 0, 0, false
	}
	if tmin < 0 {
		tmin = 0
	}
	return tmin, axis, true
}

// RayGen turns normalized device coordinates into world rays for one camera pose.
type RayGen struct {
	origin mgl32.Vec3
	inv    mgl32.Mat4
}

// At returns the ray through ndc, where both axes span [-1,1] and +y is up.
func (g RayGen) At(ndc mgl32.Vec2) Ray {
	p := g.inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 0.5, 1})
	if w := p.W(); w != 0 {
		p = p.Mul(1 / w)
	}
	return Ray{Origin: g.origin, Dir: p.Vec3().Sub(g.origin).Normalize()}
}

// PixelToNDC maps a pixel position in a width×height viewport to normalized
// device coordinates with the y axis flipped.
func PixelToNDC(x, y float32, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		x/float32(width)*2 - 1,
		-(y/float32(height))*2 + 1,
	}
}
