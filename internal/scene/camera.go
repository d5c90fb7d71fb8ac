package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera. Position is exported so tweens can drive it;
// orientation only changes through LookAt.
type Camera struct {
	Position mgl32.Vec3
	Up       mgl32.Vec3

	FovY   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32

	forward mgl32.Vec3
	proj    mgl32.Mat4
}

func NewCamera(fovY, aspect, near, far float32) *Camera {
	c := &Camera{
		Up:      mgl32.Vec3{0, 1, 0},
		FovY:    fovY,
		Aspect:  aspect,
		Near:    near,
		Far:     far,
		forward: mgl32.Vec3{0, 0, -1},
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection after FovY, Aspect, Near or Far change.
func (c *Camera) UpdateProjection() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// LookAt turns the camera toward p. It is a no-op when p is the camera position.
func (c *Camera) LookAt(p mgl32.Vec3) {
	d := p.Sub(c.Position)
	if d.Len() == 0 {
		return
	}
	c.forward = d.Normalize()
}

func (c *Camera) Forward() mgl32.Vec3 { return c.forward }

func (c *Camera) Projection() mgl32.Mat4 { return c.proj }

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.forward), c.Up)
}

func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.proj.Mul4(c.View())
}

// Rays snapshots the current pose for generating many rays.
func (c *Camera) Rays() RayGen {
	return RayGen{origin: c.Position, inv: c.ViewProjection().Inv()}
}

// Ray returns the picking ray through ndc.
func (c *Camera) Ray(ndc mgl32.Vec2) Ray {
	return c.Rays().At(ndc)
}

// Project maps a world point to normalized device coordinates.
func (c *Camera) Project(p mgl32.Vec3) mgl32.Vec3 {
	v := c.ViewProjection().Mul4x1(p.Vec4(1))
	if w := v.W(); w != 0 {
		v = v.Mul(1 / w)
	}
	return v.Vec3()
}
