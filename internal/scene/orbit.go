package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const polarEps = 1e-4

// OrbitControls keeps a camera orbiting a target point.
//
// Rotate and Dolly only accumulate; Update applies the pending change, clamps
// the distance and re-aims the camera at Target.
type OrbitControls struct {
	Camera *Camera
	Target mgl32.Vec3

	MinDistance float32
	MaxDistance float32

	dAzimuth float32
	dPolar   float32
	scale    float32
}

func NewOrbitControls(cam *Camera) *OrbitControls {
	return &OrbitControls{
		Camera:      cam,
		MinDistance: 0,
		MaxDistance: float32(math.Inf(1)),
		scale:       1,
	}
}

// Rotate queues an orbit by dAzimuth around the up axis and dPolar toward it.
func (o *OrbitControls) Rotate(dAzimuth, dPolar float32) {
	o.dAzimuth += dAzimuth
	o.dPolar += dPolar
}

// Dolly queues a distance change; scale < 1 moves closer.
func (o *OrbitControls) Dolly(scale float32) {
	if scale <= 0 {
		return
	}
	o.scale *= scale
}

func (o *OrbitControls) Update() {
	if o.Camera == nil {
		return
	}
	offset := o.Camera.Position.Sub(o.Target)
	r := offset.Len()

	pending := o.dAzimuth != 0 || o.dPolar != 0 || o.scale != 1
	if r > 0 && (pending || r < o.MinDistance || r > o.MaxDistance) {
		theta := math.Atan2(float64(offset.X()), float64(offset.Z()))
		phi := math.Acos(clamp64(float64(offset.Y()/r), -1, 1))

		theta += float64(o.dAzimuth)
		phi = clamp64(phi+float64(o.dPolar), polarEps, math.Pi-polarEps)
		r = clamp32(r*o.scale, o.MinDistance, o.MaxDistance)

		sinPhi := math.Sin(phi)
		offset = mgl32.Vec3{
			r * float32(sinPhi*math.Sin(theta)),
			r * float32(math.Cos(phi)),
			r * float32(sinPhi*math.Cos(theta)),
		}
		o.Camera.Position = o.Target.Add(offset)
	}

	o.dAzimuth, o.dPolar, o.scale = 0, 0, 1
	o.Camera.LookAt(o.Target)
}

func clamp64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
