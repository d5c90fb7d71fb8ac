// Package render draws a cube scene into a hal framebuffer by casting one ray
// per low-resolution pixel and upsampling the result.
package render

import (
	"math"

	"cubegrid/hal"
	"cubegrid/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultScale renders at a quarter of the output resolution per axis.
	DefaultScale = 4

	defaultShininess = 100
	// Phong specular color 0x111111.
	specular = float32(0x11) / 255
)

type rgb struct {
	r, g, b uint8
}

// Renderer is the output surface of the scene. SetSize follows the viewport;
// Render scales to whatever framebuffer it is given.
type Renderer struct {
	Shininess float32

	width  int
	height int
	scale  int

	sW    int
	sH    int
	small []rgb
}

func New(width, height, scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	r := &Renderer{Shininess: defaultShininess, scale: scale}
	r.SetSize(width, height)
	return r
}

func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height

	sW := max(width/r.scale, 1)
	sH := max(height/r.scale, 1)
	if sW != r.sW || sH != r.sH || r.small == nil {
		r.sW, r.sH = sW, sH
		r.small = make([]rgb, sW*sH)
	}
}

func (r *Renderer) Size() (width, height int) { return r.width, r.height }

// InternalSize reports the resolution rays are actually cast at.
func (r *Renderer) InternalSize() (width, height int) { return r.sW, r.sH }

// Render draws sc as seen by cam and presents fb.
func (r *Renderer) Render(sc *scene.Scene, cam *scene.Camera, fb hal.Framebuffer) error {
	if fb == nil || r.sW <= 0 || r.sH <= 0 {
		return nil
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return hal.ErrNotImplemented
	}

	rays := cam.Rays()
	light := sc.Sun.Direction()
	bg := toRGB(sc.Background)
	for y := 0; y < r.sH; y++ {
		for x := 0; x < r.sW; x++ {
			ndc := scene.PixelToNDC(float32(x)+0.5, float32(y)+0.5, r.sW, r.sH)
			ray := rays.At(ndc)
			hit, ok := sc.Intersect(ray)
			if !ok {
				r.small[y*r.sW+x] = bg
				continue
			}
			r.small[y*r.sW+x] = r.shade(sc, hit, ray, light)
		}
	}

	r.upsample(fb)
	return fb.Present()
}

// shade applies ambient, Lambert diffuse and Blinn-Phong specular terms.
func (r *Renderer) shade(sc *scene.Scene, hit scene.Hit, ray scene.Ray, light mgl32.Vec3) rgb {
	base := colorVec(hit.Cell.Display)
	amb := colorVec(sc.Ambient.Color).Mul(sc.Ambient.Intensity)
	sun := colorVec(sc.Sun.Color).Mul(sc.Sun.Intensity)

	ndotl := max(hit.Normal.Dot(light), 0)
	half := light.Sub(ray.Dir).Normalize()
	spec := float32(0)
	if ndotl > 0 {
		spec = float32(math.Pow(float64(max(hit.Normal.Dot(half), 0)), float64(r.Shininess))) * specular
	}

	var out rgb
	ch := [3]*uint8{&out.r, &out.g, &out.b}
	for i := 0; i < 3; i++ {
		v := base[i]*(amb[i]+sun[i]*ndotl) + sun[i]*spec
		*ch[i] = uint8(clamp01(v)*255 + 0.5)
	}
	return out
}

func (r *Renderer) upsample(fb hal.Framebuffer) {
	w := fb.Width()
	h := fb.Height()
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	if w <= 0 || h <= 0 || buf == nil || stride <= 0 {
		return
	}

	for y := 0; y < h; y++ {
		sy := min((y*r.sH)/h, r.sH-1)
		row := y * stride
		for x := 0; x < w; x++ {
			sx := min((x*r.sW)/w, r.sW-1)
			c := r.small[sy*r.sW+sx]

			pixel := hal.RGB565(c.r, c.g, c.b)
			off := row + x*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = byte(pixel)
			buf[off+1] = byte(pixel >> 8)
		}
	}
}

func toRGB(c scene.Color) rgb {
	r, g, b := c.RGB()
	return rgb{r, g, b}
}

func colorVec(c scene.Color) mgl32.Vec3 {
	r, g, b := c.RGB()
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
