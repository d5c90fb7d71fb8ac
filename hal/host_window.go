//go:build cgo

package hal

import (
	"image"
	"os"

	"cubegrid/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a resizable desktop window that displays the framebuffer and
// forwards pointer and resize events. It blocks until the window closes.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	cfg = cfg.withDefaults()
	h := newHostHAL(os.Stdout, cfg.Width, cfg.Height)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.in.poll()
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.Width() || g.img.Bounds().Dy() != fb.Height() {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
		g.scratch = make([]byte, len(fb.Buffer()))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := RGB888(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout keeps the logical screen equal to the window so cursor positions
// and framebuffer pixels share one coordinate space.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.h.resize(outsideWidth, outsideHeight)
	return g.h.fb.Width(), g.h.fb.Height()
}
