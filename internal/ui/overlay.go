//go:build ebiten

package ui

import (
	"image/color"

	"cave-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type regionMaskProvider interface {
	RegionMask() []float32
}

type summaryProvider interface {
	Summary() string
}

const helpText = "G new  R regen  N step  Space auto  Tab pockets  H help  Q quit"

// Overlay draws the status line, key help and the optional pocket highlight on
// top of the map.
type Overlay struct {
	sim         core.Sim
	scale       int
	showRegions bool
	showHelp    bool
	maskImg     *ebiten.Image
	maskBuf     []byte
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showHelp: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showRegions = !o.showRegions
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay; auto reports whether auto-iterate is running.
func (o *Overlay) Draw(screen *ebiten.Image, auto bool) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showRegions {
		if provider, ok := o.sim.(regionMaskProvider); ok {
			o.drawMask(screen, provider.RegionMask(), color.RGBA{R: 230, G: 40, B: 60, A: 255})
		}
	}

	status := o.sim.Name()
	if provider, ok := o.sim.(summaryProvider); ok {
		status = provider.Summary()
	}
	if auto {
		status += "  [auto]"
	}
	face := basicfont.Face7x13
	o.drawBand(screen, 0, 18)
	text.Draw(screen, status, face, 6, 13, color.RGBA{R: 235, G: 235, B: 240, A: 255})
	if o.showHelp {
		bottom := size.H * o.effectiveScale()
		o.drawBand(screen, bottom-18, 18)
		text.Draw(screen, helpText, face, 6, bottom-5, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
}

func (o *Overlay) effectiveScale() int {
	if o.scale <= 0 {
		return 1
	}
	return o.scale
}

func (o *Overlay) drawBand(screen *ebiten.Image, y, height int) {
	width := o.sim.Size().W * o.effectiveScale()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(height))
	op.GeoM.Translate(0, float64(y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 160})
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	size := o.sim.Size()
	total := size.W * size.H
	if len(mask) != total || total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	const maxAlpha = 150.0
	for i := 0; i < total; i++ {
		base := i * 4
		intensity := float64(mask[i])
		if intensity <= 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		if intensity > 1 {
			intensity = 1
		}
		alpha := maxAlpha * intensity
		// WritePixels expects premultiplied alpha.
		o.maskBuf[base+0] = uint8(float64(tint.R) * alpha / 255)
		o.maskBuf[base+1] = uint8(float64(tint.G) * alpha / 255)
		o.maskBuf[base+2] = uint8(float64(tint.B) * alpha / 255)
		o.maskBuf[base+3] = uint8(alpha)
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	scale := o.effectiveScale()
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
