// Package render turns display cells into pixels: one pixel per cell,
// point-sampled, row-major with pixel index x + y*width.
package render

import (
	"fmt"
	"image"
	"image/color"
)

// Fill converts cell values into RGBA bytes in buf using palette. A value past
// the end of the palette takes the last colour. When the palette is empty the
// buffer is cleared to transparent black.
func Fill(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// BinaryPalette builds a two-entry palette from arbitrary colours.
func BinaryPalette(off, on color.Color) []color.RGBA {
	return []color.RGBA{toRGBA(off), toRGBA(on)}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Image builds a w*h RGBA image from row-major cells.
func Image(w, h int, cells []uint8, palette []color.RGBA) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: invalid image size %dx%d", w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("render: got %d cells for a %dx%d image", len(cells), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Fill(img.Pix, cells, palette)
	return img, nil
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling.
func Scale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			src := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			px := img.Pix[src : src+4]
			for dy := 0; dy < factor; dy++ {
				row := out.PixOffset(x*factor, y*factor+dy)
				for dx := 0; dx < factor; dx++ {
					copy(out.Pix[row+dx*4:row+dx*4+4], px)
				}
			}
		}
	}
	return out
}
