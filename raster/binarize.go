package raster

import (
	"image"

	"github.com/soypat/glgl/math/ms1"
)

// ITU-R BT.601 luma weights, the same ones image/color uses for Gray conversion.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Flatten reduces img to an opaque grayscale Grid. Transparent regions are composited
// over white. If invert is set the color channels are complemented before compositing,
// so a white shape on a transparent canvas becomes a black shape on a white canvas.
func Flatten(img image.Image, invert bool) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.Height; y++ {
			row := g.Row(y)
			pix := gray.Pix[gray.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range row {
				v := float32(pix[x]) / 0xff
				if invert {
					v = 1 - v
				}
				row[x] = v
			}
		}
		return g
	}
	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		for x := range row {
			r, gr, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if invert {
				// Complementing premultiplied color against its own alpha
				// is the same as complementing the straight color.
				r, gr, bl = a-r, a-gr, a-bl
			}
			bg := 0xffff - a
			r += bg
			gr += bg
			bl += bg
			luma := (lumaR*float32(r) + lumaG*float32(gr) + lumaB*float32(bl)) / 0xffff
			row[x] = ms1.Clamp(luma, 0, 1)
		}
	}
	return g
}

// Threshold classifies the grid samples. Samples at or below level are foreground,
// so dark content on a light background is the shape.
func Threshold(g *Grid, level float32) *Mask {
	m := NewMask(g.Width, g.Height)
	for i, v := range g.Pix {
		m.Pix[i] = v <= level
	}
	return m
}
