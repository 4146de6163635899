package raster

import (
	"image"
	"math"
)

// EncodeNRGBA writes the field into the alpha channel of a white 8 bit image.
func EncodeNRGBA(f *Field) *image.NRGBA {
	img := image.NewNRGBA(f.Bounds())
	for y := 0; y < f.Height; y++ {
		pix := img.Pix[y*img.Stride:]
		for x, v := range f.Row(y) {
			i := 4 * x
			pix[i+0] = 0xff
			pix[i+1] = 0xff
			pix[i+2] = 0xff
			pix[i+3] = unitToUint8(v)
		}
	}
	return img
}

// EncodeNRGBA64 writes the field into the alpha channel of a white 16 bit image.
func EncodeNRGBA64(f *Field) *image.NRGBA64 {
	img := image.NewNRGBA64(f.Bounds())
	for y := 0; y < f.Height; y++ {
		pix := img.Pix[y*img.Stride:]
		for x, v := range f.Row(y) {
			i := 8 * x
			for c := 0; c < 6; c++ {
				pix[i+c] = 0xff
			}
			a := unitToUint16(v)
			pix[i+6] = uint8(a >> 8)
			pix[i+7] = uint8(a)
		}
	}
	return img
}

// FieldFromAlpha reads a field back from the alpha channel of img.
func FieldFromAlpha(img image.Image) *Field {
	b := img.Bounds()
	f := NewField(b.Dx(), b.Dy())
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for x := range row {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = float32(a) / 0xffff
		}
	}
	return f
}

func unitToUint8(v float32) uint8 {
	if !(v > 0) {
		return 0
	} else if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(float64(v) * 0xff))
}
