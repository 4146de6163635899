package raster

import (
	"errors"
	"image"
)

// Pad returns a copy of m extended by n background pixels on all four sides.
func Pad(m *Mask, n int) *Mask {
	if n < 0 {
		panic("raster: negative padding")
	}
	p := NewMask(m.Width+2*n, m.Height+2*n)
	for y := 0; y < m.Height; y++ {
		copy(p.Pix[(y+n)*p.Width+n:], m.Pix[y*m.Width:(y+1)*m.Width])
	}
	return p
}

var errTrimmedAll = errors.New("every row and column matches the background")

// Trim strips whole rows and columns equal to background from each of the four edges,
// scanning inward from each edge and stopping at the first line holding any other
// value. It returns the kept samples and their rectangle within f.
// If f holds nothing but background an error is returned.
func Trim(f *Field, background float32) (*Field, image.Rectangle, error) {
	r := f.Bounds()
	rowIsBg := func(y, x0, x1 int) bool {
		for _, v := range f.Pix[y*f.Width+x0 : y*f.Width+x1] {
			if v != background {
				return false
			}
		}
		return true
	}
	colIsBg := func(x, y0, y1 int) bool {
		for y := y0; y < y1; y++ {
			if f.Pix[y*f.Width+x] != background {
				return false
			}
		}
		return true
	}
	for r.Min.Y < r.Max.Y && rowIsBg(r.Min.Y, r.Min.X, r.Max.X) {
		r.Min.Y++
	}
	if r.Empty() {
		return nil, image.Rectangle{}, errTrimmedAll
	}
	for rowIsBg(r.Max.Y-1, r.Min.X, r.Max.X) {
		r.Max.Y--
	}
	for colIsBg(r.Min.X, r.Min.Y, r.Max.Y) {
		r.Min.X++
	}
	for colIsBg(r.Max.X-1, r.Min.Y, r.Max.Y) {
		r.Max.X--
	}
	return f.Sub(r), r, nil
}
