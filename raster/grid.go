// Package raster holds the in-memory planes the SDF pipeline operates on and the
// per-pixel stages that do not need a neighbourhood larger than one row or column:
// flattening, thresholding, padding, trimming and alpha encoding.
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

var errZeroSize = errors.New("zero sized grid")

// Grid is a single channel plane of float32 samples stored row major.
// Intensities produced by [Flatten] lie in [0,1] where 0 is black.
type Grid struct {
	Width, Height int
	Pix           []float32
}

// NewGrid allocates a zeroed Grid. It panics on negative dimensions.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: negative grid size %dx%d", width, height))
	}
	return &Grid{Width: width, Height: height, Pix: make([]float32, width*height)}
}

// At returns the sample at column x row y.
func (g *Grid) At(x, y int) float32 { return g.Pix[y*g.Width+x] }

// Set sets the sample at column x row y.
func (g *Grid) Set(x, y int, v float32) { g.Pix[y*g.Width+x] = v }

// Row returns the samples of row y. The returned slice aliases g.
func (g *Grid) Row(y int) []float32 { return g.Pix[y*g.Width : (y+1)*g.Width] }

// Bounds returns the grid rectangle anchored at the origin.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.Width, g.Height) }

// Empty reports whether the grid has no samples.
func (g *Grid) Empty() bool { return g.Width <= 0 || g.Height <= 0 }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	copy(c.Pix, g.Pix)
	return c
}

// Sub returns a newly allocated copy of the samples in r. r must lie within g's bounds.
func (g *Grid) Sub(r image.Rectangle) *Grid {
	if !r.In(g.Bounds()) {
		panic(fmt.Sprintf("raster: sub rectangle %v outside of %v", r, g.Bounds()))
	}
	s := NewGrid(r.Dx(), r.Dy())
	for y := 0; y < s.Height; y++ {
		copy(s.Row(y), g.Pix[(r.Min.Y+y)*g.Width+r.Min.X:])
	}
	return s
}

// Gray16 converts the grid to a 16 bit grayscale image, clamping samples to [0,1].
func (g *Grid) Gray16() *image.Gray16 {
	img := image.NewGray16(g.Bounds())
	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		pix := img.Pix[y*img.Stride:]
		for x, v := range row {
			u := unitToUint16(v)
			pix[2*x] = uint8(u >> 8)
			pix[2*x+1] = uint8(u)
		}
	}
	return img
}

// GridFromGray16 converts a 16 bit grayscale image to a Grid with samples in [0,1].
func GridFromGray16(img *image.Gray16) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		pix := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		row := g.Row(y)
		for x := range row {
			row[x] = float32(uint16(pix[2*x])<<8|uint16(pix[2*x+1])) / 0xffff
		}
	}
	return g
}

// Mask is a foreground/background classification of a grid. true is foreground.
type Mask struct {
	Width, Height int
	Pix           []bool
}

// NewMask allocates an all background mask.
func NewMask(width, height int) *Mask {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: negative mask size %dx%d", width, height))
	}
	return &Mask{Width: width, Height: height, Pix: make([]bool, width*height)}
}

// At reports whether the pixel at column x row y is foreground.
func (m *Mask) At(x, y int) bool { return m.Pix[y*m.Width+x] }

// Set classifies the pixel at column x row y.
func (m *Mask) Set(x, y int, fg bool) { m.Pix[y*m.Width+x] = fg }

// Bounds returns the mask rectangle anchored at the origin.
func (m *Mask) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

// Empty reports whether the mask has no pixels.
func (m *Mask) Empty() bool { return m.Width <= 0 || m.Height <= 0 }

// Count returns the amount of foreground pixels.
func (m *Mask) Count() (n int) {
	for _, fg := range m.Pix {
		if fg {
			n++
		}
	}
	return n
}

// Invert returns a new mask with foreground and background swapped.
func (m *Mask) Invert() *Mask {
	inv := NewMask(m.Width, m.Height)
	for i, fg := range m.Pix {
		inv.Pix[i] = !fg
	}
	return inv
}

// Distance holds per pixel Euclidean distances in pixels, saturated at a spread.
type Distance struct {
	Grid
}

// NewDistance allocates a zeroed distance grid.
func NewDistance(width, height int) *Distance {
	return &Distance{Grid: *NewGrid(width, height)}
}

// Field is a normalized signed distance field. 0.5 marks the shape boundary,
// values approach 1 inside the shape and 0 outside of it.
type Field struct {
	Grid
}

// NewField allocates a zeroed field, which is fully saturated background.
func NewField(width, height int) *Field {
	return &Field{Grid: *NewGrid(width, height)}
}

// Sub returns a newly allocated copy of the field samples in r.
func (f *Field) Sub(r image.Rectangle) *Field {
	return &Field{Grid: *f.Grid.Sub(r)}
}

// CheckSize returns an error if any of the arguments describe a zero sized plane.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", errZeroSize, width, height)
	}
	return nil
}

func unitToUint16(v float32) uint16 {
	switch {
	case v <= 0 || math32.IsNaN(v):
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint16(v*0xffff + 0.5)
}
