package gleval

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/rastersdf/raster"
)

// FieldSDF2 exposes a generated [raster.Field] as a signed distance function
// measured in field pixels. Pixel (i,j) covers the unit square with corner (i,j),
// its sample lies at the pixel center. Positions in between are interpolated
// bilinearly and positions outside the field are clamped to the nearest edge sample.
//
// Distances beyond the field's spread are not recoverable and evaluate to ±spread.
type FieldSDF2 struct {
	field  *raster.Field
	spread float32
	evals  uint64
}

// NewFieldSDF2 wraps field, which was encoded with the given spread in its own pixel units.
func NewFieldSDF2(field *raster.Field, spread float32) (*FieldSDF2, error) {
	if field == nil || field.Empty() {
		return nil, errors.New("empty field")
	} else if !(spread > 0) || math32.IsInf(spread, 1) {
		return nil, errors.New("spread must be positive")
	}
	return &FieldSDF2{field: field, spread: spread}, nil
}

// Bounds returns the field's rectangle in pixel units.
func (s *FieldSDF2) Bounds() ms2.Box {
	return ms2.Box{Max: ms2.Vec{X: float32(s.field.Width), Y: float32(s.field.Height)}}
}

// Evaluations returns the amount of positions evaluated during s's lifetime.
func (s *FieldSDF2) Evaluations() uint64 { return s.evals }

// Evaluate implements [SDF2]. Inside of the shape distances are negative.
func (s *FieldSDF2) Evaluate(pos []ms2.Vec, dist []float32, userData any) error {
	if len(pos) != len(dist) {
		return errMismatchBufferLength
	} else if len(pos) == 0 {
		return errEmptyBuffers
	}
	scale := 2 * s.spread
	for i, p := range pos {
		dist[i] = (0.5 - s.sample(p)) * scale
	}
	s.evals += uint64(len(pos))
	return nil
}

// sample bilinearly interpolates the field value at p.
func (s *FieldSDF2) sample(p ms2.Vec) float32 {
	f := s.field
	maxX, maxY := float32(f.Width-1), float32(f.Height-1)
	u := ms1.Clamp(p.X-0.5, 0, maxX)
	v := ms1.Clamp(p.Y-0.5, 0, maxY)
	x0, y0 := math32.Floor(u), math32.Floor(v)
	tx, ty := u-x0, v-y0
	i0, j0 := int(x0), int(y0)
	i1, j1 := min(i0+1, f.Width-1), min(j0+1, f.Height-1)
	top := ms1.Interp(f.At(i0, j0), f.At(i1, j0), tx)
	bot := ms1.Interp(f.At(i0, j1), f.At(i1, j1), tx)
	return ms1.Interp(top, bot, ty)
}
