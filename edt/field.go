package edt

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/rastersdf/raster"
)

// SignedField combines the distance grids returned by [Transformer.Transform] into a
// normalized field centered at 0.5 on the shape boundary:
//
//	background: 0.5 - 0.5*clamp(outside/spread, 0, 1)
//	foreground: 0.5 + 0.5*clamp(inside/spread, 0, 1)
//
// spread must be positive and all arguments must share dimensions.
func SignedField(m *raster.Mask, outside, inside *raster.Distance, spread float32) *raster.Field {
	if !(spread > 0) || math32.IsInf(spread, 1) {
		panic(fmt.Sprintf("edt: invalid spread %v", spread))
	}
	if outside.Width != m.Width || outside.Height != m.Height || inside.Width != m.Width || inside.Height != m.Height {
		panic("edt: mask and distance dimensions mismatch")
	}
	field := raster.NewField(m.Width, m.Height)
	for i, fg := range m.Pix {
		if fg {
			field.Pix[i] = 0.5 + 0.5*ms1.Clamp(inside.Pix[i]/spread, 0, 1)
		} else {
			field.Pix[i] = 0.5 - 0.5*ms1.Clamp(outside.Pix[i]/spread, 0, 1)
		}
	}
	return field
}

// Encode runs the distance transform on m and encodes the result as a signed field.
func (t *Transformer) Encode(m *raster.Mask, spread float32) *raster.Field {
	outside, inside := t.Transform(m, spread)
	return SignedField(m, outside, inside, spread)
}
