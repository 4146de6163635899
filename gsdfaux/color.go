package gsdfaux

import (
	"image/color"

	math "github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/glgl/math/ms3"
)

var red = color.RGBA{R: 255, A: 255}

// ColorConversionInigoQuilez creates a color conversion in the style of [Inigo Quilez]'s
// distance visualizations: orange outside, blue inside, banded every characteristic
// distance and white on the zero contour. Returns red for NaN values.
//
// [Inigo Quilez]: https://iquilezles.org/articles/distfunctions2d/
func ColorConversionInigoQuilez(characteristicDistance float32) func(float32) color.Color {
	inv := 1 / characteristicDistance
	outside := ms3.Vec{X: 0.9, Y: 0.6, Z: 0.3}
	inside := ms3.Vec{X: 0.65, Y: 0.85, Z: 1.0}
	white := ms3.Vec{X: 1, Y: 1, Z: 1}
	return func(d float32) color.Color {
		if math.IsNaN(d) {
			return red
		}
		d *= inv
		c := outside
		if d < 0 {
			c = inside
		}
		ad := math.Abs(d)
		c = ms3.Scale(1-math.Exp(-6*ad), c)
		c = ms3.Scale(0.8+0.2*math.Cos(150*d), c)
		edge := 1 - ms1.SmoothStep(0, 0.01, ad)
		c = ms3.InterpElem(c, white, ms3.Vec{X: edge, Y: edge, Z: edge})
		return vecToRGBA(c)
	}
}

// ColorConversionLinearGradient creates a conversion that blends linearly from c0 at
// d=-gradientLength/2 to c1 at d=+gradientLength/2. A zero gradientLength switches
// sharply between c0 and c1 at d=0.
func ColorConversionLinearGradient(gradientLength float32, c0, c1 color.Color) func(d float32) color.Color {
	v0, v1 := colorToVec(c0), colorToVec(c1)
	return func(d float32) color.Color {
		if math.IsNaN(d) {
			return red
		}
		if gradientLength == 0 {
			if d < 0 {
				return c0
			}
			return c1
		}
		t := ms1.Clamp(d/gradientLength+0.5, 0, 1)
		return vecToRGBA(ms3.InterpElem(v0, v1, ms3.Vec{X: t, Y: t, Z: t}))
	}
}

func colorToVec(c color.Color) ms3.Vec {
	r, g, b, _ := c.RGBA()
	return ms3.Vec{X: float32(r) / 0xffff, Y: float32(g) / 0xffff, Z: float32(b) / 0xffff}
}

func vecToRGBA(c ms3.Vec) color.RGBA {
	return color.RGBA{
		R: uint8(ms1.Clamp(c.X, 0, 1) * 255),
		G: uint8(ms1.Clamp(c.Y, 0, 1) * 255),
		B: uint8(ms1.Clamp(c.Z, 0, 1) * 255),
		A: 255,
	}
}

func hypot(a, b float32) float32 {
	return math.Hypot(a, b)
}
