// Package rastersdf converts black and white or alpha masked raster images into
// signed distance field textures.
//
// The output is a white image whose alpha channel encodes, for every pixel, the signed
// distance to the nearest shape edge: 0.5 on the edge, rising to 1 inside the shape
// and falling to 0 outside of it, saturating Spread pixels away from the edge.
// Renderers sample such textures to draw crisp scalable text and icons.
//
// The pipeline stages live in the raster, resample and edt packages. [Generate]
// runs them in order on a decoded image and [GenerateFile] adds decoding and encoding.
package rastersdf

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/soypat/rastersdf/edt"
	"github.com/soypat/rastersdf/raster"
	"github.com/soypat/rastersdf/resample"
)

const (
	// binarizeLevel splits the flattened input into darker (foreground) and lighter halves.
	binarizeLevel = 0.5
	// supersampleLevel re-binarizes after supersampling. It is lower than binarizeLevel
	// to counter the resampling bias that would otherwise erode thin strokes.
	supersampleLevel = 0.3
)

// Generate computes the signed distance field of img.
func Generate(img image.Image, p Parameters) (*raster.Field, error) {
	mask, err := Binarize(img, p)
	if err != nil {
		return nil, err
	}
	log := Logger()
	kernel := p.kernel()

	spread := p.TransformSpread()
	if p.AutoSize {
		pad := int(math32.Ceil(spread))
		mask = raster.Pad(mask, pad)
		log.Debug("padded", "pad", pad, "width", mask.Width, "height", mask.Height)
	}

	watch := stopwatch()
	var t edt.Transformer
	outside, inside := t.Transform(mask, spread)
	field := edt.SignedField(mask, outside, inside, spread)
	log.Debug("distance transformed", "spread", spread, "took", watch())

	if p.AutoSize {
		trimmed, rect, err := raster.Trim(field, 0)
		if err != nil {
			return nil, procErr("trim", err)
		}
		field = trimmed
		log.Debug("trimmed", "rect", rect)
	}

	if factor := p.OutputFactor(); factor != 1 {
		watch = stopwatch()
		resized, err := resample.ResizeField(field, factor, kernel)
		if err != nil {
			return nil, procErr("downsample", err)
		}
		field = resized
		log.Debug("resized", "factor", factor, "width", field.Width, "height", field.Height, "took", watch())
	}
	if err := raster.CheckSize(field.Width, field.Height); err != nil {
		return nil, procErr("generate", err)
	}
	return field, nil
}

// Binarize flattens img and classifies its pixels into foreground and background.
// When p.Quality is not one the flattened image is supersampled before classification,
// so the returned mask has the dimensions of the supersampled grid.
func Binarize(img image.Image, p Parameters) (*raster.Mask, error) {
	b := img.Bounds()
	if err := p.ValidateInput(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	log := Logger()
	watch := stopwatch()
	flat := raster.Flatten(img, p.Invert)
	if p.Quality == 1 {
		mask := raster.Threshold(flat, binarizeLevel)
		log.Debug("binarized", "size", b.Size(), "invert", p.Invert, "foreground", mask.Count(), "took", watch())
		return mask, nil
	}
	super, err := resample.Resize(flat, float64(p.Quality), p.kernel())
	if err != nil {
		return nil, procErr("supersample", err)
	}
	mask := raster.Threshold(super, supersampleLevel)
	log.Debug("supersampled", "quality", p.Quality, "width", mask.Width, "height", mask.Height, "foreground", mask.Count(), "took", watch())
	return mask, nil
}

// GenerateFile reads the image at input, computes its signed distance field and writes
// it as a PNG to output. Parameters are validated before input is read. No output file
// is created when any step fails.
func GenerateFile(input, output string, p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	watch := stopwatch()
	img, err := Load(input)
	if err != nil {
		return err
	}
	field, err := Generate(img, p)
	if err != nil {
		return err
	}
	err = Save(output, field, p.Depth16)
	if err != nil {
		return err
	}
	Logger().Info("wrote distance field", "input", input, "output", output,
		"size", fmt.Sprintf("%dx%d", field.Width, field.Height), "took", watch())
	return nil
}
