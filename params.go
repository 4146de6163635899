package rastersdf

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/rastersdf/resample"
	"golang.org/x/image/draw"
)

// Parameters configures a generation run. Parameters are read only once validated.
type Parameters struct {
	// Spread is the distance in output pixels at which the field saturates.
	Spread float32
	// Quality supersamples the input by this factor before the distance transform.
	Quality float32
	// Scale resizes the field by this factor after the distance transform.
	Scale float32
	// Invert swaps foreground and background before any other processing.
	// Use it for white shapes, or opaque shapes on a transparent canvas.
	Invert bool
	// AutoSize pads the mask before the transform so shapes touching the image border
	// reach the full spread, then trims uniform background from the field.
	AutoSize bool
	// Filter names the resampling kernel, see [resample.KernelByName].
	// Empty selects the default windowed sinc kernel.
	Filter string
	// Depth16 writes 16 bit alpha instead of 8 bit.
	Depth16 bool
}

// DefaultParameters returns the parameters used when none are specified.
func DefaultParameters() Parameters {
	return Parameters{
		Spread:  8,
		Quality: 1,
		Scale:   1,
		Filter:  resample.NameLanczos,
	}
}

// Validate checks the parameters that do not depend on the input image.
// All problems found are joined into the returned error.
func (p Parameters) Validate() error {
	var errs []error
	check := func(name string, v float32) {
		if !(v > 0) || math32.IsInf(v, 1) {
			errs = append(errs, fmt.Errorf("%s must be a positive number, got %v", name, v))
		}
	}
	check("spread", p.Spread)
	check("quality", p.Quality)
	check("scale", p.Scale)
	if _, err := resample.KernelByName(p.Filter); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return argErr("validate", errors.Join(errs...))
}

// ValidateInput checks the parameters against the dimensions of the decoded input.
func (p Parameters) ValidateInput(width, height int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return inputErr("validate", "", fmt.Errorf("empty image %dx%d", width, height))
	}
	if p.AutoSize && p.Spread > float32(min(width, height))/2 {
		return argErr("validate", fmt.Errorf("auto size spread %v exceeds half of the smaller image side %d", p.Spread, min(width, height)))
	}
	return nil
}

// TransformSpread is the spread used by the distance transform, measured in the
// supersampled grid. Downsampling by Scale/Quality brings the gradient band back
// to Spread output pixels.
func (p Parameters) TransformSpread() float32 {
	return p.Spread * p.Quality / p.Scale
}

// OutputFactor is the resize factor applied to the field after the transform.
func (p Parameters) OutputFactor() float64 {
	return float64(p.Scale) / float64(p.Quality)
}

func (p Parameters) kernel() *draw.Kernel {
	k, err := resample.KernelByName(p.Filter)
	if err != nil {
		panic(err) // Validate rejects unknown filters.
	}
	return k
}
