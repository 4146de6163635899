// Package gleval evaluates 2D signed distance functions in batches.
package gleval

import (
	"errors"

	"github.com/soypat/geometry/ms2"
)

// SDF2 implements a 2D signed distance field in vectorized form.
type SDF2 interface {
	// Evaluate evaluates the signed distance field over pos positions.
	// dist and pos must be of same length. Resulting distances are stored
	// in dist. Negative distances lie inside the shape.
	//
	// userData facilitates passing data to the evaluators; implementations
	// in this package ignore it.
	Evaluate(pos []ms2.Vec, dist []float32, userData any) error
	// Bounds returns the SDF's bounding box such that all of the shape is contained within.
	Bounds() ms2.Box
}

var (
	errEmptyBuffers         = errors.New("empty buffers")
	errMismatchBufferLength = errors.New("position and distance buffer length mismatch")
)

// EvaluatorStats is implemented by SDFs that keep track of their evaluations.
type EvaluatorStats interface {
	Evaluations() uint64
}
