// Package glrender renders signed distance functions to raster images.
package glrender

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/rastersdf/gleval"
)

type setImage = interface {
	image.Image
	Set(x, y int, c color.Color)
}

// ImageRendererSDF2 converts 2D SDFs to images.
type ImageRendererSDF2 struct {
	conv func(f float32) color.Color
	pos  []ms2.Vec
	dist []float32
}

// NewImageRendererSDF2 instances a new [ImageRendererSDF2] to render images from 2D SDFs. A nil float->color conversion
// function results in a simple black-white color scheme where black is the interior of the SDF (negative distance).
// evalBufferSize must be at least the width of the images rendered.
func NewImageRendererSDF2(evalBufferSize int, conversion func(float32) color.Color) (*ImageRendererSDF2, error) {
	if evalBufferSize <= 64 {
		return nil, errors.New("too small evaluation buffer size")
	}
	if conversion == nil {
		conversion = func(f float32) color.Color {
			switch {
			case math32.IsNaN(f) || math32.IsInf(f, 0):
				return color.RGBA{R: 255, A: 255}
			case f > 0:
				return color.White
			default:
				return color.Black
			}
		}
	}
	ir := &ImageRendererSDF2{
		conv: conversion,
		pos:  make([]ms2.Vec, evalBufferSize),
		dist: make([]float32, evalBufferSize),
	}
	return ir, nil
}

// Render maps the bounds of the SDF2 onto img and evaluates it at every pixel center.
// Image rows run along the SDF's Y axis in increasing order. userData is passed to
// all [gleval.SDF2.Evaluate] calls.
func (ir *ImageRendererSDF2) Render(sdf gleval.SDF2, img setImage, userData any) error {
	imgBB := img.Bounds()
	dxi := imgBB.Dx()
	dyi := imgBB.Dy()
	if len(ir.dist) < dxi {
		return fmt.Errorf("require evaluation buffer (%d) to be at least of length of image rows (%d)", len(ir.dist), dxi)
	} else if dxi == 0 || dyi == 0 {
		return errors.New("empty image")
	}
	bb := sdf.Bounds()
	dx := (bb.Max.X - bb.Min.X) / float32(dxi)
	dy := (bb.Max.Y - bb.Min.Y) / float32(dyi)
	xmin := bb.Min.X + dx/2 // Sample at pixel centers.
	for j := 0; j < dyi; j++ {
		y := float32(j)*dy + bb.Min.Y + dy/2
		err := ir.renderRow(sdf, j, y, xmin, dx, imgBB, img, userData)
		if err != nil {
			return err
		}
	}
	return nil
}

func (ir *ImageRendererSDF2) renderRow(sdf gleval.SDF2, row int, y, xmin, dx float32, imgBB image.Rectangle, img setImage, userData any) error {
	dxi := imgBB.Dx()
	pos := ir.pos[:dxi]
	dist := ir.dist[:dxi]
	for i := range pos {
		pos[i] = ms2.Vec{X: float32(i)*dx + xmin, Y: y}
	}
	err := sdf.Evaluate(pos, dist, userData)
	if err != nil {
		return err
	}
	conv := ir.conv
	for i, d := range dist {
		img.Set(i+imgBB.Min.X, row+imgBB.Min.Y, conv(d))
	}
	return nil
}
