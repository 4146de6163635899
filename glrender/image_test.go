package glrender

import (
	"image"
	"image/color"
	"testing"

	"github.com/soypat/rastersdf/gleval"
	"github.com/soypat/rastersdf/raster"
)

func TestRenderFieldSDF2(t *testing.T) {
	// Inside on the left half of a 100x10 field.
	field := raster.NewField(100, 10)
	for y := 0; y < field.Height; y++ {
		for x := 0; x < 50; x++ {
			field.Set(x, y, 1)
		}
	}
	sdf, err := gleval.NewFieldSDF2(field, 8)
	if err != nil {
		t.Fatal(err)
	}
	renderer, err := NewImageRendererSDF2(200, nil)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 200, 20))
	err = renderer.Render(sdf, img, nil)
	if err != nil {
		t.Fatal(err)
	}
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < 20; y++ {
		if c := img.RGBAAt(10, y); c != black {
			t.Fatalf("inside pixel at row %d is %v", y, c)
		}
		if c := img.RGBAAt(190, y); c != white {
			t.Fatalf("outside pixel at row %d is %v", y, c)
		}
	}
	if sdf.Evaluations() != 200*20 {
		t.Errorf("expected one evaluation per pixel, got %d", sdf.Evaluations())
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := NewImageRendererSDF2(64, nil); err == nil {
		t.Error("expected error for small buffer")
	}
	sdf, err := gleval.NewFieldSDF2(raster.NewField(4, 4), 1)
	if err != nil {
		t.Fatal(err)
	}
	renderer, err := NewImageRendererSDF2(100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = renderer.Render(sdf, image.NewRGBA(image.Rect(0, 0, 101, 1)), nil); err == nil {
		t.Error("expected error for image wider than buffer")
	}
	if err = renderer.Render(sdf, image.NewRGBA(image.Rectangle{}), nil); err == nil {
		t.Error("expected error for empty image")
	}
}
