package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
)

func TestFlattenAlphaOverWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	// Transparent, opaque black, opaque white and half transparent black.
	img.SetNRGBA(0, 0, color.NRGBA{A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(3, 0, color.NRGBA{A: 128})
	g := Flatten(img, false)
	want := []float32{1, 0, 1, 1 - 128./255}
	for i, w := range want {
		if math32.Abs(g.Pix[i]-w) > 1e-3 {
			t.Errorf("pixel %d: got %v, want %v", i, g.Pix[i], w)
		}
	}
}

func TestFlattenInvertBeforeComposite(t *testing.T) {
	// A white opaque shape on a transparent canvas: inverted it must become a
	// black shape on a white canvas, not a fully black image.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	g := Flatten(img, true)
	if g.Pix[0] > 1e-3 {
		t.Errorf("inverted white shape should be black, got %v", g.Pix[0])
	}
	if g.Pix[1] < 1-1e-3 {
		t.Errorf("transparent canvas should remain white, got %v", g.Pix[1])
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.Pix[0] = 0
	gray.Pix[1] = 255
	normal, inv := Flatten(gray, false), Flatten(gray, true)
	for i := range normal.Pix {
		if normal.Pix[i] != 1-inv.Pix[i] {
			t.Errorf("pixel %d: inversion of opaque input is not the complement: %v %v", i, normal.Pix[i], inv.Pix[i])
		}
	}
}

func TestFlattenSubImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(2, 3, color.Gray{Y: 255})
	sub := gray.SubImage(image.Rect(2, 2, 4, 4)).(*image.Gray)
	g := Flatten(sub, false)
	if g.Width != 2 || g.Height != 2 {
		t.Fatalf("unexpected size %dx%d", g.Width, g.Height)
	}
	if g.At(0, 1) != 1 || g.At(1, 1) != 0 {
		t.Error("sub image offset not honored", g.Pix)
	}
}

func TestThreshold(t *testing.T) {
	g := &Grid{Width: 5, Height: 1, Pix: []float32{0, 0.3, 0.31, 0.5, 0.9}}
	tests := []struct {
		level float32
		want  []bool
	}{
		{level: 0.5, want: []bool{true, true, true, true, false}},
		{level: 0.3, want: []bool{true, true, false, false, false}},
	}
	for _, test := range tests {
		m := Threshold(g, test.level)
		for i, w := range test.want {
			if m.Pix[i] != w {
				t.Errorf("level %v pixel %d: got %v, want %v", test.level, i, m.Pix[i], w)
			}
		}
	}
}

func TestPad(t *testing.T) {
	m := NewMask(2, 3)
	m.Set(0, 0, true)
	m.Set(1, 2, true)
	p := Pad(m, 3)
	if p.Width != 8 || p.Height != 9 {
		t.Fatalf("got padded size %dx%d", p.Width, p.Height)
	}
	if p.Count() != 2 || !p.At(3, 3) || !p.At(4, 5) {
		t.Error("content not copied to the padded offset")
	}
	if same := Pad(m, 0); same.Width != 2 || same.Count() != 2 {
		t.Error("zero padding should copy the mask")
	}
}

func TestTrim(t *testing.T) {
	f := NewField(6, 5)
	f.Set(2, 1, 0.25)
	f.Set(3, 3, 1)
	got, r, err := Trim(f, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(2, 1, 4, 4); r != want {
		t.Fatalf("got rect %v, want %v", r, want)
	}
	if got.Width != 2 || got.Height != 3 || got.At(0, 0) != 0.25 || got.At(1, 2) != 1 {
		t.Error("trimmed content mismatch", got.Width, got.Height, got.Pix)
	}

	// Interior background rows are kept.
	f = NewField(3, 5)
	f.Set(1, 0, 1)
	f.Set(1, 4, 1)
	_, r, err = Trim(f, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(1, 0, 2, 5); r != want {
		t.Errorf("got rect %v, want %v", r, want)
	}

	_, _, err = Trim(NewField(4, 4), 0)
	if err == nil {
		t.Error("expected error trimming a uniform field")
	}
}

func TestEncodeAlpha(t *testing.T) {
	f := NewField(3, 1)
	f.Pix = []float32{0, 0.5, 1}
	img := EncodeNRGBA(f)
	wantA := []uint8{0, 128, 255}
	for x, a := range wantA {
		c := img.NRGBAAt(x, 0)
		if c.R != 255 || c.G != 255 || c.B != 255 {
			t.Errorf("pixel %d not white: %v", x, c)
		}
		if c.A != a {
			t.Errorf("pixel %d alpha: got %d, want %d", x, c.A, a)
		}
	}
	img64 := EncodeNRGBA64(f)
	if c := img64.NRGBA64At(1, 0); c.R != 0xffff || c.A != 0x8000 {
		t.Errorf("16 bit encoding mismatch: %v", c)
	}
	back := FieldFromAlpha(img64)
	for i, v := range f.Pix {
		if math32.Abs(back.Pix[i]-v) > 1./0xffff {
			t.Errorf("16 bit round trip pixel %d: %v != %v", i, back.Pix[i], v)
		}
	}
}

func TestGray16RoundTrip(t *testing.T) {
	g := NewGrid(4, 2)
	for i := range g.Pix {
		g.Pix[i] = float32(i) / 7
	}
	g.Pix[0] = -1 // Clamped.
	back := GridFromGray16(g.Gray16())
	for i, v := range g.Pix {
		v = max(v, 0)
		if math32.Abs(back.Pix[i]-v) > 1./0xffff {
			t.Errorf("pixel %d: %v != %v", i, back.Pix[i], v)
		}
	}
}
