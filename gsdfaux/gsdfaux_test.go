package gsdfaux

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/rastersdf/gleval"
	"github.com/soypat/rastersdf/raster"
)

func TestColorGradient(t *testing.T) {
	conv := ColorConversionLinearGradient(10, color.Black, color.White)
	tests := []struct {
		d    float32
		want uint8
	}{
		{d: -100, want: 0},
		{d: -5, want: 0},
		{d: 0, want: 127},
		{d: 5, want: 255},
		{d: 100, want: 255},
	}
	for _, test := range tests {
		c := conv(test.d).(color.RGBA)
		if c.R != test.want || c.R != c.G || c.G != c.B {
			t.Errorf("d=%v: got %v, want gray %d", test.d, c, test.want)
		}
	}
	sharp := ColorConversionLinearGradient(0, color.Black, red)
	if sharp(-1) != color.Black || sharp(1) != red {
		t.Error("zero length gradient should switch at zero")
	}
}

func TestWritePNGFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.png")
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.Pix[4] = 200
	err := WritePNGFile(name, img)
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	got, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() || got.(*image.Gray).Pix[4] != 200 {
		t.Error("decoded image does not match")
	}
	info, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("unexpected permissions %v", info.Mode().Perm())
	}
}

func TestWritePNGFileFailureKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.png")
	const previous = "previous contents"
	err := os.WriteFile(name, []byte(previous), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	// PNG cannot encode an image without pixels.
	err = WritePNGFile(name, image.NewGray(image.Rectangle{}))
	if err == nil {
		t.Fatal("expected encoding error")
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != previous {
		t.Error("existing file was modified")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}

	err = WritePNGFile(filepath.Join(dir, "missing", "out.png"), image.NewGray(image.Rect(0, 0, 1, 1)))
	if err == nil {
		t.Error("expected error writing into missing directory")
	}
}

func TestRenderPNGFile(t *testing.T) {
	field := raster.NewField(40, 20)
	for y := 5; y < 15; y++ {
		for x := 10; x < 30; x++ {
			field.Set(x, y, 1)
		}
	}
	sdf, err := gleval.NewFieldSDF2(field, 4)
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "preview.png")
	err = RenderPNGFile(name, sdf, 80, nil)
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	cfg, err := png.DecodeConfig(fp)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Height != 40 {
		t.Errorf("preview should keep the aspect ratio, got %dx%d", cfg.Width, cfg.Height)
	}
	if err = RenderPNGFile(name, sdf, 0, nil); err == nil {
		t.Error("expected error for zero width")
	}
}
