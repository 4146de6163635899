// Package gsdfaux provides auxiliary file and visualization helpers around the
// distance field generator: atomic PNG writes and color previews of 2D SDFs.
package gsdfaux

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/soypat/rastersdf/gleval"
	"github.com/soypat/rastersdf/glrender"
)

// WritePNGFile encodes img as a PNG to filename. The image is written to a temporary
// file in the same directory which is renamed over filename only after the encoding
// succeeded and the data reached the disk. On error the temporary file is removed and
// an existing filename is left untouched.
func WritePNGFile(filename string, img image.Image) (err error) {
	dir, base := filepath.Split(filepath.Clean(filename))
	if dir == "" {
		dir = "."
	}
	fp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpname := fp.Name()
	defer func() {
		if err != nil {
			fp.Close()
			os.Remove(tmpname)
		}
	}()
	bw := bufio.NewWriter(fp)
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err = enc.Encode(bw, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = fp.Chmod(0o644); err != nil {
		return err
	}
	if err = fp.Sync(); err != nil {
		return err
	}
	if err = fp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpname, filename)
}

// RenderPNGFile renders a 2D SDF as an image and saves result to a PNG file with said filename.
// The image height is sized automatically from the image width argument to preserve SDF aspect ratio.
// If a nil color conversion function is passed then one is automatically chosen.
func RenderPNGFile(filename string, sdf gleval.SDF2, picWidth int, colorConversion func(float32) color.Color) error {
	if picWidth <= 0 {
		return errors.New("non-positive image width")
	}
	bb := sdf.Bounds()
	szx, szy := bb.Max.X-bb.Min.X, bb.Max.Y-bb.Min.Y
	if !(szx > 0 && szy > 0) {
		return errors.New("SDF bounds are empty")
	}
	if colorConversion == nil {
		colorConversion = ColorConversionInigoQuilez(hypot(szx, szy) / 3)
	}
	picHeight := max(1, int(float32(picWidth)*szy/szx+0.5))
	img := image.NewRGBA(image.Rect(0, 0, picWidth, picHeight))
	renderer, err := glrender.NewImageRendererSDF2(max(65, picWidth), colorConversion)
	if err != nil {
		return err
	}
	err = renderer.Render(sdf, img, nil)
	if err != nil {
		return err
	}
	return WritePNGFile(filename, img)
}
