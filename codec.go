package rastersdf

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/soypat/rastersdf/gsdfaux"
	"github.com/soypat/rastersdf/raster"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens and decodes the image at path. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func Load(path string) (image.Image, error) {
	fp, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, inputErr("open", path, err)
	}
	defer fp.Close()
	img, err := Decode(fp)
	if err != nil {
		return nil, inputErr("decode", path, err)
	}
	return img, nil
}

// Decode decodes an image of any supported format from r.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	Logger().Debug("decoded", "format", format, "bounds", img.Bounds())
	return img, nil
}

// Encode returns the output image for field: white color with the field in the
// alpha channel, 16 bits per channel if depth16 is set and 8 bits otherwise.
func Encode(field *raster.Field, depth16 bool) image.Image {
	if depth16 {
		return raster.EncodeNRGBA64(field)
	}
	return raster.EncodeNRGBA(field)
}

// Save writes field to path as a PNG. The file is written to a temporary file next
// to path and moved into place once complete, so path is never left half written.
func Save(path string, field *raster.Field, depth16 bool) error {
	if field == nil || field.Empty() {
		return outputErr("encode", path, fmt.Errorf("empty field"))
	}
	err := gsdfaux.WritePNGFile(path, Encode(field, depth16))
	if err != nil {
		return outputErr("write", path, err)
	}
	return nil
}
