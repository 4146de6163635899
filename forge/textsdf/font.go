// Package textsdf rasterizes lines of text into black on white images ready to be
// converted into signed distance fields.
package textsdf

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"unicode"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const dpi = 72 // Font size then equals pixels per em.

type FontConfig struct {
	// Size is the font size in pixels per em. If zero a reasonable value is chosen.
	Size float32
	// Padding is the amount of white pixels around the rendered text.
	// Shapes touching the border clip the distance field, so a padding of at least
	// the field's spread times its quality is recommended.
	Padding int
}

// Font implements font parsing and text rasterization.
type Font struct {
	ttf  *truetype.Font
	face font.Face
	ctx  *freetype.Context
	cfg  FontConfig
}

// Configure sets the rendering parameters of f.
func (f *Font) Configure(cfg FontConfig) error {
	if cfg.Size < 0 || cfg.Padding < 0 {
		return errors.New("negative font size or padding")
	}
	if cfg.Size == 0 {
		cfg.Size = 64
	}
	f.cfg = cfg
	f.reset()
	return nil
}

// LoadTTFBytes loads a TTF file blob into f. After calling Load the Font is ready to render text.
func (f *Font) LoadTTFBytes(ttf []byte) error {
	font, err := truetype.Parse(ttf)
	if err != nil {
		return err
	}
	f.ttf = font
	f.reset()
	return nil
}

// GoRegularTTF returns the Go Regular true type font file.
func GoRegularTTF() []byte {
	return append([]byte{}, goregular.TTF...) // copy contents.
}

// reset rebuilds the face and context for the current font and configuration.
func (f *Font) reset() {
	if f.cfg.Size == 0 {
		f.cfg.Size = 64
	}
	if f.ttf == nil {
		return
	}
	f.face = truetype.NewFace(f.ttf, &truetype.Options{
		Size:    float64(f.cfg.Size),
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	c := freetype.NewContext()
	c.SetFont(f.ttf)
	c.SetDPI(dpi)
	c.SetFontSize(float64(f.cfg.Size))
	c.SetHinting(font.HintingNone)
	c.SetSrc(image.Black)
	f.ctx = c
}

// TextLine renders a single line of text, black on a white background.
// Kerning and advance widths are taken into account for letter spacing.
// The image is as wide as the text's advance and as tall as the font's line,
// plus the configured padding on every side.
func (f *Font) TextLine(s string) (*image.Gray, error) {
	if f.ttf == nil {
		return nil, errors.New("no font loaded")
	}
	blank := true
	for _, c := range s {
		if !unicode.IsGraphic(c) {
			return nil, fmt.Errorf("char %q not graphic", c)
		}
		blank = blank && unicode.IsSpace(c)
	}
	if blank {
		// Only whitespace.
		return nil, errors.New("no text provided")
	}
	m := f.face.Metrics()
	pad := f.cfg.Padding
	width := font.MeasureString(f.face, s).Ceil() + 2*pad
	height := (m.Ascent + m.Descent).Ceil() + 2*pad
	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	f.ctx.SetClip(img.Bounds())
	f.ctx.SetDst(img)
	dot := fixed.Point26_6{X: fixed.I(pad), Y: fixed.I(pad) + m.Ascent}
	_, err := f.ctx.DrawString(s, dot)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// AdvanceWidth returns the horizontal advance of c in pixels.
func (f *Font) AdvanceWidth(c rune) float32 {
	adv, _ := f.face.GlyphAdvance(c)
	return float32(adv) / 64
}

// Kern returns the horizontal adjustment for the given glyph pair in pixels. A positive kern means to move the glyphs further apart.
func (f *Font) Kern(c0, c1 rune) float32 {
	return float32(f.face.Kern(c0, c1)) / 64
}
