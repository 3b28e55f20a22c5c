package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Resize creates a copy of the given image, scaled to fill the given rectangle.
func Resize(i image.Image, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(r)
	s := draw.BiLinear
	s.Scale(dst, r, i, i.Bounds(), draw.Over, nil)
	return dst
}

// Fit copies the given image into a new RGBA image with the given bounds.
// The source is scaled only if its size differs from the destination.
func Fit(i image.Image, r image.Rectangle) *image.RGBA {
	b := i.Bounds()
	if b.Dx() != r.Dx() || b.Dy() != r.Dy() {
		return Resize(i, r)
	}

	dst := image.NewRGBA(r)
	draw.Draw(dst, r, i, b.Min, draw.Src)
	return dst
}

// Fill paints the complete destination image with the given color.
func Fill(dst draw.Image, c color.Color) {
	bg := image.NewUniform(c)
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
}
