// Package images - decoded image values, format tags, codecs and resizing.
package images

import (
	"image"

	"golang.org/x/image/draw"
)

// Image is a decoded image held as tightly packed, non-premultiplied 8-bit
// RGBA. Values are immutable once constructed; operations that change the
// pixels return a new Image.
type Image struct {
	format ImageFormat
	rgba   *image.NRGBA
}

// NewImage wraps a decoded image.Image, converting it to packed RGBA.
//
// Arguments:
//   - src: The decoded source image. It is copied, never retained.
//   - format: The format tag the image was decoded from.
//
// Returns:
//   - *Image: The owned image value.
func NewImage(src image.Image, format ImageFormat) *Image {
	return &Image{
		format: format,
		rgba:   toNRGBA(src),
	}
}

// Format returns the format tag attached at load time.
func (i *Image) Format() ImageFormat {
	return i.format
}

// Width returns the width in pixels.
func (i *Image) Width() uint32 {
	return uint32(i.rgba.Rect.Dx())
}

// Height returns the height in pixels.
func (i *Image) Height() uint32 {
	return uint32(i.rgba.Rect.Dy())
}

// Pixels returns a copy of the flattened RGBA buffer, 4 bytes per pixel in
// row-major order.
func (i *Image) Pixels() []byte {
	out := make([]byte, len(i.rgba.Pix))
	copy(out, i.rgba.Pix)
	return out
}

// At returns the RGBA bytes of the pixel at (x, y).
func (i *Image) At(x, y int) [4]byte {
	off := i.rgba.PixOffset(x, y)
	var px [4]byte
	copy(px[:], i.rgba.Pix[off:off+4])
	return px
}

// toNRGBA copies any image into a zero-origin NRGBA whose stride is exactly
// 4*width.
func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	// Row copy keeps the color channels of fully transparent pixels, which a
	// premultiplied round trip through draw would zero.
	if n, ok := src.(*image.NRGBA); ok {
		rowLen := 4 * bounds.Dx()
		for y := 0; y < bounds.Dy(); y++ {
			off := n.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], n.Pix[off:off+rowLen])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}
