package combine

import (
	"fmt"

	"github.com/nvr-ai/go-combiner/images"
)

// Dimensions is a width and height in pixels.
type Dimensions struct {
	Width  uint32 `json:"width"  yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// String implements fmt.Stringer.
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Capacity returns the byte length of an RGBA buffer of these dimensions.
func (d Dimensions) Capacity() int {
	return int(d.Width) * int(d.Height) * 4
}

// DimensionsOf returns the dimensions of a decoded image.
func DimensionsOf(img *images.Image) Dimensions {
	return Dimensions{Width: img.Width(), Height: img.Height()}
}

// SmallestDimensions picks the common size both images are resized to.
//
// Image 1 wins a dimension only when it is strictly smaller there and the
// branch applies; every tie falls through to image 2's values:
//
//	w1 < w2 && h1 < h2  ->  (w1, h1)
//	w1 < w2 && h1 > h2  ->  (w1, h2)
//	w1 > w2 && h1 < h2  ->  (w2, h1)
//	otherwise           ->  (w2, h2)
//
// Arguments:
//   - a: Dimensions of image 1.
//   - b: Dimensions of image 2.
//
// Returns:
//   - Dimensions: The target dimensions.
func SmallestDimensions(a, b Dimensions) Dimensions {
	switch {
	case a.Width < b.Width && a.Height < b.Height:
		return a
	case a.Width < b.Width && a.Height > b.Height:
		return Dimensions{Width: a.Width, Height: b.Height}
	case a.Width > b.Width && a.Height < b.Height:
		return Dimensions{Width: b.Width, Height: a.Height}
	default:
		return b
	}
}

// StandardizeSizes resizes both images to their SmallestDimensions. The
// inputs are not modified; two new images are returned.
//
// Arguments:
//   - img1: The first image.
//   - img2: The second image.
//   - filter: The resampling filter used for both resizes.
//
// Returns:
//   - The resized first and second images, both of identical dimensions.
func StandardizeSizes(img1, img2 *images.Image, filter images.ResampleFilter) (*images.Image, *images.Image) {
	target := SmallestDimensions(DimensionsOf(img1), DimensionsOf(img2))
	return images.Resize(img1, target.Width, target.Height, filter),
		images.Resize(img2, target.Width, target.Height, filter)
}
