package images

import (
	"image"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// ResampleFilter defines the resampling algorithm used for image scaling.
type ResampleFilter string

const (
	// NearestFilter uses nearest-neighbor interpolation (fastest, lowest quality).
	NearestFilter ResampleFilter = "nearest"
	// TriangleFilter uses the triangle (bilinear) kernel. This is the default.
	TriangleFilter ResampleFilter = "triangle"
	// CatmullRomFilter uses bicubic Catmull-Rom interpolation.
	CatmullRomFilter ResampleFilter = "catmullrom"
	// MitchellFilter uses the Mitchell-Netravali cubic filter.
	MitchellFilter ResampleFilter = "mitchell"
	// Lanczos2Filter uses Lanczos resampling with a=2.
	Lanczos2Filter ResampleFilter = "lanczos2"
	// Lanczos3Filter uses Lanczos resampling with a=3 (slowest, sharpest).
	Lanczos3Filter ResampleFilter = "lanczos3"
)

// ErrUnknownFilter is returned by ParseFilter for unrecognized filter names.
var ErrUnknownFilter = errors.New("unknown resample filter")

// interpolations maps each filter to its nfnt/resize interpolation function.
var interpolations = map[ResampleFilter]resize.InterpolationFunction{
	NearestFilter:    resize.NearestNeighbor,
	TriangleFilter:   resize.Bilinear,
	CatmullRomFilter: resize.Bicubic,
	MitchellFilter:   resize.MitchellNetravali,
	Lanczos2Filter:   resize.Lanczos2,
	Lanczos3Filter:   resize.Lanczos3,
}

// ParseFilter converts a filter name into a ResampleFilter.
//
// Arguments:
//   - name: The case-insensitive filter name. An empty name selects TriangleFilter.
//
// Returns:
//   - ResampleFilter: The parsed filter.
//   - error: ErrUnknownFilter if the name is not recognized.
func ParseFilter(name string) (ResampleFilter, error) {
	if name == "" {
		return TriangleFilter, nil
	}
	f := ResampleFilter(strings.ToLower(name))
	if _, ok := interpolations[f]; !ok {
		return "", errors.Wrapf(ErrUnknownFilter, "%q", name)
	}
	return f, nil
}

// Resize resizes an image to exactly width x height, ignoring aspect ratio.
// The source is left untouched and a new Image carrying the same format tag
// is returned. Resizing to the current dimensions returns an equal copy.
//
// Arguments:
//   - img: The source image.
//   - width: The target width in pixels.
//   - height: The target height in pixels.
//   - filter: The resampling filter. Unknown filters fall back to TriangleFilter.
//
// Returns:
//   - *Image: The resized image.
//
// @example
// resized := Resize(img, 224, 224, TriangleFilter)
func Resize(img *Image, width, height uint32, filter ResampleFilter) *Image {
	// Early return if no resizing needed; the caller still gets its own copy.
	if img.Width() == width && img.Height() == height {
		return NewImage(img.rgba, img.format)
	}

	// nfnt/resize treats a zero dimension as "preserve aspect ratio", which
	// is not an exact resize.
	if width == 0 || height == 0 {
		return NewImage(image.NewNRGBA(image.Rect(0, 0, int(width), int(height))), img.format)
	}

	interp, ok := interpolations[filter]
	if !ok {
		interp = resize.Bilinear
	}

	resized := resize.Resize(uint(width), uint(height), img.rgba, interp)
	return NewImage(resized, img.format)
}
