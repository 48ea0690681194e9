package images

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ImageFormat represents supported image formats.
type ImageFormat string

// ImageFormat constants
const (
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatGIF is the GIF image format.
	FormatGIF ImageFormat = "gif"
	// FormatBMP is the BMP image format.
	FormatBMP ImageFormat = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF ImageFormat = "tiff"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
)

// ErrUnknownFormat is returned when a path carries no recognized image extension.
var ErrUnknownFormat = errors.New("unknown image format")

// extensions maps lower-cased file extensions to their format tag.
var extensions = map[string]ImageFormat{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
}

// FormatFromPath determines the image format from the extension of a path.
//
// Arguments:
//   - path: The file path to inspect. Matching is case-insensitive.
//
// Returns:
//   - ImageFormat: The format tag for the extension.
//   - error: ErrUnknownFormat if the extension is missing or not supported.
func FormatFromPath(path string) (ImageFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := extensions[ext]; ok {
		return format, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "extension %q", ext)
}

// String implements fmt.Stringer.
func (f ImageFormat) String() string {
	return string(f)
}

// Valid reports whether f is one of the supported formats.
func (f ImageFormat) Valid() bool {
	_, ok := codecs[f]
	return ok
}
