package images

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var colorRed = color.NRGBA{R: 255, A: 255}

func src1x1() image.Image {
	return getTestImage(1, 1, colorRed)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path       string
		expected   ImageFormat
		shouldFail bool
	}{
		{path: "a.png", expected: FormatPNG},
		{path: "/tmp/photo.JPG", expected: FormatJPEG},
		{path: "photo.jpeg", expected: FormatJPEG},
		{path: "anim.gif", expected: FormatGIF},
		{path: "icon.bmp", expected: FormatBMP},
		{path: "scan.tif", expected: FormatTIFF},
		{path: "scan.tiff", expected: FormatTIFF},
		{path: "web.WebP", expected: FormatWebP},
		{path: "", shouldFail: true},
		{path: "noext", shouldFail: true},
		{path: "archive.tar.gz", shouldFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.shouldFail {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
			assert.True(t, format.Valid())
		})
	}
}

// TestCodecsPreservePixels encodes a gradient with every lossless codec and
// checks that decoding yields the exact same pixels.
func TestCodecsPreservePixels(t *testing.T) {
	src := NewImage(getGradientImage(7, 5), FormatPNG)

	for _, format := range []ImageFormat{FormatPNG, FormatBMP, FormatTIFF, FormatWebP} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src.rgba, format, DefaultEncodeOptions()))

			decoded, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, format, decoded.Format())
			assert.Equal(t, src.Width(), decoded.Width())
			assert.Equal(t, src.Height(), decoded.Height())
			assert.Equal(t, src.Pixels(), decoded.Pixels(), "Lossless codec should preserve pixels")
		})
	}
}

// translucentImage is a 2x1 image holding a half-transparent pixel and a
// fully transparent pixel that still carries color.
func translucentImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix, []byte{200, 100, 50, 128, 10, 20, 30, 0})
	return img
}

func TestCodecsPreserveTranslucentPixels(t *testing.T) {
	src := translucentImage()

	tests := []struct {
		format   ImageFormat
		expected []byte
	}{
		{format: FormatPNG, expected: src.Pix},
		{format: FormatTIFF, expected: src.Pix},
		{format: FormatWebP, expected: src.Pix},
		// x/image/bmp reads 32-bit BI_RGB pixels as opaque.
		{format: FormatBMP, expected: []byte{200, 100, 50, 255, 10, 20, 30, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, tt.format, DefaultEncodeOptions()))

			decoded, err := Decode(&buf, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded.Pixels(), "Colors must not be premultiplied by alpha")
		})
	}
}

func TestDecodeWebPIsStraightAlpha(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, translucentImage(), FormatWebP, DefaultEncodeOptions()))

	m, err := decodeWebP(&buf)
	require.NoError(t, err)
	require.IsType(t, &image.NRGBA{}, m)
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 128}, m.At(0, 0))
}

func TestCodecsLossy(t *testing.T) {
	src := NewImage(getGradientImage(16, 16), FormatJPEG)

	for _, format := range []ImageFormat{FormatJPEG, FormatGIF} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src.rgba, format, DefaultEncodeOptions()))

			decoded, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, uint32(16), decoded.Width())
			assert.Equal(t, uint32(16), decoded.Height())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a png")), FormatPNG)
	assert.Error(t, err, "Decode should error for invalid PNG input")
	assert.Contains(t, err.Error(), "failed to decode png")

	_, err = Decode(bytes.NewReader(nil), ImageFormat("qoi"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	err = Encode(&bytes.Buffer{}, src1x1(), ImageFormat("qoi"), DefaultEncodeOptions())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestChecksum(t *testing.T) {
	a := NewImage(getGradientImage(4, 4), FormatPNG)
	b := NewImage(getGradientImage(4, 4), FormatJPEG)
	c := NewImage(getTestImage(4, 4, colorRed), FormatPNG)

	assert.Equal(t, Checksum(a), Checksum(b), "Checksum covers pixels, not the format tag")
	assert.NotEqual(t, Checksum(a), Checksum(c))
	assert.Equal(t, "empty", Checksum(nil))
}
