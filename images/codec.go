package images

import (
	"bufio"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// EncodeOptions controls the per-format encoder settings.
//
// Alpha survives png, tiff and lossless webp exactly. BMP files are read
// back as opaque, and jpeg has no alpha channel.
type EncodeOptions struct {
	// JPEGQuality is the JPEG quality (1-100).
	JPEGQuality int
	// PNGCompression is the zlib compression level used for PNG output.
	PNGCompression png.CompressionLevel
	// WebPLossless selects lossless WebP output.
	WebPLossless bool
	// WebPQuality is the lossy WebP quality (0-100), ignored when lossless.
	WebPQuality float32
}

// DefaultEncodeOptions returns the encoder settings used when none are configured.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		JPEGQuality:    75,
		PNGCompression: png.DefaultCompression,
		WebPLossless:   true,
		WebPQuality:    90,
	}
}

// codec pairs the decoder and encoder for one format.
type codec struct {
	decode func(r io.Reader) (image.Image, error)
	encode func(w io.Writer, m image.Image, opts EncodeOptions) error
}

var codecs = map[ImageFormat]codec{
	FormatPNG: {
		decode: png.Decode,
		encode: func(w io.Writer, m image.Image, opts EncodeOptions) error {
			enc := png.Encoder{CompressionLevel: opts.PNGCompression}
			return enc.Encode(w, m)
		},
	},
	FormatJPEG: {
		decode: jpeg.Decode,
		encode: func(w io.Writer, m image.Image, opts EncodeOptions) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: opts.JPEGQuality})
		},
	},
	FormatGIF: {
		decode: gif.Decode,
		encode: func(w io.Writer, m image.Image, _ EncodeOptions) error {
			return gif.Encode(w, m, nil)
		},
	},
	FormatBMP: {
		decode: bmp.Decode,
		encode: func(w io.Writer, m image.Image, _ EncodeOptions) error {
			return bmp.Encode(w, m)
		},
	},
	FormatTIFF: {
		decode: tiff.Decode,
		encode: func(w io.Writer, m image.Image, _ EncodeOptions) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		},
	},
	FormatWebP: {
		decode: decodeWebP,
		encode: func(w io.Writer, m image.Image, opts EncodeOptions) error {
			return webp.Encode(w, straightRGBA(m), &webp.Options{
				Lossless: opts.WebPLossless,
				Quality:  opts.WebPQuality,
				Exact:    true,
			})
		},
	},
}

// decodeWebP decodes WebP data as straight (non-premultiplied) RGBA. libwebp
// emits straight RGBA bytes, which webp.Decode labels as *image.RGBA.
func decodeWebP(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read webp")
	}
	m, err := webp.DecodeRGBA(data)
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect}, nil
}

// straightRGBA presents the NRGBA bytes of m as an *image.RGBA so the webp
// encoder hands them to libwebp unchanged instead of premultiplying them.
func straightRGBA(m image.Image) *image.RGBA {
	n := toNRGBA(m)
	return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
}

// Decode decodes image data with the decoder registered for format.
//
// Arguments:
//   - r: The encoded image data.
//   - format: The format to decode as. No content sniffing is performed.
//
// Returns:
//   - *Image: The decoded image, converted to packed RGBA.
//   - error: An error if the format is unsupported or decoding fails.
func Decode(r io.Reader, format ImageFormat) (*Image, error) {
	c, ok := codecs[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "decode %q", format)
	}

	decoded, err := c.decode(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", format)
	}

	return NewImage(decoded, format), nil
}

// Encode writes m to w using the encoder registered for format.
//
// Arguments:
//   - w: The destination writer.
//   - m: The image to encode.
//   - format: The output format.
//   - opts: Encoder settings.
//
// Returns:
//   - error: An error if the format is unsupported or encoding fails.
func Encode(w io.Writer, m image.Image, format ImageFormat, opts EncodeOptions) error {
	c, ok := codecs[format]
	if !ok {
		return errors.Wrapf(ErrUnknownFormat, "encode %q", format)
	}

	bw := bufio.NewWriter(w)
	if err := c.encode(bw, m, opts); err != nil {
		return errors.Wrapf(err, "failed to encode %s", format)
	}
	return errors.Wrap(bw.Flush(), "failed to flush encoded image")
}
