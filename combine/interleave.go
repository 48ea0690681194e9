package combine

import (
	"github.com/pkg/errors"
)

// bytesPerPixel is the RGBA stride of every pixel buffer handled here.
const bytesPerPixel = 4

// AlternatePixels interleaves two RGBA buffers pixel by pixel. Even pixels
// (byte offset i with i%8 == 0) come from buf1, odd pixels from buf2.
//
// Arguments:
//   - buf1: Flattened RGBA pixels of the first image.
//   - buf2: Flattened RGBA pixels of the second image.
//
// Returns:
//   - []byte: A new buffer of the same length.
//   - error: MalformedPixelBuffer if the lengths differ or are not a
//     multiple of 4.
func AlternatePixels(buf1, buf2 []byte) ([]byte, error) {
	if len(buf1) != len(buf2) {
		return nil, newError(MalformedPixelBuffer, "",
			errors.Errorf("buffer lengths differ: %d != %d", len(buf1), len(buf2)))
	}
	if len(buf1)%bytesPerPixel != 0 {
		return nil, newError(MalformedPixelBuffer, "",
			errors.Errorf("length %d is not a multiple of %d", len(buf1), bytesPerPixel))
	}

	out := make([]byte, len(buf1))
	for i := 0; i < len(buf1); i += bytesPerPixel {
		src := buf2
		if (i/bytesPerPixel)%2 == 0 {
			src = buf1
		}
		copy(out[i:i+bytesPerPixel], src[i:i+bytesPerPixel])
	}

	return out, nil
}
