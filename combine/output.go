package combine

import (
	"image"

	"github.com/pkg/errors"
)

// OutputImage is the combined pixel buffer waiting to be written. Its
// capacity is fixed to width*height*4 at construction and data may only be
// assigned when it matches that capacity exactly.
type OutputImage struct {
	Dimensions
	// Name is the destination path.
	Name string

	data     []byte
	capacity int
}

// NewOutputImage creates an empty output buffer for the given size and destination.
func NewOutputImage(dims Dimensions, name string) *OutputImage {
	return &OutputImage{
		Dimensions: dims,
		Name:       name,
		data:       nil,
		capacity:   dims.Capacity(),
	}
}

// SetData assigns the combined pixels.
//
// Arguments:
//   - data: The RGBA buffer. It is retained, not copied.
//
// Returns:
//   - error: BufferTooSmall if len(data) differs from the declared capacity.
//     The buffer is never truncated or padded.
func (o *OutputImage) SetData(data []byte) error {
	if len(data) != o.capacity {
		return newError(BufferTooSmall, o.Name,
			errors.Errorf("got %d bytes, want %d for %s", len(data), o.capacity, o.Dimensions))
	}
	o.data = data
	return nil
}

// Data returns the assigned buffer, or nil if none has been set.
func (o *OutputImage) Data() []byte {
	return o.data
}

// toImage returns a view of the buffer as an image.NRGBA once the buffer
// fills the declared capacity. The pixel storage is shared.
func (o *OutputImage) toImage() (*image.NRGBA, error) {
	if len(o.data) != o.capacity {
		return nil, newError(BufferTooSmall, o.Name,
			errors.Errorf("buffer holds %d bytes, declared capacity is %d", len(o.data), o.capacity))
	}
	return o.view(), nil
}

// view wraps the buffer as an image.NRGBA without checking its length.
func (o *OutputImage) view() *image.NRGBA {
	return &image.NRGBA{
		Pix:    o.data,
		Stride: int(o.Width) * bytesPerPixel,
		Rect:   image.Rect(0, 0, int(o.Width), int(o.Height)),
	}
}
