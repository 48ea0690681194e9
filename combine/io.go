package combine

import (
	"bytes"
	"os"

	"github.com/nvr-ai/go-combiner/images"
	"github.com/nvr-ai/go-combiner/util"
	"github.com/pkg/errors"
)

// Load reads and decodes the image at path. The format tag comes from the
// file extension and selects the decoder.
//
// Arguments:
//   - path: Path of the image file.
//
// Returns:
//   - *images.Image: The decoded image carrying its format tag.
//   - error: UnableToReadImageFromPath, UnableToFormatImage or UnableToDecodeImage.
func Load(path string) (*images.Image, error) {
	file, err := util.ReadImageFile(path)
	if err != nil {
		return nil, newError(UnableToReadImageFromPath, path, err)
	}

	format, err := images.FormatFromPath(file.Path)
	if err != nil {
		return nil, newError(UnableToFormatImage, path, err)
	}

	img, err := images.Decode(bytes.NewReader(file.Data), format)
	if err != nil {
		return nil, newError(UnableToDecodeImage, path, err)
	}

	return img, nil
}

// Save persists the output image to out.Name as 8-bit RGBA in format.
//
// Arguments:
//   - out: The output image; its buffer must fill the declared capacity.
//   - format: The format tag propagated from the first input.
//   - opts: Encoder settings.
//
// Returns:
//   - error: BufferTooSmall if the buffer is not full, UnableToSaveImage for
//     any create, encode or close failure.
func Save(out *OutputImage, format images.ImageFormat, opts images.EncodeOptions) (err error) {
	m, err := out.toImage()
	if err != nil {
		return err
	}

	f, err := os.Create(out.Name)
	if err != nil {
		return newError(UnableToSaveImage, out.Name, errors.Wrap(err, "create output"))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(UnableToSaveImage, out.Name, errors.Wrap(cerr, "close output"))
		}
	}()

	if err := images.Encode(f, m, format, opts); err != nil {
		return newError(UnableToSaveImage, out.Name, err)
	}

	return nil
}
