package util

import (
	"os"

	"github.com/pkg/errors"
)

// ImageFile represents an image file read from disk.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
}

// ReadImageFile reads an image file into memory without interpreting it.
//
// Arguments:
// - path: Path of the file to read.
//
// Returns:
// - *ImageFile: The file path and its raw bytes.
// - error: Error if the path is empty, is a directory, or cannot be read.
func ReadImageFile(path string) (*ImageFile, error) {
	if path == "" {
		return nil, errors.New("empty image path")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return &ImageFile{
		Path: path,
		Data: data,
	}, nil
}
