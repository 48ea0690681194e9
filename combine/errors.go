package combine

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind identifies one failure of the combine pipeline.
type ErrorKind int

const (
	// BufferTooSmall means a pixel buffer does not match the declared output capacity.
	BufferTooSmall ErrorKind = iota + 1
	// DifferentImageFormats means the two inputs carry different format tags.
	DifferentImageFormats
	// UnableToDecodeImage wraps a decoder failure for a recognized format.
	UnableToDecodeImage
	// UnableToFormatImage means no format could be determined for a path.
	UnableToFormatImage
	// UnableToReadImageFromPath means the path could not be opened or read.
	UnableToReadImageFromPath
	// UnableToSaveImage wraps an encode or write failure.
	UnableToSaveImage
	// MalformedPixelBuffer means a buffer is not a whole number of RGBA pixels,
	// or two buffers to interleave differ in length.
	MalformedPixelBuffer
)

var kindNames = map[ErrorKind]string{
	BufferTooSmall:            "BufferTooSmall",
	DifferentImageFormats:     "DifferentImageFormats",
	UnableToDecodeImage:       "UnableToDecodeImage",
	UnableToFormatImage:       "UnableToFormatImage",
	UnableToReadImageFromPath: "UnableToReadImageFromPath",
	UnableToSaveImage:         "UnableToSaveImage",
	MalformedPixelBuffer:      "MalformedPixelBuffer",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single error type returned by the combine pipeline. Kind
// tags the failure; Path and Err carry the offending path and underlying
// cause when there is one.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// IsKind reports whether the first *Error in err's chain has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
