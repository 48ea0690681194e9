package images

import (
	"crypto/md5"
	"fmt"
)

// Checksum generates a deterministic checksum of an image's pixels and
// dimensions, used to verify that two images are byte-for-byte identical.
//
// Arguments:
//   - img: The image to compute the checksum for.
//
// Returns:
//   - A hex-encoded MD5 checksum string, or "empty" for a nil or zero-sized image.
//
// Example:
//
// ```go
//
//	checksum := Checksum(img)
//	fmt.Printf("output checksum: %s\n", checksum)
//
// ```
func Checksum(img *Image) string {
	if img == nil || len(img.rgba.Pix) == 0 {
		return "empty"
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", img.Width(), img.Height())
	hash.Write(img.rgba.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
