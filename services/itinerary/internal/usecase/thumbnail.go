package usecase

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

const thumbnailSize = 480

// MakeThumbnail decodes an uploaded image, honours EXIF orientation and
// returns a JPEG that fits in a thumbnailSize square.
func MakeThumbnail(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unsupported image: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
