package frame

import (
	"fmt"
	"image"
)

// Decoder turns raw frame bytes into an image.Image. The returned function
// releases the image once the caller is done with it.
type Decoder interface {
	Decode(frame []byte, width, height int) (image.Image, func(), error)
}

type decoderFunc func(frame []byte, width, height int) (image.Image, func(), error)

func (f decoderFunc) Decode(frame []byte, width, height int) (image.Image, func(), error) {
	return f(frame, width, height)
}

// NewDecoder returns a Decoder for frames of format f with unpadded rows.
// Formats matching a standard image type are wrapped without copying, the
// others are converted to *image.NRGBA.
func NewDecoder(f Format) (Decoder, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%s is not supported", f)
	}

	return decoderFunc(func(frame []byte, width, height int) (image.Image, func(), error) {
		size := PackedFrameSize(f, width, height)
		if size == 0 {
			return nil, func() {}, fmt.Errorf("invalid %s frame size %dx%d", f, width, height)
		}
		if size > len(frame) {
			return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), size)
		}

		img, err := ToImage(Packed(f, width, height, frame))
		if err != nil {
			return nil, func() {}, err
		}
		return img, func() {}, nil
	}), nil
}
