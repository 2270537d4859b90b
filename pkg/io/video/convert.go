package video

import (
	"fmt"

	"github.com/pion/bitmap/pkg/frame"
	"github.com/pion/bitmap/pkg/prop"
)

// Convert converts r to a new reader that will output frames in format f.
// Frames already in f are passed through.
func Convert(f frame.Format) TransformFunc {
	return ConvertTo(prop.FrameFormatExact(f))
}

// ConvertTo converts r to a new reader that will output frames satisfying c.
// Frames whose format matches c perfectly are passed through, the others are
// converted to c.Value(), or to the closest format of the catalog when c has
// no single value.
func ConvertTo(c prop.FrameFormatConstraint) TransformFunc {
	return func(r Reader) Reader {
		buff := NewFrameBuffer(0)
		var lastFormat frame.Format
		return ReaderFunc(func() (frame.Bitmap, func(), error) {
			b, release, err := r.Read()
			if err != nil {
				return frame.Bitmap{}, noRelease, err
			}

			if dist, ok := c.Compare(b.Format); ok && dist == 0 {
				return b, release, nil
			}

			target, ok := c.Value()
			if !ok {
				target, ok = prop.SelectFrameFormat(c, frame.Formats()...)
			}
			if !ok {
				release()
				return frame.Bitmap{}, noRelease, fmt.Errorf("video: no frame format satisfies %v", c)
			}
			if b.Format != lastFormat {
				logger.Debugf("converting %s frames to %s", b.Format, target)
				lastFormat = b.Format
			}

			dst := buff.Reserve(b.Width, b.Height, target)
			err = frame.Convert(dst, b)
			release()
			if err != nil {
				logger.Warnf("dropping %dx%d %s frame: %v", b.Width, b.Height, b.Format, err)
				return frame.Bitmap{}, noRelease, fmt.Errorf("video: convert %s to %s: %w", b.Format, target, err)
			}
			return dst, noRelease, nil
		})
	}
}
