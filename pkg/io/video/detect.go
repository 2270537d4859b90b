package video

import (
	"time"

	"github.com/pion/bitmap/pkg/frame"
)

// DetectChanges will detect frame and video property changes. For video property detection,
// since it's time related, interval will be used to determine the sample rate. Frame rate
// variations within tolerance, in fps, are not reported.
func DetectChanges(interval time.Duration, tolerance float32, onChange func(Property)) TransformFunc {
	return func(r Reader) Reader {
		var currentProp Property
		var lastTaken time.Time
		var frames uint
		first := true
		return ReaderFunc(func() (frame.Bitmap, func(), error) {
			var dirty bool

			b, release, err := r.Read()
			if err != nil {
				return frame.Bitmap{}, noRelease, err
			}

			if currentProp.Width != b.Width {
				currentProp.Width = b.Width
				dirty = true
			}

			if currentProp.Height != b.Height {
				currentProp.Height = b.Height
				dirty = true
			}

			if currentProp.FrameFormat != b.Format {
				currentProp.FrameFormat = b.Format
				dirty = true
			}

			now := time.Now()
			if first {
				lastTaken = now
				first = false
			} else if elapsed := now.Sub(lastTaken); elapsed >= interval {
				fps := float32(float64(frames) / elapsed.Seconds())
				diff := fps - currentProp.FrameRate
				if diff < -tolerance || diff > tolerance {
					currentProp.FrameRate = fps
					dirty = true
				}
				frames = 0
				lastTaken = now
			}

			if dirty {
				onChange(currentProp)
			}

			frames++
			return b, release, nil
		})
	}
}
