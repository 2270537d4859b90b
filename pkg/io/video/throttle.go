package video

import (
	"time"

	"github.com/pion/bitmap/pkg/frame"
)

// Throttle returns video throttling transform.
// This transform drops some of the incoming frames to achieve given framerate in fps.
func Throttle(rate float32) TransformFunc {
	return func(r Reader) Reader {
		ticker := time.NewTicker(time.Duration(int64(float64(time.Second) / float64(rate))))
		return ReaderFunc(func() (frame.Bitmap, func(), error) {
			for {
				b, release, err := r.Read()
				if err != nil {
					ticker.Stop()
					return frame.Bitmap{}, noRelease, err
				}
				select {
				case <-ticker.C:
					return b, release, nil
				default:
					release()
				}
			}
		})
	}
}
