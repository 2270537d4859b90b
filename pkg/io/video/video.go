package video

import (
	"github.com/pion/bitmap/internal/logging"
	"github.com/pion/bitmap/pkg/frame"
)

var logger = logging.NewLogger("io/video")

// Reader produces frames. release must be called once the frame is no
// longer used, the frame memory may be reused afterwards.
type Reader interface {
	Read() (b frame.Bitmap, release func(), err error)
}

type ReaderFunc func() (b frame.Bitmap, release func(), err error)

func (rf ReaderFunc) Read() (b frame.Bitmap, release func(), err error) {
	b, release, err = rf()
	return
}

// TransformFunc produces a new Reader that will produces a transformed video
type TransformFunc func(r Reader) Reader

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order
func Merge(transforms ...TransformFunc) TransformFunc {
	return func(r Reader) Reader {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}

func noRelease() {}
