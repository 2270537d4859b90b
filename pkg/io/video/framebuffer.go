package video

import (
	"github.com/pion/bitmap/pkg/frame"
)

// FrameBuffer is a buffer that can store a frame of any format.
type FrameBuffer struct {
	buffer []uint8
	tmp    frame.Bitmap
}

// NewFrameBuffer creates a new FrameBuffer instance and initialize internal buffer
// with initialSize
func NewFrameBuffer(initialSize int) *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]uint8, initialSize),
	}
}

func (buff *FrameBuffer) grow(neededSize int) []uint8 {
	if len(buff.buffer) < neededSize {
		if cap(buff.buffer) >= neededSize {
			buff.buffer = buff.buffer[:neededSize]
		} else {
			buff.buffer = make([]uint8, neededSize)
		}
	}
	return buff.buffer[:neededSize:neededSize]
}

// Load loads the current owned frame
func (buff *FrameBuffer) Load() frame.Bitmap {
	return buff.tmp
}

// Reserve returns a width x height frame of format f with unpadded rows,
// backed by the internal buffer. The memory is shared with the frame
// previously returned by Reserve or StoreCopy.
func (buff *FrameBuffer) Reserve(width, height int, f frame.Format) frame.Bitmap {
	size := frame.PackedFrameSize(f, width, height)
	buff.tmp = frame.Packed(f, width, height, buff.grow(size))
	return buff.tmp
}

// StoreCopy makes a copy of src and store its copy. StoreCopy will reuse as much memory as it can
// from the previous copies. For example, if StoreCopy is given a frame that has the same resolution
// and format from the previous call, StoreCopy will not allocate extra memory and only copy the content
// from src to the previous buffer. Padding between rows is dropped.
func (buff *FrameBuffer) StoreCopy(src frame.Bitmap) (frame.Bitmap, error) {
	dst := buff.Reserve(src.Width, src.Height, src.Format)
	if err := frame.Convert(dst, src); err != nil {
		return frame.Bitmap{}, err
	}
	return dst, nil
}
