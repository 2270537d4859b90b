package video

import "github.com/pion/bitmap/pkg/frame"

// Property represents a video's basic properties
type Property struct {
	Width, Height int
	FrameRate     float32
	FrameFormat   frame.Format
}
