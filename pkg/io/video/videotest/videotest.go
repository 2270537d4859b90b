// Package videotest provides a synthetic video source for testing.
package videotest

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/pion/bitmap/pkg/frame"
	"github.com/pion/bitmap/pkg/io/video"
)

// YCbCr values of the colour bars, left to right.
var colors = [][3]byte{
	{235, 128, 128},
	{210, 16, 146},
	{170, 166, 16},
	{145, 54, 34},
	{107, 202, 222},
	{82, 90, 240},
	{41, 240, 110},
}

// NewReader returns a reader producing colour bars above a gray gradation
// and a noise area, in the frame format of p (I420 when unset). Frames are
// paced at p.FrameRate, or produced as fast as they are read when it is 0.
// Once ctx is done the reader returns io.EOF.
func NewReader(ctx context.Context, p video.Property) (video.Reader, error) {
	if p.FrameFormat == frame.FormatNone {
		p.FrameFormat = frame.FormatI420
	}
	if !p.FrameFormat.Valid() {
		return nil, frame.ErrUnsupportedFormat
	}
	if p.Width <= 0 || p.Height <= 0 {
		return nil, frame.ErrEmptyCrop
	}
	if p.Width&1 != 0 || p.Height&1 != 0 {
		return nil, frame.ErrOddDimensions
	}

	hColorBarEnd := p.Height * 3 / 4
	wGradationEnd := p.Width * 5 / 7

	base := frame.NewBitmap(p.Width, p.Height, frame.FormatI420)
	var c [frame.MaxPlanes]frame.ComponentBuffer
	base.ComponentBuffers(&c)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			var yy, cb, cr uint8 = 0, 128, 128
			switch {
			case y < hColorBarEnd:
				// Color bar
				bar := colors[x*7/p.Width]
				yy, cb, cr = uint8(uint16(bar[0])*75/100), bar[1], bar[2]
			case x < wGradationEnd:
				// Gray gradation
				yy = uint8(x * 255 / wGradationEnd)
			}
			c[0].Set(x, y, yy)
			c[1].Set(x/2, y/2, cb)
			c[2].Set(x/2, y/2, cr)
		}
	}

	random := rand.New(rand.NewSource(0))
	raw := video.NewFrameBuffer(0)
	out := video.NewFrameBuffer(0)

	var tick *time.Ticker
	if p.FrameRate > 0 {
		tick = time.NewTicker(time.Duration(float32(time.Second) / p.FrameRate))
	}

	r := video.ReaderFunc(func() (frame.Bitmap, func(), error) {
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick.C:
			}
		}
		if ctx.Err() != nil {
			if tick != nil {
				tick.Stop()
			}
			return frame.Bitmap{}, func() {}, io.EOF
		}

		b, err := raw.StoreCopy(base)
		if err != nil {
			return frame.Bitmap{}, func() {}, err
		}
		var luma [frame.MaxPlanes]frame.ComponentBuffer
		b.ComponentBuffers(&luma)
		for y := hColorBarEnd; y < p.Height; y++ {
			for x := wGradationEnd; x < p.Width; x++ {
				// Noise
				luma[0].Set(x, y, uint8(random.Int31n(2)*255))
			}
		}
		if p.FrameFormat == frame.FormatI420 {
			return b, func() {}, nil
		}

		dst := out.Reserve(p.Width, p.Height, p.FrameFormat)
		if err := frame.Convert(dst, b); err != nil {
			return frame.Bitmap{}, func() {}, err
		}
		return dst, func() {}, nil
	})

	return r, nil
}
