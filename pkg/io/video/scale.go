package video

import (
	"errors"
	"image"

	"github.com/pion/bitmap/pkg/frame"
	"golang.org/x/image/draw"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

var errInvalidScaleSize = errors.New("scaling: width and height can't both be negative")

// Scale returns video scaling transform. The output keeps the format of the
// incoming frames.
// Setting scaler=nil to use default scaler. (ScalerNearestNeighbor)
// Negative width or height value will keep the aspect ratio of incoming frame.
//
// Formats with one byte per sample and per plane are scaled plane by plane,
// the others go through an intermediate NRGBA image.
func Scale(width, height int, scaler Scaler) TransformFunc {
	return func(r Reader) Reader {
		if scaler == nil {
			scaler = ScalerNearestNeighbor
		}

		out := NewFrameBuffer(0)
		srcRGBA := NewFrameBuffer(0)
		dstRGBA := NewFrameBuffer(0)

		return ReaderFunc(func() (frame.Bitmap, func(), error) {
			if width <= 0 && height <= 0 {
				return frame.Bitmap{}, noRelease, errInvalidScaleSize
			}

			b, release, err := r.Read()
			if err != nil {
				return frame.Bitmap{}, noRelease, err
			}
			defer release()
			if b.Width <= 0 || b.Height <= 0 {
				return frame.Bitmap{}, noRelease, frame.ErrEmptyCrop
			}

			w, h := width, height
			if h <= 0 {
				h = b.Height * w / b.Width
			} else if w <= 0 {
				w = b.Width * h / b.Height
			}
			if b.Format.IsYUV420() {
				w &^= 1
				h &^= 1
			}

			dst := out.Reserve(w, h, b.Format)
			if scalePlanes(scaler, dst, b) {
				return dst, noRelease, nil
			}

			// Round trip through NRGBA for packed and interleaved formats
			src := srcRGBA.Reserve(b.Width, b.Height, frame.FormatRGBA)
			if err := frame.Convert(src, b); err != nil {
				return frame.Bitmap{}, noRelease, err
			}
			scaled := dstRGBA.Reserve(w, h, frame.FormatRGBA)
			scaler.Scale(nrgba(scaled), image.Rect(0, 0, w, h), nrgba(src), image.Rect(0, 0, b.Width, b.Height), draw.Src, nil)
			if err := frame.Convert(dst, scaled); err != nil {
				return frame.Bitmap{}, noRelease, err
			}
			return dst, noRelease, nil
		})
	}
}

func nrgba(b frame.Bitmap) *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Planes[0].Data,
		Stride: b.Planes[0].Stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

func gray(c *frame.ComponentBuffer) *image.Gray {
	return &image.Gray{
		Pix:    c.Data,
		Stride: c.Pitch,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}

// scalePlanes scales every channel of src into dst as a gray image. It
// reports false when a channel is interleaved with others.
func scalePlanes(scaler Scaler, dst, src frame.Bitmap) bool {
	if src.Format.PlaneCount() < 3 {
		return false
	}
	var sc, dc [frame.MaxPlanes]frame.ComponentBuffer
	n := src.ComponentBuffers(&sc)
	if n == 0 || dst.ComponentBuffers(&dc) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if sc[i].SampleStride != 1 || dc[i].SampleStride != 1 {
			return false
		}
	}
	for i := 0; i < n; i++ {
		scaler.Scale(gray(&dc[i]), image.Rect(0, 0, dc[i].Width, dc[i].Height), gray(&sc[i]), image.Rect(0, 0, sc[i].Width, sc[i].Height), draw.Src, nil)
	}
	return true
}
