package frame

import (
	"github.com/pion/bitmap/pkg/io"
)

// CopyPixelsFrom copies the pixels of src into b, converting between the
// formats. The copied area is the intersection of both sizes, rounded down
// to even dimensions when either side is 4:2:0. Conversions that can't
// proceed leave b untouched and are not reported, use Convert to learn why.
func (b Bitmap) CopyPixelsFrom(src Bitmap) {
	_ = Convert(b, src)
}

// Convert copies the pixels of src into dst, converting between the
// formats. Every check happens before the first write, so dst is either
// fully written or left untouched. Converting a buffer into itself is a
// no-op.
func Convert(dst, src Bitmap) error {
	sf, df := src.Format, dst.Format
	if sf == FormatNone || df == FormatNone {
		return ErrNoFormat
	}
	if !sf.Valid() || !df.Valid() {
		return ErrUnsupportedFormat
	}
	if !src.dimensionsValid() || !dst.dimensionsValid() {
		return ErrOddDimensions
	}

	width := min(src.Width, dst.Width)
	height := min(src.Height, dst.Height)
	if sf.IsYUV420() || df.IsYUV420() {
		width &^= 1
		height &^= 1
	}
	if width <= 0 || height <= 0 {
		return ErrEmptyCrop
	}

	src = src.FillDefaultValues()
	dst = dst.FillDefaultValues()
	if sameView(&src, &dst) {
		return nil
	}
	if err := src.checkPlanes(width, height); err != nil {
		return err
	}
	if err := dst.checkPlanes(width, height); err != nil {
		return err
	}

	switch {
	case sf.IsYUV420() && df.IsYUV420():
		copyYUV420(&dst, &src, width, height)
	case sf.IsYUV420():
		upsampleYUV420(&dst, &src, width, height)
	case df.IsYUV420():
		downsampleYUV420(&dst, &src, width, height)
	default:
		return copyNormal(&dst, &src, width, height)
	}
	return nil
}

// checkPlanes makes sure every plane can hold width x height samples.
func (b *Bitmap) checkPlanes(width, height int) error {
	for i := 0; i < b.Format.PlaneCount(); i++ {
		required := b.requiredSize(i, width, height)
		if len(b.Planes[i].Data) < required || b.Planes[i].Stride < b.Format.planeRowBytes(i, width) {
			return &io.InsufficientBufferError{Plane: i, RequiredSize: required}
		}
	}
	return nil
}

// rows points r at row y of every plane.
func (b *Bitmap) rows(r *planeRows, y int) {
	for i := 0; i < b.Format.PlaneCount(); i++ {
		r[i] = b.row(i, y)
	}
}

// copyNormal converts between two formats without chroma sub-sampling.
func copyNormal(dst, src *Bitmap, width, height int) error {
	sf, df := src.Format, dst.Format
	// Both premultiplied: alpha scaling cancels out, move the values as is.
	if sf.IsPremultiplied() && df.IsPremultiplied() {
		sf, df = sf.StraightAlpha(), df.StraightAlpha()
	}
	// Both YUV with the same alpha kind: no colour conversion, only the
	// channel layout differs.
	if sf.IsYUV() && df.IsYUV() && sf.IsPremultiplied() == df.IsPremultiplied() {
		sf, df = sf.RGBEquivalent(), df.RGBEquivalent()
	}

	if sf == df {
		for i := 0; i < sf.PlaneCount(); i++ {
			n := sf.BitsPerSample() * width / 8
			for y := 0; y < height; y++ {
				copy(dst.row(i, y)[:n], src.row(i, y))
			}
		}
		return nil
	}

	sc, dc := codecs[sf], codecs[df]
	if sc == nil || dc == nil {
		return ErrUnsupportedFormat
	}
	read, write := sc.rgbDecoder(), dc.rgbEncoder()
	if sc.space == ColorSpaceYUV && dc.space == ColorSpaceYUV {
		read, write = sc.yuvDecoder(), dc.yuvEncoder()
	}

	var sr, dr planeRows
	for y := 0; y < height; y++ {
		src.rows(&sr, y)
		dst.rows(&dr, y)
		for x := 0; x < width; x++ {
			write(&dr, x, read(&sr, x))
		}
	}
	return nil
}
