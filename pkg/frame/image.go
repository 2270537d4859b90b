package frame

import (
	"image"
)

func packedView(f Format, pix []byte, stride int, r image.Rectangle, offset int) Bitmap {
	b := Bitmap{Width: r.Dx(), Height: r.Dy(), Format: f}
	b.Planes[0] = Plane{Data: follow(pix, offset), Stride: stride, Ref: pix}
	return b
}

// FromImage returns a Bitmap viewing the pixels of img without copying.
// It reports false for image types without a matching Format.
func FromImage(img image.Image) (Bitmap, bool) {
	switch img := img.(type) {
	case *image.RGBA:
		return packedView(FormatRGBA_PA, img.Pix, img.Stride, img.Rect, img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)), true
	case *image.NRGBA:
		return packedView(FormatRGBA, img.Pix, img.Stride, img.Rect, img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)), true
	case *image.Gray:
		return packedView(FormatGray8, img.Pix, img.Stride, img.Rect, img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)), true
	case *RGB24Img:
		return packedView(FormatRGB, img.Pix, img.Stride, img.Rect, img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)), true
	case *image.YCbCr:
		return ycbcrView(img)
	case *image.NYCbCrA:
		if img.SubsampleRatio != image.YCbCrSubsampleRatio444 {
			return Bitmap{}, false
		}
		b, _ := ycbcrView(&img.YCbCr)
		b.Format = FormatYUVA_PLANAR
		off := img.AOffset(img.Rect.Min.X, img.Rect.Min.Y)
		b.Planes[3] = Plane{Data: follow(img.A, off), Stride: img.AStride, Ref: img.A}
		return b, true
	}
	return Bitmap{}, false
}

func ycbcrView(img *image.YCbCr) (Bitmap, bool) {
	r := img.Rect
	b := Bitmap{Width: r.Dx(), Height: r.Dy()}
	switch img.SubsampleRatio {
	case image.YCbCrSubsampleRatio444:
		b.Format = FormatI444
	case image.YCbCrSubsampleRatio420:
		if r.Min.X&1 != 0 || r.Min.Y&1 != 0 {
			return Bitmap{}, false
		}
		b.Format = FormatI420
	default:
		return Bitmap{}, false
	}
	yi := img.YOffset(r.Min.X, r.Min.Y)
	ci := img.COffset(r.Min.X, r.Min.Y)
	b.Planes[0] = Plane{Data: follow(img.Y, yi), Stride: img.YStride, Ref: img.Y}
	b.Planes[1] = Plane{Data: follow(img.Cb, ci), Stride: img.CStride, Ref: img.Cb}
	b.Planes[2] = Plane{Data: follow(img.Cr, ci), Stride: img.CStride, Ref: img.Cr}
	return b, true
}

// planeData returns plane i cut to the bytes needed by the whole bitmap.
func (b *Bitmap) planeData(i int) []byte {
	n := b.requiredSize(i, b.Width, b.Height)
	return b.Planes[i].Data[:n:n]
}

// ToImage returns an image.Image over the pixels of b. Formats with a
// matching standard image type are wrapped without copying, the others are
// converted into a new *image.NRGBA.
func ToImage(b Bitmap) (image.Image, error) {
	if !b.Format.Valid() {
		return nil, ErrUnsupportedFormat
	}
	if !b.dimensionsValid() {
		return nil, ErrOddDimensions
	}
	if b.Width <= 0 || b.Height <= 0 {
		return nil, ErrEmptyCrop
	}
	b = b.FillDefaultValues()
	if err := b.checkPlanes(b.Width, b.Height); err != nil {
		return nil, err
	}

	r := image.Rect(0, 0, b.Width, b.Height)
	p := &b.Planes
	switch b.Format {
	case FormatRGBA_PA:
		return &image.RGBA{Pix: b.planeData(0), Stride: p[0].Stride, Rect: r}, nil
	case FormatRGBA:
		return &image.NRGBA{Pix: b.planeData(0), Stride: p[0].Stride, Rect: r}, nil
	case FormatGray8:
		return &image.Gray{Pix: b.planeData(0), Stride: p[0].Stride, Rect: r}, nil
	case FormatRGB:
		return &RGB24Img{Pix: b.planeData(0), Stride: p[0].Stride, Rect: r}, nil
	case FormatI444, FormatI420, FormatYV12:
		if p[1].Stride != p[2].Stride {
			break
		}
		img := &image.YCbCr{
			Y:              b.planeData(0),
			YStride:        p[0].Stride,
			Cb:             b.planeData(1),
			Cr:             b.planeData(2),
			CStride:        p[1].Stride,
			SubsampleRatio: image.YCbCrSubsampleRatio420,
			Rect:           r,
		}
		switch b.Format {
		case FormatI444:
			img.SubsampleRatio = image.YCbCrSubsampleRatio444
		case FormatYV12:
			img.Cb, img.Cr = img.Cr, img.Cb
		}
		return img, nil
	case FormatYUVA_PLANAR:
		if p[1].Stride != p[2].Stride {
			break
		}
		return &image.NYCbCrA{
			YCbCr: image.YCbCr{
				Y:              b.planeData(0),
				YStride:        p[0].Stride,
				Cb:             b.planeData(1),
				Cr:             b.planeData(2),
				CStride:        p[1].Stride,
				SubsampleRatio: image.YCbCrSubsampleRatio444,
				Rect:           r,
			},
			A:       b.planeData(3),
			AStride: p[3].Stride,
		}, nil
	}

	var dst image.Image = image.NewNRGBA(r)
	if b.Format.IsYUV420() {
		dst = image.NewYCbCr(r, image.YCbCrSubsampleRatio420)
	}
	view, _ := FromImage(dst)
	if err := Convert(view, b); err != nil {
		return nil, err
	}
	return dst, nil
}
