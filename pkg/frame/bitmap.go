package frame

import (
	"image/color"
	"unsafe"
)

// Plane is one plane of a Bitmap.
type Plane struct {
	// Data starts at the first sample of the plane. A nil Data is resolved by
	// FillDefaultValues to follow the previous plane.
	Data []byte
	// Stride is the byte distance between two rows. Zero means default.
	Stride int
	// Ref keeps the owner of Data alive. It is never interpreted.
	Ref interface{}
}

// Bitmap describes a pixel buffer. Bitmap is a view, it never allocates nor
// owns its planes.
type Bitmap struct {
	Width  int
	Height int
	Format Format
	Planes [MaxPlanes]Plane
}

// NewBitmap allocates a contiguous buffer for a width x height image in the
// default layout of f.
func NewBitmap(width, height int, f Format) Bitmap {
	b := Bitmap{Width: width, Height: height, Format: f}
	size := b.TotalSize()
	if size == 0 {
		return b
	}
	buf := make([]byte, size)
	b.Planes[0].Data = buf
	b.Planes[0].Ref = buf
	return b.FillDefaultValues()
}

// FromColors wraps colors as a FormatRGBA Bitmap without copying. stride is
// counted in pixels, zero means width.
func FromColors(width, height int, colors []color.NRGBA, stride int) Bitmap {
	if stride <= 0 {
		stride = width
	}
	b := Bitmap{Width: width, Height: height, Format: FormatRGBA}
	if len(colors) == 0 {
		return b
	}
	b.Planes[0] = Plane{
		Data:   unsafe.Slice((*byte)(unsafe.Pointer(&colors[0])), 4*len(colors)),
		Stride: 4 * stride,
		Ref:    colors,
	}
	return b
}

// WithPlane returns a copy of b with plane i replaced.
func (b Bitmap) WithPlane(i int, data []byte, stride int) Bitmap {
	b.Planes[i] = Plane{Data: data, Stride: stride, Ref: b.Planes[i].Ref}
	return b
}

// row returns the bytes of plane i starting at row y.
func (b *Bitmap) row(i, y int) []byte {
	p := &b.Planes[i]
	return p.Data[y*p.Stride:]
}

// sameView reports whether a and b read and write the very same bytes.
func sameView(a, b *Bitmap) bool {
	if a.Format != b.Format {
		return false
	}
	for i := 0; i < a.Format.PlaneCount(); i++ {
		pa, pb := &a.Planes[i], &b.Planes[i]
		if pa.Stride != pb.Stride || len(pa.Data) == 0 || len(pb.Data) == 0 {
			return false
		}
		if unsafe.SliceData(pa.Data) != unsafe.SliceData(pb.Data) {
			return false
		}
	}
	return true
}
