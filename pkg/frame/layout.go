package frame

func align4(width, bits int) int {
	return ((width*bits + 31) >> 5) << 2
}

func align16(n int) int {
	return ((n + 15) >> 4) << 4
}

// follow returns the bytes after the first n bytes of data, or nil when data
// is too short to hold them.
func follow(data []byte, n int) []byte {
	if data == nil || n > len(data) {
		return nil
	}
	return data[n:]
}

// FillDefaultValues resolves unset strides and planes to the default layout
// of the format, where every plane follows the previous one in a single
// allocation. The receiver is left untouched. A 4:2:0 bitmap with odd
// dimensions is returned as is.
func (b Bitmap) FillDefaultValues() Bitmap {
	f := b.Format
	p := &b.Planes
	if f == FormatNone || !b.dimensionsValid() {
		return b
	}
	switch f {
	case FormatI420, FormatYV12:
		if p[0].Stride == 0 {
			p[0].Stride = align16(b.Width)
		}
		if p[1].Data == nil {
			p[1].Data = follow(p[0].Data, p[0].Stride*b.Height)
		}
		if p[1].Stride == 0 {
			p[1].Stride = align16(b.Width / 2)
		}
		if p[2].Data == nil {
			p[2].Data = follow(p[1].Data, p[1].Stride*b.Height/2)
		}
		if p[2].Stride == 0 {
			p[2].Stride = p[1].Stride
		}
	case FormatNV12, FormatNV21:
		if p[0].Stride == 0 {
			p[0].Stride = b.Width
		}
		if p[1].Data == nil {
			p[1].Data = follow(p[0].Data, p[0].Stride*b.Height)
		}
		if p[1].Stride == 0 {
			p[1].Stride = b.Width
		}
	default:
		n := f.PlaneCount()
		for i := 0; i < n; i++ {
			if p[i].Stride == 0 {
				p[i].Stride = align4(b.Width, f.BitsPerSample())
			}
			if i > 0 && p[i].Data == nil {
				p[i].Data = follow(p[i-1].Data, p[i-1].Stride*b.Height)
			}
		}
	}
	return b
}

func (b *Bitmap) dimensionsValid() bool {
	if b.Format.IsYUV420() && (b.Width&1 != 0 || b.Height&1 != 0) {
		return false
	}
	return true
}

// TotalSize returns the number of bytes spanned by all planes once defaults
// are resolved. It returns 0 for FormatNone, for empty or negative
// dimensions and for odd dimensions of a 4:2:0 format.
func (b Bitmap) TotalSize() int {
	if !b.Format.Valid() || !b.dimensionsValid() || b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	b = b.FillDefaultValues()
	var size int
	for i := 0; i < b.Format.PlaneCount(); i++ {
		size += b.Planes[i].Stride * b.Format.planeRows(i, b.Height)
	}
	return size
}

// requiredSize returns the minimal length of plane i to hold width x height.
func (b *Bitmap) requiredSize(i, width, height int) int {
	rows := b.Format.planeRows(i, height)
	if rows == 0 {
		return 0
	}
	return (rows-1)*b.Planes[i].Stride + b.Format.planeRowBytes(i, width)
}
