package frame

// ComponentBuffer is a view of one channel of a Bitmap.
type ComponentBuffer struct {
	Width  int
	Height int
	Data   []byte
	// SampleStride is the byte distance between two samples of a row: 1 for
	// planar formats, N for packed N-byte pixels.
	SampleStride int
	// Pitch is the byte distance between two rows.
	Pitch int
	Ref   interface{}
}

// At returns the sample at (x, y).
func (c *ComponentBuffer) At(x, y int) uint8 {
	return c.Data[y*c.Pitch+x*c.SampleStride]
}

func (c *ComponentBuffer) Set(x, y int, v uint8) {
	c.Data[y*c.Pitch+x*c.SampleStride] = v
}

// channel offsets within a packed pixel, in R,G,B,A (or Y,U,V,A) order.
var packedChannels = map[Format][]int{
	FormatRGBA:    {0, 1, 2, 3},
	FormatRGBA_PA: {0, 1, 2, 3},
	FormatYUVA:    {0, 1, 2, 3},
	FormatYUVA_PA: {0, 1, 2, 3},
	FormatBGRA:    {2, 1, 0, 3},
	FormatBGRA_PA: {2, 1, 0, 3},
	FormatARGB:    {1, 2, 3, 0},
	FormatARGB_PA: {1, 2, 3, 0},
	FormatABGR:    {3, 2, 1, 0},
	FormatABGR_PA: {3, 2, 1, 0},
	FormatRGB:     {0, 1, 2},
	FormatYUV444:  {0, 1, 2},
	FormatBGR:     {2, 1, 0},
	FormatGray8:   {0, 0, 0},
}

// ComponentBuffers fills dst with one view per channel, ordered R,G,B[,A]
// for RGB and gray formats and Y,U,V[,A] for YUV formats, whatever the
// physical layout is. It returns the number of views, or 0 when the format
// has no byte addressable channels or when the dimensions are invalid for
// the format, in which case dst is untouched.
func (b Bitmap) ComponentBuffers(dst *[MaxPlanes]ComponentBuffer) int {
	f := b.Format
	if !f.Valid() || !b.dimensionsValid() {
		return 0
	}
	b = b.FillDefaultValues()
	p := &b.Planes
	w, h := b.Width, b.Height

	view := func(plane, offset, step, width, height int) ComponentBuffer {
		return ComponentBuffer{
			Width:        width,
			Height:       height,
			Data:         follow(p[plane].Data, offset),
			SampleStride: step,
			Pitch:        p[plane].Stride,
			Ref:          p[plane].Ref,
		}
	}

	if offsets, ok := packedChannels[f]; ok {
		step := f.BitsPerSample() / 8
		for i, off := range offsets {
			dst[i] = view(0, off, step, w, h)
		}
		return len(offsets)
	}

	switch f {
	case FormatRGBA_PLANAR, FormatRGBA_PLANAR_PA, FormatRGB_PLANAR,
		FormatYUVA_PLANAR, FormatYUVA_PLANAR_PA, FormatI444:
		n := f.PlaneCount()
		for i := 0; i < n; i++ {
			dst[i] = view(i, 0, 1, w, h)
		}
		return n
	case FormatI420:
		dst[0] = view(0, 0, 1, w, h)
		dst[1] = view(1, 0, 1, w/2, h/2)
		dst[2] = view(2, 0, 1, w/2, h/2)
		return 3
	case FormatYV12:
		dst[0] = view(0, 0, 1, w, h)
		dst[1] = view(2, 0, 1, w/2, h/2)
		dst[2] = view(1, 0, 1, w/2, h/2)
		return 3
	case FormatNV12:
		dst[0] = view(0, 0, 1, w, h)
		dst[1] = view(1, 0, 2, w/2, h/2)
		dst[2] = view(1, 1, 2, w/2, h/2)
		return 3
	case FormatNV21:
		dst[0] = view(0, 0, 1, w, h)
		dst[1] = view(1, 1, 2, w/2, h/2)
		dst[2] = view(1, 0, 2, w/2, h/2)
		return 3
	}
	return 0
}
