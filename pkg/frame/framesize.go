package frame

// FrameSize returns the number of bytes a width x height frame occupies in
// the default layout of f, rows being aligned as FillDefaultValues does.
func FrameSize(f Format, width, height int) int {
	return Bitmap{Width: width, Height: height, Format: f}.TotalSize()
}

// PackedFrameSize returns the number of bytes a width x height frame
// occupies when rows are not padded, as capture devices deliver them.
func PackedFrameSize(f Format, width, height int) int {
	if !f.Valid() || width <= 0 || height <= 0 {
		return 0
	}
	if f.IsYUV420() && (width&1 != 0 || height&1 != 0) {
		return 0
	}
	var size int
	for i := 0; i < f.PlaneCount(); i++ {
		size += f.planeRows(i, height) * f.planeRowBytes(i, width)
	}
	return size
}

// Packed returns a Bitmap over data with unpadded rows and planes
// following each other.
func Packed(f Format, width, height int, data []byte) Bitmap {
	b := Bitmap{Width: width, Height: height, Format: f}
	b.Planes[0] = Plane{Data: data, Ref: data}
	for i := 0; i < f.PlaneCount(); i++ {
		b.Planes[i].Stride = f.planeRowBytes(i, width)
	}
	return b.FillDefaultValues()
}
