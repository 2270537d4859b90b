package frame

func copyComponent(dst, src *ComponentBuffer, width, height int) {
	if dst.SampleStride == 1 && src.SampleStride == 1 {
		for y := 0; y < height; y++ {
			copy(dst.Data[y*dst.Pitch:y*dst.Pitch+width], src.Data[y*src.Pitch:])
		}
		return
	}
	for y := 0; y < height; y++ {
		d := dst.Data[y*dst.Pitch:]
		s := src.Data[y*src.Pitch:]
		for x := 0; x < width; x++ {
			d[x*dst.SampleStride] = s[x*src.SampleStride]
		}
	}
}

// copyYUV420 copies between two 4:2:0 layouts plane by plane.
func copyYUV420(dst, src *Bitmap, width, height int) {
	var sc, dc [MaxPlanes]ComponentBuffer
	src.ComponentBuffers(&sc)
	dst.ComponentBuffers(&dc)
	copyComponent(&dc[0], &sc[0], width, height)
	copyComponent(&dc[1], &sc[1], width/2, height/2)
	copyComponent(&dc[2], &sc[2], width/2, height/2)
}

// upsampleYUV420 spreads every chroma sample over its 2x2 luma block.
func upsampleYUV420(dst, src *Bitmap, width, height int) {
	var c [MaxPlanes]ComponentBuffer
	src.ComponentBuffers(&c)
	write := codecs[dst.Format].yuvEncoder()
	lum, cb, cr := &c[0], &c[1], &c[2]

	var r0, r1 planeRows
	for y := 0; y < height; y += 2 {
		dst.rows(&r0, y)
		dst.rows(&r1, y+1)
		y0 := lum.Data[y*lum.Pitch:]
		y1 := lum.Data[(y+1)*lum.Pitch:]
		u := cb.Data[y/2*cb.Pitch:]
		v := cr.Data[y/2*cr.Pitch:]
		for x := 0; x < width; x += 2 {
			cu := u[x/2*cb.SampleStride]
			cv := v[x/2*cr.SampleStride]
			write(&r0, x, sample{y0[x], cu, cv, 0xFF})
			write(&r0, x+1, sample{y0[x+1], cu, cv, 0xFF})
			write(&r1, x, sample{y1[x], cu, cv, 0xFF})
			write(&r1, x+1, sample{y1[x+1], cu, cv, 0xFF})
		}
	}
}

// downsampleYUV420 keeps every luma sample and averages the chroma of each
// 2x2 block. The average truncates.
func downsampleYUV420(dst, src *Bitmap, width, height int) {
	var c [MaxPlanes]ComponentBuffer
	dst.ComponentBuffers(&c)
	read := codecs[src.Format].yuvDecoder()
	lum, cb, cr := &c[0], &c[1], &c[2]

	var r0, r1 planeRows
	for y := 0; y < height; y += 2 {
		src.rows(&r0, y)
		src.rows(&r1, y+1)
		y0 := lum.Data[y*lum.Pitch:]
		y1 := lum.Data[(y+1)*lum.Pitch:]
		u := cb.Data[y/2*cb.Pitch:]
		v := cr.Data[y/2*cr.Pitch:]
		for x := 0; x < width; x += 2 {
			s00 := read(&r0, x)
			s01 := read(&r0, x+1)
			s10 := read(&r1, x)
			s11 := read(&r1, x+1)
			y0[x], y0[x+1] = s00[0], s01[0]
			y1[x], y1[x+1] = s10[0], s11[0]
			u[x/2*cb.SampleStride] = uint8((uint32(s00[1]) + uint32(s01[1]) + uint32(s10[1]) + uint32(s11[1])) >> 2)
			v[x/2*cr.SampleStride] = uint8((uint32(s00[2]) + uint32(s01[2]) + uint32(s10[2]) + uint32(s11[2])) >> 2)
		}
	}
}
