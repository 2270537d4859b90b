package frame

// sample is one pixel: three colour channels in the colour space of the
// codec that produced it, followed by straight alpha.
type sample [4]uint8

// planeRows holds, for every plane, the bytes of the current row.
type planeRows [MaxPlanes][]byte

type readFunc func(p *planeRows, x int) sample

type writeFunc func(p *planeRows, x int, s sample)

// sampleCodec reads and writes one pixel of a non-subsampled format in its
// native colour space. Premultiplied formats unmultiply on read and
// multiply on write, so samples always carry straight alpha.
type sampleCodec struct {
	space ColorSpace
	read  readFunc
	write writeFunc
}

var codecs = map[Format]*sampleCodec{
	FormatRGBA: packed4Codec(ColorSpaceRGB, 0, 1, 2, 3),
	FormatBGRA: packed4Codec(ColorSpaceRGB, 2, 1, 0, 3),
	FormatARGB: packed4Codec(ColorSpaceRGB, 1, 2, 3, 0),
	FormatABGR: packed4Codec(ColorSpaceRGB, 3, 2, 1, 0),

	FormatRGBA_PA: premultipliedCodec(packed4Codec(ColorSpaceRGB, 0, 1, 2, 3)),
	FormatBGRA_PA: premultipliedCodec(packed4Codec(ColorSpaceRGB, 2, 1, 0, 3)),
	FormatARGB_PA: premultipliedCodec(packed4Codec(ColorSpaceRGB, 1, 2, 3, 0)),
	FormatABGR_PA: premultipliedCodec(packed4Codec(ColorSpaceRGB, 3, 2, 1, 0)),

	FormatRGB: packed3Codec(ColorSpaceRGB, 0, 1, 2),
	FormatBGR: packed3Codec(ColorSpaceRGB, 2, 1, 0),

	FormatRGB565BE: rgb565Codec(true, false),
	FormatRGB565LE: rgb565Codec(false, false),
	FormatBGR565BE: rgb565Codec(true, true),
	FormatBGR565LE: rgb565Codec(false, true),

	FormatGray8: grayCodec(),

	FormatRGBA_PLANAR:    planarCodec(ColorSpaceRGB, 4),
	FormatRGBA_PLANAR_PA: premultipliedCodec(planarCodec(ColorSpaceRGB, 4)),
	FormatRGB_PLANAR:     planarCodec(ColorSpaceRGB, 3),

	FormatYUVA:           packed4Codec(ColorSpaceYUV, 0, 1, 2, 3),
	FormatYUVA_PA:        premultipliedYUVCodec(packed4Codec(ColorSpaceYUV, 0, 1, 2, 3)),
	FormatYUV444:         packed3Codec(ColorSpaceYUV, 0, 1, 2),
	FormatYUVA_PLANAR:    planarCodec(ColorSpaceYUV, 4),
	FormatYUVA_PLANAR_PA: premultipliedYUVCodec(planarCodec(ColorSpaceYUV, 4)),
	FormatI444:           planarCodec(ColorSpaceYUV, 3),
}

func premultipliedCodec(c *sampleCodec) *sampleCodec {
	read, write := c.read, c.write
	return &sampleCodec{
		space: c.space,
		read: func(p *planeRows, x int) sample {
			return read(p, x).unpremultiplied()
		},
		write: func(p *planeRows, x int, s sample) {
			write(p, x, s.premultiplied())
		},
	}
}

// premultipliedYUVCodec stores the YUV conversion of premultiplied RGB, so
// alpha scales the colour and leaves neutral chroma at 128.
func premultipliedYUVCodec(c *sampleCodec) *sampleCodec {
	read, write := c.read, c.write
	return &sampleCodec{
		space: c.space,
		read: func(p *planeRows, x int) sample {
			s := read(p, x)
			if s[3] == 0xFF {
				return s
			}
			return s.toRGB().unpremultiplied().toYUV()
		},
		write: func(p *planeRows, x int, s sample) {
			if s[3] != 0xFF {
				s = s.toRGB().premultiplied().toYUV()
			}
			write(p, x, s)
		},
	}
}

// rgbDecoder returns a reader producing RGB samples.
func (c *sampleCodec) rgbDecoder() readFunc {
	if c.space != ColorSpaceYUV {
		return c.read
	}
	read := c.read
	return func(p *planeRows, x int) sample {
		return read(p, x).toRGB()
	}
}

// rgbEncoder returns a writer consuming RGB samples.
func (c *sampleCodec) rgbEncoder() writeFunc {
	if c.space != ColorSpaceYUV {
		return c.write
	}
	write := c.write
	return func(p *planeRows, x int, s sample) {
		write(p, x, s.toYUV())
	}
}

// yuvDecoder returns a reader producing YUV samples.
func (c *sampleCodec) yuvDecoder() readFunc {
	if c.space == ColorSpaceYUV {
		return c.read
	}
	read := c.read
	return func(p *planeRows, x int) sample {
		return read(p, x).toYUV()
	}
}

// yuvEncoder returns a writer consuming YUV samples.
func (c *sampleCodec) yuvEncoder() writeFunc {
	if c.space == ColorSpaceYUV {
		return c.write
	}
	write := c.write
	return func(p *planeRows, x int, s sample) {
		write(p, x, s.toRGB())
	}
}
