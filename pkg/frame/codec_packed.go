package frame

// packed4Codec handles 4 bytes per pixel, i0..i3 being the byte offsets of
// the channels in (R,G,B,A) or (Y,U,V,A) order.
func packed4Codec(space ColorSpace, i0, i1, i2, i3 int) *sampleCodec {
	return &sampleCodec{
		space: space,
		read: func(p *planeRows, x int) sample {
			px := p[0][4*x : 4*x+4 : 4*x+4]
			return sample{px[i0], px[i1], px[i2], px[i3]}
		},
		write: func(p *planeRows, x int, s sample) {
			px := p[0][4*x : 4*x+4 : 4*x+4]
			px[i0], px[i1], px[i2], px[i3] = s[0], s[1], s[2], s[3]
		},
	}
}

// packed3Codec handles 3 bytes per pixel without alpha. Alpha reads as opaque.
func packed3Codec(space ColorSpace, i0, i1, i2 int) *sampleCodec {
	return &sampleCodec{
		space: space,
		read: func(p *planeRows, x int) sample {
			px := p[0][3*x : 3*x+3 : 3*x+3]
			return sample{px[i0], px[i1], px[i2], 0xFF}
		},
		write: func(p *planeRows, x int, s sample) {
			px := p[0][3*x : 3*x+3 : 3*x+3]
			px[i0], px[i1], px[i2] = s[0], s[1], s[2]
		},
	}
}

// rgb565Codec packs 5-6-5 bits into 16 bit words. Packing truncates and
// unpacking shifts back without filling the low bits, so white reads back
// as (248, 252, 248).
func rgb565Codec(bigEndian, bgr bool) *sampleCodec {
	hi, lo := 0, 2
	if bgr {
		hi, lo = 2, 0
	}
	load := func(px []byte) uint16 {
		if bigEndian {
			return uint16(px[0])<<8 | uint16(px[1])
		}
		return uint16(px[1])<<8 | uint16(px[0])
	}
	store := func(px []byte, v uint16) {
		if bigEndian {
			px[0], px[1] = uint8(v>>8), uint8(v)
			return
		}
		px[0], px[1] = uint8(v), uint8(v>>8)
	}
	return &sampleCodec{
		space: ColorSpaceRGB,
		read: func(p *planeRows, x int) sample {
			v := load(p[0][2*x : 2*x+2 : 2*x+2])
			var s sample
			s[hi] = uint8(v>>11) << 3
			s[1] = uint8(v>>5) << 2
			s[lo] = uint8(v) << 3
			s[3] = 0xFF
			return s
		},
		write: func(p *planeRows, x int, s sample) {
			v := uint16(s[hi]>>3)<<11 | uint16(s[1]>>2)<<5 | uint16(s[lo]>>3)
			store(p[0][2*x:2*x+2:2*x+2], v)
		},
	}
}

// grayCodec broadcasts luminance on read and averages r, g, b on write.
func grayCodec() *sampleCodec {
	return &sampleCodec{
		space: ColorSpaceGray,
		read: func(p *planeRows, x int) sample {
			v := p[0][x]
			return sample{v, v, v, 0xFF}
		},
		write: func(p *planeRows, x int, s sample) {
			p[0][x] = uint8((uint32(s[0]) + uint32(s[1]) + uint32(s[2])) / 3)
		},
	}
}

// planarCodec reads one byte per plane. Three plane formats read alpha as opaque.
func planarCodec(space ColorSpace, planes int) *sampleCodec {
	if planes == 3 {
		return &sampleCodec{
			space: space,
			read: func(p *planeRows, x int) sample {
				return sample{p[0][x], p[1][x], p[2][x], 0xFF}
			},
			write: func(p *planeRows, x int, s sample) {
				p[0][x], p[1][x], p[2][x] = s[0], s[1], s[2]
			},
		}
	}
	return &sampleCodec{
		space: space,
		read: func(p *planeRows, x int) sample {
			return sample{p[0][x], p[1][x], p[2][x], p[3][x]}
		},
		write: func(p *planeRows, x int, s sample) {
			p[0][x], p[1][x], p[2][x], p[3][x] = s[0], s[1], s[2], s[3]
		},
	}
}
