package frame

// premultiply scales c by a/255, rounding to nearest.
func premultiply(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// unpremultiply scales c by 255/a, rounding to nearest. Colour is lost
// entirely when a is 0.
func unpremultiply(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func (s sample) premultiplied() sample {
	a := s[3]
	if a == 0xFF {
		return s
	}
	return sample{premultiply(s[0], a), premultiply(s[1], a), premultiply(s[2], a), a}
}

func (s sample) unpremultiplied() sample {
	a := s[3]
	switch a {
	case 0xFF:
		return s
	case 0:
		return sample{}
	}
	return sample{unpremultiply(s[0], a), unpremultiply(s[1], a), unpremultiply(s[2], a), a}
}
