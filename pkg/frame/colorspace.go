package frame

import "image/color"

// Colour conversions use the JFIF flavour of BT.601, full range, as
// image/color does.

func (s sample) toYUV() sample {
	y, u, v := color.RGBToYCbCr(s[0], s[1], s[2])
	return sample{y, u, v, s[3]}
}

func (s sample) toRGB() sample {
	r, g, b := color.YCbCrToRGB(s[0], s[1], s[2])
	return sample{r, g, b, s[3]}
}
