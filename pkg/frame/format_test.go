package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAttributes(t *testing.T) {
	cases := map[Format]struct {
		space       ColorSpace
		planes      int
		bits        int
		alpha       AlphaKind
		subsampling Subsampling
	}{
		FormatRGBA:           {ColorSpaceRGB, 1, 32, AlphaStraight, SubsamplingNone},
		FormatABGR_PA:        {ColorSpaceRGB, 1, 32, AlphaPremultiplied, SubsamplingNone},
		FormatBGR:            {ColorSpaceRGB, 1, 24, AlphaNone, SubsamplingNone},
		FormatRGB565LE:       {ColorSpaceRGB, 1, 16, AlphaNone, SubsamplingNone},
		FormatGray8:          {ColorSpaceGray, 1, 8, AlphaNone, SubsamplingNone},
		FormatRGBA_PLANAR_PA: {ColorSpaceRGB, 4, 8, AlphaPremultiplied, SubsamplingNone},
		FormatYUV444:         {ColorSpaceYUV, 1, 24, AlphaNone, SubsamplingNone},
		FormatI444:           {ColorSpaceYUV, 3, 8, AlphaNone, SubsamplingNone},
		FormatYV12:           {ColorSpaceYUV, 3, 8, AlphaNone, Subsampling420},
		FormatNV21:           {ColorSpaceYUV, 2, 8, AlphaNone, Subsampling420},
	}
	for f, c := range cases {
		f, c := f, c
		t.Run(f.String(), func(t *testing.T) {
			assert.Equal(t, c.space, f.ColorSpace())
			assert.Equal(t, c.planes, f.PlaneCount())
			assert.Equal(t, c.bits, f.BitsPerSample())
			assert.Equal(t, c.alpha, f.Alpha())
			assert.Equal(t, c.subsampling, f.Subsampling())
			assert.Equal(t, c.subsampling == Subsampling420, f.IsYUV420())
		})
	}
}

func TestFormatTwins(t *testing.T) {
	assert.Equal(t, FormatBGRA, FormatBGRA_PA.StraightAlpha())
	assert.Equal(t, FormatBGRA, FormatBGRA.StraightAlpha())
	assert.Equal(t, FormatYUVA, FormatYUVA_PA.StraightAlpha())
	assert.Equal(t, FormatRGBA, FormatYUVA.RGBEquivalent())
	assert.Equal(t, FormatRGB_PLANAR, FormatI444.RGBEquivalent())
	assert.Equal(t, FormatI420, FormatI420.RGBEquivalent())
	assert.Equal(t, BigEndian, FormatBGR565BE.ByteOrder())
	assert.Equal(t, LittleEndian, FormatRGB565LE.ByteOrder())
}

func TestFormatCatalog(t *testing.T) {
	formats := Formats()
	assert.Len(t, formats, len(formatInfos))
	for _, f := range formats {
		assert.True(t, f.Valid(), f)
		if f.IsYUV420() {
			assert.Nil(t, codecs[f], "%s must not have a sample codec", f)
			continue
		}
		assert.NotNil(t, codecs[f], "%s has no sample codec", f)
		assert.Equal(t, f.info().space == ColorSpaceYUV, codecs[f].space == ColorSpaceYUV, f)
	}
	assert.False(t, FormatNone.Valid())
	assert.False(t, Format("MJPEG").Valid())
	assert.Equal(t, "None", FormatNone.String())
}
