package video

import (
	"errors"
	"testing"

	"github.com/pion/bitmap/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(c *frame.ComponentBuffer, v uint8) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			c.Set(x, y, v)
		}
	}
}

func assertUniform(t *testing.T, b frame.Bitmap, expected ...uint8) {
	t.Helper()
	var comps [frame.MaxPlanes]frame.ComponentBuffer
	n := b.ComponentBuffers(&comps)
	require.Equal(t, len(expected), n)
	for i := 0; i < n; i++ {
		for y := 0; y < comps[i].Height; y++ {
			for x := 0; x < comps[i].Width; x++ {
				if v := comps[i].At(x, y); v != expected[i] {
					t.Fatalf("component %d at (%d, %d): expected %d, got %d", i, x, y, expected[i], v)
				}
			}
		}
	}
}

func uniformReader(width, height int, f frame.Format, values ...uint8) Reader {
	b := frame.NewBitmap(width, height, f)
	var comps [frame.MaxPlanes]frame.ComponentBuffer
	n := b.ComponentBuffers(&comps)
	for i := 0; i < n; i++ {
		fill(&comps[i], values[i])
	}
	return ReaderFunc(func() (frame.Bitmap, func(), error) {
		return b, noRelease, nil
	})
}

func TestScale(t *testing.T) {
	cases := map[string]struct {
		src                   Reader
		width, height         int
		expectedW, expectedH  int
		expectedFormat        frame.Format
		expectedComponentVals []uint8
	}{
		"I420Planes": {
			src:                   uniformReader(4, 4, frame.FormatI420, 0x50, 0x60, 0x70),
			width:                 2,
			height:                2,
			expectedW:             2,
			expectedH:             2,
			expectedFormat:        frame.FormatI420,
			expectedComponentVals: []uint8{0x50, 0x60, 0x70},
		},
		"NV12EvenSize": {
			src:                   uniformReader(8, 8, frame.FormatNV12, 0x50, 0x80, 0x80),
			width:                 5,
			height:                3,
			expectedW:             4,
			expectedH:             2,
			expectedFormat:        frame.FormatNV12,
			expectedComponentVals: []uint8{0x50, 0x80, 0x80},
		},
		"RGBAKeepAspectRatio": {
			src:                   uniformReader(8, 4, frame.FormatRGBA, 10, 20, 30, 255),
			width:                 4,
			height:                -1,
			expectedW:             4,
			expectedH:             2,
			expectedFormat:        frame.FormatRGBA,
			expectedComponentVals: []uint8{10, 20, 30, 255},
		},
		"BGRKeepAspectRatio": {
			src:                   uniformReader(8, 4, frame.FormatBGR, 10, 20, 30),
			width:                 -1,
			height:                8,
			expectedW:             16,
			expectedH:             8,
			expectedFormat:        frame.FormatBGR,
			expectedComponentVals: []uint8{10, 20, 30},
		},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			out, _, err := Scale(c.width, c.height, nil)(c.src).Read()
			require.NoError(t, err)
			assert.Equal(t, c.expectedW, out.Width)
			assert.Equal(t, c.expectedH, out.Height)
			assert.Equal(t, c.expectedFormat, out.Format)
			assertUniform(t, out, c.expectedComponentVals...)
		})
	}
}

func TestScaleRGB565(t *testing.T) {
	b := frame.NewBitmap(4, 4, frame.FormatRGB565LE)
	for i := 0; i < len(b.Planes[0].Data); i += 2 {
		// pure red
		b.Planes[0].Data[i] = 0x00
		b.Planes[0].Data[i+1] = 0xF8
	}
	r := Scale(2, 2, ScalerBiLinear)(ReaderFunc(func() (frame.Bitmap, func(), error) {
		return b, noRelease, nil
	}))

	out, _, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, frame.FormatRGB565LE, out.Format)
	assert.Equal(t, []byte{0x00, 0xF8, 0x00, 0xF8}, out.Planes[0].Data[:4])
}

func TestScaleErrors(t *testing.T) {
	_, _, err := Scale(-1, -1, nil)(uniformReader(2, 2, frame.FormatRGBA, 0, 0, 0, 0)).Read()
	assert.Equal(t, errInvalidScaleSize, err)

	empty := ReaderFunc(func() (frame.Bitmap, func(), error) {
		return frame.Bitmap{Format: frame.FormatRGBA}, noRelease, nil
	})
	_, _, err = Scale(2, 2, nil)(empty).Read()
	assert.True(t, errors.Is(err, frame.ErrEmptyCrop))
}
