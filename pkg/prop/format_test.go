package prop

import (
	"testing"

	"github.com/pion/bitmap/pkg/frame"
)

func TestFrameFormatCompare(t *testing.T) {
	testCases := map[string]struct {
		c     FrameFormatConstraint
		f     frame.Format
		dist  float64
		match bool
	}{
		"IdealMatch":           {FrameFormat(frame.FormatI420), frame.FormatI420, 0, true},
		"IdealMismatch":        {FrameFormat(frame.FormatI420), frame.FormatRGBA, 1, true},
		"ExactMatch":           {FrameFormatExact(frame.FormatNV21), frame.FormatNV21, 0, true},
		"ExactMismatch":        {FrameFormatExact(frame.FormatNV21), frame.FormatNV12, 1, false},
		"OneOfMatch":           {FrameFormatOneOf{frame.FormatI420, frame.FormatNV12}, frame.FormatNV12, 0, true},
		"OneOfMismatch":        {FrameFormatOneOf{frame.FormatI420, frame.FormatNV12}, frame.FormatYV12, 1, false},
		"CompatibleMatch":      {FrameFormatCompatible(frame.FormatRGBA), frame.FormatRGBA, 0, true},
		"CompatibleSameSpace":  {FrameFormatCompatible(frame.FormatRGBA), frame.FormatABGR_PA, 0.5, true},
		"CompatibleNoAlpha":    {FrameFormatCompatible(frame.FormatRGBA), frame.FormatRGB, 1, false},
		"CompatibleOtherSpace": {FrameFormatCompatible(frame.FormatRGB), frame.FormatYUV444, 1, false},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			dist, ok := c.c.Compare(c.f)
			if ok != c.match {
				t.Fatalf("Expected match %v, got %v", c.match, ok)
			}
			if dist != c.dist {
				t.Errorf("Expected distance %v, got %v", c.dist, dist)
			}
		})
	}
}

func TestFrameFormatValue(t *testing.T) {
	if v, ok := FrameFormatExact(frame.FormatBGR).Value(); !ok || v != frame.FormatBGR {
		t.Errorf("Unexpected value %v, %v", v, ok)
	}
	if _, ok := (FrameFormatOneOf{frame.FormatBGR}).Value(); ok {
		t.Error("FrameFormatOneOf should not have a single value")
	}
}

func TestSelectFrameFormat(t *testing.T) {
	testCases := map[string]struct {
		c          FrameFormatConstraint
		candidates []frame.Format
		expected   frame.Format
		ok         bool
	}{
		"Exact": {
			FrameFormatExact(frame.FormatNV12),
			[]frame.Format{frame.FormatI420, frame.FormatNV12},
			frame.FormatNV12, true,
		},
		"NoCandidate": {
			FrameFormatExact(frame.FormatNV12),
			[]frame.Format{frame.FormatI420},
			frame.FormatNone, false,
		},
		"EarliestWins": {
			FrameFormatOneOf{frame.FormatNV12, frame.FormatI420},
			[]frame.Format{frame.FormatRGBA, frame.FormatI420, frame.FormatNV12},
			frame.FormatI420, true,
		},
		"LowestDistance": {
			FrameFormatCompatible(frame.FormatBGRA),
			[]frame.Format{frame.FormatRGB, frame.FormatRGBA, frame.FormatBGRA},
			frame.FormatBGRA, true,
		},
		"Compatible": {
			FrameFormatCompatible(frame.FormatBGRA),
			[]frame.Format{frame.FormatI420, frame.FormatARGB_PA},
			frame.FormatARGB_PA, true,
		},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			f, ok := SelectFrameFormat(c.c, c.candidates...)
			if ok != c.ok || f != c.expected {
				t.Errorf("Expected (%s, %v), got (%s, %v)", c.expected, c.ok, f, ok)
			}
		})
	}
}
