package prop

import (
	"github.com/pion/bitmap/pkg/frame"
)

// FrameFormatConstraint is an interface to represent frame format constraint.
type FrameFormatConstraint interface {
	Compare(frame.Format) (float64, bool)
	Value() (frame.Format, bool)
}

// FrameFormat specifies expected frame format.
// Any value may be selected, but matched value takes priority.
type FrameFormat frame.Format

// Compare implements FrameFormatConstraint.
func (f FrameFormat) Compare(a frame.Format) (float64, bool) {
	if frame.Format(f) == a {
		return 0.0, true
	}
	return 1.0, true
}

// Value implements FrameFormatConstraint.
func (f FrameFormat) Value() (frame.Format, bool) { return frame.Format(f), true }

// FrameFormatExact specifies exact frame format.
type FrameFormatExact frame.Format

// Compare implements FrameFormatConstraint.
func (f FrameFormatExact) Compare(a frame.Format) (float64, bool) {
	if frame.Format(f) == a {
		return 0.0, true
	}
	return 1.0, false
}

// Value implements FrameFormatConstraint.
func (f FrameFormatExact) Value() (frame.Format, bool) { return frame.Format(f), true }

// FrameFormatOneOf specifies list of expected frame format.
type FrameFormatOneOf []frame.Format

// Compare implements FrameFormatConstraint.
func (f FrameFormatOneOf) Compare(a frame.Format) (float64, bool) {
	for _, ff := range f {
		if ff == a {
			return 0.0, true
		}
	}
	return 1.0, false
}

// Value implements FrameFormatConstraint.
func (FrameFormatOneOf) Value() (frame.Format, bool) { return "", false }

// FrameFormatCompatible accepts formats sharing the colour space and the
// presence of alpha of the given format, the format itself being preferred.
// Converting between compatible formats doesn't need colour conversion.
type FrameFormatCompatible frame.Format

// Compare implements FrameFormatConstraint.
func (f FrameFormatCompatible) Compare(a frame.Format) (float64, bool) {
	ff := frame.Format(f)
	switch {
	case ff == a:
		return 0.0, true
	case ff.ColorSpace() == a.ColorSpace() && ff.HasAlpha() == a.HasAlpha():
		return 0.5, true
	}
	return 1.0, false
}

// Value implements FrameFormatConstraint.
func (f FrameFormatCompatible) Value() (frame.Format, bool) { return frame.Format(f), true }

// SelectFrameFormat returns the candidate satisfying c with the lowest
// distance. Ties go to the earliest candidate.
func SelectFrameFormat(c FrameFormatConstraint, candidates ...frame.Format) (frame.Format, bool) {
	var best frame.Format
	bestDist := -1.0
	for _, candidate := range candidates {
		dist, ok := c.Compare(candidate)
		if !ok {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best, bestDist >= 0
}
