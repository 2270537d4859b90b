package video

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/pion/bitmap/pkg/frame"
)

func BenchmarkDetectChanges(b *testing.B) {
	var src Reader
	b0 := frame.NewBitmap(1920, 1080, frame.FormatRGBA)
	src = ReaderFunc(func() (frame.Bitmap, func(), error) {
		return b0, func() {}, nil
	})

	b.Run("WithoutDetectChanges", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			src.Read()
		}
	})

	ns := []int{1, 8, 64, 256}
	for _, n := range ns {
		n := n
		src := src
		b.Run(fmt.Sprintf("WithDetectChanges%d", n), func(b *testing.B) {
			for i := 0; i < n; i++ {
				src = DetectChanges(time.Microsecond, 0, func(p Property) {})(src)
			}

			for i := 0; i < b.N; i++ {
				src.Read()
			}
		})
	}
}

func TestDetectChanges(t *testing.T) {
	buildSource := func(p Property) (Reader, func(Property)) {
		return ReaderFunc(func() (frame.Bitmap, func(), error) {
				f := p.FrameFormat
				if f == frame.FormatNone {
					f = frame.FormatRGBA
				}
				return frame.Bitmap{Width: p.Width, Height: p.Height, Format: f}, func() {}, nil
			}), func(newProp Property) {
				p = newProp
			}
	}

	assertEq := func(t *testing.T, actual Property, expected Property, output frame.Bitmap, assertFrameRate bool) {
		if actual.Height != expected.Height {
			t.Fatalf("expected height from to be %d but got %d", expected.Height, actual.Height)
		}

		if actual.Width != expected.Width {
			t.Fatalf("expected width from to be %d but got %d", expected.Width, actual.Width)
		}

		if assertFrameRate {
			diff := actual.FrameRate - expected.FrameRate
			// TODO: reduce this eps. Darwin CI keeps failing if we use a lower value
			var eps float32 = 1.5
			if diff < -eps || diff > eps {
				t.Fatalf("expected frame rate to be %f (+-%f) but got %f", expected.FrameRate, eps, actual.FrameRate)
			}
		}

		if output.Height != expected.Height {
			t.Fatalf("expected output height from to be %d but got %d", expected.Height, output.Height)
		}

		if output.Width != expected.Width {
			t.Fatalf("expected output width from to be %d but got %d", expected.Width, output.Width)
		}

		if actual.FrameFormat != output.Format {
			t.Fatalf("expected frame format to be %s but got %s", output.Format, actual.FrameFormat)
		}
	}

	SlowDownAfterThrottle := func(rate float32, factor float64, after time.Duration) TransformFunc {
		return func(r Reader) Reader {
			sleep := float64(time.Second) / float64(rate)
			start := time.Now()
			f := 1.0
			return ReaderFunc(func() (frame.Bitmap, func(), error) {
				for {
					img, _, err := r.Read()
					if err != nil {
						return frame.Bitmap{}, func() {}, err
					}
					if time.Since(start) > after {
						f = factor
					}
					time.Sleep(time.Duration(sleep * f))
					return img, func() {}, nil
				}
			})
		}
	}

	t.Run("OnChangeCalledBeforeFirstFrame", func(t *testing.T) {
		var detectBeforeFirstFrame bool
		var expected Property
		var actual Property
		expected.Width = 1920
		expected.Height = 1080
		src, _ := buildSource(expected)
		src = DetectChanges(time.Second, 0, func(p Property) {
			actual = p
			detectBeforeFirstFrame = true
		})(src)

		frame, _, err := src.Read()
		if err != nil {
			t.Fatal(err)
		}

		if !detectBeforeFirstFrame {
			t.Fatal("on change callback should have called before first frame")
		}

		assertEq(t, actual, expected, frame, false)
	})

	t.Run("DetectChangesOnEveryUpdate", func(t *testing.T) {
		var expected Property
		var actual Property
		expected.Width = 1920
		expected.Height = 1080
		src, update := buildSource(expected)
		src = DetectChanges(time.Second, 0, func(p Property) {
			actual = p
		})(src)

		for width := 1920; width < 4000; width += 100 {
			for height := 1080; height < 2000; height += 100 {
				expected.Width = width
				expected.Height = height
				update(expected)
				frame, _, err := src.Read()
				if err != nil {
					t.Fatal(err)
				}

				assertEq(t, actual, expected, frame, false)
			}
		}
	})

	t.Run("DetectFormatChanges", func(t *testing.T) {
		var expected Property
		var actual Property
		var count int
		expected.Width = 640
		expected.Height = 480
		src, update := buildSource(expected)
		src = DetectChanges(time.Hour, 0, func(p Property) {
			actual = p
			count++
		})(src)

		for i, f := range []frame.Format{frame.FormatRGBA, frame.FormatRGBA, frame.FormatI420, frame.FormatNV21, frame.FormatNV21} {
			expected.FrameFormat = f
			update(expected)
			b, _, err := src.Read()
			if err != nil {
				t.Fatal(err)
			}
			assertEq(t, actual, expected, b, false)
			if i == 1 && count != 1 {
				t.Fatalf("onChange should not be called when nothing changed, called %d times", count)
			}
		}
		if count != 3 {
			t.Fatalf("expected 3 changes, got %d", count)
		}
	})

	t.Run("FrameRateAccuracy", func(t *testing.T) {
		// https://github.com/pion/mediadevices/issues/198
		if runtime.GOOS == "darwin" {
			t.Skip("Skipping because Darwin CI is not reliable for timing related tests.")
		}

		var expected Property
		var actual Property
		var count int
		expected.Width = 1920
		expected.Height = 1080
		expected.FrameRate = 30
		src, _ := buildSource(expected)
		src = Throttle(expected.FrameRate)(src)
		src = DetectChanges(time.Second*5, 0, func(p Property) {
			actual = p
			count++
		})(src)

		for count < 3 {
			frame, _, err := src.Read()
			if err != nil {
				t.Fatal(err)
			}

			checkFrameRate := false
			if actual.FrameRate != 0.0 {
				checkFrameRate = true
			}
			assertEq(t, actual, expected, frame, checkFrameRate)
		}
	})

	t.Run("OnChangeNotCalledForToleratedFrameRateVariation", func(t *testing.T) {
		// https://github.com/pion/mediadevices/issues/198
		if runtime.GOOS == "darwin" {
			t.Skip("Skipping because Darwin CI is not reliable for timing related tests.")
		}

		var expected Property
		var count int
		expected.Width = 1920
		expected.Height = 1080
		expected.FrameRate = 30
		src, _ := buildSource(expected)
		src = SlowDownAfterThrottle(expected.FrameRate, 1.1, time.Second)(src)
		src = DetectChanges(time.Second, 5, func(p Property) {
			count++
		})(src)
		for start := time.Now(); time.Since(start) < 3*time.Second; {
			src.Read()
		}
		// onChange is called once before first frame: FrameRate still 0.
		// onChange is called again after receiving frames during the specified interval: FrameRate is properly calculated
		// So if the frame rate only changes within the specified tolerance, onChange should no longer be called.
		if count > 2 {
			t.Fatalf("onChange was called more than twice.")
		}
	})
}
