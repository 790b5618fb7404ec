package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/posealign/dtw"
	"github.com/katalvlaran/posealign/pose"
	"gonum.org/v1/gonum/spatial/r3"
)

// wavySequence builds n MediaPipe-sized frames whose landmarks drift along
// phase-shifted sines, a cheap stand-in for a real performance.
func wavySequence(n int, speed float64) []pose.Frame {
	seq := make([]pose.Frame, n)
	for t := range seq {
		f := make(pose.Frame, pose.MediaPipeLandmarks)
		for k := range f {
			phase := speed*float64(t)/10 + float64(k)
			f[k] = pose.Landmark{
				Pos:        r3.Vec{X: math.Sin(phase), Y: math.Cos(phase / 2), Z: 0.1 * float64(k)},
				Visibility: 0.9,
			}
		}
		seq[t] = f
	}
	return seq
}

// benchmarkRun is a helper that runs dtw.Run on n ideal and m user frames.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkRun(b *testing.B, n, m int, opts dtw.Options) {
	ideal := wavySequence(n, 1)
	user := wavySequence(m, float64(n)/float64(m))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Run(ideal, user, opts); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_UnconstrainedSmall benchmarks the full search on 100×120 frames.
func BenchmarkRun_UnconstrainedSmall(b *testing.B) {
	benchmarkRun(b, 100, 120, dtw.Options{Mode: dtw.Unconstrained})
}

// BenchmarkRun_UnconstrainedMedium benchmarks the full search on 400×480 frames.
func BenchmarkRun_UnconstrainedMedium(b *testing.B) {
	benchmarkRun(b, 400, 480, dtw.Options{Mode: dtw.Unconstrained})
}

// BenchmarkRun_BandedSmall benchmarks the default band on 100×120 frames.
func BenchmarkRun_BandedSmall(b *testing.B) {
	benchmarkRun(b, 100, 120, dtw.DefaultOptions())
}

// BenchmarkRun_BandedMedium benchmarks the default band on 400×480 frames.
func BenchmarkRun_BandedMedium(b *testing.B) {
	benchmarkRun(b, 400, 480, dtw.DefaultOptions())
}

// BenchmarkRun_Ratio benchmarks the constant-work fallback.
func BenchmarkRun_Ratio(b *testing.B) {
	benchmarkRun(b, 400, 480, dtw.Options{Mode: dtw.Ratio})
}
