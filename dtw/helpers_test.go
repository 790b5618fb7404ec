package dtw_test

import (
	"github.com/katalvlaran/posealign/pose"
	"gonum.org/v1/gonum/spatial/r3"
)

// testLandmarks is the frame size used by the fixtures. Each fixture frame
// lights exactly one landmark, so frames with different keys are orthogonal
// (cost 1) and frames with the same key match (cost ≈ 0).
const testLandmarks = 24

// keyFrame returns the fixture frame for key k.
func keyFrame(k int) pose.Frame {
	f := make(pose.Frame, testLandmarks)
	f[k%testLandmarks] = pose.Landmark{Pos: r3.Vec{X: 1, Y: 0.5, Z: 0.25}, Visibility: 1}
	return f
}

// seqFromKeys builds a sequence of keyed frames.
func seqFromKeys(keys ...int) []pose.Frame {
	seq := make([]pose.Frame, len(keys))
	for t, k := range keys {
		seq[t] = keyFrame(k)
	}
	return seq
}

// rangeKeys returns 0, 1, …, n-1.
func rangeKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// unit returns the d-dimensional basis vector e_k.
func unit(d, k int) []float64 {
	v := make([]float64, d)
	v[k] = 1
	return v
}
