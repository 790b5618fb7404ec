// Package feature turns pose frames into unit-length vectors for cosine
// comparison and builds the cost surface the alignment engine searches.
//
// For a frame of J landmarks the feature vector has length 3·J:
//
//	x = flatten( pos_k · clamp(vis_k, 0, 1) )
//	x̂ = x / (‖x‖₂ + ε),  ε = 1e-8
//
// Because both sides are unit-normalized, cost(i,j) = 1 − x̂ᵢ·ŷⱼ is the
// cosine distance, nominally in [0, 2]. An all-invisible frame maps to the
// zero vector and therefore has cost 1 against everything.
package feature

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/posealign/pose"
)

// Epsilon guards the L2 normalization against zero-norm vectors.
const Epsilon = 1e-8

// Weighted flattens f into a 3·J vector of visibility-weighted positions.
// Visibility is clipped to [0,1] and used as a soft weight, never validated.
func Weighted(f pose.Frame) []float64 {
	out := make([]float64, 3*len(f))
	for k, lm := range f {
		w := min(max(lm.Visibility, 0), 1)
		out[3*k] = lm.Pos.X * w
		out[3*k+1] = lm.Pos.Y * w
		out[3*k+2] = lm.Pos.Z * w
	}

	return out
}

// Normalize scales x in place to x / (‖x‖₂ + Epsilon) and returns it.
func Normalize(x []float64) []float64 {
	floats.Scale(1/(floats.Norm(x, 2)+Epsilon), x)
	return x
}

// Extract returns the normalized feature vector of f.
func Extract(f pose.Frame) []float64 {
	return Normalize(Weighted(f))
}

// ExtractAll extracts every frame of seq. Frames with differing landmark
// counts within a call are rejected with pose.ErrLandmarkCount.
func ExtractAll(seq []pose.Frame) ([][]float64, error) {
	if _, err := pose.UniformLandmarks(seq); err != nil {
		return nil, err
	}
	out := make([][]float64, len(seq))
	for t, f := range seq {
		out[t] = Extract(f)
	}

	return out, nil
}

// Cost returns 1 − a·b, the cosine distance between two unit vectors.
// a and b must have equal length.
func Cost(a, b []float64) float64 {
	return 1 - floats.Dot(a, b)
}

// CostMatrix materializes the full I×U cost surface, C = 1 − A·Bᵀ, where the
// rows of A are the ideal vectors and the rows of B the user vectors.
// Both inputs must be non-empty and share one dimension.
// Complexity: O(I·U·D) time, O(I·U) memory.
func CostMatrix(ideal, user [][]float64) *mat.Dense {
	I, U := len(ideal), len(user)
	c := mat.NewDense(I, U, nil)
	d := len(ideal[0])
	if d == 0 {
		// Zero-landmark frames: every dot product is 0.
		c.Apply(func(_, _ int, _ float64) float64 { return 1 }, c)
		return c
	}

	a := mat.NewDense(I, d, flatten(ideal, d))
	b := mat.NewDense(U, d, flatten(user, d))
	c.Mul(a, b.T())
	c.Apply(func(_, _ int, v float64) float64 { return 1 - v }, c)

	return c
}

// flatten packs equal-length rows into one row-major backing slice.
func flatten(rows [][]float64, d int) []float64 {
	out := make([]float64, 0, len(rows)*d)
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}
