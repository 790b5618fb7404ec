package dtw

import (
	"fmt"

	"github.com/katalvlaran/posealign/feature"
	"github.com/katalvlaran/posealign/matrix"
	"github.com/katalvlaran/posealign/pose"
)

// Align runs the unconstrained DTW between ideal and user and returns the
// user→ideal mapping.
//
// Algorithm Outline:
//  1. Extract unit feature vectors; build the full I×U cost matrix C.
//  2. D[0][0] = C[0][0]; first row and first column are cumulative sums.
//  3. For i ≥ 1, j ≥ 1:
//     D[i][j] = C[i][j] + min(D[i-1][j-1], D[i-1][j], D[i][j-1])
//     with ties resolved diagonal → up → left.
//  4. Backtrack from (I-1, U-1) to (0,0), reverse, derive the mapping.
//
// Complexity: O(I·U) time and memory.
//
// Errors:
//   - pose.ErrLandmarkCount — frames disagree on their landmark count.
func Align(ideal, user []pose.Frame) ([]int, error) {
	a, b, err := extractPair(ideal, user)
	if err != nil {
		return nil, err
	}
	res, err := alignFull(a, b)
	if err != nil {
		return nil, err
	}

	return res.Mapping, nil
}

// AlignFeatures runs the unconstrained DTW on pre-extracted feature vectors.
// Vectors are expected to be unit-normalized so that 1 − dot is the cosine
// distance; they are used as given.
func AlignFeatures(ideal, user [][]float64) (Result, error) {
	if err := checkDims(ideal, user); err != nil {
		return Result{}, err
	}

	return alignFull(ideal, user)
}

// alignFull is the unconstrained dynamic program over validated vectors.
func alignFull(ideal, user [][]float64) (Result, error) {
	I, U := len(ideal), len(user)
	if I == 0 || U == 0 {
		return trivial(Unconstrained, U), nil
	}

	cost := feature.CostMatrix(ideal, user)
	acc, err := matrix.NewDense[float64](I, U)
	if err != nil {
		return Result{}, fmt.Errorf("dtw: accumulated table: %w", err)
	}
	from, err := matrix.NewDense[step](I, U)
	if err != nil {
		return Result{}, fmt.Errorf("dtw: predecessor table: %w", err)
	}

	// Boundary: row 0 only moves left, column 0 only moves up.
	a0, f0 := acc.Row(0), from.Row(0)
	a0[0] = cost.At(0, 0)
	for j := 1; j < U; j++ {
		a0[j] = cost.At(0, j) + a0[j-1]
		f0[j] = stepLeft
	}
	for i := 1; i < I; i++ {
		prev, cur, fc := acc.Row(i-1), acc.Row(i), from.Row(i)
		cur[0] = cost.At(i, 0) + prev[0]
		fc[0] = stepUp
		for j := 1; j < U; j++ {
			best, st := pick(prev[j-1], prev[j], cur[j-1])
			cur[j] = cost.At(i, j) + best
			fc[j] = st
		}
	}

	// Backtrack from the anchored end (I-1, U-1).
	path := make([]Coord, 0, I+U-1)
	i, j := I-1, U-1
	for {
		path = append(path, Coord{I: i, J: j})
		s := from.Row(i)[j]
		if s == stepNone {
			break
		}
		i, j = s.prev(i, j)
	}
	reversePath(path)

	end := acc.Row(I - 1)[U-1]

	return Result{
		Mapping: mappingFromPath(path, U),
		Mode:    Unconstrained,
		Outcome: OutcomePathFound,
		Cost:    end,
		Path:    path,
	}, nil
}

// extractPair checks landmark counts across both sequences and extracts
// their feature vectors.
func extractPair(ideal, user []pose.Frame) ([][]float64, [][]float64, error) {
	if _, err := pose.UniformLandmarks(ideal, user); err != nil {
		return nil, nil, err
	}
	a, err := feature.ExtractAll(ideal)
	if err != nil {
		return nil, nil, err
	}
	b, err := feature.ExtractAll(user)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// checkDims verifies that every vector of both sides has one shared length.
func checkDims(ideal, user [][]float64) error {
	d := -1
	for _, side := range [][][]float64{ideal, user} {
		for k, v := range side {
			if d < 0 {
				d = len(v)
				continue
			}
			if len(v) != d {
				return fmt.Errorf("vector %d has length %d, want %d: %w", k, len(v), d, ErrDimensionMismatch)
			}
		}
	}

	return nil
}

// trivial is the result for an empty ideal or user sequence: U zeros.
func trivial(mode Mode, u int) Result {
	return Result{Mapping: make([]int, u), Mode: mode, Outcome: OutcomeTrivial}
}
