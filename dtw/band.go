package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/posealign/feature"
	"github.com/katalvlaran/posealign/matrix"
	"github.com/katalvlaran/posealign/pose"
)

// BandWidth returns the Sakoe–Chiba half-width for an i×u search:
// W = max(1, ⌊max(i,u)·ratio⌋), capped at max(i,u) where the band already
// covers every cell. ratio must have passed validation.
func BandWidth(i, u int, ratio float64) int {
	n := max(i, u)
	w := math.Floor(float64(n) * ratio)
	if w >= float64(n) {
		return max(1, n)
	}

	return max(1, int(w))
}

// AlignBand runs the banded DTW between ideal and user.
//
// Algorithm Outline:
//  1. W = BandWidth(I, U, bandRatio); only cells with |i−j| ≤ W are stored.
//  2. Row 0 is seeded as a cumulative sum over columns [0, min(U−1, W)].
//  3. For i ≥ 1 the row spans [max(0,i−W), min(U−1,i+W)]. Its leftmost cell
//     is reachable only from directly above; the others use the three-way
//     minimum with the diagonal → up → left precedence. A cell whose best
//     predecessor is unreached stays unreached.
//  4. The end cell is the cheapest reachable cell of row I−1 (lowest column
//     on ties). If none is reachable the ratio mapping is returned with
//     OutcomeFallback.
//  5. Backtrack while a predecessor exists, append the (0,0) anchor,
//     reverse, derive the mapping.
//
// Complexity: O(I·W) time and memory.
//
// Errors:
//   - ErrBadBandRatio       — bandRatio is NaN, ±Inf or ≤ 0.
//   - pose.ErrLandmarkCount — frames disagree on their landmark count.
func AlignBand(ideal, user []pose.Frame, bandRatio float64) (Result, error) {
	if err := validateBandRatio(bandRatio); err != nil {
		return Result{}, err
	}
	a, b, err := extractPair(ideal, user)
	if err != nil {
		return Result{}, err
	}

	return alignBand(a, b, bandRatio)
}

// AlignFeaturesBand runs the banded DTW on pre-extracted feature vectors.
func AlignFeaturesBand(ideal, user [][]float64, bandRatio float64) (Result, error) {
	if err := validateBandRatio(bandRatio); err != nil {
		return Result{}, err
	}
	if err := checkDims(ideal, user); err != nil {
		return Result{}, err
	}

	return alignBand(ideal, user, bandRatio)
}

// alignBand is the banded dynamic program over validated vectors.
func alignBand(ideal, user [][]float64, bandRatio float64) (Result, error) {
	I, U := len(ideal), len(user)
	if I == 0 || U == 0 {
		return trivial(Banded, U), nil
	}

	w := BandWidth(I, U, bandRatio)
	acc, err := matrix.NewBand[float64](I, U, w, Unreached)
	if err != nil {
		return Result{}, fmt.Errorf("dtw: accumulated band: %w", err)
	}
	from, err := matrix.NewBand[step](I, U, w, stepNone)
	if err != nil {
		return Result{}, fmt.Errorf("dtw: predecessor band: %w", err)
	}

	// Row 0: (0,0) has no predecessor; the rest of the span moves left.
	_, a0 := acc.Span(0)
	_, f0 := from.Span(0)
	a0[0] = feature.Cost(ideal[0], user[0])
	for j := 1; j < len(a0); j++ {
		a0[j] = a0[j-1] + feature.Cost(ideal[0], user[j])
		f0[j] = stepLeft
	}

	for i := 1; i < I; i++ {
		lo, cur := acc.Span(i)
		_, fc := from.Span(i)
		if len(cur) == 0 {
			continue
		}

		// Leftmost in-band cell: nothing left of it or diagonal to it is stored.
		if up := acc.At(i-1, lo); up < Unreached {
			cur[0] = up + feature.Cost(ideal[i], user[lo])
			fc[0] = stepUp
		}

		for k := 1; k < len(cur); k++ {
			j := lo + k
			best, st := pick(acc.At(i-1, j-1), acc.At(i-1, j), cur[k-1])
			if !(best < Unreached) {
				continue
			}
			cur[k] = best + feature.Cost(ideal[i], user[j])
			fc[k] = st
		}
	}

	// End cell: cheapest reachable cell of the last row inside the band.
	last := I - 1
	lo, row := acc.Span(last)
	end, endCost := -1, Unreached
	for k, v := range row {
		if v < endCost {
			end, endCost = lo+k, v
		}
	}
	if end < 0 {
		res := ratioResult(Banded, OutcomeFallback, I, U)
		res.BandWidth = w
		return res, nil
	}

	path := make([]Coord, 0, I+U)
	i, j := last, end
	for {
		s := from.At(i, j)
		if s == stepNone {
			break
		}
		path = append(path, Coord{I: i, J: j})
		i, j = s.prev(i, j)
	}
	path = append(path, Coord{I: 0, J: 0})
	reversePath(path)

	return Result{
		Mapping:   mappingFromPath(path, U),
		Mode:      Banded,
		Outcome:   OutcomePathFound,
		BandWidth: w,
		Cost:      endCost,
		Path:      path,
	}, nil
}
