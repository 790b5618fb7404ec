package dtw

import (
	"math"

	"github.com/katalvlaran/posealign/pose"
)

// AlignRatio maps user frames to ideal frames by sequence length alone.
// It never fails and inspects no frame content. See RatioMapping.
func AlignRatio(ideal, user []pose.Frame) []int {
	return RatioMapping(len(ideal), len(user))
}

// RatioMapping linearly spaces u indices over [0, i-1] and rounds each to the
// nearest integer (halves away from zero):
//
//	mapping[j] = round(j·(i−1)/(u−1))
//
// With u ≤ 1 or i ≤ 1 no warping is meaningful and the result is u zeros.
// Complexity: O(u).
func RatioMapping(i, u int) []int {
	m := make([]int, max(u, 0))
	if u <= 1 || i <= 1 {
		return m
	}
	span := float64(i - 1)
	den := float64(u - 1)
	for j := range m {
		m[j] = int(math.Round(float64(j) * span / den))
	}

	return m
}

// ratioResult wraps RatioMapping in a Result with the given outcome.
func ratioResult(mode Mode, outcome Outcome, i, u int) Result {
	m := RatioMapping(i, u)
	return Result{Mapping: m, Mode: mode, Outcome: outcome, Path: pathFromMapping(m)}
}
