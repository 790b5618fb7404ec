package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/posealign/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRatioMapping
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 10-frame ideal performance and a 5-frame user performance, mapped
//	purely by their lengths: round(j·9/4).
//
// Use case:
//
//	Baseline mode and the banded engine's fallback.
//
// Complexity: O(U) time and memory.
func ExampleRatioMapping() {
	fmt.Println(dtw.RatioMapping(10, 5))
	fmt.Println(dtw.RatioMapping(1, 4))
	// Output:
	// [0 2 5 7 9]
	// [0 0 0 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlignFeatures
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three ideal and three user vectors, pairwise orthogonal except
//	ideal[1] == user[1]. The only cheap cell is (1,1) and the optimal
//	path goes through it.
//
// Complexity: O(I·U) time and memory.
func ExampleAlignFeatures() {
	e := func(k int) []float64 {
		v := make([]float64, 5)
		v[k] = 1
		return v
	}
	ideal := [][]float64{e(0), e(1), e(2)}
	user := [][]float64{e(3), e(1), e(4)}

	res, err := dtw.AlignFeatures(ideal, user)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("mapping=%v outcome=%v cost=%.0f\n", res.Mapping, res.Outcome, res.Cost)
	fmt.Printf("path=%v\n", res.Path)
	// Output:
	// mapping=[0 1 2] outcome=path_found cost=2
	// path=[{0 0} {1 1} {2 2}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleRun_fallback
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	20 ideal frames against 5 user frames with the default band (W = 1).
//	The last ideal row lies entirely outside the band, so the engine
//	substitutes the ratio mapping and reports it.
func ExampleRun_fallback() {
	ideal := seqFromKeys(rangeKeys(20)...)
	user := seqFromKeys(0, 5, 10, 15, 19)

	res, err := dtw.Run(ideal, user, dtw.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.BandWidth, res.Mapping)
	// Output:
	// fallback 1 [0 5 10 14 19]
}
