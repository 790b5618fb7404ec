// Package dtw aligns a user performance to an ideal reference performance
// and returns, for every user frame, the index of the corresponding ideal
// frame.
//
// 🚀 What is DTW?
//
//	Dynamic Time Warping finds the minimum-cost monotonic correspondence
//	between two sequences that were performed at different speeds. Here the
//	sequences are pose frames and the local cost is the cosine distance
//	between their visibility-weighted feature vectors (see package feature).
//
// ✨ Modes:
//   - Unconstrained — full I×U dynamic program anchored at (0,0) and
//     (I−1,U−1). O(I·U) time & memory. Reference semantics and test oracle.
//   - Banded        — Sakoe–Chiba corridor |i−j| ≤ W with
//     W = max(1, ⌊max(I,U)·BandRatio⌋). O(I·W) time & memory. The end point
//     is the cheapest reachable cell of the last ideal row inside the band;
//     if none is reachable the ratio mapping is substituted and the Result
//     says so (OutcomeFallback).
//   - Ratio         — linear spacing of U indices over [0, I−1]. O(U).
//
// Tie-break: when several predecessors share the minimum accumulated cost,
// the diagonal wins over up (i−1, j), which wins over left (i, j−1). Path
// reconstruction depends on this order, so it is part of the contract.
//
// Mapping:
//
//	Walking the warping path forward, mapping[j] = i for every (i,j) on it;
//	later cells overwrite earlier ones. Any mapping[j] still 0 for j ≥ 1 is
//	then forward-filled from mapping[j−1].
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()   // Banded, BandRatio = 0.08
//	res, err := dtw.Run(ideal, user, opts)
//	if err != nil {
//	  // ErrBadBandRatio, ErrUnknownMode, pose.ErrLandmarkCount
//	}
//	if res.Outcome == dtw.OutcomeFallback {
//	  // band was too narrow; res.Mapping is the ratio mapping
//	}
//
// Every call is pure: tables are allocated per call and discarded when it
// returns, so concurrent calls on independent inputs need no coordination.
package dtw
