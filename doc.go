// Package posealign compares a user's performance of a movement with an ideal
// reference performance, frame by frame, after aligning the two in time.
//
// 🚀 What is posealign?
//
//	A small, deterministic pipeline over 3-D pose landmark sequences:
//		• Normalization: pelvis centring, body-scale division, EMA smoothing
//		• Features: visibility-weighted, L2-normalized landmark vectors
//		• Alignment: Dynamic Time Warping, unconstrained or Sakoe–Chiba banded,
//		  with a length-ratio fallback when the band admits no path
//		• Scoring: six joint angles per frame, score = 100 − mean |Δangle|
//		• Cues: rule-based coaching hints with a cooldown
//
// ✨ Why posealign?
//
//   - Explicit outcomes – every alignment reports whether a path was found
//     or the ratio fallback was used
//   - Reproducible – fixed tie-break order (diagonal, up, left)
//   - Configurable landmark topology – MediaPipe Pose by default
//
// Packages:
//
//	pose/      — Landmark, Frame, Layout; normalization and smoothing
//	feature/   — feature extraction and cosine cost
//	matrix/    — dense and banded DP tables
//	dtw/       — alignment engines and mode selector
//	analysis/  — joint angles, frame scores, cues, Compare pipeline
//	cmd/posealign — command-line front end
//
// Quick example:
//
//	rep, err := analysis.Compare(ideal, user, analysis.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(rep.Alignment.Outcome, rep.Overall)
package posealign
