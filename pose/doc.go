// Package pose defines the body-joint observations consumed by the
// alignment engine and the lightweight pre-pass applied to them.
//
// A Frame is a fixed-size ordered set of J landmarks, each a 3-D position
// with a visibility weight. J is a deployment constant (33 for MediaPipe
// Pose) and is carried by Layout, which also names the landmark indices the
// normalizer and the scorer need (shoulders, hips, knees …). The layout is an
// external contract with the perception component that produced the frames,
// so it is validated once and injected rather than hard-coded.
//
// Pre-pass:
//
//  1. NormalizeFrame  — centre on the pelvis and divide by the body scale
//     (median of shoulder width and hip width) when those landmarks are
//     visible.
//  2. Smooth          — exponential moving average over positions.
//
// Both steps return new frames; inputs are never mutated.
package pose
