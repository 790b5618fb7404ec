// Package analysis scores a user performance against an ideal one once the
// frames have been aligned.
//
// For every user frame j the scorer looks up ideal frame mapping[j] and
// compares six joint angles (elbows, knees, hips). The per-frame score is
// max(0, 100 − mean |Δangle|) in degrees and the overall score is the mean
// per-frame score. Cues turns the per-frame differences into a short,
// de-duplicated list of fixed coaching hints.
//
// Compare wires the whole pipeline: normalize → align → score → cues.
package analysis
