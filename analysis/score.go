package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/posealign/pose"
)

var (
	// ErrMappingLength indicates a mapping whose length differs from the
	// user sequence, or that points outside the ideal sequence.
	ErrMappingLength = errors.New("analysis: mapping does not fit sequences")

	// ErrNoIdeal indicates user frames to score but no ideal frame to score against.
	ErrNoIdeal = errors.New("analysis: empty ideal sequence")
)

// MaxScore is the score of a frame whose joint angles all match.
const MaxScore = 100.0

// FrameResult is the comparison of one user frame with its aligned ideal frame.
type FrameResult struct {
	User  int     `json:"user"`
	Ideal int     `json:"ideal"`
	Diffs Angles  `json:"diffs"`
	Score float64 `json:"score"`
}

// CompareFrames returns user − ideal joint angles and the frame score
// max(0, 100 − mean |diff|).
func CompareFrames(ideal, user pose.Frame, l pose.Layout) (Angles, float64) {
	ia, ua := JointAngles(ideal, l), JointAngles(user, l)

	var diffs Angles
	abs := make([]float64, numJoints)
	for _, j := range Joints {
		diffs[j] = ua[j] - ia[j]
		abs[j] = math.Abs(diffs[j])
	}

	return diffs, math.Max(0, MaxScore-stat.Mean(abs, nil))
}

// Analyze scores every user frame against ideal[mapping[j]] and returns the
// per-frame results and their mean. An empty user sequence scores 0.
//
// Errors:
//   - pose.ErrLayoutIndex, pose.ErrLandmarkCount — layout or frames invalid.
//   - ErrNoIdeal       — user frames but no ideal frames.
//   - ErrMappingLength — len(mapping) != len(user) or an index out of range.
func Analyze(ideal, user []pose.Frame, mapping []int, l pose.Layout) ([]FrameResult, float64, error) {
	if err := l.Validate(); err != nil {
		return nil, 0, err
	}
	if len(mapping) != len(user) {
		return nil, 0, fmt.Errorf("mapping length %d, user frames %d: %w", len(mapping), len(user), ErrMappingLength)
	}
	if len(user) == 0 {
		return []FrameResult{}, 0, nil
	}
	if len(ideal) == 0 {
		return nil, 0, ErrNoIdeal
	}
	if err := l.CheckFrames(ideal); err != nil {
		return nil, 0, fmt.Errorf("ideal: %w", err)
	}
	if err := l.CheckFrames(user); err != nil {
		return nil, 0, fmt.Errorf("user: %w", err)
	}

	results := make([]FrameResult, len(user))
	scores := make([]float64, len(user))
	for j, u := range user {
		i := mapping[j]
		if i < 0 || i >= len(ideal) {
			return nil, 0, fmt.Errorf("mapping[%d]=%d with %d ideal frames: %w", j, i, len(ideal), ErrMappingLength)
		}
		diffs, score := CompareFrames(ideal[i], u, l)
		results[j] = FrameResult{User: j, Ideal: i, Diffs: diffs, Score: score}
		scores[j] = score
	}

	return results, stat.Mean(scores, nil), nil
}
