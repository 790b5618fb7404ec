package analysis_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/posealign/analysis"
	"github.com/katalvlaran/posealign/pose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// skeleton returns a MediaPipe-sized frame whose left elbow is bent to deg
// degrees; every other landmark sits at the origin, so all other joint
// angles measure 90° regardless of deg.
func skeleton(deg float64) pose.Frame {
	l := pose.MediaPipeLayout()
	f := make(pose.Frame, l.Landmarks)
	for i := range f {
		f[i].Visibility = 1
	}
	rad := deg * math.Pi / 180
	f[l.LeftShoulder].Pos = r3.Vec{Y: 1}
	f[l.LeftElbow].Pos = r3.Vec{}
	f[l.LeftWrist].Pos = r3.Vec{X: math.Sin(rad), Y: math.Cos(rad)}
	return f
}

// sweep returns n skeletons with the elbow opening from 60° in 10° steps.
func sweep(n int) []pose.Frame {
	seq := make([]pose.Frame, n)
	for t := range seq {
		seq[t] = skeleton(60 + 10*float64(t))
	}
	return seq
}

// TestAngle covers a right angle, a straight limb and a degenerate limb.
func TestAngle(t *testing.T) {
	assert.InDelta(t, 90, analysis.Angle(r3.Vec{X: 1}, r3.Vec{}, r3.Vec{Y: 1}), 1e-9)
	assert.InDelta(t, 180, analysis.Angle(r3.Vec{X: -1}, r3.Vec{}, r3.Vec{X: 1}), 0.05)
	assert.InDelta(t, 0, analysis.Angle(r3.Vec{X: 2}, r3.Vec{}, r3.Vec{X: 1}), 0.05)
	assert.InDelta(t, 90, analysis.Angle(r3.Vec{}, r3.Vec{}, r3.Vec{X: 1}), 1e-9, "zero-length limb")
}

// TestJointAngles_Skeleton checks that the fixture isolates the left elbow.
func TestJointAngles_Skeleton(t *testing.T) {
	a := analysis.JointAngles(skeleton(120), pose.MediaPipeLayout())
	assert.InDelta(t, 120, a[analysis.LeftElbow], 1e-4)
	for _, j := range analysis.Joints[1:] {
		assert.InDelta(t, 90, a[j], 1e-9, j.String())
	}
}

// TestCompareFrames scores a 90° error on one of six joints as 85.
func TestCompareFrames(t *testing.T) {
	l := pose.MediaPipeLayout()

	diffs, score := analysis.CompareFrames(skeleton(180), skeleton(90), l)
	assert.InDelta(t, -90, diffs[analysis.LeftElbow], 0.05)
	assert.InDelta(t, 85, score, 0.01)

	_, score = analysis.CompareFrames(skeleton(90), skeleton(90), l)
	assert.Equal(t, analysis.MaxScore, score)
}

// TestAnalyze scores a mapped pair of sequences and averages them.
func TestAnalyze(t *testing.T) {
	l := pose.MediaPipeLayout()
	ideal := []pose.Frame{skeleton(90), skeleton(180)}
	user := []pose.Frame{skeleton(90), skeleton(90), skeleton(180)}

	frames, overall, err := analysis.Analyze(ideal, user, []int{0, 1, 1}, l)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, analysis.MaxScore, frames[0].Score)
	assert.InDelta(t, 85, frames[1].Score, 0.01)
	assert.InDelta(t, analysis.MaxScore, frames[2].Score, 1e-9)
	assert.Equal(t, 1, frames[2].Ideal)
	assert.Equal(t, 2, frames[2].User)
	assert.InDelta(t, 95, overall, 0.01)
}

// TestAnalyze_Errors covers the mapping and sequence checks.
func TestAnalyze_Errors(t *testing.T) {
	l := pose.MediaPipeLayout()
	ideal := []pose.Frame{skeleton(90)}
	user := []pose.Frame{skeleton(90), skeleton(100)}

	_, _, err := analysis.Analyze(ideal, user, []int{0}, l)
	assert.ErrorIs(t, err, analysis.ErrMappingLength)

	_, _, err = analysis.Analyze(ideal, user, []int{0, 1}, l)
	assert.ErrorIs(t, err, analysis.ErrMappingLength)

	_, _, err = analysis.Analyze(nil, user, []int{0, 0}, l)
	assert.ErrorIs(t, err, analysis.ErrNoIdeal)

	_, _, err = analysis.Analyze(ideal, []pose.Frame{make(pose.Frame, 3)}, []int{0}, l)
	assert.ErrorIs(t, err, pose.ErrLandmarkCount)

	frames, overall, err := analysis.Analyze(ideal, nil, nil, l)
	require.NoError(t, err)
	assert.Empty(t, frames)
	assert.Zero(t, overall)
}

// TestAngles_JSON encodes angles keyed by joint name.
func TestAngles_JSON(t *testing.T) {
	var a analysis.Angles
	a[analysis.LeftKnee] = 12.5
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"L_elbow":0,"R_elbow":0,"L_knee":12.5,"R_knee":0,"L_hip":0,"R_hip":0}`, string(b))
}
