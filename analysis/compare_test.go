package analysis_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/posealign/analysis"
	"github.com/katalvlaran/posealign/dtw"
	"github.com/katalvlaran/posealign/pose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompare_IdenticalPerformances scores identical sequences as perfect in
// every alignment mode.
func TestCompare_IdenticalPerformances(t *testing.T) {
	seq := sweep(10)
	for _, mode := range []dtw.Mode{dtw.Banded, dtw.Unconstrained, dtw.Ratio} {
		opts := analysis.DefaultOptions()
		opts.Align.Mode = mode

		rep, err := analysis.Compare(seq, seq, opts)
		require.NoError(t, err, mode.String())
		assert.Equal(t, 10, rep.IdealFrames)
		assert.Equal(t, 10, rep.UserFrames)
		if diff := cmp.Diff(rangeInts(10), rep.Alignment.Mapping); diff != "" {
			t.Errorf("%v mapping (-want +got):\n%s", mode, diff)
		}
		assert.Equal(t, analysis.MaxScore, rep.Overall, mode.String())
		assert.Empty(t, rep.Cues, mode.String())
	}
}

// TestCompare_HeldPoses aligns a user who holds some poses longer and still
// matches the ideal frame for frame.
func TestCompare_HeldPoses(t *testing.T) {
	ideal := sweep(8)
	hold := []int{0, 1, 1, 2, 3, 3, 3, 4, 5, 6, 7}
	user := make([]pose.Frame, len(hold))
	for j, i := range hold {
		user[j] = ideal[i]
	}

	opts := analysis.DefaultOptions()
	opts.Normalize.Smoothing = pose.SmoothNone
	opts.Align.Mode = dtw.Unconstrained

	rep, err := analysis.Compare(ideal, user, opts)
	require.NoError(t, err)
	assert.Equal(t, hold, rep.Alignment.Mapping)
	assert.Equal(t, dtw.OutcomePathFound, rep.Alignment.Outcome)
	assert.Equal(t, analysis.MaxScore, rep.Overall)
}

// TestCompare_Errors covers option validation and empty sequences.
func TestCompare_Errors(t *testing.T) {
	seq := sweep(3)

	opts := analysis.DefaultOptions()
	opts.Align.BandRatio = 0
	_, err := analysis.Compare(seq, seq, opts)
	assert.ErrorIs(t, err, dtw.ErrBadBandRatio)

	_, err = analysis.Compare(seq, []pose.Frame{make(pose.Frame, 5)}, analysis.DefaultOptions())
	assert.ErrorIs(t, err, pose.ErrLandmarkCount)

	_, err = analysis.Compare(nil, seq, analysis.DefaultOptions())
	assert.ErrorIs(t, err, analysis.ErrNoIdeal)

	rep, err := analysis.Compare(seq, nil, analysis.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, rep.Alignment.Mapping)
	assert.Empty(t, rep.Frames)
	assert.Zero(t, rep.Overall)
}

func rangeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
