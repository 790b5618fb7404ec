package analysis_test

import (
	"testing"

	"github.com/katalvlaran/posealign/analysis"
	"github.com/stretchr/testify/assert"
)

// frameWith returns a FrameResult whose only non-zero diff is on j.
func frameWith(j analysis.Joint, delta float64) analysis.FrameResult {
	var d analysis.Angles
	d[j] = delta
	return analysis.FrameResult{Diffs: d}
}

// TestCues_OrderAndDedup emits one hint per family in first-seen order.
func TestCues_OrderAndDedup(t *testing.T) {
	frames := []analysis.FrameResult{
		frameWith(analysis.LeftKnee, 10),
		frameWith(analysis.RightKnee, -12),
		frameWith(analysis.LeftKnee, 9),
		frameWith(analysis.RightElbow, 20),
		frameWith(analysis.LeftKnee, 30),
		frameWith(analysis.LeftHip, -7),
	}
	got := analysis.Cues(frames, analysis.DefaultCueOptions())
	assert.Equal(t, []string{analysis.CueKnee, analysis.CueElbow, analysis.CueHip}, got)
}

// TestCues_BelowThreshold yields nothing for small differences.
func TestCues_BelowThreshold(t *testing.T) {
	frames := []analysis.FrameResult{
		frameWith(analysis.LeftKnee, 4.9),
		frameWith(analysis.LeftElbow, -3),
		{},
	}
	got := analysis.Cues(frames, analysis.DefaultCueOptions())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestCues_TiePicksFirstJoint resolves equal |diff| by evaluation order.
func TestCues_TiePicksFirstJoint(t *testing.T) {
	var d analysis.Angles
	d[analysis.LeftElbow] = -15
	d[analysis.RightKnee] = 15
	got := analysis.Cues([]analysis.FrameResult{{Diffs: d}}, analysis.DefaultCueOptions())
	assert.Equal(t, []string{analysis.CueElbow}, got)
}

// TestCueOptions_Validate rejects negative settings.
func TestCueOptions_Validate(t *testing.T) {
	assert.NoError(t, analysis.DefaultCueOptions().Validate())
	assert.ErrorIs(t, analysis.CueOptions{ThresholdDeg: -1}.Validate(), analysis.ErrBadCueOptions)
	assert.ErrorIs(t, analysis.CueOptions{Cooldown: -2}.Validate(), analysis.ErrBadCueOptions)
}
