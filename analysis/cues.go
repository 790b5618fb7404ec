package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadCueOptions indicates a negative threshold or cooldown.
var ErrBadCueOptions = errors.New("analysis: invalid cue options")

// Fixed coaching hints, one per joint family.
const (
	CueKnee  = "Extend the knee fully and keep it aligned over the toes."
	CueHip   = "Keep the pelvis stable and move the leg from the hip joint."
	CueElbow = "Keep the elbow lifted and the arm long."
	CueTorso = "Keep the torso upright."
)

// CueOptions configures Cues.
//
// Fields:
//   - ThresholdDeg — differences smaller than this (in degrees) yield no cue.
//   - Cooldown     — frames to wait before repeating the same cue.
type CueOptions struct {
	ThresholdDeg float64
	Cooldown     int
}

// DefaultCueOptions returns a 5° threshold and an 8-frame cooldown.
func DefaultCueOptions() CueOptions {
	return CueOptions{ThresholdDeg: 5, Cooldown: 8}
}

// Validate reports whether o is usable.
func (o CueOptions) Validate() error {
	if math.IsNaN(o.ThresholdDeg) || o.ThresholdDeg < 0 || o.Cooldown < 0 {
		return fmt.Errorf("threshold=%v cooldown=%d: %w", o.ThresholdDeg, o.Cooldown, ErrBadCueOptions)
	}
	return nil
}

// cueFor maps a joint and its angle difference to a hint, or "" when the
// difference is below the threshold.
func cueFor(j Joint, delta, threshold float64) string {
	if math.Abs(delta) < threshold {
		return ""
	}
	switch j {
	case LeftKnee, RightKnee:
		return CueKnee
	case LeftHip, RightHip:
		return CueHip
	case LeftElbow, RightElbow:
		return CueElbow
	default:
		return CueTorso
	}
}

// worstJoint returns the joint with the largest |diff|; the earliest joint
// in evaluation order wins ties.
func worstJoint(d Angles) Joint {
	worst := Joints[0]
	for _, j := range Joints[1:] {
		if math.Abs(d[j]) > math.Abs(d[worst]) {
			worst = j
		}
	}
	return worst
}

// Cues walks the per-frame results and collects hints for the worst joint of
// each frame. A hint is emitted when it differs from the last emitted hint
// or the cooldown has run out; emitting resets the cooldown, anything else
// counts it down. The result keeps first-seen order without duplicates.
func Cues(frames []FrameResult, opts CueOptions) []string {
	var (
		tips []string
		last string
		cool int
	)
	for _, f := range frames {
		j := worstJoint(f.Diffs)
		cue := cueFor(j, f.Diffs[j], opts.ThresholdDeg)
		if cue != "" && (cue != last || cool <= 0) {
			tips = append(tips, cue)
			last = cue
			cool = opts.Cooldown
		} else {
			cool = max(0, cool-1)
		}
	}

	seen := make(map[string]bool, len(tips))
	out := make([]string, 0, len(tips))
	for _, t := range tips {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}

	return out
}
