package analysis

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/posealign/pose"
)

// angleEpsilon guards the cosine denominator for zero-length limbs.
const angleEpsilon = 1e-8

// Joint identifies one scored joint angle.
type Joint int

// Scored joints, in evaluation order.
const (
	LeftElbow Joint = iota
	RightElbow
	LeftKnee
	RightKnee
	LeftHip
	RightHip

	numJoints
)

// Joints lists every scored joint in the fixed evaluation order.
var Joints = [numJoints]Joint{LeftElbow, RightElbow, LeftKnee, RightKnee, LeftHip, RightHip}

// String returns the report key of j.
func (j Joint) String() string {
	switch j {
	case LeftElbow:
		return "L_elbow"
	case RightElbow:
		return "R_elbow"
	case LeftKnee:
		return "L_knee"
	case RightKnee:
		return "R_knee"
	case LeftHip:
		return "L_hip"
	case RightHip:
		return "R_hip"
	default:
		return fmt.Sprintf("Joint(%d)", int(j))
	}
}

// Angles holds one value per joint, indexed by Joint.
type Angles [numJoints]float64

// MarshalJSON encodes a as an object keyed by joint name.
func (a Angles) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, numJoints)
	for _, j := range Joints {
		m[j.String()] = a[j]
	}
	return json.Marshal(m)
}

// Angle returns the angle at b between the segments b→a and b→c, in degrees.
// The cosine is clamped to [-1, 1].
func Angle(a, b, c r3.Vec) float64 {
	v1, v2 := r3.Sub(a, b), r3.Sub(c, b)
	cos := r3.Dot(v1, v2) / (r3.Norm(v1)*r3.Norm(v2) + angleEpsilon)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}

// JointAngles measures every joint of f using the indices in l.
// f must have at least l.Landmarks landmarks.
func JointAngles(f pose.Frame, l pose.Layout) Angles {
	p := func(i int) r3.Vec { return f[i].Pos }

	var out Angles
	out[LeftElbow] = Angle(p(l.LeftShoulder), p(l.LeftElbow), p(l.LeftWrist))
	out[RightElbow] = Angle(p(l.RightShoulder), p(l.RightElbow), p(l.RightWrist))
	out[LeftKnee] = Angle(p(l.LeftHip), p(l.LeftKnee), p(l.LeftAnkle))
	out[RightKnee] = Angle(p(l.RightHip), p(l.RightKnee), p(l.RightAnkle))
	out[LeftHip] = Angle(p(l.LeftShoulder), p(l.LeftHip), p(l.LeftKnee))
	out[RightHip] = Angle(p(l.RightShoulder), p(l.RightHip), p(l.RightKnee))

	return out
}
