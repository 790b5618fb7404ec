package pose

import (
	"errors"
	"fmt"
)

// ErrLayoutIndex indicates a layout whose landmark indices fall outside
// [0, Landmarks) or whose landmark count is not positive.
var ErrLayoutIndex = errors.New("pose: layout index out of range")

// MediaPipeLandmarks is the landmark count of the MediaPipe Pose topology.
const MediaPipeLandmarks = 33

// Layout names the landmark positions used by normalization and scoring.
//
// Fields:
//   - Landmarks — J, the number of landmarks per frame.
//   - the remaining fields are indices into a Frame.
type Layout struct {
	Landmarks     int `json:"landmarks"`
	LeftShoulder  int `json:"left_shoulder"`
	RightShoulder int `json:"right_shoulder"`
	LeftElbow     int `json:"left_elbow"`
	RightElbow    int `json:"right_elbow"`
	LeftWrist     int `json:"left_wrist"`
	RightWrist    int `json:"right_wrist"`
	LeftHip       int `json:"left_hip"`
	RightHip      int `json:"right_hip"`
	LeftKnee      int `json:"left_knee"`
	RightKnee     int `json:"right_knee"`
	LeftAnkle     int `json:"left_ankle"`
	RightAnkle    int `json:"right_ankle"`
}

// MediaPipeLayout returns the 33-landmark MediaPipe Pose layout.
func MediaPipeLayout() Layout {
	return Layout{
		Landmarks:     MediaPipeLandmarks,
		LeftShoulder:  11,
		RightShoulder: 12,
		LeftElbow:     13,
		RightElbow:    14,
		LeftWrist:     15,
		RightWrist:    16,
		LeftHip:       23,
		RightHip:      24,
		LeftKnee:      25,
		RightKnee:     26,
		LeftAnkle:     27,
		RightAnkle:    28,
	}
}

// Validate checks that Landmarks > 0 and that every named index is in range.
func (l Layout) Validate() error {
	if l.Landmarks <= 0 {
		return fmt.Errorf("landmarks=%d: %w", l.Landmarks, ErrLayoutIndex)
	}
	named := []struct {
		name string
		idx  int
	}{
		{"left_shoulder", l.LeftShoulder},
		{"right_shoulder", l.RightShoulder},
		{"left_elbow", l.LeftElbow},
		{"right_elbow", l.RightElbow},
		{"left_wrist", l.LeftWrist},
		{"right_wrist", l.RightWrist},
		{"left_hip", l.LeftHip},
		{"right_hip", l.RightHip},
		{"left_knee", l.LeftKnee},
		{"right_knee", l.RightKnee},
		{"left_ankle", l.LeftAnkle},
		{"right_ankle", l.RightAnkle},
	}
	for _, n := range named {
		if n.idx < 0 || n.idx >= l.Landmarks {
			return fmt.Errorf("%s=%d with %d landmarks: %w", n.name, n.idx, l.Landmarks, ErrLayoutIndex)
		}
	}

	return nil
}

// CheckFrames verifies that every frame has exactly l.Landmarks landmarks.
func (l Layout) CheckFrames(seq []Frame) error {
	for t, f := range seq {
		if len(f) != l.Landmarks {
			return fmt.Errorf("frame %d has %d landmarks, layout wants %d: %w",
				t, len(f), l.Landmarks, ErrLandmarkCount)
		}
	}

	return nil
}
