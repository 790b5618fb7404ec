package pose

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrLandmarkCount indicates that a frame does not have the landmark count
// required by the operation (layout size or the count of its peers).
var ErrLandmarkCount = errors.New("pose: landmark count mismatch")

// Landmark is one observed body point.
// Visibility is nominally in [0,1] but is not clamped on input.
type Landmark struct {
	Pos        r3.Vec
	Visibility float64
}

// Frame is one time sample: J landmarks in layout order.
type Frame []Landmark

// Clone returns a copy of f that shares no storage with it.
func (f Frame) Clone() Frame {
	out := make(Frame, len(f))
	copy(out, f)
	return out
}

// UniformLandmarks returns the landmark count shared by every frame of every
// sequence, or ErrLandmarkCount if two frames disagree. With no frames at all
// it returns 0.
func UniformLandmarks(seqs ...[]Frame) (int, error) {
	j, seen := 0, false
	for s, seq := range seqs {
		for t, f := range seq {
			if !seen {
				j, seen = len(f), true
				continue
			}
			if len(f) != j {
				return 0, fmt.Errorf("sequence %d frame %d has %d landmarks, want %d: %w",
					s, t, len(f), j, ErrLandmarkCount)
			}
		}
	}

	return j, nil
}
