package pose

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrBadOptions indicates invalid normalization options.
var ErrBadOptions = errors.New("pose: invalid normalize options")

// minScale bounds the body scale from below so near-degenerate skeletons
// do not blow up positions.
const minScale = 1e-6

// Smoothing selects the temporal smoothing applied after per-frame normalization.
type Smoothing int

const (
	// SmoothEMA applies an exponential moving average over positions.
	SmoothEMA Smoothing = iota
	// SmoothNone leaves frames unsmoothed.
	SmoothNone
)

// String returns the config spelling of s.
func (s Smoothing) String() string {
	switch s {
	case SmoothEMA:
		return "ema"
	case SmoothNone:
		return "none"
	default:
		return fmt.Sprintf("Smoothing(%d)", int(s))
	}
}

// ParseSmoothing accepts "ema" or "none" (case-insensitive).
func ParseSmoothing(s string) (Smoothing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ema":
		return SmoothEMA, nil
	case "none":
		return SmoothNone, nil
	}

	return 0, fmt.Errorf("smoothing %q: %w", s, ErrBadOptions)
}

// NormalizeOptions configures NormalizeSequence.
//
// Fields:
//   - VisibilityThreshold — a landmark counts as visible when its visibility
//     is strictly greater than this value.
//   - Smoothing — SmoothEMA or SmoothNone.
//   - Alpha — EMA weight of the current frame, in (0, 1].
type NormalizeOptions struct {
	VisibilityThreshold float64
	Smoothing           Smoothing
	Alpha               float64
}

// DefaultNormalizeOptions returns threshold 0.5, EMA smoothing, alpha 0.3.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		VisibilityThreshold: 0.5,
		Smoothing:           SmoothEMA,
		Alpha:               0.3,
	}
}

// Validate reports whether the options are usable.
func (o NormalizeOptions) Validate() error {
	if math.IsNaN(o.VisibilityThreshold) {
		return fmt.Errorf("visibility threshold is NaN: %w", ErrBadOptions)
	}
	switch o.Smoothing {
	case SmoothEMA:
		if !(o.Alpha > 0 && o.Alpha <= 1) {
			return fmt.Errorf("alpha=%v outside (0,1]: %w", o.Alpha, ErrBadOptions)
		}
	case SmoothNone:
	default:
		return fmt.Errorf("%v: %w", o.Smoothing, ErrBadOptions)
	}

	return nil
}

// NormalizeFrame centres f on the pelvis and divides positions by the body scale.
//
// Steps:
//  1. If both hips are visible, subtract their midpoint from every position.
//  2. Collect shoulder width (both shoulders visible) and hip width (both hips
//     visible); the scale is their median, or 1 when neither is available.
//  3. Divide positions by max(scale, 1e-6). Visibilities pass through.
//
// f must have at least l.Landmarks landmarks; the caller validates this.
func NormalizeFrame(f Frame, l Layout, threshold float64) Frame {
	out := f.Clone()
	visible := func(i int) bool { return out[i].Visibility > threshold }

	hips := visible(l.LeftHip) && visible(l.RightHip)
	if hips {
		pelvis := r3.Scale(0.5, r3.Add(out[l.LeftHip].Pos, out[l.RightHip].Pos))
		for i := range out {
			out[i].Pos = r3.Sub(out[i].Pos, pelvis)
		}
	}

	var refs []float64
	if visible(l.LeftShoulder) && visible(l.RightShoulder) {
		refs = append(refs, r3.Norm(r3.Sub(out[l.LeftShoulder].Pos, out[l.RightShoulder].Pos)))
	}
	if hips {
		refs = append(refs, r3.Norm(r3.Sub(out[l.LeftHip].Pos, out[l.RightHip].Pos)))
	}
	scale := 1.0
	if len(refs) > 0 {
		scale = median(refs)
	}
	inv := 1 / math.Max(scale, minScale)
	for i := range out {
		out[i].Pos = r3.Scale(inv, out[i].Pos)
	}

	return out
}

// Smooth returns the exponential moving average of seq over positions:
// s[0] = x[0], s[t] = alpha·x[t] + (1−alpha)·s[t−1]. Visibilities are
// taken from the raw frame. Frames must share a landmark count.
func Smooth(seq []Frame, alpha float64) []Frame {
	out := make([]Frame, len(seq))
	for t, f := range seq {
		out[t] = f.Clone()
		if t == 0 {
			continue
		}
		prev := out[t-1]
		for i := range out[t] {
			out[t][i].Pos = r3.Add(r3.Scale(alpha, f[i].Pos), r3.Scale(1-alpha, prev[i].Pos))
		}
	}

	return out
}

// NormalizeSequence applies NormalizeFrame to every frame and then the
// configured smoothing. An empty sequence yields an empty, non-nil result.
func NormalizeSequence(seq []Frame, l Layout, opts NormalizeOptions) ([]Frame, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := l.CheckFrames(seq); err != nil {
		return nil, err
	}

	normed := make([]Frame, len(seq))
	for t, f := range seq {
		normed[t] = NormalizeFrame(f, l, opts.VisibilityThreshold)
	}
	if opts.Smoothing == SmoothEMA {
		return Smooth(normed, opts.Alpha), nil
	}

	return normed, nil
}

// median returns the median of xs, averaging the two middle values for an
// even count. xs is sorted in place.
func median(xs []float64) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	return (xs[n/2-1] + xs[n/2]) / 2
}
