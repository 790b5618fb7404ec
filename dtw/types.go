package dtw

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrBadBandRatio indicates a band ratio that is not a finite number > 0.
	ErrBadBandRatio = errors.New("dtw: band ratio must be finite and > 0")

	// ErrUnknownMode indicates an alignment mode outside {Banded, Unconstrained, Ratio}.
	ErrUnknownMode = errors.New("dtw: unknown alignment mode")

	// ErrDimensionMismatch indicates feature vectors of different lengths
	// within one alignment call.
	ErrDimensionMismatch = errors.New("dtw: feature dimension mismatch")
)

// Unreached is the accumulated cost of a cell the banded search never
// reached. It is large but finite so arithmetic stays well-defined;
// reachability is tested with a strict "< Unreached".
const Unreached = 1e9

// DefaultBandRatio is the band ratio used by DefaultOptions.
const DefaultBandRatio = 0.08

// Mode selects the alignment strategy.
type Mode int

const (
	// Banded runs the Sakoe–Chiba constrained search (production path).
	Banded Mode = iota

	// Unconstrained runs the full O(I·U) search.
	Unconstrained

	// Ratio maps indices by linear interpolation only.
	Ratio
)

// String returns the config spelling of m.
func (m Mode) String() string {
	switch m {
	case Banded:
		return "banded"
	case Unconstrained:
		return "unconstrained"
	case Ratio:
		return "ratio"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < Banded || m > Ratio {
		return nil, fmt.Errorf("%v: %w", m, ErrUnknownMode)
	}
	return []byte(m.String()), nil
}

// ParseMode accepts "banded", "unconstrained" or "ratio" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "banded", "band":
		return Banded, nil
	case "unconstrained", "full":
		return Unconstrained, nil
	case "ratio":
		return Ratio, nil
	}

	return 0, fmt.Errorf("mode %q: %w", s, ErrUnknownMode)
}

// Outcome records which terminal state an alignment call reached.
type Outcome int

const (
	// OutcomeTrivial — one sequence was empty; the mapping is all zeros.
	OutcomeTrivial Outcome = iota

	// OutcomePathFound — the dynamic program produced a warping path.
	OutcomePathFound

	// OutcomeFallback — the banded search found no reachable end cell and
	// the ratio mapping was substituted.
	OutcomeFallback

	// OutcomeRatio — the caller selected the ratio mode.
	OutcomeRatio
)

// String returns a short name for o.
func (o Outcome) String() string {
	switch o {
	case OutcomeTrivial:
		return "trivial"
	case OutcomePathFound:
		return "path_found"
	case OutcomeFallback:
		return "fallback"
	case OutcomeRatio:
		return "ratio"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Coord is one cell of a warping path: ideal index I, user index J.
type Coord struct {
	I, J int
}

// Options configures Run.
//
// Fields:
//   - Mode      — Banded (zero value), Unconstrained or Ratio.
//   - BandRatio — band half-width as a fraction of max(I,U); only read in
//     Banded mode, where it must be finite and > 0.
type Options struct {
	Mode      Mode
	BandRatio float64
}

// DefaultOptions returns Banded mode with DefaultBandRatio.
func DefaultOptions() Options {
	return Options{Mode: Banded, BandRatio: DefaultBandRatio}
}

// Validate reports whether o can drive Run.
func (o Options) Validate() error {
	switch o.Mode {
	case Banded:
		return validateBandRatio(o.BandRatio)
	case Unconstrained, Ratio:
		return nil
	default:
		return fmt.Errorf("%v: %w", o.Mode, ErrUnknownMode)
	}
}

func validateBandRatio(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("band ratio %v: %w", r, ErrBadBandRatio)
	}
	return nil
}

// Result is the outcome of one alignment call.
//
// Fields:
//   - Mapping   — len(user) ideal indices; the sole contract with scoring.
//   - Mode      — strategy that was requested.
//   - Outcome   — terminal state actually reached.
//   - BandWidth — W used by the banded search (0 in other modes).
//   - Cost      — accumulated cost at the path end; 0 when no path was built.
//   - Path      — warping path in forward order. For Ratio and Fallback it
//     lists (Mapping[j], j); nil for OutcomeTrivial.
type Result struct {
	Mapping   []int   `json:"mapping"`
	Mode      Mode    `json:"mode"`
	Outcome   Outcome `json:"outcome"`
	BandWidth int     `json:"band_width,omitempty"`
	Cost      float64 `json:"cost"`
	Path      []Coord `json:"-"`
}

// step is the predecessor direction stored per cell.
type step int8

const (
	stepNone step = iota
	stepDiag      // from (i-1, j-1)
	stepUp        // from (i-1, j)
	stepLeft      // from (i, j-1)
)

// prev returns the predecessor cell of (i, j) along s.
func (s step) prev(i, j int) (int, int) {
	switch s {
	case stepDiag:
		return i - 1, j - 1
	case stepUp:
		return i - 1, j
	case stepLeft:
		return i, j - 1
	default:
		return i, j
	}
}

// pick returns the minimum of the three candidates with the fixed
// precedence diagonal, up, left on ties.
func pick(diag, up, left float64) (float64, step) {
	best, st := diag, stepDiag
	if up < best {
		best, st = up, stepUp
	}
	if left < best {
		best, st = left, stepLeft
	}
	return best, st
}
