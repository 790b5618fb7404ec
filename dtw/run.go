package dtw

import (
	"github.com/katalvlaran/posealign/pose"
)

// Run aligns user to ideal with the strategy selected by opts.
//
// Empty inputs short-circuit in every mode to len(user) zeros with
// OutcomeTrivial. In Ratio mode frame contents are not inspected, so
// landmark counts are not validated.
//
// Errors:
//   - ErrUnknownMode, ErrBadBandRatio — invalid opts.
//   - pose.ErrLandmarkCount           — frames disagree on their landmark count.
func Run(ideal, user []pose.Frame, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if len(ideal) == 0 || len(user) == 0 {
		return trivial(opts.Mode, len(user)), nil
	}

	switch opts.Mode {
	case Ratio:
		return ratioResult(Ratio, OutcomeRatio, len(ideal), len(user)), nil
	case Unconstrained:
		a, b, err := extractPair(ideal, user)
		if err != nil {
			return Result{}, err
		}
		return alignFull(a, b)
	default:
		a, b, err := extractPair(ideal, user)
		if err != nil {
			return Result{}, err
		}
		return alignBand(a, b, opts.BandRatio)
	}
}
