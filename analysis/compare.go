package analysis

import (
	"fmt"

	"github.com/katalvlaran/posealign/dtw"
	"github.com/katalvlaran/posealign/pose"
)

// Options configures Compare.
type Options struct {
	Layout    pose.Layout
	Normalize pose.NormalizeOptions
	Align     dtw.Options
	Cues      CueOptions
}

// DefaultOptions returns the MediaPipe layout with the default options of
// every stage.
func DefaultOptions() Options {
	return Options{
		Layout:    pose.MediaPipeLayout(),
		Normalize: pose.DefaultNormalizeOptions(),
		Align:     dtw.DefaultOptions(),
		Cues:      DefaultCueOptions(),
	}
}

// Validate checks every stage's options.
func (o Options) Validate() error {
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if err := o.Normalize.Validate(); err != nil {
		return err
	}
	if err := o.Align.Validate(); err != nil {
		return err
	}
	return o.Cues.Validate()
}

// Report is the full comparison of a user performance with an ideal one.
type Report struct {
	IdealFrames int           `json:"ideal_frames"`
	UserFrames  int           `json:"user_frames"`
	Alignment   dtw.Result    `json:"alignment"`
	Frames      []FrameResult `json:"frames"`
	Overall     float64       `json:"overall"`
	Cues        []string      `json:"cues"`
}

// Compare normalizes both sequences, aligns user to ideal, scores every user
// frame and derives cues. Inputs are not modified.
func Compare(ideal, user []pose.Frame, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ni, err := pose.NormalizeSequence(ideal, opts.Layout, opts.Normalize)
	if err != nil {
		return nil, fmt.Errorf("normalize ideal: %w", err)
	}
	nu, err := pose.NormalizeSequence(user, opts.Layout, opts.Normalize)
	if err != nil {
		return nil, fmt.Errorf("normalize user: %w", err)
	}

	res, err := dtw.Run(ni, nu, opts.Align)
	if err != nil {
		return nil, fmt.Errorf("align: %w", err)
	}

	frames, overall, err := Analyze(ni, nu, res.Mapping, opts.Layout)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	return &Report{
		IdealFrames: len(ideal),
		UserFrames:  len(user),
		Alignment:   res,
		Frames:      frames,
		Overall:     overall,
		Cues:        Cues(frames, opts.Cues),
	}, nil
}
