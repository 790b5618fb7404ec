// Package render draws PNG charts of a comparison run with gonum/plot:
// the warping mapping against the linear diagonal, the per-frame score
// curve and the per-joint angle differences.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/posealign/analysis"
	"github.com/katalvlaran/posealign/dtw"
)

// ErrNothingToPlot indicates a report without user frames.
var ErrNothingToPlot = errors.New("render: no frames to plot")

// Output file names inside the directory passed to WriteAll.
const (
	AlignmentFile = "alignment.png"
	ScoresFile    = "scores.png"
	JointsFile    = "joints.png"
)

var (
	plotWidth  = 10 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// WriteAll renders every chart of rep into dir, creating it if needed, and
// returns the written paths.
func WriteAll(dir string, rep *analysis.Report) ([]string, error) {
	if rep == nil || len(rep.Frames) == 0 {
		return nil, ErrNothingToPlot
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create plot dir: %w", err)
	}

	paths := []string{
		filepath.Join(dir, AlignmentFile),
		filepath.Join(dir, ScoresFile),
		filepath.Join(dir, JointsFile),
	}
	if err := Alignment(rep.Alignment, rep.IdealFrames, paths[0]); err != nil {
		return nil, err
	}
	if err := Scores(rep.Frames, rep.Overall, paths[1]); err != nil {
		return nil, err
	}
	if err := JointDiffs(rep.Frames, paths[2]); err != nil {
		return nil, err
	}

	return paths, nil
}

// Alignment plots mapping[j] over user frame j next to the ratio mapping
// for the same lengths, so warping shows as distance from the diagonal.
func Alignment(res dtw.Result, idealFrames int, path string) error {
	if len(res.Mapping) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Alignment (%s, %s)", res.Mode, res.Outcome)
	p.X.Label.Text = "User frame"
	p.Y.Label.Text = "Ideal frame"

	linear := dtw.RatioMapping(idealFrames, len(res.Mapping))
	warpPts := make(plotter.XYs, len(res.Mapping))
	linPts := make(plotter.XYs, len(linear))
	for j, i := range res.Mapping {
		warpPts[j] = plotter.XY{X: float64(j), Y: float64(i)}
		linPts[j] = plotter.XY{X: float64(j), Y: float64(linear[j])}
	}

	warp, err := plotter.NewLine(warpPts)
	if err != nil {
		return err
	}
	warp.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	warp.Width = vg.Points(1.5)

	lin, err := plotter.NewLine(linPts)
	if err != nil {
		return err
	}
	lin.Color = color.Gray{Y: 128}
	lin.Width = vg.Points(1)
	lin.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(plotter.NewGrid(), lin, warp)
	p.Legend.Add("mapping", warp)
	p.Legend.Add("linear", lin)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save alignment plot: %w", err)
	}
	return nil
}

// Scores plots the per-frame score with the overall mean as a reference line.
func Scores(frames []analysis.FrameResult, overall float64, path string) error {
	if len(frames) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Frame scores (overall %.1f)", overall)
	p.X.Label.Text = "User frame"
	p.Y.Label.Text = "Score"
	p.Y.Min = 0
	p.Y.Max = analysis.MaxScore

	pts := make(plotter.XYs, len(frames))
	mean := make(plotter.XYs, len(frames))
	for k, f := range frames {
		pts[k] = plotter.XY{X: float64(f.User), Y: f.Score}
		mean[k] = plotter.XY{X: float64(f.User), Y: overall}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	line.Width = vg.Points(1.5)

	ref, err := plotter.NewLine(mean)
	if err != nil {
		return err
	}
	ref.Color = color.Gray{Y: 128}
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(plotter.NewGrid(), ref, line)
	p.Legend.Add("score", line)
	p.Legend.Add("overall", ref)
	p.Legend.Top = false
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = 10

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save scores plot: %w", err)
	}
	return nil
}

// JointDiffs plots user − ideal angle per joint, one line per joint.
func JointDiffs(frames []analysis.FrameResult, path string) error {
	if len(frames) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = "Joint angle differences (user - ideal)"
	p.X.Label.Text = "User frame"
	p.Y.Label.Text = "Degrees"

	colors := generateColors(len(analysis.Joints))
	p.Add(plotter.NewGrid())
	for c, j := range analysis.Joints {
		pts := make(plotter.XYs, len(frames))
		for k, f := range frames {
			pts[k] = plotter.XY{X: float64(f.User), Y: f.Diffs[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("%v: %w", j, err)
		}
		line.Color = colors[c]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(j.String(), line)
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save joints plot: %w", err)
	}
	return nil
}
