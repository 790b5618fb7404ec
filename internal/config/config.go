package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/posealign/analysis"
	"github.com/katalvlaran/posealign/dtw"
	"github.com/katalvlaran/posealign/pose"
)

// maxFileSize bounds the size of a config file.
const maxFileSize = 1 * 1024 * 1024 // 1MB

// Config holds the tunable parameters of a comparison run. Every field is
// optional; the Get* methods supply the default for any field left unset,
// so partial configs are safe.
type Config struct {
	// Alignment
	Mode      *string  `json:"mode,omitempty"` // "banded", "unconstrained" or "ratio"
	BandRatio *float64 `json:"band_ratio,omitempty"`

	// Normalization
	Smoothing           *string  `json:"smoothing,omitempty"` // "ema" or "none"
	EMAAlpha            *float64 `json:"ema_alpha,omitempty"`
	VisibilityThreshold *float64 `json:"visibility_threshold,omitempty"`

	// Feedback cues
	CueThresholdDeg *float64 `json:"cue_threshold_deg,omitempty"`
	CueCooldown     *int     `json:"cue_cooldown,omitempty"`

	// Landmark topology; MediaPipe when unset.
	Layout *pose.Layout `json:"layout,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// Empty returns a Config with all fields set to nil.
func Empty() *Config {
	return &Config{}
}

// Default returns a Config with every field set to its default value.
func Default() *Config {
	l := pose.MediaPipeLayout()
	return &Config{
		Mode:                ptrString(dtw.Banded.String()),
		BandRatio:           ptrFloat64(dtw.DefaultBandRatio),
		Smoothing:           ptrString(pose.SmoothEMA.String()),
		EMAAlpha:            ptrFloat64(0.3),
		VisibilityThreshold: ptrFloat64(0.5),
		CueThresholdDeg:     ptrFloat64(5),
		CueCooldown:         ptrInt(8),
		Layout:              &l,
	}
}

// Load reads a Config from a JSON file.
// The file must have a .json extension and be at most 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set.
func (c *Config) Validate() error {
	if c.Mode != nil {
		if _, err := dtw.ParseMode(*c.Mode); err != nil {
			return err
		}
	}
	if c.BandRatio != nil {
		if r := *c.BandRatio; math.IsNaN(r) || r <= 0 {
			return fmt.Errorf("band_ratio must be positive, got %v: %w", r, dtw.ErrBadBandRatio)
		}
	}
	if c.Smoothing != nil {
		if _, err := pose.ParseSmoothing(*c.Smoothing); err != nil {
			return err
		}
	}
	if c.EMAAlpha != nil {
		if a := *c.EMAAlpha; !(a > 0 && a <= 1) {
			return fmt.Errorf("ema_alpha must be in (0, 1], got %v: %w", a, pose.ErrBadOptions)
		}
	}
	if c.VisibilityThreshold != nil && math.IsNaN(*c.VisibilityThreshold) {
		return fmt.Errorf("visibility_threshold is NaN: %w", pose.ErrBadOptions)
	}
	if c.CueThresholdDeg != nil {
		if d := *c.CueThresholdDeg; math.IsNaN(d) || d < 0 {
			return fmt.Errorf("cue_threshold_deg must be non-negative, got %v: %w", d, analysis.ErrBadCueOptions)
		}
	}
	if c.CueCooldown != nil && *c.CueCooldown < 0 {
		return fmt.Errorf("cue_cooldown must be non-negative, got %d: %w", *c.CueCooldown, analysis.ErrBadCueOptions)
	}
	if c.Layout != nil {
		if err := c.Layout.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// GetMode returns the alignment mode or dtw.Banded.
func (c *Config) GetMode() dtw.Mode {
	if c.Mode == nil {
		return dtw.Banded
	}
	m, err := dtw.ParseMode(*c.Mode)
	if err != nil {
		return dtw.Banded // default on parse error
	}
	return m
}

// GetBandRatio returns the band ratio or dtw.DefaultBandRatio.
func (c *Config) GetBandRatio() float64 {
	if c.BandRatio == nil {
		return dtw.DefaultBandRatio
	}
	return *c.BandRatio
}

// GetSmoothing returns the smoothing kind or pose.SmoothEMA.
func (c *Config) GetSmoothing() pose.Smoothing {
	if c.Smoothing == nil {
		return pose.SmoothEMA
	}
	s, err := pose.ParseSmoothing(*c.Smoothing)
	if err != nil {
		return pose.SmoothEMA
	}
	return s
}

// GetEMAAlpha returns the EMA weight or 0.3.
func (c *Config) GetEMAAlpha() float64 {
	if c.EMAAlpha == nil {
		return 0.3
	}
	return *c.EMAAlpha
}

// GetVisibilityThreshold returns the visibility threshold or 0.5.
func (c *Config) GetVisibilityThreshold() float64 {
	if c.VisibilityThreshold == nil {
		return 0.5
	}
	return *c.VisibilityThreshold
}

// GetCueThresholdDeg returns the cue threshold in degrees or 5.
func (c *Config) GetCueThresholdDeg() float64 {
	if c.CueThresholdDeg == nil {
		return 5
	}
	return *c.CueThresholdDeg
}

// GetCueCooldown returns the cue cooldown in frames or 8.
func (c *Config) GetCueCooldown() int {
	if c.CueCooldown == nil {
		return 8
	}
	return *c.CueCooldown
}

// GetLayout returns the landmark layout or pose.MediaPipeLayout.
func (c *Config) GetLayout() pose.Layout {
	if c.Layout == nil {
		return pose.MediaPipeLayout()
	}
	return *c.Layout
}

// AnalysisOptions assembles the options of analysis.Compare from c.
func (c *Config) AnalysisOptions() (analysis.Options, error) {
	if err := c.Validate(); err != nil {
		return analysis.Options{}, err
	}

	opts := analysis.Options{
		Layout: c.GetLayout(),
		Normalize: pose.NormalizeOptions{
			VisibilityThreshold: c.GetVisibilityThreshold(),
			Smoothing:           c.GetSmoothing(),
			Alpha:               c.GetEMAAlpha(),
		},
		Align: dtw.Options{
			Mode:      c.GetMode(),
			BandRatio: c.GetBandRatio(),
		},
		Cues: analysis.CueOptions{
			ThresholdDeg: c.GetCueThresholdDeg(),
			Cooldown:     c.GetCueCooldown(),
		},
	}

	return opts, opts.Validate()
}
